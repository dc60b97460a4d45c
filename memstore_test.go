package main

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

// memStore keeps users and bookmarks in memory and behaves like the Postgres
// repositories: unique emails, owner-scoped bookmarks, not-found errors.
type memStore struct {
	mu         sync.Mutex
	nextUserID int64
	nextBookID int64
	users      map[int64]types.User
	bookmarks  map[int64]types.Bookmark
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]types.User),
		bookmarks: make(map[int64]types.Bookmark),
	}
}

func (s *memStore) CreateUser(_ context.Context, params types.NewUser) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == params.Email {
			return nil, types.ErrDuplicateEmail
		}
	}
	s.nextUserID++
	now := time.Now().UTC()
	first, last := params.FirstName, params.LastName
	u := types.User{
		ID:           s.nextUserID,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		FirstName:    &first,
		LastName:     &last,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *memStore) GetUserByID(_ context.Context, id int64) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, &types.NotFoundError{Resource: "User", ID: id}
	}
	return &u, nil
}

func (s *memStore) UpdateProfile(_ context.Context, id int64, params types.UpdateProfileParams) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, &types.NotFoundError{Resource: "User", ID: id}
	}
	if params.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Email == *params.Email {
				return nil, types.ErrDuplicateEmail
			}
		}
		u.Email = *params.Email
	}
	if params.FirstName != nil {
		u.FirstName = params.FirstName
	}
	if params.LastName != nil {
		u.LastName = params.LastName
	}
	u.UpdatedAt = time.Now().UTC()
	s.users[id] = u
	return &u, nil
}

// deleteUser removes the account and, like the foreign key, its bookmarks.
func (s *memStore) deleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for bid, b := range s.bookmarks {
		if b.UserID == id {
			delete(s.bookmarks, bid)
		}
	}
}

func (s *memStore) List(_ context.Context, userID int64) ([]types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []types.Bookmark{}
	for _, b := range s.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *memStore) owned(userID, bookmarkID int64) (types.Bookmark, error) {
	b, ok := s.bookmarks[bookmarkID]
	if !ok || b.UserID != userID {
		return types.Bookmark{}, &types.NotFoundError{Resource: "Bookmark", ID: bookmarkID}
	}
	return b, nil
}

func (s *memStore) Get(_ context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.owned(userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *memStore) Create(_ context.Context, userID int64, params types.CreateBookmarkParams) (*types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextBookID++
	now := time.Now().UTC()
	b := types.Bookmark{
		ID:        s.nextBookID,
		Title:     params.Title,
		Link:      params.Link,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if params.Description != nil {
		b.Description = *params.Description
	}
	s.bookmarks[b.ID] = b
	return &b, nil
}

func (s *memStore) Update(_ context.Context, userID, bookmarkID int64, params types.EditBookmarkParams) (*types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.owned(userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	if params.Title != nil {
		b.Title = *params.Title
	}
	if params.Description != nil {
		b.Description = *params.Description
	}
	if params.Link != nil {
		b.Link = *params.Link
	}
	b.UpdatedAt = time.Now().UTC()
	s.bookmarks[b.ID] = b
	return &b, nil
}

func (s *memStore) Delete(_ context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := s.owned(userID, bookmarkID)
	if err != nil {
		return nil, err
	}
	delete(s.bookmarks, bookmarkID)
	return &b, nil
}
