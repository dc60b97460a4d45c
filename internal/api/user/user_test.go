package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-bookmark-api/internal/api/auth"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

// MockUserRepo is a mock implementation of the UserRepo interface
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, userID int64) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.User, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

var userRowColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at", "updated_at"}

func TestPostgresUserRepoUpdateProfile(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 4, 8, 0, 0, 0, time.UTC)

	newRepo := func(t *testing.T) (*PostgresUserRepo, pgxmock.PgxPoolIface) {
		t.Helper()
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		t.Cleanup(mockPool.Close)
		return NewPostgresUserRepo(mockPool, discardLogger()), mockPool
	}

	t.Run("only provided fields are set", func(t *testing.T) {
		repo, mockPool := newRepo(t)
		mockPool.ExpectQuery(`UPDATE users SET first_name = \$1, updated_at = now\(\) WHERE id = \$2 RETURNING`).
			WithArgs("Jane", int64(3)).
			WillReturnRows(pgxmock.NewRows(userRowColumns).
				AddRow(int64(3), "a@x.com", "hash", strPtr("Jane"), strPtr("B"), now, now))

		user, err := repo.UpdateProfile(ctx, 3, types.UpdateProfileParams{FirstName: strPtr("Jane")})
		require.NoError(t, err)
		assert.Equal(t, "Jane", *user.FirstName)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("all fields in order", func(t *testing.T) {
		repo, mockPool := newRepo(t)
		mockPool.ExpectQuery(`UPDATE users SET email = \$1, first_name = \$2, last_name = \$3, updated_at = now\(\) WHERE id = \$4`).
			WithArgs("b@x.com", "J", "D", int64(3)).
			WillReturnRows(pgxmock.NewRows(userRowColumns).
				AddRow(int64(3), "b@x.com", "hash", strPtr("J"), strPtr("D"), now, now))

		user, err := repo.UpdateProfile(ctx, 3, types.UpdateProfileParams{
			Email: strPtr("b@x.com"), FirstName: strPtr("J"), LastName: strPtr("D"),
		})
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", user.Email)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mockPool := newRepo(t)
		mockPool.ExpectQuery(`UPDATE users SET email = \$1`).
			WithArgs("taken@x.com", int64(3)).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.UpdateProfile(ctx, 3, types.UpdateProfileParams{Email: strPtr("taken@x.com")})
		assert.ErrorIs(t, err, types.ErrDuplicateEmail)
	})

	t.Run("missing user", func(t *testing.T) {
		repo, mockPool := newRepo(t)
		mockPool.ExpectQuery(`UPDATE users SET last_name = \$1`).
			WithArgs("D", int64(8)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.UpdateProfile(ctx, 8, types.UpdateProfileParams{LastName: strPtr("D")})
		var nf *types.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "User with ID 8 not found", nf.Error())
	})

	t.Run("empty update reads the current row", func(t *testing.T) {
		repo, mockPool := newRepo(t)
		mockPool.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(pgxmock.NewRows(userRowColumns).
				AddRow(int64(3), "a@x.com", "hash", strPtr("A"), strPtr("B"), now, now))

		user, err := repo.UpdateProfile(ctx, 3, types.UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	stored := &types.User{ID: 3, Email: "a@x.com", PasswordHash: "hash", FirstName: strPtr("A")}

	t.Run("empty update does not write", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetUserByID", mock.Anything, int64(3)).Return(stored, nil).Once()

		user, err := NewUserService(repo, discardLogger()).UpdateUserProfile(ctx, 3, types.UpdateProfileParams{})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("update returns the public view", func(t *testing.T) {
		repo := new(MockUserRepo)
		params := types.UpdateProfileParams{FirstName: strPtr("Jane")}
		repo.On("UpdateProfile", mock.Anything, int64(3), params).
			Return(&types.User{ID: 3, Email: "a@x.com", PasswordHash: "hash", FirstName: strPtr("Jane")}, nil).Once()

		user, err := NewUserService(repo, discardLogger()).UpdateUserProfile(ctx, 3, params)
		require.NoError(t, err)
		assert.Equal(t, "Jane", *user.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("errors keep their kind", func(t *testing.T) {
		repo := new(MockUserRepo)
		params := types.UpdateProfileParams{Email: strPtr("b@x.com")}
		repo.On("UpdateProfile", mock.Anything, int64(3), params).Return(nil, types.ErrDuplicateEmail).Once()

		_, err := NewUserService(repo, discardLogger()).UpdateUserProfile(ctx, 3, params)
		assert.ErrorIs(t, err, types.ErrDuplicateEmail)
	})
}

func TestUserHandler(t *testing.T) {
	me := &types.PublicUser{ID: 3, Email: "a@x.com", FirstName: strPtr("A"), LastName: strPtr("B")}

	router := func(service UserService, identity *types.PublicUser) http.Handler {
		h := NewHandlerImpl(service, discardLogger())
		r := chi.NewRouter()
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if identity != nil {
					req = req.WithContext(auth.WithUser(req.Context(), identity))
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Get("/users/me", h.GetMe)
		r.Patch("/users", h.UpdateUserProfile)
		return r
	}

	t.Run("me returns the identity", func(t *testing.T) {
		apitest.New().
			Handler(router(new(MockUserService), me)).
			Get("/users/me").
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal("$.user.id", float64(3))).
			Assert(jsonpath.Equal("$.user.email", "a@x.com")).
			Assert(jsonpath.NotPresent("$.user.password_hash")).
			End()
	})

	t.Run("no identity is unauthorized", func(t *testing.T) {
		apitest.New().
			Handler(router(new(MockUserService), nil)).
			Get("/users/me").
			Expect(t).
			Status(http.StatusUnauthorized).
			Body(`{"statusCode":401,"message":"Unauthorized"}`).
			End()
	})

	t.Run("patch updates", func(t *testing.T) {
		service := new(MockUserService)
		params := types.UpdateProfileParams{FirstName: strPtr("Jane"), Email: strPtr("j@x.com")}
		service.On("UpdateUserProfile", mock.Anything, int64(3), params).
			Return(&types.PublicUser{ID: 3, Email: "j@x.com", FirstName: strPtr("Jane")}, nil).Once()

		apitest.New().
			Handler(router(service, me)).
			Patch("/users").
			JSON(`{"firstName":"Jane","email":"j@x.com"}`).
			Expect(t).
			Status(http.StatusOK).
			Assert(jsonpath.Equal("$.email", "j@x.com")).
			Assert(jsonpath.Equal("$.firstName", "Jane")).
			End()
		service.AssertExpectations(t)
	})

	t.Run("patch validates email", func(t *testing.T) {
		apitest.New().
			Handler(router(new(MockUserService), me)).
			Patch("/users").
			JSON(`{"email":"nope"}`).
			Expect(t).
			Status(http.StatusBadRequest).
			Body(`{"statusCode":400,"message":["email must be an email"],"error":"Bad Request"}`).
			End()
	})

	t.Run("patch duplicate email", func(t *testing.T) {
		service := new(MockUserService)
		service.On("UpdateUserProfile", mock.Anything, int64(3), mock.Anything).
			Return(nil, fmt.Errorf("error updating user profile: %w", types.ErrDuplicateEmail)).Once()

		apitest.New().
			Handler(router(service, me)).
			Patch("/users").
			JSON(`{"email":"taken@x.com"}`).
			Expect(t).
			Status(http.StatusForbidden).
			Assert(jsonpath.Equal("$.message", "Email already exists")).
			End()
	})
}

// MockUserService is a mock implementation of the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID int64) (*types.PublicUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PublicUser), args.Error(1)
}

func (m *MockUserService) UpdateUserProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.PublicUser, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PublicUser), args.Error(1)
}
