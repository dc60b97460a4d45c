package types

import "time"

type Bookmark struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go docs"`
	Description string    `json:"description" example:"The Go programming language documentation"`
	Link        string    `json:"link" example:"https://go.dev/doc"`
	UserID      int64     `json:"userId" example:"1"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateBookmarkParams struct {
	Title       string  `json:"title" validate:"required" example:"Go docs"`
	Description *string `json:"description,omitempty" example:"The Go programming language documentation"`
	Link        string  `json:"link" validate:"required" example:"https://go.dev/doc"`
}

// EditBookmarkParams leaves nil fields untouched.
type EditBookmarkParams struct {
	Title       *string `json:"title,omitempty" example:"Go docs"`
	Description *string `json:"description,omitempty" example:"Updated description"`
	Link        *string `json:"link,omitempty" example:"https://go.dev/doc/effective_go"`
}
