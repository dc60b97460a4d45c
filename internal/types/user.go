package types

import "time"

// User is the stored account row. It is only handled by the auth and user
// repositories; everything leaving them is projected to PublicUser.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    *string
	LastName     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the user as seen by handlers and clients. It has no credential field.
type PublicUser struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"john.doe@example.com"`
	FirstName *string   `json:"firstName" example:"John"`
	LastName  *string   `json:"lastName" example:"Doe"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public projects the stored user onto its public view.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UpdateProfileParams defines the fields allowed for profile updates.
// Nil pointers are left untouched.
type UpdateProfileParams struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email" example:"jane.doe@example.com"`
	FirstName *string `json:"firstName,omitempty" example:"Jane"`
	LastName  *string `json:"lastName,omitempty" example:"Doe"`
}

// IsEmpty reports whether no field was provided.
func (p UpdateProfileParams) IsEmpty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}

type UserResponse struct {
	User *PublicUser `json:"user"`
}
