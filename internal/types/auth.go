package types

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Password  string `json:"password" validate:"required" example:"pw123"`
	FirstName string `json:"firstName" validate:"required" example:"John"`
	LastName  string `json:"lastName" validate:"required" example:"Doe"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"john.doe@example.com"`
	Password string `json:"password" validate:"required" example:"pw123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// NewUser holds what the auth repository needs to insert an account.
type NewUser struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}
