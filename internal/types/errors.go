package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("requested item not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrHashingFailure     = errors.New("password hashing failed")
	ErrMalformedHash      = errors.New("malformed password hash")
)

// ValidationError carries one human readable message per rejected field.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// BadRequestError is a malformed request that is not tied to a body field.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NotFoundError names the missing resource. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    any    `json:"message"`
	Error      string `json:"error,omitempty" example:"Forbidden"`
}
