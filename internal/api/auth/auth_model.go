package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

// Claims is the payload of an access token. Subject holds the user id in decimal;
// Email is informational and never used for authorization.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return id, nil
}

type contextKey string

const userKey contextKey = "user"

// WithUser returns a copy of ctx carrying the resolved identity.
func WithUser(ctx context.Context, user *types.PublicUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the identity attached by Authenticate.
func UserFromContext(ctx context.Context) (*types.PublicUser, bool) {
	user, ok := ctx.Value(userKey).(*types.PublicUser)
	return user, ok && user != nil
}
