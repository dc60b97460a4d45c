package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ Resolver = (*IdentityResolver)(nil)

// Resolver turns a bearer token into the identity of the request.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*types.PublicUser, error)
}

// UserLookup is the part of the user store the resolver needs.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
}

type IdentityResolver struct {
	logger   *slog.Logger
	verifier TokenVerifier
	users    UserLookup
}

func NewIdentityResolver(verifier TokenVerifier, users UserLookup, logger *slog.Logger) *IdentityResolver {
	return &IdentityResolver{
		logger:   logger,
		verifier: verifier,
		users:    users,
	}
}

// Resolve verifies token and loads its subject. A token whose user no longer
// exists resolves to types.ErrUnauthenticated. Store failures are returned as is.
func (r *IdentityResolver) Resolve(ctx context.Context, token string) (*types.PublicUser, error) {
	ctx, span := otel.Tracer("IdentityResolver").Start(ctx, "Resolve")
	defer span.End()

	claims, err := r.verifier.Verify(token)
	if err != nil {
		span.SetStatus(codes.Error, "token rejected")
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		span.SetStatus(codes.Error, "bad subject")
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidToken, err)
	}
	span.SetAttributes(attribute.Int64("user.id", userID))

	user, err := r.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			r.logger.WarnContext(ctx, "Token subject no longer exists", slog.Int64("userID", userID))
			span.SetStatus(codes.Error, "user missing")
			return nil, fmt.Errorf("resolving user %d: %w", userID, types.ErrUnauthenticated)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "user lookup failed")
		return nil, fmt.Errorf("resolving user %d: %w", userID, err)
	}

	span.SetStatus(codes.Ok, "Identity resolved")
	return user.Public(), nil
}
