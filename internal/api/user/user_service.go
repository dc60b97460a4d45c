package user

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

// Ensure implementation satisfies the interface
var _ UserService = (*UserServiceImpl)(nil)

// UserService defines the business logic contract for user operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID int64) (*types.PublicUser, error)
	UpdateUserProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.PublicUser, error)
}

// UserServiceImpl provides the implementation for UserService.
type UserServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
}

// NewUserService creates a new user service instance.
func NewUserService(repo UserRepo, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// GetUserProfile retrieves a user's profile by ID.
func (s *UserServiceImpl) GetUserProfile(ctx context.Context, userID int64) (*types.PublicUser, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "GetUserProfile", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GetUserProfile"), slog.Int64("userID", userID))
	l.DebugContext(ctx, "Fetching user profile")

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch user profile")
		return nil, fmt.Errorf("error fetching user profile: %w", err)
	}

	span.SetStatus(codes.Ok, "User profile fetched")
	return user.Public(), nil
}

// UpdateUserProfile applies the provided fields. An empty update returns the current profile.
func (s *UserServiceImpl) UpdateUserProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.PublicUser, error) {
	ctx, span := otel.Tracer("UserService").Start(ctx, "UpdateUserProfile", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Bool("update.empty", params.IsEmpty()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "UpdateUserProfile"), slog.Int64("userID", userID))
	l.DebugContext(ctx, "Updating user profile")

	if params.IsEmpty() {
		span.SetStatus(codes.Ok, "Nothing to update")
		return s.GetUserProfile(ctx, userID)
	}

	user, err := s.repo.UpdateProfile(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update user profile")
		return nil, fmt.Errorf("error updating user profile: %w", err)
	}

	span.SetStatus(codes.Ok, "User profile updated")
	return user.Public(), nil
}
