package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	database "github.com/FACorreiaa/go-bookmark-api/app/db"
	"github.com/FACorreiaa/go-bookmark-api/app/observability/metrics"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ UserRepo = (*PostgresUserRepo)(nil)

// UserRepo defines the contract for user data persistence.
type UserRepo interface {
	// GetUserByID returns a *types.NotFoundError if the user doesn't exist.
	GetUserByID(ctx context.Context, userID int64) (*types.User, error)
	// UpdateProfile updates the non-nil fields and returns the stored row.
	// Returns types.ErrDuplicateEmail if the new email is taken.
	UpdateProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.User, error)
}

type PostgresUserRepo struct {
	logger *slog.Logger
	pgpool database.Querier
}

func NewPostgresUserRepo(pgpool database.Querier, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func scanUser(row pgx.Row) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUserRepo) GetUserByID(ctx context.Context, userID int64) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", userID),
	))
	defer span.End()

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordDBQuery(ctx, "SELECT", "users", start, nil)
		span.SetStatus(codes.Error, "User not found")
		return nil, &types.NotFoundError{Resource: "User", ID: userID}
	}
	metrics.RecordDBQuery(ctx, "SELECT", "users", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to fetch user", slog.Int64("userID", userID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User found")
	return user, nil
}

func (r *PostgresUserRepo) UpdateProfile(ctx context.Context, userID int64, params types.UpdateProfileParams) (*types.User, error) {
	ctx, span := otel.Tracer("UserRepo").Start(ctx, "UpdateProfile", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "UPDATE"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", userID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "UpdateProfile"), slog.Int64("userID", userID))

	var setClauses []string
	var args []any
	argID := 1

	if params.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argID))
		args = append(args, *params.Email)
		argID++
		span.SetAttributes(attribute.Bool("update.email", true))
	}
	if params.FirstName != nil {
		setClauses = append(setClauses, fmt.Sprintf("first_name = $%d", argID))
		args = append(args, *params.FirstName)
		argID++
		span.SetAttributes(attribute.Bool("update.first_name", true))
	}
	if params.LastName != nil {
		setClauses = append(setClauses, fmt.Sprintf("last_name = $%d", argID))
		args = append(args, *params.LastName)
		argID++
		span.SetAttributes(attribute.Bool("update.last_name", true))
	}

	if len(setClauses) == 0 {
		l.DebugContext(ctx, "No profile fields provided for update")
		span.SetStatus(codes.Ok, "No update needed")
		return r.GetUserByID(ctx, userID)
	}

	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, userID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, userColumns)

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, query, args...))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		metrics.RecordDBQuery(ctx, "UPDATE", "users", start, nil)
		l.WarnContext(ctx, "User not found for update")
		span.SetStatus(codes.Error, "User not found")
		return nil, &types.NotFoundError{Resource: "User", ID: userID}
	case database.IsUniqueViolation(err):
		metrics.RecordDBQuery(ctx, "UPDATE", "users", start, nil)
		l.WarnContext(ctx, "Email already taken")
		span.SetStatus(codes.Error, "duplicate email")
		return nil, fmt.Errorf("updating profile: %w", types.ErrDuplicateEmail)
	case err != nil:
		metrics.RecordDBQuery(ctx, "UPDATE", "users", start, err)
		l.ErrorContext(ctx, "Failed to update user profile", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	metrics.RecordDBQuery(ctx, "UPDATE", "users", start, nil)

	l.InfoContext(ctx, "User profile updated")
	span.SetStatus(codes.Ok, "Profile updated")
	return user, nil
}
