package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

var _ AuthRepo = (*PostgresAuthRepo)(nil)

// AuthRepo is the persistence the authentication core depends on.
type AuthRepo interface {
	// CreateUser inserts a user. Returns types.ErrDuplicateEmail when the email is taken.
	CreateUser(ctx context.Context, params types.NewUser) (*types.User, error)
	// GetUserByEmail returns types.ErrNotFound when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	// GetUserByID returns types.ErrNotFound when the user does not exist.
	GetUserByID(ctx context.Context, id int64) (*types.User, error)
}

type PostgresAuthRepo struct {
	logger *slog.Logger
	pgpool database.Querier
}

func NewPostgresAuthRepo(pgpool database.Querier, logger *slog.Logger) *PostgresAuthRepo {
	return &PostgresAuthRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const userColumns = `id, email, password_hash, first_name, last_name, created_at, updated_at`

func scanUser(row pgx.Row) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresAuthRepo) CreateUser(ctx context.Context, params types.NewUser) (*types.User, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "CreateUser"))

	query := `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, query, params.Email, params.PasswordHash, params.FirstName, params.LastName))
	metrics.RecordDBQuery(ctx, "INSERT", "users", start, err)
	if err != nil {
		if database.IsUniqueViolation(err) {
			l.WarnContext(ctx, "Email already registered", slog.String("email", params.Email))
			span.SetStatus(codes.Error, "duplicate email")
			return nil, fmt.Errorf("creating user: %w", types.ErrDuplicateEmail)
		}
		l.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	span.SetAttributes(attribute.Int64("db.user.id", user.ID))
	span.SetStatus(codes.Ok, "User created")
	return user, nil
}

func (r *PostgresAuthRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByEmail", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
	))
	defer span.End()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getUser(ctx, span, query, email)
}

func (r *PostgresAuthRepo) GetUserByID(ctx context.Context, id int64) (*types.User, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "users"),
		attribute.Int64("db.user.id", id),
	))
	defer span.End()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, span, query, id)
}

func (r *PostgresAuthRepo) getUser(ctx context.Context, span trace.Span, query string, arg any) (*types.User, error) {
	start := time.Now()
	user, err := scanUser(r.pgpool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordDBQuery(ctx, "SELECT", "users", start, nil)
		span.SetStatus(codes.Ok, "User not found")
		return nil, types.ErrNotFound
	}
	metrics.RecordDBQuery(ctx, "SELECT", "users", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("querying user: %w", err)
	}

	span.SetStatus(codes.Ok, "User found")
	return user, nil
}
