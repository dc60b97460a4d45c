package bookmark

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

var _ BookmarkRepo = (*PostgresBookmarkRepo)(nil)

// BookmarkRepo persists bookmarks. Every query is scoped by owner, so a bookmark
// of another user looks exactly like a missing one.
type BookmarkRepo interface {
	List(ctx context.Context, userID int64) ([]types.Bookmark, error)
	Get(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error)
	Create(ctx context.Context, userID int64, params types.CreateBookmarkParams) (*types.Bookmark, error)
	Update(ctx context.Context, userID, bookmarkID int64, params types.EditBookmarkParams) (*types.Bookmark, error)
	Delete(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error)
}

type PostgresBookmarkRepo struct {
	logger *slog.Logger
	pgpool database.Querier
}

func NewPostgresBookmarkRepo(pgpool database.Querier, logger *slog.Logger) *PostgresBookmarkRepo {
	return &PostgresBookmarkRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const bookmarkColumns = `id, title, description, link, user_id, created_at, updated_at`

func scanBookmark(row pgx.Row) (*types.Bookmark, error) {
	var b types.Bookmark
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Link, &b.UserID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func startSpan(ctx context.Context, name, operation string, userID int64) (context.Context, trace.Span) {
	return otel.Tracer("BookmarkRepo").Start(ctx, name, trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", "bookmarks"),
		attribute.Int64("db.user.id", userID),
	))
}

func notFound(id int64) error {
	return &types.NotFoundError{Resource: "Bookmark", ID: id}
}

func (r *PostgresBookmarkRepo) List(ctx context.Context, userID int64) ([]types.Bookmark, error) {
	ctx, span := startSpan(ctx, "List", "SELECT", userID)
	defer span.End()

	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE user_id = $1 ORDER BY id DESC`

	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, userID)
	if err != nil {
		metrics.RecordDBQuery(ctx, "SELECT", "bookmarks", start, err)
		r.logger.ErrorContext(ctx, "Failed to list bookmarks", slog.Int64("userID", userID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []types.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			metrics.RecordDBQuery(ctx, "SELECT", "bookmarks", start, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "scan failed")
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		bookmarks = append(bookmarks, *b)
	}
	err = rows.Err()
	metrics.RecordDBQuery(ctx, "SELECT", "bookmarks", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rows failed")
		return nil, fmt.Errorf("iterating bookmarks: %w", err)
	}

	span.SetAttributes(attribute.Int("bookmarks.count", len(bookmarks)))
	span.SetStatus(codes.Ok, "Bookmarks listed")
	return bookmarks, nil
}

func (r *PostgresBookmarkRepo) Get(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	ctx, span := startSpan(ctx, "Get", "SELECT", userID)
	defer span.End()

	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1 AND user_id = $2`
	return r.queryOne(ctx, span, "SELECT", bookmarkID, query, bookmarkID, userID)
}

func (r *PostgresBookmarkRepo) Create(ctx context.Context, userID int64, params types.CreateBookmarkParams) (*types.Bookmark, error) {
	ctx, span := startSpan(ctx, "Create", "INSERT", userID)
	defer span.End()

	description := ""
	if params.Description != nil {
		description = *params.Description
	}

	query := `
		INSERT INTO bookmarks (user_id, title, description, link)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookmarkColumns

	start := time.Now()
	b, err := scanBookmark(r.pgpool.QueryRow(ctx, query, userID, params.Title, description, params.Link))
	metrics.RecordDBQuery(ctx, "INSERT", "bookmarks", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to create bookmark", slog.Int64("userID", userID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("creating bookmark: %w", err)
	}

	span.SetStatus(codes.Ok, "Bookmark created")
	return b, nil
}

// Update changes only the non-nil fields.
func (r *PostgresBookmarkRepo) Update(ctx context.Context, userID, bookmarkID int64, params types.EditBookmarkParams) (*types.Bookmark, error) {
	ctx, span := startSpan(ctx, "Update", "UPDATE", userID)
	defer span.End()

	query := `
		UPDATE bookmarks SET
			title = COALESCE($3, title),
			description = COALESCE($4, description),
			link = COALESCE($5, link),
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bookmarkColumns

	return r.queryOne(ctx, span, "UPDATE", bookmarkID, query, bookmarkID, userID, params.Title, params.Description, params.Link)
}

// Delete removes the bookmark and returns it as it was.
func (r *PostgresBookmarkRepo) Delete(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	ctx, span := startSpan(ctx, "Delete", "DELETE", userID)
	defer span.End()

	query := `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2 RETURNING ` + bookmarkColumns
	return r.queryOne(ctx, span, "DELETE", bookmarkID, query, bookmarkID, userID)
}

func (r *PostgresBookmarkRepo) queryOne(ctx context.Context, span trace.Span, operation string, bookmarkID int64, query string, args ...any) (*types.Bookmark, error) {
	span.SetAttributes(attribute.Int64("bookmark.id", bookmarkID))

	start := time.Now()
	b, err := scanBookmark(r.pgpool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		metrics.RecordDBQuery(ctx, operation, "bookmarks", start, nil)
		span.SetStatus(codes.Error, "Bookmark not found")
		return nil, notFound(bookmarkID)
	}
	metrics.RecordDBQuery(ctx, operation, "bookmarks", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Bookmark query failed",
			slog.String("operation", operation),
			slog.Int64("bookmarkID", bookmarkID),
			slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("%s bookmark %d: %w", operation, bookmarkID, err)
	}

	span.SetStatus(codes.Ok, "")
	return b, nil
}
