package bookmark

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-bookmark-api/app/observability/metrics"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ BookmarkService = (*BookmarkServiceImpl)(nil)

// BookmarkService manages the bookmarks of one user at a time.
type BookmarkService interface {
	ListBookmarks(ctx context.Context, userID int64) ([]types.Bookmark, error)
	GetBookmark(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error)
	CreateBookmark(ctx context.Context, userID int64, params types.CreateBookmarkParams) (*types.Bookmark, error)
	EditBookmark(ctx context.Context, userID, bookmarkID int64, params types.EditBookmarkParams) (*types.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error)
}

type BookmarkServiceImpl struct {
	logger *slog.Logger
	repo   BookmarkRepo
}

func NewBookmarkService(repo BookmarkRepo, logger *slog.Logger) *BookmarkServiceImpl {
	return &BookmarkServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *BookmarkServiceImpl) ListBookmarks(ctx context.Context, userID int64) ([]types.Bookmark, error) {
	return s.repo.List(ctx, userID)
}

func (s *BookmarkServiceImpl) GetBookmark(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	return s.repo.Get(ctx, userID, bookmarkID)
}

func (s *BookmarkServiceImpl) CreateBookmark(ctx context.Context, userID int64, params types.CreateBookmarkParams) (*types.Bookmark, error) {
	ctx, span := otel.Tracer("BookmarkService").Start(ctx, "CreateBookmark", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	b, err := s.repo.Create(ctx, userID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create bookmark")
		return nil, err
	}

	metrics.CountOutcome(ctx, metrics.Get().BookmarkOpsTotal, "operation", "create")
	s.logger.InfoContext(ctx, "Bookmark created", slog.Int64("userID", userID), slog.Int64("bookmarkID", b.ID))
	span.SetStatus(codes.Ok, "Bookmark created")
	return b, nil
}

func (s *BookmarkServiceImpl) EditBookmark(ctx context.Context, userID, bookmarkID int64, params types.EditBookmarkParams) (*types.Bookmark, error) {
	ctx, span := otel.Tracer("BookmarkService").Start(ctx, "EditBookmark", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("bookmark.id", bookmarkID),
	))
	defer span.End()

	b, err := s.repo.Update(ctx, userID, bookmarkID, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to edit bookmark")
		return nil, err
	}

	metrics.CountOutcome(ctx, metrics.Get().BookmarkOpsTotal, "operation", "edit")
	span.SetStatus(codes.Ok, "Bookmark edited")
	return b, nil
}

func (s *BookmarkServiceImpl) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) (*types.Bookmark, error) {
	ctx, span := otel.Tracer("BookmarkService").Start(ctx, "DeleteBookmark", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("bookmark.id", bookmarkID),
	))
	defer span.End()

	b, err := s.repo.Delete(ctx, userID, bookmarkID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete bookmark")
		return nil, err
	}

	metrics.CountOutcome(ctx, metrics.Get().BookmarkOpsTotal, "operation", "delete")
	s.logger.InfoContext(ctx, "Bookmark deleted", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmarkID))
	span.SetStatus(codes.Ok, "Bookmark deleted")
	return b, nil
}
