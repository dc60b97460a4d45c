package bookmark

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-bookmark-api/internal/api"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/auth"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	ListBookmarks(w http.ResponseWriter, r *http.Request)
	GetBookmark(w http.ResponseWriter, r *http.Request)
	CreateBookmark(w http.ResponseWriter, r *http.Request)
	EditBookmark(w http.ResponseWriter, r *http.Request)
	DeleteBookmark(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	bookmarkService BookmarkService
	logger          *slog.Logger
}

func NewHandlerImpl(bookmarkService BookmarkService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		bookmarkService: bookmarkService,
		logger:          logger,
	}
}

// ListBookmarks godoc
// @Summary      List bookmarks
// @Description  Returns the bookmarks of the authenticated user, newest first.
// @Tags         Bookmarks
// @Produce      json
// @Success      200 {array}  types.Bookmark
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Security     BearerAuth
// @Router       /bookmarks [get]
func (h *HandlerImpl) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}

	bookmarks, err := h.bookmarkService.ListBookmarks(r.Context(), user.ID)
	if err != nil {
		api.WriteError(w, r, h.logger.With(slog.String("HandlerImpl", "ListBookmarks")), err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, bookmarks)
}

// GetBookmark godoc
// @Summary      Get bookmark
// @Tags         Bookmarks
// @Produce      json
// @Param        id path int true "Bookmark ID"
// @Success      200 {object} types.Bookmark
// @Failure      400 {object} types.ErrorBody "Validation failed (numeric string is expected)"
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Failure      404 {object} types.ErrorBody "Bookmark not found"
// @Security     BearerAuth
// @Router       /bookmarks/{id} [get]
func (h *HandlerImpl) GetBookmark(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "GetBookmark"))

	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	bookmark, err := h.bookmarkService.GetBookmark(r.Context(), user.ID, id)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, bookmark)
}

// CreateBookmark godoc
// @Summary      Create bookmark
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        bookmark body types.CreateBookmarkParams true "Bookmark"
// @Success      201 {object} types.Bookmark
// @Failure      400 {object} types.ErrorBody "Validation failed"
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Failure      500 {object} types.ErrorBody
// @Security     BearerAuth
// @Router       /bookmarks [post]
func (h *HandlerImpl) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "CreateBookmark"))

	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}

	var params types.CreateBookmarkParams
	if err := api.DecodeAndValidate(w, r, &params); err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	bookmark, err := h.bookmarkService.CreateBookmark(r.Context(), user.ID, params)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, bookmark)
}

// EditBookmark godoc
// @Summary      Edit bookmark
// @Description  Updates the provided fields of a bookmark owned by the authenticated user.
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        id       path int                       true "Bookmark ID"
// @Param        bookmark body types.EditBookmarkParams true "Fields to change"
// @Success      200 {object} types.Bookmark
// @Failure      400 {object} types.ErrorBody "Validation failed"
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Failure      404 {object} types.ErrorBody "Bookmark not found"
// @Security     BearerAuth
// @Router       /bookmarks/{id} [patch]
func (h *HandlerImpl) EditBookmark(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "EditBookmark"))

	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	var params types.EditBookmarkParams
	if err := api.DecodeAndValidate(w, r, &params); err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	bookmark, err := h.bookmarkService.EditBookmark(r.Context(), user.ID, id, params)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, bookmark)
}

// DeleteBookmark godoc
// @Summary      Delete bookmark
// @Tags         Bookmarks
// @Produce      json
// @Param        id path int true "Bookmark ID"
// @Success      200 {object} types.Bookmark "The deleted bookmark"
// @Failure      400 {object} types.ErrorBody "Validation failed (numeric string is expected)"
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Failure      404 {object} types.ErrorBody "Bookmark not found"
// @Security     BearerAuth
// @Router       /bookmarks/{id} [delete]
func (h *HandlerImpl) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	l := h.logger.With(slog.String("HandlerImpl", "DeleteBookmark"))

	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}
	id, err := api.ParseID(r, "id")
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	bookmark, err := h.bookmarkService.DeleteBookmark(r.Context(), user.ID, id)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, bookmark)
}
