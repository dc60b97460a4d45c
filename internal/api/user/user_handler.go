package user

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-bookmark-api/internal/api"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/auth"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
	UpdateUserProfile(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	userService UserService
	logger      *slog.Logger
}

// NewHandlerImpl creates a new user HandlerImpl instance.
func NewHandlerImpl(userService UserService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		userService: userService,
		logger:      logger,
	}
}

// GetMe godoc
// @Summary      Get current user
// @Description  Returns the authenticated user.
// @Tags         User
// @Produce      json
// @Success      200 {object} types.UserResponse
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *HandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, types.UserResponse{User: user})
}

// UpdateUserProfile godoc
// @Summary      Edit current user
// @Description  Updates the provided profile fields of the authenticated user.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        profile body types.UpdateProfileParams true "Profile fields"
// @Success      200 {object} types.PublicUser
// @Failure      400 {object} types.ErrorBody "Validation failed"
// @Failure      401 {object} types.ErrorBody "Unauthorized"
// @Failure      403 {object} types.ErrorBody "Email already exists"
// @Failure      404 {object} types.ErrorBody "User not found"
// @Failure      500 {object} types.ErrorBody
// @Security     BearerAuth
// @Router       /users [patch]
func (h *HandlerImpl) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("HandlerImpl", "UpdateUserProfile"))

	user, ok := auth.CurrentUser(w, r)
	if !ok {
		return
	}

	var params types.UpdateProfileParams
	if err := api.DecodeAndValidate(w, r, &params); err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	updated, err := h.userService.UpdateUserProfile(ctx, user.ID, params)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, updated)
}
