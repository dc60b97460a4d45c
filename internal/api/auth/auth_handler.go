package auth

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-bookmark-api/internal/api"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	authService AuthService
	logger      *slog.Logger
}

func NewHandlerImpl(authService AuthService, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		authService: authService,
		logger:      logger,
	}
}

// SignUp godoc
// @Summary      Sign up
// @Description  Creates an account and returns an access token for it.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body types.SignUpRequest true "Account details"
// @Success      201 {object} types.TokenResponse
// @Failure      400 {object} types.ErrorBody "Validation failed"
// @Failure      403 {object} types.ErrorBody "Email already exists"
// @Failure      500 {object} types.ErrorBody
// @Router       /auth/signup [post]
func (h *HandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("HandlerImpl", "SignUp"))

	var req types.SignUpRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		l.DebugContext(ctx, "Invalid signup request", slog.Any("error", err))
		api.WriteError(w, r, l, err)
		return
	}

	token, err := h.authService.SignUp(ctx, req)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, types.TokenResponse{AccessToken: token})
}

// SignIn godoc
// @Summary      Sign in
// @Description  Exchanges email and password for an access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body types.SignInRequest true "Credentials"
// @Success      200 {object} types.TokenResponse
// @Failure      400 {object} types.ErrorBody "Validation failed"
// @Failure      403 {object} types.ErrorBody "Email or password is incorrect"
// @Failure      500 {object} types.ErrorBody
// @Router       /auth/signin [post]
func (h *HandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := h.logger.With(slog.String("HandlerImpl", "SignIn"))

	var req types.SignInRequest
	if err := api.DecodeAndValidate(w, r, &req); err != nil {
		l.DebugContext(ctx, "Invalid signin request", slog.Any("error", err))
		api.WriteError(w, r, l, err)
		return
	}

	token, err := h.authService.SignIn(ctx, req)
	if err != nil {
		api.WriteError(w, r, l, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, types.TokenResponse{AccessToken: token})
}
