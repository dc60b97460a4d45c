package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/FACorreiaa/go-bookmark-api/app/observability/metrics"
	"github.com/FACorreiaa/go-bookmark-api/internal/api"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

// Authenticate rejects requests without a valid bearer token before they reach
// the handler and attaches the resolved user to the request context otherwise.
func Authenticate(resolver Resolver, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := logger.With(slog.String("middleware", "Authenticate"))

			reject := func(reason string) {
				metrics.CountOutcome(ctx, metrics.Get().GuardRejectionsTotal, "reason", reason)
				l.DebugContext(ctx, "Request rejected", slog.String("reason", reason), slog.String("path", r.URL.Path))
				api.Unauthorized(w, r)
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				reject("missing_header")
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" || headerParts[1] == "" {
				reject("malformed_header")
				return
			}

			user, err := resolver.Resolve(ctx, headerParts[1])
			if err != nil {
				switch {
				case errors.Is(err, types.ErrExpiredToken):
					reject("expired_token")
				case errors.Is(err, types.ErrInvalidToken):
					reject("invalid_token")
				case errors.Is(err, types.ErrUnauthenticated):
					reject("unknown_user")
				default:
					api.WriteError(w, r, l, err)
				}
				return
			}

			l.DebugContext(ctx, "Authentication successful", slog.Int64("userID", user.ID))
			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// CurrentUser returns the identity or writes a 401. Handlers behind Authenticate
// always find one.
func CurrentUser(w http.ResponseWriter, r *http.Request) (*types.PublicUser, bool) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		api.Unauthorized(w, r)
		return nil, false
	}
	return user, true
}
