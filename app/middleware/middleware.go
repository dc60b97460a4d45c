package appMiddleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/FACorreiaa/go-bookmark-api/internal/api"
)

// Recoverer turns a panic in any handler into the generic JSON 500 body and logs the stack.
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "Recovered from panic",
					slog.String("req_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				api.ErrorResponse(w, r, http.StatusInternalServerError, api.InternalServerErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
