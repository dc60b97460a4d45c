package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/FACorreiaa/go-bookmark-api/docs"

	appLogger "github.com/FACorreiaa/go-bookmark-api/app/logger"
	appMiddleware "github.com/FACorreiaa/go-bookmark-api/app/middleware"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/auth"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/bookmark"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/user"
)

const welcomeMessage = "Welcome to the bookmarks API"

// Config contains dependencies needed for the router setup
type Config struct {
	AuthHandler            auth.Handler
	UserHandler            user.Handler
	BookmarkHandler        bookmark.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
	AllowedOrigins         []string
	Timeout                time.Duration
	Logger                 *slog.Logger
}

// New returns the server handler: server-wide middleware with the API routes mounted on it.
func New(cfg *Config) http.Handler {
	r := chi.NewMux()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appLogger.StructuredLogger(cfg.Logger))
	r.Use(appMiddleware.Recoverer(cfg.Logger))
	r.Use(middleware.StripSlashes)
	if cfg.Timeout > 0 {
		r.Use(middleware.Timeout(cfg.Timeout))
	}
	r.Use(middleware.Compress(5, "application/json"))

	r.Mount("/", SetupRouter(cfg))

	return r
}

// SetupRouter registers the public and the guarded API routes.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(welcomeMessage))
	})
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Public
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.SignUp)
		r.Post("/signin", cfg.AuthHandler.SignIn)
	})

	// Guarded
	r.Group(func(r chi.Router) {
		r.Use(cfg.AuthenticateMiddleware)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", cfg.UserHandler.GetMe)
			r.Patch("/", cfg.UserHandler.UpdateUserProfile)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", cfg.BookmarkHandler.ListBookmarks)
			r.Post("/", cfg.BookmarkHandler.CreateBookmark)
			r.Get("/{id}", cfg.BookmarkHandler.GetBookmark)
			r.Patch("/{id}", cfg.BookmarkHandler.EditBookmark)
			r.Delete("/{id}", cfg.BookmarkHandler.DeleteBookmark)
		})
	})

	return r
}
