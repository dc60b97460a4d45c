package container

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-bookmark-api/app/db"
	"github.com/FACorreiaa/go-bookmark-api/config"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/auth"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/bookmark"
	"github.com/FACorreiaa/go-bookmark-api/internal/api/user"
	"github.com/FACorreiaa/go-bookmark-api/internal/router"
)

// Repositories are the persistence collaborators the handlers are built on.
type Repositories struct {
	Auth      auth.AuthRepo
	Users     user.UserRepo
	Bookmarks bookmark.BookmarkRepo
}

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *slog.Logger
	Pool            *pgxpool.Pool
	AuthHandler     *auth.HandlerImpl
	UserHandler     *user.HandlerImpl
	BookmarkHandler *bookmark.HandlerImpl
	Authenticate    func(http.Handler) http.Handler
}

// NewContainer opens the database pool and builds the Postgres-backed container.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	c, err := Build(cfg, Repositories{
		Auth:      auth.NewPostgresAuthRepo(pool, logger),
		Users:     user.NewPostgresUserRepo(pool, logger),
		Bookmarks: bookmark.NewPostgresBookmarkRepo(pool, logger),
	}, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	c.Pool = pool
	return c, nil
}

// Build wires services and handlers on top of the given repositories.
func Build(cfg *config.Config, repos Repositories, logger *slog.Logger) (*Container, error) {
	tokens, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("creating token manager: %w", err)
	}
	hasher := auth.NewArgon2Hasher(cfg.Hashing)

	authService := auth.NewAuthService(repos.Auth, hasher, tokens, logger)
	resolver := auth.NewIdentityResolver(tokens, repos.Auth, logger)

	userService := user.NewUserService(repos.Users, logger)
	bookmarkService := bookmark.NewBookmarkService(repos.Bookmarks, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		AuthHandler:     auth.NewHandlerImpl(authService, logger),
		UserHandler:     user.NewHandlerImpl(userService, logger),
		BookmarkHandler: bookmark.NewHandlerImpl(bookmarkService, logger),
		Authenticate:    auth.Authenticate(resolver, logger),
	}, nil
}

// Router returns the HTTP handler serving every route of the API.
func (c *Container) Router() http.Handler {
	return router.New(&router.Config{
		AuthHandler:            c.AuthHandler,
		UserHandler:            c.UserHandler,
		BookmarkHandler:        c.BookmarkHandler,
		AuthenticateMiddleware: c.Authenticate,
		AllowedOrigins:         c.Config.CORS.AllowedOrigins,
		Timeout:                c.Config.Server.Timeout,
		Logger:                 c.Logger,
	})
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}
