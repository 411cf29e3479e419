package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/platform/supabase"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// backend groups the collaborators the HTTP layer depends on.
type backend struct {
	auth     auth.Authenticator
	posts    store.PostStore
	comments store.CommentStore
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Connections owned by the postgres provider; nil for supabase.
	db    *sql.DB
	redis *redis.Client

	backend backend
}

// newApplication connects the configured provider and wires its collaborators.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	switch cfg.Backend.Provider {
	case config.ProviderPostgres:
		err = app.setupPostgresBackend(ctx)
	case config.ProviderSupabase:
		app.backend, err = newSupabaseBackend(cfg.Supabase, logger)
	default:
		err = fmt.Errorf("unknown backend provider %q", cfg.Backend.Provider)
	}
	if err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("Application initialized successfully", "provider", cfg.Backend.Provider)
	return app, nil
}

func (app *application) setupPostgresBackend(ctx context.Context) error {
	db, err := setupAppDatabase(ctx, app.config.Database, app.logger)
	if err != nil {
		return err
	}
	app.db = db

	rdb, err := setupRedis(ctx, app.config.Redis, app.logger)
	if err != nil {
		return err
	}
	app.redis = rdb

	app.backend, err = newPostgresBackend(db, rdb, app.config.Auth, app.logger)
	return err
}

// newPostgresBackend builds the self-hosted collaborators on an open
// database and Redis connection.
func newPostgresBackend(
	db *sql.DB,
	rdb redis.UniversalClient,
	cfg config.AuthConfig,
	logger *slog.Logger,
) (backend, error) {
	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return backend{}, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.TokenLifetimeMinutes)

	authService := auth.NewService(
		postgres.NewPostgresUserStore(db, logger),
		auth.NewBcryptHasher(cfg.BcryptCost),
		jwtService,
		auth.NewRedisRevocationStore(rdb),
		logger,
	)

	return backend{
		auth:     authService,
		posts:    postgres.NewPostgresPostStore(db, logger),
		comments: postgres.NewPostgresCommentStore(db, logger),
	}, nil
}

// newSupabaseBackend builds collaborators that call a hosted project. Data
// requests carry the caller's token so row-level security applies.
func newSupabaseBackend(cfg config.SupabaseConfig, logger *slog.Logger) (backend, error) {
	client, err := supabase.NewClient(cfg, logger, supabase.WithTokenSource(shared.GetAccessToken))
	if err != nil {
		return backend{}, fmt.Errorf("failed to initialize supabase client: %w", err)
	}

	return backend{
		auth:     supabase.NewAuthenticator(client),
		posts:    supabase.NewPostStore(client),
		comments: supabase.NewCommentStore(client),
	}, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(app.config.Server, app.logger, app.backend)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
