package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/colis-app/colis-api/internal/api"
	apiMiddleware "github.com/colis-app/colis-api/internal/api/middleware"
	"github.com/colis-app/colis-api/internal/config"
	"github.com/colis-app/colis-api/internal/platform/postgres"
	"github.com/colis-app/colis-api/internal/platform/redis"
	"github.com/colis-app/colis-api/internal/service"
	"github.com/colis-app/colis-api/internal/service/auth"
	goredis "github.com/redis/go-redis/v9"
)

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *goredis.Client // nil when revocation is disabled

	handlers routeHandlers
}

// newApplication wires stores, services and handlers around the already
// established connections.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	redisClient *goredis.Client,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	var revoked auth.RevocationList
	if redisClient != nil {
		revoked = redis.NewRevocationList(redisClient)
	}

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	accountStore := postgres.NewPostgresAccountStore(db, cfg.Auth.BCryptCost, logger)
	carrierStore := postgres.NewPostgresCarrierStore(db, logger)

	userService := service.NewUserService(db, userStore, accountStore, carrierStore, logger)
	authService := service.NewAuthService(userStore, auth.NewBcryptVerifier(), jwtService, revoked, cfg.Auth.BCryptCost, logger)
	accountService := service.NewAccountService(db, userStore, accountStore, logger)
	carrierService := service.NewCarrierService(carrierStore)

	app.handlers = routeHandlers{
		root:     api.NewRootHandler(cfg.API.DocumentationRoute),
		users:    api.NewUserHandler(userService),
		auth:     api.NewAuthHandler(authService),
		accounts: api.NewAccountHandler(accountService),
		carriers: api.NewCarrierHandler(carrierService),
		authn: apiMiddleware.NewAuthMiddleware(
			auth.NewIdentityResolver(jwtService, revoked, logger),
		),
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := newRouter(app.logger, app.config.Server.CORSAllowedOrigins, app.handlers)

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database and redis connections.
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
