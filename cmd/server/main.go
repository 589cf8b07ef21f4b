// Package main implements the entry point for the Colis API server, which
// manages the users, accounts and carrier profiles of the delivery platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/colis-app/colis-api/internal/config"
	"github.com/colis-app/colis-api/internal/platform/logger"
	"github.com/colis-app/colis-api/internal/platform/redis"
	"github.com/colis-app/colis-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a database migration command and exit: up, down, status, version")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("Fatal error", "error", redact.Error(err))
		os.Exit(1)
	}
}

// run loads configuration, then either executes a migration command or
// serves HTTP until SIGINT or SIGTERM.
func run(migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() { _ = db.Close() }()
		return runMigrations(ctx, db, migrateCmd, log)
	}

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	if redisClient == nil {
		log.Warn("Redis address not configured, token revocation disabled")
	}

	app, err := newApplication(cfg, log, db, redisClient)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from the environment,
// an optional config file and a .env file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Redis configuration", "revocation_enabled", cfg.Redis.Addr != "")

	return cfg, nil
}
