// Package main implements the entry point for the volcano API server,
// which serves the volcano dataset with JWT-authenticated accounts,
// conditional field visibility, and user-submitted ratings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/rfenton/volcano-api/internal/config"
	"github.com/rfenton/volcano-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires the application and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	ctx := context.Background()

	if migrateCmd != "" {
		if err := runMigrations(ctx, db, migrateCmd, appLogger); err != nil {
			return fmt.Errorf("migration command %q failed: %w", migrateCmd, err)
		}
		return nil
	}

	// Normal startup applies pending migrations before serving.
	if err := runMigrations(ctx, db, "up", appLogger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
