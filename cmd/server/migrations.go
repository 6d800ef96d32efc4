package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/rfenton/volcano-api/internal/platform/postgres/migrations"
)

// runMigrations executes a goose migration command against the embedded
// migration set. Supported commands: up, down, status.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	logger.Info("running migrations", "command", command)

	switch command {
	case "up":
		return goose.UpContext(ctx, db, ".")
	case "down":
		return goose.DownContext(ctx, db, ".")
	case "status":
		return goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
