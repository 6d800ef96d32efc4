package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rfenton/volcano-api/internal/config"
	"github.com/rfenton/volcano-api/internal/platform/postgres"
	"github.com/rfenton/volcano-api/internal/service/auth"
	"github.com/rfenton/volcano-api/internal/service/ratings"
	"github.com/rfenton/volcano-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	volcanoStore store.VolcanoStore

	jwtService     auth.JWTService
	passwordHasher *auth.BcryptVerifier
	ratingsService *ratings.Service
}

// newApplication constructs the dependency graph from configuration and an
// open database handle. The JWT secret and the store handles are injected
// explicitly; nothing below this layer reads process state.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	volcanoStore := postgres.NewVolcanoStore(db, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userStore:      postgres.NewUserStore(db, logger),
		volcanoStore:   volcanoStore,
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptVerifier(),
		ratingsService: ratings.NewService(volcanoStore),
	}, nil
}
