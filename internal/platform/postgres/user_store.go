package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/platform/logger"
	"github.com/rfenton/volcano-api/internal/store"
)

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
// Returns store.ErrEmailExists if the email is already registered.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
	`
	_, err := s.db.ExecContext(ctx, query, user.Email, user.HashedPassword)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate email during user creation",
				slog.String("email", user.Email))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", user.Email))
		return MapError(err)
	}

	log.Info("user created", slog.String("email", user.Email))
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT email, password_hash, first_name, last_name,
		       to_char(dob, 'YYYY-MM-DD'), address
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.Email,
		&user.HashedPassword,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("email", email))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, MapError(err)
	}

	return &user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) UpdateProfile(
	ctx context.Context,
	email string,
	update domain.ProfileUpdate,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, dob = $3::date, address = $4
		WHERE email = $5
		RETURNING email, password_hash, first_name, last_name,
		          to_char(dob, 'YYYY-MM-DD'), address
	`

	var user domain.User
	err := s.db.QueryRowContext(
		ctx,
		query,
		update.FirstName,
		update.LastName,
		update.DateOfBirth,
		update.Address,
		email,
	).Scan(
		&user.Email,
		&user.HashedPassword,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&user.Address,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found during profile update",
				slog.String("email", email))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to update profile",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, MapError(err)
	}

	log.Info("profile updated", slog.String("email", email))
	return &user, nil
}
