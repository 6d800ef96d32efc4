package store

import (
	"context"

	"github.com/rfenton/volcano-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile replaces the profile fields of the user identified by
	// email and returns the updated user. The update carries validated,
	// normalized values; credentials are never touched here.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, email string, update domain.ProfileUpdate) (*domain.User, error)
}
