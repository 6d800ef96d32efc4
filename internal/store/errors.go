package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found
	// errors (ErrUserNotFound, ErrVolcanoNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrVolcanoNotFound indicates that the requested volcano does not exist.
	ErrVolcanoNotFound = fmt.Errorf("%w: volcano", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already
	// exists. Returned when registering with an email that is taken.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)
