// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// The field-specific errors below wrap it, so errors.Is(err,
	// ErrValidation) matches any of them.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrEmptyHashedPassword is returned when a stored user has no password hash.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)
