package api

import (
	"errors"
	"net/http"

	"github.com/rfenton/volcano-api/internal/domain"
	"github.com/rfenton/volcano-api/internal/service/auth"
	"github.com/rfenton/volcano-api/internal/store"
)

// Client-facing messages shared across handlers.
const (
	// msgAuthHeaderNotFound is returned by endpoints requiring
	// authentication when no credential was presented.
	msgAuthHeaderNotFound = "Authorization header ('Bearer token') not found"

	// msgInternal is the generic message for unexpected failures. Internal
	// details are logged, never surfaced.
	msgInternal = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. Handlers route their store and service
// errors through here so classification lives in one place; each handler
// still picks the endpoint's client message for the resulting status.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMalformedHeader),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}
