package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMalformedHeader indicates an Authorization header was presented
	// but is not in "Bearer <token>" form.
	ErrMalformedHeader = errors.New("authorization header is malformed")

	// ErrMissingToken indicates no credential was presented. Callers that
	// tolerate anonymous access treat this as "proceed without identity";
	// callers that require authentication treat it as a failure.
	ErrMissingToken = errors.New("authentication token is missing")
)
