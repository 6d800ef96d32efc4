package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// The only application claim a token carries is the account email; there is
// no server-side session state.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the given identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken if the expiry claim is in the past
	// and ErrInvalidToken for any other verification failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// Lifetime reports the validity window applied to generated tokens.
	Lifetime() time.Duration
}

// Claims holds the decoded content of a verified token.
type Claims struct {
	// Email is the identity the token was issued for.
	Email string

	// IssuedAt and ExpiresAt are the standard time claims.
	IssuedAt  time.Time
	ExpiresAt time.Time
}
