// Package middleware provides the HTTP middleware chain pieces specific to
// the volcano API: the optional bearer-auth gate and request tracing.
package middleware

import (
	"errors"
	"net/http"

	"github.com/rfenton/volcano-api/internal/api/shared"
	"github.com/rfenton/volcano-api/internal/service/auth"
)

// Client-facing messages for credential failures.
const (
	msgExpiredToken    = "JWT token has expired"
	msgInvalidToken    = "Invalid JWT token"
	msgMalformedHeader = "Authorization header is malformed"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate is the optional-auth gate. Requests without an Authorization
// header pass through anonymous and untouched. Requests that present a
// credential get it verified: on success the decoded identity is attached
// to the request context, otherwise the request is rejected with 401 and a
// message distinguishing malformed from invalid from expired.
//
// Endpoints that require authentication sit behind this same gate and check
// identity presence themselves; the gate never rejects a request that did
// not attempt authentication.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				// Anonymous path.
				next.ServeHTTP(w, r)
				return
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgMalformedHeader)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgExpiredToken)
				return
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := shared.WithIdentity(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the authenticated caller's email from the request
// context. Returns false for anonymous requests.
func GetIdentity(r *http.Request) (string, bool) {
	return shared.Identity(r.Context())
}
