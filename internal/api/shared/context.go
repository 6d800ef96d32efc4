package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the key type for context values set by this package.
type ContextKey string

// Context keys for various values
const (
	// IdentityContextKey is the context key for the authenticated caller's
	// identity (email). Absent for anonymous requests.
	IdentityContextKey ContextKey = "identity"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16 // 32 hex characters
)

// WithIdentity returns a context carrying the authenticated caller's email.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, IdentityContextKey, email)
}

// Identity retrieves the caller identity from the context. The second
// return value is false for anonymous requests.
func Identity(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(IdentityContextKey).(string)
	return email, ok && email != ""
}

// SetTraceID adds a fresh trace ID to the context for correlating logs.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID creates a random hex trace ID for request tracking.
func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// Nothing sensible to do without entropy; an empty trace ID only
		// degrades log correlation.
		return ""
	}
	return hex.EncodeToString(b)
}
