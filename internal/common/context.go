package common

import (
	"context"

	"github.com/google/uuid"
)

// AuthContext is the resolved identity of the caller. The identity subsystem
// validates credentials upstream; the pipeline only consumes the result.
type AuthContext struct {
	UserID uuid.UUID
	Roles  []string
}

// Valid reports whether the context carries a resolved user.
func (a AuthContext) Valid() bool {
	return a.UserID != uuid.Nil
}

// HasRole reports whether the caller holds the named role.
func (a AuthContext) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyAuth      contextKey = "auth"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithAuthContext attaches the resolved caller identity to the context.
func WithAuthContext(ctx context.Context, auth AuthContext) context.Context {
	return context.WithValue(ctx, ContextKeyAuth, auth)
}

// AuthFromContext extracts the caller identity, if any.
func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	auth, ok := ctx.Value(ContextKeyAuth).(AuthContext)
	return auth, ok
}
