// Package utils provides general-purpose helpers shared by the backend, the
// gateway and the client: typed context keys, JSON response writing, the
// resty-based HTTP client, JWT minting and validation, and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// Context keys used across the HTTP layers.
var (
	// UserIDCtxKey holds the authenticated user id as int64.
	UserIDCtxKey = contextKey("userID")

	// TraceIDCtxKey holds the request trace id as string.
	TraceIDCtxKey = contextKey("traceID")

	// SessionCtxKey holds the gateway session as models.Session.
	SessionCtxKey = contextKey("session")
)

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetTraceIDFromContext returns the trace id stored in ctx or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}
