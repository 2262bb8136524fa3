// Package ctxutil carries request-scoped identifiers through contexts.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	sessionIDKey ctxKey = "session_id"
	requestIDKey ctxKey = "request_id"
	adminKey     ctxKey = "is_admin"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithSessionID stores the anonymous session ID in the context. Anonymous
// visitors are metered by this ID instead of a user ID.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromCtx extracts the session ID from the context.
// Returns an empty string if absent.
func SessionIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// QuotaSubject returns the identifier used for quota metering: the user ID
// when authenticated, otherwise the anonymous session ID. The boolean is
// false when neither is present.
func QuotaSubject(ctx context.Context) (string, bool) {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id.String(), true
	}
	if sid := SessionIDFromCtx(ctx); sid != "" {
		return sid, true
	}
	return "", false
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAdmin marks the context as belonging to an admin user.
func WithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminKey, true)
}

// IsAdminCtx reports whether the context belongs to an admin user.
func IsAdminCtx(ctx context.Context) bool {
	v, _ := ctx.Value(adminKey).(bool)
	return v
}
