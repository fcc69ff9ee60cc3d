package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys; using a custom type
// prevents collisions with other packages.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped *slog.Logger.
	loggerCtxKey = contextKey("logger")
	// profileIDKey stores the authenticated profile's ID.
	profileIDKey = contextKey("profileID")
)

// GetProfileIDFromContext retrieves the authenticated profile ID from the
// Gin context. It returns the id and a boolean indicating if it was found.
func GetProfileIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(profileIDKey)); exists {
		if id, ok := v.(string); ok {
			return id, true
		}
		return "", false
	}
	// Check the standard request context as well.
	if v := c.Request.Context().Value(profileIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id, true
		}
	}
	return "", false
}

// ContextWithProfileID returns a child context carrying the profile ID.
// AuthMiddleware uses it to bind the authenticated identity to the request.
func ContextWithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey, profileID)
}
