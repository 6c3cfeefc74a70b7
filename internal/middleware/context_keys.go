package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of keys this package stores in gin and request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext retrieves the request id assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(requestIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return GetRequestIDFromCtx(c.Request.Context())
}

// GetRequestIDFromCtx retrieves the request id from a plain context.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
