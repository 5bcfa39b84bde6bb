package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// RequestIDHeader carries the id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID is a Gin middleware that injects a unique identifier
// for each incoming HTTP request.
//
// Behavior:
//   - Reuses an incoming X-Request-ID when present, otherwise generates a UUID (v4).
//   - Stores it in the Gin context under the key "request_id".
//   - Adds it to the response headers as "X-Request-ID".
//   - Ensures traceability of requests across logs and clients.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
//
// Example log usage:
//
//	rid, _ := c.Get(middleware.RequestIDKey)
//	logger.L().Info().Str("request_id", rid.(string)).Msg("view reloaded")
//
// Returns:
//   - gin.HandlerFunc: the middleware function.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		// Store in context for downstream usage
		c.Set(RequestIDKey, id)

		// Expose in response headers for clients
		c.Writer.Header().Set(RequestIDHeader, id)

		// Continue with the next handlers
		c.Next()
	}
}
