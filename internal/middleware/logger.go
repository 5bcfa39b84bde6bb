package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricediff/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Behavior:
//   - Captures start time before request handling.
//   - After request is processed, calculates latency.
//   - Logs method, path, status, latency in ms, and request_id (if injected by RequestID()).
//   - 4xx responses log at warn level and 5xx at error level.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/v1/view status=200 latency_ms=15
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start timer
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		// Process request
		c.Next()

		// Compute latency and get status
		latency := time.Since(start)
		status := c.Writer.Status()

		// Get request_id if available
		rid, _ := c.Get(RequestIDKey)

		log := logger.With("http")
		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}
		event.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
