package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricediff/internal/domain/dto"
	"github.com/guttosm/pricediff/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that gracefully recovers from any panics,
// logs the stack trace for debugging, and returns a standardized JSON error response.
//
// Behavior:
//   - Uses defer to catch any panic that occurs during request handling.
//   - Logs the recovered panic value and stack trace at error level.
//   - Returns a 500 Internal Server Error response using dto.NewErrorResponse.
//
// Returns:
//   - gin.HandlerFunc: A middleware function for use in Gin router.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				log := logger.With("http")
				log.Error().
					Str("request_id", toString(rid)).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
