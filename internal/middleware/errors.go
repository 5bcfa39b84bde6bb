package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pricediff/internal/domain/dto"
	"github.com/guttosm/pricediff/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error as a 500 JSON
// body, unless a handler already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
