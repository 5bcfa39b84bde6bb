package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the comparison backend being reachable).
type HealthHandler struct {
	ping func(ctx context.Context) error
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - ping: checks whether the comparison backend answers. May be nil.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the backend answers, 503 otherwise.
func (h *HealthHandler) Register(r *gin.Engine) {
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// @Summary      Readiness probe
	// @Description  Returns ready if the comparison backend is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.ping != nil {
			if err := h.ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
