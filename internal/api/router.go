package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/pricediff/internal/middleware"
)

// RouterOptions carries the middleware settings that come from configuration.
type RouterOptions struct {
	AllowedOrigins []string
	Limiter        middleware.CounterStore
	RatePerMinute  int
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with routes configured.
// It receives a Handler instance with all business logic already injected.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, CORS, RateLimiter).
//   - Adds request timeout handling (10 seconds unless configured).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	if opts.Limiter == nil {
		opts.Limiter = middleware.NewMemoryStore()
	}
	if opts.RatePerMinute <= 0 {
		opts.RatePerMinute = 60
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
	)
	if len(opts.AllowedOrigins) > 0 {
		router.Use(middleware.CORS(opts.AllowedOrigins))
	}
	router.Use(
		middleware.RateLimiter(opts.Limiter, opts.RatePerMinute, time.Minute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/view", handler.GetView)
		v1.PUT("/view/filters", handler.UpdateFilters)
		v1.POST("/view/sort/:column", handler.SelectSort)
		v1.POST("/view/reload", handler.Reload)
		v1.GET("/comparison", handler.QueryComparison)
	}

	return router
}
