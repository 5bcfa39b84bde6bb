package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/api"
	"github.com/guttosm/pricediff/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, the view service behind it, a cleanup
// function for graceful shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the backend client and the view service (NewViewService).
//   - Opens the rate limiter store (memory or Redis).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes (readiness pings the backend).
//
// The view service is returned so the caller can perform the initial load.
func InitializeApp() (*gin.Engine, service.ViewService, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	svc, client, err := NewViewService(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize view service: %w", err)
	}

	store, closeStore, err := limiterOpener(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Limiter:        store,
		RatePerMinute:  cfg.RateLimit.PerMinute,
	})

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		closeStore()
	}

	return router, svc, cleanup, nil
}
