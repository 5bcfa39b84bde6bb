package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/logger"
	"github.com/guttosm/pricediff/internal/middleware"
)

// InitLimiterStore picks the counter store backing the rate limiter.
//
// Behavior:
//   - Without REDIS_ADDR an in-memory store is returned (single instance only).
//   - Otherwise connects to Redis and verifies the connection with PING.
//
// Returns:
//   - middleware.CounterStore: the store to hand to the router.
//   - func(): releases the store's resources; never nil.
//   - error: if Redis is configured but unreachable.
func InitLimiterStore(cfg config.Config) (middleware.CounterStore, func(), error) {
	if cfg.RateLimit.RedisAddr == "" {
		logger.L().Info().Msg("rate limiter using in-memory store")
		return middleware.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := middleware.NewRedisStore(ctx, cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize rate limiter store: %w", err)
	}

	logger.L().Info().Str("addr", cfg.RateLimit.RedisAddr).Msg("rate limiter using redis store")
	return store, func() { _ = store.Close() }, nil
}

// limiterOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var limiterOpener = InitLimiterStore
