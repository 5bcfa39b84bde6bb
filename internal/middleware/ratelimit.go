package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/guttosm/pricediff/internal/domain/dto"
	"github.com/guttosm/pricediff/internal/logger"
)

// CounterStore counts requests per key inside a fixed window.
//
// Incr returns the number of hits recorded for key in the current window,
// including this one. The window starts with the first hit.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// client represents a rate-limited client with request count and window start.
type client struct {
	start time.Time
	count int64
}

// MemoryStore keeps counters in process memory. It is only correct for a
// single instance; use RedisStore when running several replicas.
type MemoryStore struct {
	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
}

// NewMemoryStore returns an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{clients: make(map[string]*client), now: time.Now}
}

func (s *MemoryStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	cl, ok := s.clients[key]
	if !ok || now.Sub(cl.start) > window {
		cl = &client{start: now}
		s.clients[key] = cl
		s.sweep(now, window)
	}
	cl.count++
	return cl.count, nil
}

// sweep drops expired counters. Called with mu held.
func (s *MemoryStore) sweep(now time.Time, window time.Duration) {
	for k, cl := range s.clients {
		if now.Sub(cl.start) > window {
			delete(s.clients, k)
		}
	}
}

// RedisStore shares counters between instances through Redis INCR/EXPIRE.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 2 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: rdb, prefix: "pricediff:ratelimit:"}, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := s.prefix + key
	n, err := s.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, k, window).Err(); err != nil {
			return n, fmt.Errorf("expire %s: %w", k, err)
		}
	}
	return n, nil
}

// Close releases the underlying Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// RateLimiter limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to `limit` requests per `window`.
//   - Identifies clients by their IP address.
//   - If limit exceeded, returns HTTP 429 Too Many Requests.
//   - If the store fails the request is let through and the failure logged.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(middleware.NewMemoryStore(), 60, time.Minute))
func RateLimiter(store CounterStore, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := store.Incr(c.Request.Context(), c.ClientIP(), window)
		if err != nil {
			logger.L().Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("rate limiter store failed")
			c.Next()
			return
		}

		if n > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
