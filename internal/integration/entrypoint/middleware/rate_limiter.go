// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
	"github.com/finance-tracker/expense-tracker/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxRequests is the default number of allowed requests per window.
	defaultMaxRequests = 60
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
	// redisKeyPrefix namespaces the counters in a shared Redis.
	redisKeyPrefix = "ratelimit:"
)

// counterStore counts hits per key within a fixed window.
type counterStore interface {
	// Hit records one request and returns the count in the current window.
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	hits      int64
	resetTime time.Time
}

// memoryStore keeps fixed-window counters in process memory.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	now     func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

func (s *memoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{hits: 1, resetTime: now.Add(window)}
		return 1, nil
	}
	entry.hits++
	return entry.hits, nil
}

// cleanup removes expired entries.
func (s *memoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// redisStore keeps counters in Redis with INCR and a window-long expiry set on the first hit.
type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	slot := time.Now().UnixNano() / int64(window)
	redisKey := redisKeyPrefix + key + ":" + strconv.FormatInt(slot, 10)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// RateLimiter provides IP-based rate limiting backed by Redis, or by memory when Redis is absent or failing.
type RateLimiter struct {
	primary        counterStore
	fallback       *memoryStore
	maxRequests    int64
	windowDuration time.Duration
}

// NewRateLimiter creates a new in-memory rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(nil, defaultMaxRequests, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings. A nil client keeps counters in memory.
func NewRateLimiterWithConfig(client *redis.Client, maxRequests int, windowDuration time.Duration) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}

	rl := &RateLimiter{
		fallback:       newMemoryStore(),
		maxRequests:    int64(maxRequests),
		windowDuration: windowDuration,
	}
	if client != nil {
		rl.primary = &redisStore{client: client}
	}
	return rl
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		count := rl.hit(c.Request.Context(), clientIP)
		remaining := rl.maxRequests - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(rl.maxRequests, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > rl.maxRequests {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowDuration.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

// hit counts a request, falling back to memory when Redis errors.
func (rl *RateLimiter) hit(ctx context.Context, key string) int64 {
	if rl.primary != nil {
		count, err := rl.primary.Hit(ctx, key, rl.windowDuration)
		if err == nil {
			return count
		}
		slog.Warn("Rate limiter store unavailable, using memory", "error", err)
	}
	count, _ := rl.fallback.Hit(ctx, key, rl.windowDuration)
	return count
}

// Reset clears the in-memory counters (useful for testing).
func (rl *RateLimiter) Reset() {
	rl.fallback.mu.Lock()
	defer rl.fallback.mu.Unlock()
	rl.fallback.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired in-memory entries (can be called periodically to free memory).
func (rl *RateLimiter) Cleanup() {
	rl.fallback.cleanup()
}
