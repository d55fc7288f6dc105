// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/salon-manager/backend/internal/domain/error"
	"github.com/salon-manager/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based fixed-window rate limiting. Counters live in
// Redis when a client is provided so limits hold across instances; otherwise
// an in-memory map is used.
type RateLimiter struct {
	redisClient    *redis.Client
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings. The Redis
// client may be nil.
func NewRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(redisClient, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(redisClient *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient:    redisClient,
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.redisClient != nil {
		return rl.allowRedis(ctx, key)
	}
	return rl.allowInMemory(key)
}

// allowRedis runs the fixed window against Redis. Redis failures fall back
// to the in-memory counter rather than blocking logins.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) bool {
	redisKey := rateLimitKeyPrefix + key

	attempts, err := rl.redisClient.Incr(ctx, redisKey).Result()
	if err != nil {
		return rl.allowInMemory(key)
	}
	if attempts == 1 {
		rl.redisClient.Expire(ctx, redisKey, rl.windowDuration)
	}

	return attempts <= int64(rl.maxAttempts)
}

func (rl *RateLimiter) allowInMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	entry, exists := rl.entries[key]
	if !exists {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	if now.After(entry.resetTime) {
		entry.attempts = 1
		entry.resetTime = now.Add(rl.windowDuration)
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}

	return false
}

// Reset clears the rate limiter state (useful for testing).
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)

	if rl.redisClient != nil {
		ctx := context.Background()
		iter := rl.redisClient.Scan(ctx, 0, rateLimitKeyPrefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			rl.redisClient.Del(ctx, iter.Val())
		}
	}
}
