package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ariebrainware/geresapi/config"
	"github.com/ariebrainware/geresapi/util"
)

const (
	defaultRateLimit  = 30
	defaultRateWindow = time.Minute
	rateLimitTimeout  = 500 * time.Millisecond

	msgTooManyRequests = "Demasiadas solicitudes. Intente nuevamente más tarde."
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func rateLimitKey(endpoint, clientIP string) string {
	return fmt.Sprintf("ratelimit:%s:%s", endpoint, clientIP)
}

// RateLimiter is a fixed-window limiter keyed by route and client IP.
// Requests pass through when Redis is not configured or fails.
func RateLimiter(cfg RateLimitConfig, logger *zap.Logger) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = defaultRateLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = defaultRateWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		endpoint := c.Request.URL.Path

		allowed, err := checkRateLimit(c.Request.Context(), rateLimitKey(endpoint, clientIP), cfg.Limit, cfg.Window)
		if err != nil {
			logger.Warn("rate limit check failed",
				zap.String("client_ip", clientIP),
				zap.String("path", util.SanitizeLogValue(endpoint)),
				zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("path", util.SanitizeLogValue(endpoint)),
				zap.Int("limit", cfg.Limit),
				zap.Duration("window", cfg.Window))
			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: msgTooManyRequests,
			})
			_ = c.Error(errRateLimited)
			return
		}

		c.Next()
	}
}

// checkRateLimit increments the window counter and reports whether the
// request is still within limit.
func checkRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, rateLimitTimeout)
	defer cancel()

	pipe := rdb.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	// NX keeps the window fixed from the first hit.
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incrCmd.Val() <= int64(limit), nil
}

// ResetRateLimit clears the counter of one client on one path.
func ResetRateLimit(ctx context.Context, clientIP, endpoint string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return fmt.Errorf("redis not available")
	}
	return rdb.Del(ctx, rateLimitKey(endpoint, clientIP)).Err()
}
