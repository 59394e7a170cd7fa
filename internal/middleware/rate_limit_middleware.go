package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	apperrors "github.com/pamatshop4/blacklight-backend/internal/errors"
)

// Limiter decides whether a key may make another request right now.
// pkg/redis.FixedWindowLimiter implements it.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitMiddleware applies a per-client-IP limit. A nil limiter disables
// limiting; a limiter error fails open so Redis trouble never blocks
// submissions.
func RateLimitMiddleware(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		log := GetLoggerFromContext(c)

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", map[string]interface{}{
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if !allowed {
			log.Warn("Rate limit exceeded", map[string]interface{}{
				"ip": c.ClientIP(),
			})
			apperrors.TooManyRequests(c, "too many submissions, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
