package middleware

import (
	"go-gin-cinema-booking/internal/cache"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HoldRateLimit 以使用者 id 為 key 限制保留請求；Redis 出錯時放行
func HoldRateLimit(limiter cache.HoldRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if actor, ok := CurrentActor(c); ok {
			key = "user:" + strconv.Itoa(actor.UserID)
		}

		decision, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			logger.WithComponent("cache").Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apperrors.ErrRateLimited.Error()})
			return
		}
		c.Next()
	}
}
