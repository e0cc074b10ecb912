package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	redisrepo "github.com/wingmateapp/wingmate-backend/internal/repository/redis"
)

// RateLimitMiddleware applies a fixed-window per-user limit to the match
// request endpoint. Redis being unreachable fails open: matching remains
// correct without the limiter, so availability wins.
type RateLimitMiddleware struct {
	rates  *redisrepo.RateRepository
	limit  int
	window time.Duration
	logger *zap.Logger
}

func NewRateLimitMiddleware(rates *redisrepo.RateRepository, perMinute int, logger *zap.Logger) *RateLimitMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimitMiddleware{
		rates:  rates,
		limit:  perMinute,
		window: time.Minute,
		logger: logger,
	}
}

func (m *RateLimitMiddleware) LimitMatchRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rates == nil || m.limit <= 0 {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}

		key := "rate:match:" + userID
		count, ttl, err := m.rates.IncrementWindow(c.Request.Context(), key, m.window)
		if err != nil {
			m.logger.Warn("rate limiter unavailable, failing open", zap.Error(err))
			c.Next()
			return
		}

		if count > int64(m.limit) {
			retryAfter := int(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many match requests"})
			return
		}
		c.Next()
	}
}
