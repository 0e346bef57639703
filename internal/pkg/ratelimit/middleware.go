package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
)

// KeyFunc picks the bucket a request is counted against
type KeyFunc func(c *gin.Context) string

// ByIP keys requests by client address
func ByIP(c *gin.Context) string {
	return c.ClientIP()
}

// Middleware creates a rate limiting middleware keyed by client IP
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return CustomKeyMiddleware(limiter, ByIP)
}

// CustomKeyMiddleware creates a rate limiting middleware with custom key function
func CustomKeyMiddleware(limiter *RateLimiter, keyFunc KeyFunc) gin.HandlerFunc {
	limit := strconv.Itoa(limiter.Limit())

	return func(c *gin.Context) {
		key := keyFunc(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed := limiter.Allow(key)
		resetTime := limiter.GetResetTime(key)

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.GetRemaining(key)))
		c.Header("X-RateLimit-Reset", resetTime.Format(time.RFC3339))

		if allowed {
			c.Next()
			return
		}

		retryAfter := int(math.Ceil(time.Until(resetTime).Seconds()))
		if retryAfter < 1 {
			retryAfter = int(limiter.Window().Seconds())
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))

		logger.Ctx(c.Request.Context()).Warn().
			Str("key", key).
			Str("path", c.FullPath()).
			Msg("Rate limit exceeded")

		response.ErrorWithData(c, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.", gin.H{
			"retry_after": strconv.Itoa(retryAfter) + "s",
			"reset_time":  resetTime.Format(time.RFC3339),
			"limit":       limiter.Limit(),
			"remaining":   0,
		}, "RATE_LIMITED")
		c.Abort()
	}
}
