// middleware/ratelimit.go
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"teamchat/metrics"
)

// RateLimit limits each client IP to max requests per window. name labels
// the limiter in metrics.
func RateLimit(name string, max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		Next:       skipRateLimit,
		LimitReached: func(c *fiber.Ctx) error {
			metrics.RateLimitHits.WithLabelValues(name).Inc()
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Rate limit exceeded. Please try again later.",
			})
		},
	})
}

// Health and metrics scrapes are never limited.
func skipRateLimit(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/health" || strings.HasPrefix(path, "/metrics")
}
