package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"teamchat/metrics"
)

// Metrics records request counts and latency per matched route.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Method(), route, strconv.Itoa(responseStatus(c, err)),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Method(), route,
		).Observe(time.Since(start).Seconds())
		return err
	}
}
