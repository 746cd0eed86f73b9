package middleware

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RateLimit applies a process-wide token bucket. A non-positive requestsPerMinute
// disables limiting.
func RateLimit(requestsPerMinute int, burst int) fiber.Handler {
	if requestsPerMinute <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	if burst < 1 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerMinute)/60, burst)

	return func(c *fiber.Ctx) error {
		if !limiter.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"detail": "Rate limit exceeded, try again later",
			})
		}
		return c.Next()
	}
}
