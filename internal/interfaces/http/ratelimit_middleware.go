package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/safebite/safebite-api/internal/application/dto"
)

// LoginLimiter counts attempts per key within a fixed window.
type LoginLimiter interface {
	AllowLogin(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// LoginRateLimit throttles credential endpoints per client IP. Limiter errors
// do not block the request; the login still has to pass password checks.
func LoginRateLimit(limiter LoginLimiter, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := limiter.AllowLogin(c.Context(), "login:"+c.IP(), limit, window)
		if err == nil && !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "too many attempts, try again later",
			})
		}
		return c.Next()
	}
}
