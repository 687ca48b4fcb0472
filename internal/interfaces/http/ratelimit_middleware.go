package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
)

// loginLimiter es el contrato mínimo del limitador de intentos de login.
// Lo implementa *redis.LoginRateLimiter.
type loginLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// LoginRateLimit limita los intentos de login por IP. Con limiter nil (Redis
// no configurado) el middleware no hace nada.
//
// Si Redis falla, la petición pasa: un Redis caído no debe tumbar el login.
func LoginRateLimit(limiter loginLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil {
			return c.Next()
		}
		allowed, err := limiter.Allow(c.Context(), c.IP())
		if err != nil {
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiados intentos de login, intente más tarde",
			})
		}
		return c.Next()
	}
}
