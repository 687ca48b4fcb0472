package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker verifica la disponibilidad de una dependencia (DB, Redis).
type HealthChecker func(ctx context.Context) error

// HealthHandler expone liveness y readiness.
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler construye el handler. checks mapea nombre → verificación;
// las dependencias opcionales (Redis sin configurar) simplemente no se agregan.
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Live responde 200 siempre que el proceso esté arriba.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready verifica las dependencias; 503 si alguna falla.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			status = "degraded"
		} else {
			results[name] = "ok"
		}
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{"status": status, "checks": results})
}
