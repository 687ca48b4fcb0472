package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/domain"
)

// actorFrom arma el Actor de la petición desde los Locals del AuthMiddleware.
// En listados, un super_admin puede pivotar de empresa con ?company_id=.
func actorFrom(c *fiber.Ctx) dto.Actor {
	a := dto.Actor{
		UserID:    GetUserID(c),
		CompanyID: GetCompanyID(c),
		Role:      GetRole(c),
	}
	if a.IsSuperAdmin() {
		if cid := c.Query("company_id"); cid != "" {
			a.CompanyID = cid
		}
	}
	return a
}

// parseDate interpreta una fecha YYYY-MM-DD de query string.
// Cadena vacía devuelve zero time sin error.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

// endOfDay lleva la fecha al último instante del día (para rangos inclusivos).
func endOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.Add(24*time.Hour - time.Nanosecond)
}

// mapDomainError traduce un error de dominio a la respuesta HTTP con código.
// Los handlers lo usan para el camino de error común; los casos con mensaje
// propio (auth, módulos) responden a mano.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado en esta empresa"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrCampaignInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la campaña no está activa en esta fecha"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "operación en conflicto con el estado actual"})
	case errors.Is(err, domain.ErrCompanyInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "empresa suspendida o inactiva"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
