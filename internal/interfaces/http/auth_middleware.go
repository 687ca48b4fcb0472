package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/pkg/jwt"
)

// Locals keys para los datos del token en Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalRole      = "role"
	LocalClaims    = "claims"
)

// tokenRevoker es el contrato mínimo para consultar tokens revocados (logout).
// Lo implementa *redis.TokenBlacklist; la interfaz evita acoplar el middleware
// a Redis y permite correr sin blacklist (nil = revocación deshabilitada).
type tokenRevoker interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT, verifica que no esté revocado y
// deja user_id, company_id y role en c.Locals.
func AuthMiddleware(jwtSecret string, revoker tokenRevoker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if revoker != nil {
			revoked, err := revoker.IsBlacklisted(c.Context(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AUTH_CHECK_FAILED", Message: "no se pudo verificar el token, intente más tarde"})
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token revocado"})
			}
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalCompanyID, claims.CompanyID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

// RequireRole devuelve un middleware que permite el paso solo a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "role no encontrado en el token"})
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetClaims devuelve los claims completos del token (o nil si no hay).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	v := c.Locals(LocalClaims)
	if v == nil {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}
