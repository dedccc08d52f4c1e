package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	pkgjwt "github.com/ceylonpepper/pepperworks-api/pkg/jwt"
)

// Claves de c.Locals() cargadas por AuthMiddleware.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el token Bearer y carga user_id y role en los locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("token requerido"))
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("formato de Authorization inválido, se espera Bearer <token>"))
		}
		userID, role, err := pkgjwt.Parse(jwtSecret, parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("token inválido o expirado"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe correr después de
// AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("el token no incluye rol"))
		}
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Err("acceso denegado para el rol " + role))
	}
}

// GetUserID devuelve el user_id cargado por AuthMiddleware ("" si no hay).
func GetUserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalUserID).(string); ok {
		return v
	}
	return ""
}

// GetRole devuelve el rol cargado por AuthMiddleware ("" si no hay).
func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalRole).(string); ok {
		return v
	}
	return ""
}
