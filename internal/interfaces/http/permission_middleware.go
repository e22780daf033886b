package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
)

// RequirePermission corta con 403 si el usuario autenticado no tiene el
// permiso. El rol admin pasa siempre; el gate se aplica en servidor, el
// cliente solo decide qué mostrar.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !policy.HasPermission(GetRole(c), GetPermissions(c), permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso insuficiente"})
		}
		return c.Next()
	}
}
