package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
)

const (
	msgSinPermiso = "No tiene permisos para realizar esta acción."

	// LocalWarning aviso que el handler de respaldo agrega a su respuesta.
	LocalWarning = "warning"

	// warningHeader valor del header Warning (RFC 7234, código 199) cuando se deniega una acción.
	warningHeader = `199 ventas-api "permiso denegado"`
)

// RequirePermission aplica la política de acceso a la acción antes del handler.
//
//   - Sin sesión: 401 UNAUTHENTICATED con Location hacia el login.
//   - Rol sin permiso: se ejecuta fallback (normalmente el listado) con el aviso en
//     c.Locals(LocalWarning) y el header Warning; la respuesta es 200.
//   - Sin fallback: 403 FORBIDDEN.
func RequirePermission(action access.Action, fallback fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch access.Authorize(GetPrincipal(c), action) {
		case access.Allow:
			return c.Next()
		case access.DenyUnauthenticated:
			return unauthenticated(c)
		}
		if fallback == nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msgSinPermiso})
		}
		c.Locals(LocalWarning, msgSinPermiso)
		c.Set("Warning", warningHeader)
		c.Status(fiber.StatusOK)
		return fallback(c)
	}
}

// GetWarning aviso pendiente para el usuario, "" si no hay.
func GetWarning(c *fiber.Ctx) string {
	return localString(c, LocalWarning)
}
