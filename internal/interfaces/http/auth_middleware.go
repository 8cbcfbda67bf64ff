package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// SessionCookie nombre de la cookie HttpOnly con el token de sesión.
const SessionCookie = "ventas_session"

// LoginPath destino de las redirecciones cuando no hay sesión.
const LoginPath = "/api/auth/login"

// AuthMiddleware lee el token (Bearer o cookie de sesión) y, si es válido, carga
// user_id, username y role en c.Locals. Un token ausente o inválido no corta la petición:
// el request sigue como no autenticado y decide RequirePermission / RequireRole.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenString == "" {
			tokenString = c.Cookies(SessionCookie)
		}
		if tokenString == "" {
			return c.Next()
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Next()
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// bearerToken extrae el token de "Bearer <token>"; "" si el header no tiene ese formato.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole permite el paso solo si el rol del token está entre allowedRoles.
// Sin sesión responde 401; con un rol distinto, 403.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return unauthenticated(c)
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msgSinPermiso})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	return localString(c, LocalUsername)
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// GetPrincipal arma el access.Principal del request actual.
func GetPrincipal(c *fiber.Ctx) access.Principal {
	return access.Principal{Authenticated: GetUserID(c) != "", Role: GetRole(c)}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

func unauthenticated(c *fiber.Ctx) error {
	c.Set(fiber.HeaderLocation, LoginPath)
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "inicie sesión para continuar"})
}
