package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// SessionConfig parámetros de la cookie de sesión.
type SessionConfig struct {
	ExpMinutes int
	Secure     bool
}

// AuthHandler maneja login, logout y alta de usuarios.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	session SessionConfig
	log     *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, session SessionConfig, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, session: session, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el token y además lo deja en la cookie HttpOnly ventas_session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Usuario o contraseña incorrectos."})
		}
		return writeError(c, h.log, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(h.session.ExpMinutes) * time.Minute),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la cookie de sesión. El token Bearer sigue válido hasta que expire.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(SessionCookie)
	return c.JSON(fiber.Map{"message": "Sesión cerrada."})
}

// CreateUser godoc
// @Summary      Crear usuario
// @Description  Solo administradores.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "username, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateUser(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
