package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/ventas"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	VentasUC  *ventas.UseCase
	ReportUC  *report.UseCase
	JWTSecret string
	Session   SessionConfig
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	session := AuthMiddleware(deps.JWTSecret)

	app.Get("/", session, func(c *fiber.Ctx) error {
		if GetUserID(c) != "" {
			return c.Redirect("/api/ventas", fiber.StatusFound)
		}
		return c.Redirect(LoginPath, fiber.StatusFound)
	})

	api := app.Group("/api", session)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Session, log)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Usuarios (solo admin)
	api.Post("/users", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	// Ventas: sin permiso para mutar se cae al listado con aviso.
	ventaHandler := NewVentaHandler(deps.VentasUC, log)
	vg := api.Group("/ventas")
	vg.Get("/", RequirePermission(access.ActionView, nil), ventaHandler.List)
	vg.Post("/", RequirePermission(access.ActionCreate, ventaHandler.List), ventaHandler.Create)
	vg.Get("/:id", RequirePermission(access.ActionView, nil), ventaHandler.GetByID)
	vg.Put("/:id", RequirePermission(access.ActionEdit, ventaHandler.List), ventaHandler.Update)
	vg.Delete("/:id", RequirePermission(access.ActionDelete, ventaHandler.List), ventaHandler.Delete)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC, log)
	rg := api.Group("/reportes", RequirePermission(access.ActionView, nil))
	rg.Get("/", reportHandler.Dashboard)
	rg.Get("/excel", reportHandler.Excel)
	rg.Get("/pdf", reportHandler.PDF)
}
