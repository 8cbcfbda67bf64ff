package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/ventas"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// VentaHandler CRUD de registros de venta.
type VentaHandler struct {
	uc  *ventas.UseCase
	log *logger.Logger
}

// NewVentaHandler construye el handler de ventas.
func NewVentaHandler(uc *ventas.UseCase, log *logger.Logger) *VentaHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &VentaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar ventas
// @Description  Más recientes primero. Los filtros con formato inválido se ignoran.
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        inicio     query  string  false  "fecha desde (AAAA-MM-DD)"
// @Param        fin        query  string  false  "fecha hasta (AAAA-MM-DD)"
// @Param        consultor  query  string  false  "parte del nombre del consultor"
// @Param        anio       query  string  false  "año"
// @Param        vista      query  string  false  "completa | compacta"
// @Success      200  {object}  dto.VentaListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	q := listQuery(c)
	out, err := h.uc.List(c.Context(), GetPrincipal(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out.Warning = GetWarning(c)
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, ok := ventaID(c)
	if !ok {
		return notFound(c)
	}
	out, err := h.uc.GetByID(c.Context(), GetPrincipal(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar venta
// @Description  MRC Nuevo, MRC Final y Variación se calculan en el servidor.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.VentaRequest  true  "datos de la venta"
// @Success      201   {object}  dto.VentaResponse
// @Success      200   {object}  dto.VentaListResponse  "sin permiso: listado con aviso"
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int               true  "ID de la venta"
// @Param        body  body  dto.VentaRequest  true  "datos de la venta"
// @Success      200   {object}  dto.VentaResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, ok := ventaID(c)
	if !ok {
		return notFound(c)
	}
	var in dto.VentaRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.Context(), GetPrincipal(c), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, ok := ventaID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.uc.Delete(c.Context(), GetPrincipal(c), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"message": "Venta eliminada."})
}

func listQuery(c *fiber.Ctx) dto.VentaListQuery {
	return dto.VentaListQuery{
		Inicio:    c.Query("inicio"),
		Fin:       c.Query("fin"),
		Consultor: c.Query("consultor"),
		Anio:      c.Query("anio"),
		Vista:     c.Query("vista"),
	}
}

// ventaID id de la ruta; un id no numérico no puede existir.
func ventaID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el registro no existe"})
}
