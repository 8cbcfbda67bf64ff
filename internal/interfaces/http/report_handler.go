package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ReportHandler dashboard de totales y descargas xlsx / PDF.
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReportHandler{uc: uc, log: log}
}

// Dashboard godoc
// @Summary      Reporte de ventas
// @Description  Ventas filtradas, totales de montos y ranking de consultores.
// @Tags         reportes
// @Produce      json
// @Security     BearerAuth
// @Param        inicio     query  string  false  "fecha desde (AAAA-MM-DD)"
// @Param        fin        query  string  false  "fecha hasta (AAAA-MM-DD)"
// @Param        consultor  query  string  false  "parte del nombre del consultor"
// @Param        anio       query  string  false  "año"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetPrincipal(c), listQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Excel godoc
// @Summary      Exportar a Excel
// @Tags         reportes
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        inicio     query  string  false  "fecha desde (AAAA-MM-DD)"
// @Param        fin        query  string  false  "fecha hasta (AAAA-MM-DD)"
// @Param        consultor  query  string  false  "parte del nombre del consultor"
// @Param        anio       query  string  false  "año"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/excel [get]
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	doc, err := h.uc.ExportExcel(c.Context(), GetPrincipal(c), listQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendDocument(c, doc)
}

// PDF godoc
// @Summary      Exportar a PDF
// @Tags         reportes
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        inicio     query  string  false  "fecha desde (AAAA-MM-DD)"
// @Param        fin        query  string  false  "fecha hasta (AAAA-MM-DD)"
// @Param        consultor  query  string  false  "parte del nombre del consultor"
// @Param        anio       query  string  false  "año"
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.ExportPDF(c.Context(), GetPrincipal(c), listQuery(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return sendDocument(c, doc)
}

func sendDocument(c *fiber.Ctx, doc *report.Document) error {
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Send(doc.Content)
}
