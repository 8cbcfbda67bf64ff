// Package report arma el reporte de ventas (totales y ranking) y sus exportaciones xlsx y PDF.
package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	appventas "github.com/jhoicas/Ventas-api/internal/application/ventas"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// UseCase casos de uso de reportes. Todas las operaciones requieren permiso de lectura.
type UseCase struct {
	repo  repository.VentaRepository
	excel ReportGenerator
	pdf   ReportGenerator
	log   *logger.Logger
}

// NewUseCase construye el caso de uso inyectando repositorio y generadores.
func NewUseCase(repo repository.VentaRepository, excel, pdf ReportGenerator, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, excel: excel, pdf: pdf, log: log.Component("report")}
}

// Dashboard devuelve las ventas filtradas (fecha DESC) con sus totales y el ranking por consultor.
func (uc *UseCase) Dashboard(ctx context.Context, p access.Principal, q dto.VentaListQuery) (*dto.DashboardResponse, error) {
	c := ventas.ParseCriteria(q.Inicio, q.Fin, q.Consultor, q.Anio)
	list, err := uc.load(ctx, p, c)
	if err != nil {
		return nil, err
	}

	totals := ventas.Totals(list, c)
	ranking := ventas.Ranking(list, c)
	rows := make([]dto.RankingRowResponse, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, dto.RankingRowResponse{
			Consultor:   r.Consultor,
			Ventas:      r.Count,
			SumMRCNuevo: r.SumMRCNuevo,
			SumFCVNuevo: r.SumFCVNuevo,
		})
	}

	return &dto.DashboardResponse{
		Filtros: filtersOf(c),
		Ventas:  appventas.ToResponses(list),
		Totales: dto.TotalsResponse{
			FCVNuevo:    totals.FCVNuevo,
			MRCNuevo:    totals.MRCNuevo,
			PagoUnico:   totals.PagoUnico,
			FCVRenovado: totals.FCVRenovado,
			MRCFinal:    totals.MRCFinal,
			Variacion:   totals.Variacion,
		},
		Ranking: rows,
	}, nil
}

// ExportExcel genera el xlsx con las ventas filtradas.
func (uc *UseCase) ExportExcel(ctx context.Context, p access.Principal, q dto.VentaListQuery) (*Document, error) {
	return uc.export(ctx, p, q, uc.excel, ExcelFilename, ExcelContentType)
}

// ExportPDF genera el PDF con las ventas filtradas.
func (uc *UseCase) ExportPDF(ctx context.Context, p access.Principal, q dto.VentaListQuery) (*Document, error) {
	return uc.export(ctx, p, q, uc.pdf, PDFFilename, PDFContentType)
}

func (uc *UseCase) export(ctx context.Context, p access.Principal, q dto.VentaListQuery, gen ReportGenerator, filename, contentType string) (*Document, error) {
	list, err := uc.load(ctx, p, ventas.ParseCriteria(q.Inicio, q.Fin, q.Consultor, q.Anio))
	if err != nil {
		return nil, err
	}
	content, err := gen.GenerateVentasReport(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("report: generar %s: %w", filename, err)
	}
	uc.log.Info().Str("archivo", filename).Int("ventas", len(list)).Int("bytes", len(content)).Msg("reporte exportado")
	return &Document{Content: content, Filename: filename, ContentType: contentType}, nil
}

// load verifica permiso de lectura y trae el conjunto filtrado en orden de reporte.
func (uc *UseCase) load(ctx context.Context, p access.Principal, c ventas.Criteria) ([]*entity.Venta, error) {
	if err := access.Authorize(p, access.ActionView).Err(); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, c, repository.OrderReport)
}

func filtersOf(c ventas.Criteria) dto.ReportFilters {
	f := dto.ReportFilters{Consultor: c.Consultant, Anio: c.Year}
	if c.DateFrom != nil {
		f.Inicio = c.DateFrom.Format("2006-01-02")
	}
	if c.DateTo != nil {
		f.Fin = c.DateTo.Format("2006-01-02")
	}
	return f
}
