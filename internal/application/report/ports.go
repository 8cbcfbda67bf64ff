package report

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ReportGenerator renderiza el listado de ventas en un formato descargable.
// No debe modificar records; el orden recibido es el orden de salida.
type ReportGenerator interface {
	GenerateVentasReport(ctx context.Context, records []*entity.Venta) ([]byte, error)
}

// Document archivo listo para entregar como adjunto.
type Document struct {
	Content     []byte
	Filename    string
	ContentType string
}

const (
	ExcelFilename    = "reporte_ventas.xlsx"
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDFFilename      = "reporte_ventas.pdf"
	PDFContentType   = "application/pdf"
)
