// Package pdf genera el reporte de ventas en PDF (A4 apaisado) con Maroto v2.
//
// Layout, en puntos tipográficos desde el borde superior:
//
//	┌──────────────────────────────────────────────────────────────────────┐
//	│  30  Reporte de Ventas (12pt negrita)                     avance 20  │
//	│      Fecha | Consultor | Cliente | Tipo | Plazo | montos… avance 14  │
//	│      una fila por venta (8pt)                             avance 12  │
//	│      … salto de página cuando el cursor baja de 40                    │
//	└──────────────────────────────────────────────────────────────────────┘
//
// Las páginas siguientes empiezan 40pt bajo el borde y solo llevan filas de datos.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

// ── Geometría (puntos) ────────────────────────────────────────────────────────

const (
	pageHeight = 595.2756 // A4 apaisado

	firstTop    = 30 // cursor inicial de la primera página
	nextTop     = 40 // cursor inicial de las páginas siguientes
	titleAdv    = 20
	headerAdv   = 14
	rowAdv      = 12
	bottomLimit = 40 // si el cursor queda por debajo, salto de página

	lastColWidth = 60
	ptToMM       = 25.4 / 72
)

// columnX posición x de cada columna de ventas.PDFColumns.
var columnX = []int{30, 100, 220, 380, 430, 480, 540, 600, 660, 740, 820}

// ColumnWidths anchos de columna derivados de columnX; la última mide lastColWidth.
func ColumnWidths() []int {
	w := make([]int, len(columnX))
	for i := range columnX {
		if i == len(columnX)-1 {
			w[i] = lastColWidth
			continue
		}
		w[i] = columnX[i+1] - columnX[i]
	}
	return w
}

// PlanPages reparte n filas en páginas siguiendo el cursor: la primera página descuenta título
// y encabezado; tras cada fila, si el cursor queda bajo bottomLimit empieza otra página.
// Devuelve cuántas filas lleva cada página; con n = 0 hay una sola página vacía.
func PlanPages(n int) []int {
	pages := []int{0}
	y := pageHeight - firstTop - titleAdv - headerAdv
	for i := 0; i < n; i++ {
		pages[len(pages)-1]++
		y -= rowAdv
		if y < bottomLimit && i < n-1 {
			pages = append(pages, 0)
			y = pageHeight - nextTop
		}
	}
	return pages
}

// ── Paleta de colores ─────────────────────────────────────────────────────────

var colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateVentasReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateVentasReport(_ context.Context, records []*entity.Venta) ([]byte, error) {
	// Los anchos son unidades de grilla: maroto los escala al ancho útil (≈0,92 pt por unidad).
	widths := ColumnWidths()
	grid := 0
	for _, w := range widths {
		grid += w
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(grid).
		WithLeftMargin(mm(firstTop)).WithRightMargin(10).
		WithTopMargin(mm(firstTop)).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	next := 0
	for i, count := range PlanPages(len(records)) {
		var rows []core.Row
		if i == 0 {
			rows = append(rows, titleRow(), headerRow(widths))
		} else {
			rows = append(rows, row.New(mm(nextTop-firstTop)))
		}
		for _, v := range records[next : next+count] {
			rows = append(rows, dataRow(widths, v))
		}
		next += count
		m.AddPages(page.New().Add(rows...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow() core.Row {
	return text.NewRow(mm(titleAdv), "Reporte de Ventas", props.Text{
		Style: fontstyle.Bold, Size: 12, Color: colorPrimary,
	})
}

func headerRow(widths []int) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i, h := range ventas.Headers(ventas.PDFColumns) {
		cols = append(cols, text.NewCol(widths[i], h, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}))
	}
	return row.New(mm(headerAdv)).Add(cols...)
}

func dataRow(widths []int, v *entity.Venta) core.Row {
	cells := ventas.Row(ventas.PDFColumns, v)
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(widths[i]).Add(text.New(c.String(), props.Text{Size: 8, Top: 0.5})))
	}
	return row.New(mm(rowAdv)).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// mm convierte puntos tipográficos a milímetros (unidad de Maroto).
func mm(pt float64) float64 { return pt * ptToMM }
