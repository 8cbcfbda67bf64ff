// Package xlsx genera el reporte de ventas como hoja de cálculo (Office Open XML).
package xlsx

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

const (
	// SheetName nombre de la única hoja del libro.
	SheetName = "Ventas"

	defaultSheet = "Sheet1"
	numFmt00     = 2 // formato integrado "0.00"
	minColWidth  = 10
	maxColWidth  = 50
)

// ExcelizeReportGenerator implementa report.ReportGenerator con excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator construye el generador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// GenerateVentasReport escribe una fila de encabezados (negrita, centrada) y una fila por venta
// con las columnas de ventas.Columns. Los montos quedan numéricos con formato 0.00.
func (g *ExcelizeReportGenerator) GenerateVentasReport(_ context.Context, records []*entity.Venta) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmt00})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo montos: %w", err)
	}

	cols := ventas.Columns
	widths := make([]int, len(cols))

	for i, h := range ventas.Headers(cols) {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %s: %w", h, err)
		}
		widths[i] = utf8.RuneCountInString(h)
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for r, v := range records {
		rowNum := r + 2
		for i, c := range ventas.Row(cols, v) {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
			if err := writeCell(f, cell, c, moneyStyle); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", rowNum, err)
			}
			if n := utf8.RuneCountInString(c.String()); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for i, w := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, name, name, float64(ColumnWidth(w))); err != nil {
			return nil, fmt.Errorf("xlsx: ancho columna %s: %w", name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeCell(f *excelize.File, cell string, c ventas.Cell, moneyStyle int) error {
	switch c.Kind {
	case ventas.CellInt:
		return f.SetCellInt(SheetName, cell, c.Int)
	case ventas.CellMoney:
		if err := f.SetCellFloat(SheetName, cell, c.Money.InexactFloat64(), 2, 64); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, cell, cell, moneyStyle)
	default:
		return f.SetCellStr(SheetName, cell, c.Text)
	}
}

// ColumnWidth ancho de columna para el texto más largo: largo + 2, acotado a [10, 50].
func ColumnWidth(longest int) int {
	w := longest + 2
	if w < minColWidth {
		return minColWidth
	}
	if w > maxColWidth {
		return maxColWidth
	}
	return w
}
