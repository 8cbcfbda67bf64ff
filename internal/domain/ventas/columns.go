package ventas

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// CellKind tipo lógico de una celda exportada.
type CellKind int

const (
	CellText CellKind = iota
	CellInt
	CellMoney
)

// Cell valor de una celda ya normalizado: texto ausente = "", monto ausente = 0.
type Cell struct {
	Kind  CellKind
	Text  string
	Int   int
	Money decimal.Decimal
}

// String representación textual de la celda (montos con 2 decimales).
func (c Cell) String() string {
	switch c.Kind {
	case CellInt:
		return strconv.Itoa(c.Int)
	case CellMoney:
		return c.Money.StringFixed(moneyPlaces)
	default:
		return c.Text
	}
}

// Column columna lógica de exportación.
type Column struct {
	Header string
	Kind   CellKind
	MaxLen int // 0 = sin truncar
	value  func(v *entity.Venta) Cell
}

// Value extrae la celda de v, truncando el texto a MaxLen caracteres si aplica.
func (col Column) Value(v *entity.Venta) Cell {
	c := col.value(v)
	if col.MaxLen > 0 && c.Kind == CellText {
		c.Text = truncate(c.Text, col.MaxLen)
	}
	return c
}

func text(header string, f func(v *entity.Venta) string) Column {
	return Column{Header: header, Kind: CellText, value: func(v *entity.Venta) Cell {
		return Cell{Kind: CellText, Text: f(v)}
	}}
}

func optText(header string, f func(v *entity.Venta) *string) Column {
	return text(header, func(v *entity.Venta) string {
		if s := f(v); s != nil {
			return *s
		}
		return ""
	})
}

func money(header string, f func(v *entity.Venta) decimal.NullDecimal) Column {
	return Column{Header: header, Kind: CellMoney, value: func(v *entity.Venta) Cell {
		return Cell{Kind: CellMoney, Money: OrZero(f(v)).Round(moneyPlaces)}
	}}
}

func plazo(header string) Column {
	return Column{Header: header, Kind: CellInt, value: func(v *entity.Venta) Cell {
		return Cell{Kind: CellInt, Int: v.PlazoContrato}
	}}
}

func fecha(v *entity.Venta) string { return v.Fecha.Format("2006-01-02") }

var (
	colFecha       = text("Fecha", fecha)
	colConsultor   = text("Consultor", func(v *entity.Venta) string { return v.NombreConsultor })
	colCliente     = text("Cliente", func(v *entity.Venta) string { return v.NombreCliente })
	colFCVNuevo    = money("FCV Nuevo", func(v *entity.Venta) decimal.NullDecimal { return v.FCVNuevo })
	colMRCNuevo    = money("MRC Nuevo", func(v *entity.Venta) decimal.NullDecimal { return v.MRCNuevo })
	colFCVRenovado = money("FCV Renovado", func(v *entity.Venta) decimal.NullDecimal { return v.FCVRenovado })
	colMRCInicial  = money("MRC Inicial", func(v *entity.Venta) decimal.NullDecimal { return v.MRCInicial })
	colMRCFinal    = money("MRC Final", func(v *entity.Venta) decimal.NullDecimal { return v.MRCFinal })
	colVariacion   = money("Variación", func(v *entity.Venta) decimal.NullDecimal { return v.Variacion })
	colPagoUnico   = money("Pago Único", func(v *entity.Venta) decimal.NullDecimal { return v.PagoUnico })
)

// Columns las 18 columnas del reporte completo (hoja de cálculo).
var Columns = []Column{
	colFecha,
	text("Periodo", func(v *entity.Venta) string { return v.Periodo }),
	text("Sector", func(v *entity.Venta) string { return v.Sector }),
	colConsultor,
	colCliente,
	text("Origen", func(v *entity.Venta) string { return v.OrigenVenta }),
	optText("Cotización Odoo", func(v *entity.Venta) *string { return v.NCotizacionOdoo }),
	optText("Licitación", func(v *entity.Venta) *string { return v.NLicitacion }),
	text("Tipo Servicio", func(v *entity.Venta) string { return v.TipoServicio }),
	plazo("Plazo"),
	text("Tipo Venta", func(v *entity.Venta) string { return v.TipoVenta }),
	colFCVNuevo,
	colMRCNuevo,
	colFCVRenovado,
	colMRCInicial,
	colMRCFinal,
	colVariacion,
	colPagoUnico,
}

// PDFColumns subconjunto de 11 columnas del PDF (ancho de página apaisada).
// Consultor se trunca a 18 caracteres y Cliente a 20; no hay ajuste de línea.
var PDFColumns = []Column{
	colFecha,
	withMaxLen(colConsultor, 18),
	withMaxLen(colCliente, 20),
	text("Tipo", func(v *entity.Venta) string { return v.TipoVenta }),
	plazo("Plazo"),
	colMRCInicial,
	colMRCFinal,
	colVariacion,
	colFCVNuevo,
	colFCVRenovado,
	colPagoUnico,
}

func withMaxLen(c Column, n int) Column {
	c.MaxLen = n
	return c
}

// Headers títulos de cols en orden.
func Headers(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Row celdas de v para cols.
func Row(cols []Column, v *entity.Venta) []Cell {
	out := make([]Cell, len(cols))
	for i, c := range cols {
		out[i] = c.Value(v)
	}
	return out
}

// truncate corta s a n caracteres (runas, no bytes).
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
