package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodos fiscales (trimestres).
const (
	PeriodoQ1 = "Q1"
	PeriodoQ2 = "Q2"
	PeriodoQ3 = "Q3"
	PeriodoQ4 = "Q4"
)

// Sectores de venta.
const (
	SectorLima      = "Lima"
	SectorProvincia = "Provincia"
)

// Origen de la venta.
const (
	OrigenCotizacion = "Cotizacion"
	OrigenLicitacion = "Licitacion"
)

// Tipos de servicio.
const (
	ServicioDatos      = "Datos"
	ServicioInternet   = "Internet"
	ServicioTelefonia  = "Telefonía"
	ServicioDatacenter = "Datacenter"
)

// Tipos de venta.
const (
	TipoVentaNueva     = "Venta Nueva"
	TipoRenovacionCero = "Renovacion Cero"
	TipoRenovacionAlta = "Renovacion Alta"
	TipoRenovacionBaja = "Renovacion Baja"
)

// Venta representa un registro de venta de un consultor.
//
// Los montos opcionales usan decimal.NullDecimal: un valor ausente es NULL, nunca cero.
// MRCNuevo, MRCFinal y Variacion son derivados (ver ventas.Recompute) y no se editan a mano.
type Venta struct {
	ID              int64
	Fecha           time.Time
	Periodo         string
	Sector          string
	NombreConsultor string
	NombreCliente   string
	OrigenVenta     string
	NCotizacionOdoo *string
	NLicitacion     *string
	TipoServicio    string
	PlazoContrato   int // meses, 1..100
	TipoVenta       string

	FCVNuevo    decimal.NullDecimal
	FCVRenovado decimal.NullDecimal
	MRCInicial  decimal.NullDecimal
	PagoUnico   decimal.NullDecimal

	MRCNuevo  decimal.NullDecimal // derivado
	MRCFinal  decimal.NullDecimal // derivado
	Variacion decimal.NullDecimal // derivado

	CreadoEn      time.Time
	ActualizadoEn time.Time
}
