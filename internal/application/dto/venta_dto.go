package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vistas del listado de ventas.
const (
	VistaCompleta = "completa"
	VistaCompacta = "compacta"
)

// VentaRequest entrada para crear o editar una venta.
// Los derivados (mrc_nuevo, mrc_final, variacion) no se aceptan: siempre se recalculan.
// Los montos deben cumplir |x| < 1e12 (NUMERIC(14,2)).
type VentaRequest struct {
	Fecha           string              `json:"fecha" validate:"required,datetime=2006-01-02"`
	Periodo         string              `json:"periodo" validate:"required,oneof=Q1 Q2 Q3 Q4"`
	Sector          string              `json:"sector" validate:"required,oneof=Lima Provincia"`
	NombreConsultor string              `json:"nombre_consultor" validate:"required,max=120"`
	NombreCliente   string              `json:"nombre_cliente" validate:"required,max=160"`
	OrigenVenta     string              `json:"origen_venta" validate:"required,oneof=Cotizacion Licitacion"`
	NCotizacionOdoo string              `json:"n_cotizacion_odoo" validate:"omitempty,max=60"`
	NLicitacion     string              `json:"n_licitacion" validate:"omitempty,max=60"`
	TipoServicio    string              `json:"tipo_servicio" validate:"required,oneof=Datos Internet Telefonía Datacenter"`
	PlazoContrato   int                 `json:"plazo_contrato" validate:"required,min=1,max=100"`
	TipoVenta       string              `json:"tipo_venta" validate:"required,oneof='Venta Nueva' 'Renovacion Cero' 'Renovacion Alta' 'Renovacion Baja'"`
	FCVNuevo        decimal.NullDecimal `json:"fcv_nuevo" swaggertype:"string" validate:"omitempty,gt=-1000000000000,lt=1000000000000"`
	FCVRenovado     decimal.NullDecimal `json:"fcv_renovado" swaggertype:"string" validate:"omitempty,gt=-1000000000000,lt=1000000000000"`
	MRCInicial      decimal.NullDecimal `json:"mrc_inicial" swaggertype:"string" validate:"omitempty,gt=-1000000000000,lt=1000000000000"`
	PagoUnico       decimal.NullDecimal `json:"pago_unico" swaggertype:"string" validate:"omitempty,gt=-1000000000000,lt=1000000000000"`
}

// VentaResponse salida completa de una venta. Montos NULL se serializan como null.
type VentaResponse struct {
	ID              int64               `json:"id"`
	Fecha           string              `json:"fecha"`
	Periodo         string              `json:"periodo"`
	Sector          string              `json:"sector"`
	NombreConsultor string              `json:"nombre_consultor"`
	NombreCliente   string              `json:"nombre_cliente"`
	OrigenVenta     string              `json:"origen_venta"`
	NCotizacionOdoo *string             `json:"n_cotizacion_odoo"`
	NLicitacion     *string             `json:"n_licitacion"`
	TipoServicio    string              `json:"tipo_servicio"`
	PlazoContrato   int                 `json:"plazo_contrato"`
	TipoVenta       string              `json:"tipo_venta"`
	FCVNuevo        decimal.NullDecimal `json:"fcv_nuevo" swaggertype:"string"`
	MRCNuevo        decimal.NullDecimal `json:"mrc_nuevo" swaggertype:"string"`
	FCVRenovado     decimal.NullDecimal `json:"fcv_renovado" swaggertype:"string"`
	MRCInicial      decimal.NullDecimal `json:"mrc_inicial" swaggertype:"string"`
	MRCFinal        decimal.NullDecimal `json:"mrc_final" swaggertype:"string"`
	Variacion       decimal.NullDecimal `json:"variacion" swaggertype:"string"`
	PagoUnico       decimal.NullDecimal `json:"pago_unico" swaggertype:"string"`
	CreadoEn        time.Time           `json:"creado_en"`
	ActualizadoEn   time.Time           `json:"actualizado_en"`
}

// VentaCompactResponse fila de la vista compacta del listado.
type VentaCompactResponse struct {
	ID              int64               `json:"id"`
	Fecha           string              `json:"fecha"`
	NombreConsultor string              `json:"nombre_consultor"`
	NombreCliente   string              `json:"nombre_cliente"`
	TipoServicio    string              `json:"tipo_servicio"`
	TipoVenta       string              `json:"tipo_venta"`
	MRCNuevo        decimal.NullDecimal `json:"mrc_nuevo" swaggertype:"string"`
	MRCFinal        decimal.NullDecimal `json:"mrc_final" swaggertype:"string"`
}

// VentaListQuery parámetros de filtro del listado y de los reportes.
type VentaListQuery struct {
	Inicio    string `query:"inicio"`
	Fin       string `query:"fin"`
	Consultor string `query:"consultor"`
	Anio      string `query:"anio"`
	Vista     string `query:"vista"`
}

// VentaListResponse listado de ventas. Ventas es []VentaResponse o []VentaCompactResponse según Vista.
type VentaListResponse struct {
	Vista   string `json:"vista"`
	Total   int    `json:"total"`
	Ventas  any    `json:"ventas"`
	Warning string `json:"warning,omitempty"`
}
