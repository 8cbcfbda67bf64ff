package dto

import "github.com/shopspring/decimal"

// TotalsResponse sumas del conjunto filtrado (NULL cuenta como 0).
type TotalsResponse struct {
	FCVNuevo    decimal.Decimal `json:"fcv_nuevo" swaggertype:"string"`
	MRCNuevo    decimal.Decimal `json:"mrc_nuevo" swaggertype:"string"`
	PagoUnico   decimal.Decimal `json:"pago_unico" swaggertype:"string"`
	FCVRenovado decimal.Decimal `json:"fcv_renovado" swaggertype:"string"`
	MRCFinal    decimal.Decimal `json:"mrc_final" swaggertype:"string"`
	Variacion   decimal.Decimal `json:"variacion" swaggertype:"string"`
}

// RankingRowResponse fila del ranking por consultor.
type RankingRowResponse struct {
	Consultor   string          `json:"consultor"`
	Ventas      int             `json:"ventas"`
	SumMRCNuevo decimal.Decimal `json:"sum_mrc_nuevo" swaggertype:"string"`
	SumFCVNuevo decimal.Decimal `json:"sum_fcv_nuevo" swaggertype:"string"`
}

// ReportFilters filtros efectivamente aplicados, en formato YYYY-MM-DD.
type ReportFilters struct {
	Inicio    string `json:"inicio,omitempty"`
	Fin       string `json:"fin,omitempty"`
	Consultor string `json:"consultor,omitempty"`
	Anio      *int   `json:"anio,omitempty"`
}

// DashboardResponse reporte: ventas filtradas, totales y ranking.
type DashboardResponse struct {
	Filtros ReportFilters        `json:"filtros"`
	Ventas  []VentaResponse      `json:"ventas"`
	Totales TotalsResponse       `json:"totales"`
	Ranking []RankingRowResponse `json:"ranking"`
}
