package ventas

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// TotalsResult sumas de los seis campos monetarios del reporte.
type TotalsResult struct {
	FCVNuevo    decimal.Decimal
	MRCNuevo    decimal.Decimal
	PagoUnico   decimal.Decimal
	FCVRenovado decimal.Decimal
	MRCFinal    decimal.Decimal
	Variacion   decimal.Decimal
}

// RankingRow acumulado de un consultor.
type RankingRow struct {
	Consultor   string
	Count       int
	SumMRCNuevo decimal.Decimal
	SumFCVNuevo decimal.Decimal
}

// Totals suma los montos de las ventas que cumplen c. Aplica el filtro internamente
// para que los totales y el listado nunca diverjan. NULL suma como 0.
func Totals(records []*entity.Venta, c Criteria) TotalsResult {
	t := TotalsResult{
		FCVNuevo:    decimal.Zero,
		MRCNuevo:    decimal.Zero,
		PagoUnico:   decimal.Zero,
		FCVRenovado: decimal.Zero,
		MRCFinal:    decimal.Zero,
		Variacion:   decimal.Zero,
	}
	for _, v := range Filter(records, c) {
		t.FCVNuevo = t.FCVNuevo.Add(OrZero(v.FCVNuevo))
		t.MRCNuevo = t.MRCNuevo.Add(OrZero(v.MRCNuevo))
		t.PagoUnico = t.PagoUnico.Add(OrZero(v.PagoUnico))
		t.FCVRenovado = t.FCVRenovado.Add(OrZero(v.FCVRenovado))
		t.MRCFinal = t.MRCFinal.Add(OrZero(v.MRCFinal))
		t.Variacion = t.Variacion.Add(OrZero(v.Variacion))
	}
	return t
}

// Ranking agrupa por nombre exacto de consultor (distingue mayúsculas) y ordena por
// Σ MRC Nuevo descendente. Los empates conservan el orden de primera aparición.
func Ranking(records []*entity.Venta, c Criteria) []RankingRow {
	index := make(map[string]int)
	var rows []RankingRow
	for _, v := range Filter(records, c) {
		i, ok := index[v.NombreConsultor]
		if !ok {
			i = len(rows)
			index[v.NombreConsultor] = i
			rows = append(rows, RankingRow{
				Consultor:   v.NombreConsultor,
				SumMRCNuevo: decimal.Zero,
				SumFCVNuevo: decimal.Zero,
			})
		}
		rows[i].Count++
		rows[i].SumMRCNuevo = rows[i].SumMRCNuevo.Add(OrZero(v.MRCNuevo))
		rows[i].SumFCVNuevo = rows[i].SumFCVNuevo.Add(OrZero(v.FCVNuevo))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SumMRCNuevo.GreaterThan(rows[j].SumMRCNuevo)
	})
	return rows
}
