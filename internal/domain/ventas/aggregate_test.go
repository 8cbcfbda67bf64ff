package ventas_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

func sample() []*entity.Venta {
	a := venta(1, "2024-01-10", "Ana Ruiz")
	a.FCVNuevo = money("1200")
	a.PagoUnico = money("50")
	b := venta(2, "2024-02-10", "Luis")
	b.FCVNuevo = money("2400")
	b.FCVRenovado = money("1200")
	b.MRCInicial = money("90")
	c := venta(3, "2023-12-01", "Ana Ruiz")
	c.FCVNuevo = money("120")
	d := venta(4, "2024-03-01", "Marta")
	d.FCVRenovado = money("600")
	for _, v := range []*entity.Venta{a, b, c, d} {
		ventas.Recompute(v)
	}
	return []*entity.Venta{a, b, c, d}
}

func sumField(list []*entity.Venta, f func(*entity.Venta) decimal.NullDecimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range list {
		total = total.Add(ventas.OrZero(f(v)))
	}
	return total
}

func TestTotals_SinFiltros(t *testing.T) {
	got := ventas.Totals(sample(), ventas.Criteria{})

	assert.True(t, decimal.NewFromInt(3720).Equal(got.FCVNuevo), "FCV Nuevo %s", got.FCVNuevo)
	assert.True(t, decimal.NewFromInt(310).Equal(got.MRCNuevo), "MRC Nuevo %s", got.MRCNuevo) // 100 + 200 + 10
	assert.True(t, decimal.NewFromInt(50).Equal(got.PagoUnico))
	assert.True(t, decimal.NewFromInt(1800).Equal(got.FCVRenovado))
	assert.True(t, decimal.NewFromInt(150).Equal(got.MRCFinal), "MRC Final %s", got.MRCFinal)
	// solo b tiene MRC Inicial: 100 - 90
	assert.True(t, decimal.NewFromInt(10).Equal(got.Variacion), "Variación %s", got.Variacion)
}

func TestTotals_ConsistenteConFilter(t *testing.T) {
	records := sample()
	criterios := []ventas.Criteria{
		{},
		ventas.ParseCriteria("2024-01-01", "", "", ""),
		ventas.ParseCriteria("", "", "ana", ""),
		ventas.ParseCriteria("", "", "", "2023"),
		ventas.ParseCriteria("2024-02-01", "2024-12-31", "l", "2024"),
	}
	for _, c := range criterios {
		filtered := ventas.Filter(records, c)
		got := ventas.Totals(records, c)
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.FCVNuevo }).Equal(got.FCVNuevo))
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.MRCNuevo }).Equal(got.MRCNuevo))
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.PagoUnico }).Equal(got.PagoUnico))
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.FCVRenovado }).Equal(got.FCVRenovado))
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.MRCFinal }).Equal(got.MRCFinal))
		assert.True(t, sumField(filtered, func(v *entity.Venta) decimal.NullDecimal { return v.Variacion }).Equal(got.Variacion))
	}
}

func TestTotals_VacioEsCero(t *testing.T) {
	got := ventas.Totals(nil, ventas.Criteria{})
	assert.True(t, got.MRCNuevo.IsZero())
	assert.Equal(t, "0.00", got.FCVNuevo.StringFixed(2))
}

func TestRanking_OrdenDescendente(t *testing.T) {
	rows := ventas.Ranking(sample(), ventas.Criteria{})
	require.Len(t, rows, 3)

	assert.Equal(t, "Luis", rows[0].Consultor)
	assert.Equal(t, "Ana Ruiz", rows[1].Consultor)
	assert.Equal(t, 2, rows[1].Count)
	assert.True(t, decimal.NewFromInt(110).Equal(rows[1].SumMRCNuevo))
	assert.True(t, decimal.NewFromInt(1320).Equal(rows[1].SumFCVNuevo))
	assert.Equal(t, "Marta", rows[2].Consultor)
	assert.True(t, rows[2].SumMRCNuevo.IsZero(), "NULL se suma como 0")

	for i := 0; i+1 < len(rows); i++ {
		assert.True(t, rows[i].SumMRCNuevo.GreaterThanOrEqual(rows[i+1].SumMRCNuevo))
	}
}

func TestRanking_AgrupaDistinguiendoMayusculasYEmpatesEstables(t *testing.T) {
	records := []*entity.Venta{
		venta(1, "2024-01-01", "ana"),
		venta(2, "2024-01-02", "Ana"),
		venta(3, "2024-01-03", "ana"),
	}
	rows := ventas.Ranking(records, ventas.Criteria{})
	require.Len(t, rows, 2)
	assert.Equal(t, "ana", rows[0].Consultor, "empate: primero en aparecer")
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "Ana", rows[1].Consultor)
}

func TestRanking_AplicaFiltro(t *testing.T) {
	rows := ventas.Ranking(sample(), ventas.ParseCriteria("", "", "", "2023"))
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Ruiz", rows[0].Consultor)
	assert.Equal(t, 1, rows[0].Count)
}
