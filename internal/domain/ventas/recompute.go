// Package ventas contiene la lógica de dominio de los registros de venta:
// recálculo de campos derivados, filtros, agregaciones y el modelo de columnas de exportación.
package ventas

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// moneyPlaces decimales de todos los montos.
const moneyPlaces = 2

// MaxMoney cota exclusiva del valor absoluto de un monto; las columnas son NUMERIC(14,2).
var MaxMoney = decimal.New(1, 12)

// Recompute recalcula los campos derivados de v en orden fijo:
//
//	MRCNuevo  = round(FCVNuevo / PlazoContrato, 2)
//	MRCFinal  = round(FCVRenovado / PlazoContrato, 2)
//	Variacion = round(MRCFinal - MRCInicial, 2)
//
// Una entrada nula (o plazo <= 0) deja el derivado en NULL; nunca se sustituye por cero.
// Solo escribe los tres campos derivados y devuelve el mismo puntero.
func Recompute(v *entity.Venta) *entity.Venta {
	if v == nil {
		return nil
	}
	v.MRCNuevo = amortize(v.FCVNuevo, v.PlazoContrato)
	v.MRCFinal = amortize(v.FCVRenovado, v.PlazoContrato)
	if v.MRCFinal.Valid && v.MRCInicial.Valid {
		v.Variacion = valid(v.MRCFinal.Decimal.Sub(v.MRCInicial.Decimal).Round(moneyPlaces))
	} else {
		v.Variacion = decimal.NullDecimal{}
	}
	return v
}

// amortize reparte fcv en plazo meses.
func amortize(fcv decimal.NullDecimal, plazo int) decimal.NullDecimal {
	if !fcv.Valid || plazo <= 0 {
		return decimal.NullDecimal{}
	}
	return valid(fcv.Decimal.Div(decimal.NewFromInt(int64(plazo))).Round(moneyPlaces))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// RoundMoney redondea a 2 decimales conservando NULL.
func RoundMoney(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return valid(d.Decimal.Round(moneyPlaces))
}

// OrZero devuelve el monto o cero si es NULL (solo para mostrar o sumar).
func OrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// MoneyFits indica si d cabe en una columna de monto. NULL siempre cabe.
func MoneyFits(d decimal.NullDecimal) bool {
	return !d.Valid || d.Decimal.Abs().LessThan(MaxMoney)
}

// AmountsFit comprueba los siete montos de v, derivados incluidos.
func AmountsFit(v *entity.Venta) bool {
	for _, d := range []decimal.NullDecimal{
		v.FCVNuevo, v.MRCNuevo, v.FCVRenovado, v.MRCInicial, v.MRCFinal, v.Variacion, v.PagoUnico,
	} {
		if !MoneyFits(d) {
			return false
		}
	}
	return true
}
