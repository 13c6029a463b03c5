// Package pricing concentra todos los cálculos de campos derivados
// (precios TTC, márgenes, totales de línea) para que catálogo y caja
// compartan el mismo redondeo y los mismos casos borde.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round3 redondea a 3 decimales, mitad hacia arriba. Todo valor monetario
// persistido o expuesto pasa por aquí.
func Round3(v decimal.Decimal) decimal.Decimal {
	return v.Round(3)
}

// PriceInclTax calcula el precio TTC: HT * (1 + tva/100), redondeado.
func PriceInclTax(priceExclTax, taxRate decimal.Decimal) decimal.Decimal {
	return Round3(priceExclTax.Mul(decimal.NewFromInt(1).Add(taxRate.Div(hundred))))
}

// GrossMarginPct calcula el margen bruto en porcentaje.
// Con costo cero devuelve cero en lugar de fallar (división por cero).
func GrossMarginPct(salePriceExclTax, costPriceExclTax decimal.Decimal) decimal.Decimal {
	if costPriceExclTax.IsZero() {
		return decimal.Zero
	}
	return Round3(salePriceExclTax.Sub(costPriceExclTax).Div(costPriceExclTax).Mul(hundred))
}

// LineTotals calcula los totales de una línea de venta.
//
//	totalExcl = qty * unitPrice * (1 - discount/100)
//	totalIncl = totalExcl * (1 + taxRate/100)
//
// Ambos redondeados a 3 decimales. El impuesto se devuelve como
// totalIncl - totalExcl para que las sumas de cabecera cuadren exactas
// con las sumas de líneas.
func LineTotals(quantity int64, unitPrice, discountPct, taxRate decimal.Decimal) (totalExcl, taxAmount, totalIncl decimal.Decimal) {
	qty := decimal.NewFromInt(quantity)
	factor := decimal.NewFromInt(1).Sub(discountPct.Div(hundred))
	totalExcl = Round3(qty.Mul(unitPrice).Mul(factor))
	totalIncl = Round3(totalExcl.Mul(decimal.NewFromInt(1).Add(taxRate.Div(hundred))))
	taxAmount = totalIncl.Sub(totalExcl)
	return totalExcl, taxAmount, totalIncl
}
