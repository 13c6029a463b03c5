package entity

import "github.com/shopspring/decimal"

// Article representa un artículo del catálogo de la caja.
// Los campos derivados (SalePriceInclTax, GrossMarginPct, WeightedAvgPrice)
// se recalculan en el caso de uso de catálogo; nunca se aceptan del cliente.
type Article struct {
	ID               string
	Name             string // único
	Category         string
	Subcategory      string
	Description      string
	Stock            int64 // puede quedar negativo tras una venta (ver checkout)
	MinStock         int64
	Supplier         string
	SupplierRef      string
	TaxRate          decimal.Decimal // TVA en porcentaje: 0, 7, 19...
	PurchasePrice    decimal.Decimal // precio de compra HT
	WeightedAvgPrice decimal.Decimal // precio medio ponderado (inicia igual al de compra)
	GrossMarginPct   decimal.Decimal // margen bruto en porcentaje
	MinSalePrice     decimal.Decimal
	SalePriceExclTax decimal.Decimal // precio de venta HT
	SalePriceInclTax decimal.Decimal // precio de venta TTC (derivado)
}

// ArticlePriceInfo es el contrato de lectura que consume el motor de ventas:
// precio HT y tasa de TVA vigentes del artículo.
type ArticlePriceInfo struct {
	PriceExclTax decimal.Decimal
	TaxRate      decimal.Decimal
}

// ArticleUpdate describe una actualización parcial: solo los campos no nil
// se aplican. Sustituye la construcción dinámica de UPDATEs del sistema
// anterior por una estructura explícita.
type ArticleUpdate struct {
	Name             *string
	Category         *string
	Subcategory      *string
	Description      *string
	Stock            *int64
	MinStock         *int64
	Supplier         *string
	SupplierRef      *string
	TaxRate          *decimal.Decimal
	PurchasePrice    *decimal.Decimal
	MinSalePrice     *decimal.Decimal
	SalePriceExclTax *decimal.Decimal
}
