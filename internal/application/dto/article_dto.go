package dto

import "github.com/shopspring/decimal"

// CreateArticleRequest body para POST /api/articles.
// Los campos derivados (precio TTC, margen, PMP) se calculan en el servidor.
type CreateArticleRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	Subcategory      string          `json:"subcategory,omitempty"`
	Description      string          `json:"description,omitempty"`
	Stock            int64           `json:"stock"`
	MinStock         int64           `json:"min_stock"`
	Supplier         string          `json:"supplier,omitempty"`
	SupplierRef      string          `json:"supplier_ref,omitempty"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	PurchasePrice    decimal.Decimal `json:"purchase_price_excl_tax"`
	MinSalePrice     decimal.Decimal `json:"min_sale_price"`
	SalePriceExclTax decimal.Decimal `json:"sale_price_excl_tax"`
}

// UpdateArticleRequest body para PUT /api/articles/:id. Campos opcionales:
// solo los presentes se aplican (actualización parcial).
type UpdateArticleRequest struct {
	Name             *string          `json:"name,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Subcategory      *string          `json:"subcategory,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Stock            *int64           `json:"stock,omitempty"`
	MinStock         *int64           `json:"min_stock,omitempty"`
	Supplier         *string          `json:"supplier,omitempty"`
	SupplierRef      *string          `json:"supplier_ref,omitempty"`
	TaxRate          *decimal.Decimal `json:"tax_rate,omitempty"`
	PurchasePrice    *decimal.Decimal `json:"purchase_price_excl_tax,omitempty"`
	MinSalePrice     *decimal.Decimal `json:"min_sale_price,omitempty"`
	SalePriceExclTax *decimal.Decimal `json:"sale_price_excl_tax,omitempty"`
}

// AdjustStockRequest body para PATCH /api/articles/:id/stock.
// Delta positivo al recibir mercadería, negativo para correcciones.
type AdjustStockRequest struct {
	Delta int64 `json:"delta"`
}

// ArticleResponse artículo en respuestas, con derivados incluidos.
type ArticleResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	Subcategory      string          `json:"subcategory,omitempty"`
	Description      string          `json:"description,omitempty"`
	Stock            int64           `json:"stock"`
	MinStock         int64           `json:"min_stock"`
	Supplier         string          `json:"supplier,omitempty"`
	SupplierRef      string          `json:"supplier_ref,omitempty"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	PurchasePrice    decimal.Decimal `json:"purchase_price_excl_tax"`
	WeightedAvgPrice decimal.Decimal `json:"weighted_avg_price"`
	GrossMarginPct   decimal.Decimal `json:"gross_margin_pct"`
	MinSalePrice     decimal.Decimal `json:"min_sale_price"`
	SalePriceExclTax decimal.Decimal `json:"sale_price_excl_tax"`
	SalePriceInclTax decimal.Decimal `json:"sale_price_incl_tax"`
}
