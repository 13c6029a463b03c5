package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest body para POST /api/sales.
// DocType: 1 = facture, 2 = bon de livraison, 3 = devis.
type RecordSaleRequest struct {
	DocType     int               `json:"doc_type"`
	ClientID    string            `json:"client_id,omitempty"` // opcional
	PaymentMode string            `json:"payment_mode"`        // cash, carte, cheque...
	Lines       []SaleLineRequest `json:"lines"`
}

// SaleLineRequest línea de venta solicitada.
type SaleLineRequest struct {
	ArticleID   string          `json:"article_id"`
	Quantity    int64           `json:"quantity"`
	DiscountPct decimal.Decimal `json:"discount_pct"` // 0–100, por defecto 0
}

// SaleResponse venta con detalle.
type SaleResponse struct {
	ID          string             `json:"id"`
	DocType     int                `json:"doc_type"`
	DocNumber   string             `json:"doc_number"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	ClientID    string             `json:"client_id,omitempty"`
	PaymentMode string             `json:"payment_mode"`
	TotalExcl   decimal.Decimal    `json:"total_excl_tax"`
	TotalTax    decimal.Decimal    `json:"total_tax"`
	TotalIncl   decimal.Decimal    `json:"total_incl_tax"`
	StampDuty   decimal.Decimal    `json:"stamp_duty"`
	Status      int                `json:"status"`
	Lines       []SaleLineResponse `json:"lines,omitempty"`
}

// SaleLineResponse línea persistida en la respuesta.
type SaleLineResponse struct {
	ID          string          `json:"id"`
	ArticleID   string          `json:"article_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price_excl_tax"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	TotalExcl   decimal.Decimal `json:"total_excl_tax"`
	TotalIncl   decimal.Decimal `json:"total_incl_tax"`
}

// SetSaleStatusRequest body para PATCH /api/sales/:id/status.
type SetSaleStatusRequest struct {
	Status int `json:"status"`
}
