package dto

import "github.com/shopspring/decimal"

// DailyReportResponse reporte diario agrupado por tipo de documento.
type DailyReportResponse struct {
	Date   string                      `json:"date"`
	Totals map[string]DocTypeTotalsDTO `json:"totals"` // clave: "1", "2", "3"
}

// DocTypeTotalsDTO agregados de un tipo de documento.
type DocTypeTotalsDTO struct {
	TotalInclTax decimal.Decimal `json:"total_incl_tax"`
	TotalTax     decimal.Decimal `json:"total_tax"`
	TotalStamp   decimal.Decimal `json:"total_stamp"`
}

// ParameterDTO par clave/valor de configuración.
type ParameterDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
