package entity

import "github.com/shopspring/decimal"

// DailyTypeTotal agrega las ventas de un día para un tipo de documento.
// Solo entran ventas en estado Draft o Validated.
type DailyTypeTotal struct {
	DocType    DocumentType
	TotalIncl  decimal.Decimal
	TotalTax   decimal.Decimal
	TotalStamp decimal.Decimal
}
