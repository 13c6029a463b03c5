package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType clasifica una venta. Cada tipo lleva su propia secuencia
// de numeración en la tabla de parámetros.
type DocumentType int

const (
	DocTypeInvoice      DocumentType = 1 // facture
	DocTypeDeliveryNote DocumentType = 2 // bon de livraison
	DocTypeQuote        DocumentType = 3 // devis
)

// Valid indica si el tipo es uno de los tres reconocidos.
func (t DocumentType) Valid() bool {
	return t == DocTypeInvoice || t == DocTypeDeliveryNote || t == DocTypeQuote
}

// SequenceKey devuelve la clave de secuencia en la tabla de parámetros.
// Cadena vacía si el tipo no es reconocido.
func (t DocumentType) SequenceKey() string {
	switch t {
	case DocTypeInvoice:
		return "sequence_facture"
	case DocTypeDeliveryNote:
		return "sequence_bl"
	case DocTypeQuote:
		return "sequence_devis"
	}
	return ""
}

// Code es el prefijo numérico del número de documento ("1-193").
func (t DocumentType) Code() string {
	switch t {
	case DocTypeInvoice:
		return "1"
	case DocTypeDeliveryNote:
		return "2"
	case DocTypeQuote:
		return "3"
	}
	return ""
}

// SaleStatus es el estado de ciclo de vida de una venta.
// Una venta nunca se borra físicamente: Voided es el borrado lógico.
type SaleStatus int

const (
	StatusDraft     SaleStatus = 0
	StatusValidated SaleStatus = 1
	StatusArchived  SaleStatus = 2
	StatusVoided    SaleStatus = 9
)

// Valid indica si el valor corresponde a un estado conocido.
func (s SaleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusValidated, StatusArchived, StatusVoided:
		return true
	}
	return false
}

// CanTransitionTo aplica la tabla de transiciones monótonas:
// Draft→Validated→Archived, y cualquier estado no anulado→Voided.
func (s SaleStatus) CanTransitionTo(next SaleStatus) bool {
	if next == StatusVoided {
		return s != StatusVoided
	}
	switch s {
	case StatusDraft:
		return next == StatusValidated
	case StatusValidated:
		return next == StatusArchived
	}
	return false
}

// Sale es la cabecera de una venta (raíz del agregado).
// Los totales son siempre la suma de los campos correspondientes de sus líneas.
type Sale struct {
	ID          string
	DocType     DocumentType
	DocNumber   string // único, generado desde la secuencia
	Date        string // ISO 8601, "2006-01-02"
	Time        string // "15:04:05"
	ClientID    string // opcional
	PaymentMode string // cash, carte, cheque...
	TotalExcl   decimal.Decimal
	TotalTax    decimal.Decimal
	TotalIncl   decimal.Decimal
	StampDuty   decimal.Decimal // timbre fiscal, constante por documento
	Status      SaleStatus
	CreatedAt   time.Time
}

// SaleLine es una línea de venta. UnitPrice es una fotografía del precio
// del artículo al momento de la venta; no se recalcula si el catálogo cambia.
type SaleLine struct {
	ID          string
	SaleID      string
	ArticleID   string
	Quantity    int64
	UnitPrice   decimal.Decimal // HT al momento de la venta
	DiscountPct decimal.Decimal // 0–100
	TotalExcl   decimal.Decimal
	TotalIncl   decimal.Decimal
}
