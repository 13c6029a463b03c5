package repository

import "github.com/tu-usuario/caisse-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia de ventas.
// Cabecera y líneas se escriben siempre dentro de la misma transacción
// (ver checkout.CheckoutTxRunner); el repositorio no garantiza atomicidad
// por sí solo.
type SaleRepository interface {
	CreateHeader(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	UpdateStatus(id string, status entity.SaleStatus) error
	// FindBy busca por igualdad sobre un campo permitido, excluyendo
	// siempre las ventas anuladas (Voided).
	FindBy(field, value string) ([]*entity.Sale, error)
	// DailyTotals agrega por tipo de documento las ventas Draft/Validated
	// de la fecha dada ("2006-01-02").
	DailyTotals(date string) ([]*entity.DailyTypeTotal, error)
}
