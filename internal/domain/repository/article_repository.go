package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
)

// ArticleRepository define el puerto de persistencia del catálogo.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	GetByName(name string) (*entity.Article, error)
	List(limit, offset int) ([]*entity.Article, error)
	// ApplyUpdate aplica una actualización parcial (solo campos no nil).
	ApplyUpdate(id string, upd entity.ArticleUpdate) error
	// UpdateDerived reescribe los campos calculados tras un cambio de precios.
	UpdateDerived(id string, weightedAvg, grossMarginPct, salePriceInclTax decimal.Decimal) error
	Delete(id string) error

	// GetPriceInfo devuelve precio HT y TVA vigentes (contrato de la caja).
	GetPriceInfo(id string) (*entity.ArticlePriceInfo, error)
	// AdjustStock suma delta al stock (negativo para descontar una venta).
	// El stock resultante puede quedar negativo.
	AdjustStock(id string, delta int64) error
}
