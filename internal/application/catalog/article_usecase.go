package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/pricing"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

// ArticleUseCase administra el catálogo. Los campos derivados (precio TTC,
// margen bruto, precio medio ponderado) se recalculan aquí en cada alta y
// modificación; el cliente nunca los envía.
type ArticleUseCase struct {
	articleRepo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(articleRepo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{articleRepo: articleRepo}
}

// Create da de alta un artículo con sus derivados calculados.
func (uc *ArticleUseCase) Create(in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: falta el nombre", domain.ErrInvalidInput)
	}
	if in.TaxRate.IsNegative() || in.PurchasePrice.IsNegative() || in.SalePriceExclTax.IsNegative() || in.MinSalePrice.IsNegative() {
		return nil, fmt.Errorf("%w: tasa o precio negativo", domain.ErrInvalidInput)
	}

	purchase := pricing.Round3(in.PurchasePrice)
	saleHT := pricing.Round3(in.SalePriceExclTax)
	taxRate := pricing.Round3(in.TaxRate)

	article := &entity.Article{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Category:         in.Category,
		Subcategory:      in.Subcategory,
		Description:      in.Description,
		Stock:            in.Stock,
		MinStock:         in.MinStock,
		Supplier:         in.Supplier,
		SupplierRef:      in.SupplierRef,
		TaxRate:          taxRate,
		PurchasePrice:    purchase,
		WeightedAvgPrice: purchase, // el PMP arranca en el precio de compra
		GrossMarginPct:   pricing.GrossMarginPct(saleHT, purchase),
		MinSalePrice:     pricing.Round3(in.MinSalePrice),
		SalePriceExclTax: saleHT,
		SalePriceInclTax: pricing.PriceInclTax(saleHT, taxRate),
	}
	if err := uc.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// Update aplica una actualización parcial y recalcula los derivados con los
// valores resultantes.
func (uc *ArticleUseCase) Update(id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	existing, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	upd := entity.ArticleUpdate{
		Name:             in.Name,
		Category:         in.Category,
		Subcategory:      in.Subcategory,
		Description:      in.Description,
		Stock:            in.Stock,
		MinStock:         in.MinStock,
		Supplier:         in.Supplier,
		SupplierRef:      in.SupplierRef,
		TaxRate:          roundPtr(in.TaxRate),
		PurchasePrice:    roundPtr(in.PurchasePrice),
		MinSalePrice:     roundPtr(in.MinSalePrice),
		SalePriceExclTax: roundPtr(in.SalePriceExclTax),
	}
	if upd.TaxRate != nil && upd.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: tasa negativa", domain.ErrInvalidInput)
	}
	if (upd.PurchasePrice != nil && upd.PurchasePrice.IsNegative()) ||
		(upd.SalePriceExclTax != nil && upd.SalePriceExclTax.IsNegative()) ||
		(upd.MinSalePrice != nil && upd.MinSalePrice.IsNegative()) {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	if err := uc.articleRepo.ApplyUpdate(id, upd); err != nil {
		return nil, err
	}

	// Releer y recalcular derivados con los valores efectivos.
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	article.WeightedAvgPrice = article.PurchasePrice
	article.GrossMarginPct = pricing.GrossMarginPct(article.SalePriceExclTax, article.WeightedAvgPrice)
	article.SalePriceInclTax = pricing.PriceInclTax(article.SalePriceExclTax, article.TaxRate)
	if err := uc.articleRepo.UpdateDerived(id, article.WeightedAvgPrice, article.GrossMarginPct, article.SalePriceInclTax); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo.
func (uc *ArticleUseCase) GetByID(id string) (*dto.ArticleResponse, error) {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// List devuelve una página del catálogo.
func (uc *ArticleUseCase) List(limit, offset int) ([]dto.ArticleResponse, error) {
	articles, err := uc.articleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, *toArticleResponse(a))
	}
	return out, nil
}

// FindByName busca un artículo por nombre exacto.
func (uc *ArticleUseCase) FindByName(name string) (*dto.ArticleResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: falta el nombre", domain.ErrInvalidInput)
	}
	article, err := uc.articleRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// AdjustStock suma delta al stock (positivo al recibir mercadería, negativo
// para correcciones). Las ventas descuentan stock por su propio camino
// transaccional; esto es el ajuste manual del mostrador.
func (uc *ArticleUseCase) AdjustStock(id string, delta int64) (*dto.ArticleResponse, error) {
	if err := uc.articleRepo.AdjustStock(id, delta); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un artículo del catálogo.
func (uc *ArticleUseCase) Delete(id string) error {
	return uc.articleRepo.Delete(id)
}

func roundPtr(v *decimal.Decimal) *decimal.Decimal {
	if v == nil {
		return nil
	}
	r := pricing.Round3(*v)
	return &r
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:               a.ID,
		Name:             a.Name,
		Category:         a.Category,
		Subcategory:      a.Subcategory,
		Description:      a.Description,
		Stock:            a.Stock,
		MinStock:         a.MinStock,
		Supplier:         a.Supplier,
		SupplierRef:      a.SupplierRef,
		TaxRate:          a.TaxRate,
		PurchasePrice:    a.PurchasePrice,
		WeightedAvgPrice: a.WeightedAvgPrice,
		GrossMarginPct:   a.GrossMarginPct,
		MinSalePrice:     a.MinSalePrice,
		SalePriceExclTax: a.SalePriceExclTax,
		SalePriceInclTax: a.SalePriceInclTax,
	}
}
