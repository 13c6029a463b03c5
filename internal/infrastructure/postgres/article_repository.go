package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación de ArticleRepository (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, name, COALESCE(category,''), COALESCE(subcategory,''), COALESCE(description,''),
	stock, min_stock, COALESCE(supplier,''), COALESCE(supplier_ref,''),
	tax_rate, purchase_price, weighted_avg_price, gross_margin_pct,
	min_sale_price, sale_price_excl_tax, sale_price_incl_tax`

// Create persiste un artículo nuevo.
func (r *ArticleRepo) Create(article *entity.Article) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	query := `
		INSERT INTO articles (id, name, category, subcategory, description, stock, min_stock,
			supplier, supplier_ref, tax_rate, purchase_price, weighted_avg_price,
			gross_margin_pct, min_sale_price, sale_price_excl_tax, sale_price_incl_tax)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		article.ID, article.Name, nullIfEmpty(article.Category), nullIfEmpty(article.Subcategory),
		nullIfEmpty(article.Description), article.Stock, article.MinStock,
		nullIfEmpty(article.Supplier), nullIfEmpty(article.SupplierRef),
		article.TaxRate, article.PurchasePrice, article.WeightedAvgPrice,
		article.GrossMarginPct, article.MinSalePrice, article.SalePriceExclTax, article.SalePriceInclTax,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: artículo %q", domain.ErrDuplicate, article.Name)
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(
		&a.ID, &a.Name, &a.Category, &a.Subcategory, &a.Description,
		&a.Stock, &a.MinStock, &a.Supplier, &a.SupplierRef,
		&a.TaxRate, &a.PurchasePrice, &a.WeightedAvgPrice, &a.GrossMarginPct,
		&a.MinSalePrice, &a.SalePriceExclTax, &a.SalePriceInclTax,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan article: %w", err)
	}
	return &a, nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe.
func (r *ArticleRepo) GetByID(id string) (*entity.Article, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return r.scanArticle(row)
}

// GetByName obtiene un artículo por nombre. (nil, nil) si no existe.
func (r *ArticleRepo) GetByName(name string) (*entity.Article, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+articleColumns+` FROM articles WHERE name = $1`, name)
	return r.scanArticle(row)
}

// List devuelve una página de artículos ordenados por nombre.
func (r *ArticleRepo) List(limit, offset int) ([]*entity.Article, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+articleColumns+` FROM articles ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		a, err := r.scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ApplyUpdate aplica una actualización parcial vía COALESCE: los campos nil
// conservan su valor actual. Sin SQL construido por concatenación.
func (r *ArticleRepo) ApplyUpdate(id string, upd entity.ArticleUpdate) error {
	query := `
		UPDATE articles SET
			name                = COALESCE($2,  name),
			category            = COALESCE($3,  category),
			subcategory         = COALESCE($4,  subcategory),
			description         = COALESCE($5,  description),
			stock               = COALESCE($6,  stock),
			min_stock           = COALESCE($7,  min_stock),
			supplier            = COALESCE($8,  supplier),
			supplier_ref        = COALESCE($9,  supplier_ref),
			tax_rate            = COALESCE($10, tax_rate),
			purchase_price      = COALESCE($11, purchase_price),
			min_sale_price      = COALESCE($12, min_sale_price),
			sale_price_excl_tax = COALESCE($13, sale_price_excl_tax)
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id,
		upd.Name, upd.Category, upd.Subcategory, upd.Description,
		upd.Stock, upd.MinStock, upd.Supplier, upd.SupplierRef,
		upd.TaxRate, upd.PurchasePrice, upd.MinSalePrice, upd.SalePriceExclTax,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: nombre de artículo en uso", domain.ErrDuplicate)
		}
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return nil
}

// UpdateDerived reescribe los campos calculados.
func (r *ArticleRepo) UpdateDerived(id string, weightedAvg, grossMarginPct, salePriceInclTax decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE articles
		 SET weighted_avg_price = $2, gross_margin_pct = $3, sale_price_incl_tax = $4
		 WHERE id = $1`,
		id, weightedAvg, grossMarginPct, salePriceInclTax)
	if err != nil {
		return fmt.Errorf("update article derived: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return nil
}

// Delete elimina un artículo.
func (r *ArticleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return nil
}

// GetPriceInfo devuelve precio HT y TVA vigentes. (nil, nil) si no existe.
func (r *ArticleRepo) GetPriceInfo(id string) (*entity.ArticlePriceInfo, error) {
	var info entity.ArticlePriceInfo
	err := r.q.QueryRow(context.Background(),
		`SELECT sale_price_excl_tax, tax_rate FROM articles WHERE id = $1`, id).
		Scan(&info.PriceExclTax, &info.TaxRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price info: %w", err)
	}
	return &info, nil
}

// AdjustStock suma delta al stock del artículo. Sin piso: el stock puede
// quedar negativo (el inventario es una señal, no un bloqueo de venta).
func (r *ArticleRepo) AdjustStock(id string, delta int64) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE articles SET stock = stock + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: artículo %s", domain.ErrNotFound, id)
	}
	return nil
}
