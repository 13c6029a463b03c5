package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, doc_type, doc_num, doc_date, doc_time, COALESCE(client_id,''),
	payment_mode, total_excl_tax, total_tax, total_incl_tax, stamp_duty, status, created_at`

// Columnas buscables por FindBy.
var saleFieldColumns = map[string]string{
	"id":           "id",
	"doc_num":      "doc_num",
	"doc_date":     "doc_date",
	"doc_type":     "doc_type",
	"client_id":    "client_id",
	"payment_mode": "payment_mode",
}

// CreateHeader persiste la cabecera de la venta.
func (r *SaleRepo) CreateHeader(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, doc_type, doc_num, doc_date, doc_time, client_id, payment_mode,
			total_excl_tax, total_tax, total_incl_tax, stamp_duty, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, int(sale.DocType), sale.DocNumber, sale.Date, sale.Time,
		nullIfEmpty(sale.ClientID), sale.PaymentMode,
		sale.TotalExcl, sale.TotalTax, sale.TotalIncl, sale.StampDuty,
		int(sale.Status), sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de documento %q", domain.ErrDuplicate, sale.DocNumber)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_lines (id, sale_id, article_id, quantity, unit_price_excl_tax,
			discount_pct, total_excl_tax, total_incl_tax)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ArticleID, line.Quantity, line.UnitPrice,
		line.DiscountPct, line.TotalExcl, line.TotalIncl,
	)
	if err != nil {
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

func (r *SaleRepo) scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var docType, status int
	err := row.Scan(
		&s.ID, &docType, &s.DocNumber, &s.Date, &s.Time, &s.ClientID,
		&s.PaymentMode, &s.TotalExcl, &s.TotalTax, &s.TotalIncl, &s.StampDuty,
		&status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	s.DocType = entity.DocumentType(docType)
	s.Status = entity.SaleStatus(status)
	return &s, nil
}

// GetByID obtiene una cabecera de venta. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	return r.scanSale(row)
}

// GetLinesBySaleID obtiene todas las líneas de una venta.
func (r *SaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, article_id, quantity, unit_price_excl_tax,
		       discount_pct, total_excl_tax, total_incl_tax
		FROM sale_lines WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ArticleID, &l.Quantity, &l.UnitPrice,
			&l.DiscountPct, &l.TotalExcl, &l.TotalIncl); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una venta. La tabla de transiciones se
// valida en el caso de uso; aquí solo se escribe.
func (r *SaleRepo) UpdateStatus(id string, status entity.SaleStatus) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sales SET status = $2 WHERE id = $1`, id, int(status))
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	return nil
}

// FindBy busca ventas por igualdad sobre una columna permitida, excluyendo
// siempre las anuladas.
func (r *SaleRepo) FindBy(field, value string) ([]*entity.Sale, error) {
	column, ok := saleFieldColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
	}
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE ` + column + `::text = $1 AND status <> $2 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, value, int(entity.StatusVoided))
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := r.scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// DailyTotals agrega por tipo de documento las ventas Draft/Validated de la
// fecha dada.
func (r *SaleRepo) DailyTotals(date string) ([]*entity.DailyTypeTotal, error) {
	query := `
		SELECT doc_type, SUM(total_incl_tax), SUM(total_tax), SUM(stamp_duty)
		FROM sales
		WHERE doc_date = $1 AND status IN ($2, $3)
		GROUP BY doc_type ORDER BY doc_type`
	rows, err := r.q.Query(context.Background(), query, date,
		int(entity.StatusDraft), int(entity.StatusValidated))
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyTypeTotal
	for rows.Next() {
		var t entity.DailyTypeTotal
		var docType int
		if err := rows.Scan(&docType, &t.TotalIncl, &t.TotalTax, &t.TotalStamp); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		t.DocType = entity.DocumentType(docType)
		list = append(list, &t)
	}
	return list, rows.Err()
}
