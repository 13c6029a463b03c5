package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/caisse-pos/internal/application/checkout"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

var _ checkout.CheckoutTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la frontera de atomicidad de RecordSale: secuencia,
// stock, cabecera y líneas viven o mueren juntos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	paramRepo repository.ParameterRepository,
	articleRepo repository.ArticleRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paramRepo := NewParameterRepository(tx)
	articleRepo := NewArticleRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(paramRepo, articleRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
