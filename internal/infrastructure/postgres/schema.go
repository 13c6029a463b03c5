package postgres

import (
	"context"
	"fmt"
)

// Sentencias de arranque del esquema. La app crea sus tablas si faltan,
// igual que hacía la versión de escritorio en cada apertura de la base.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS parameters (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS articles (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL UNIQUE,
		category            TEXT,
		subcategory         TEXT,
		description         TEXT,
		stock               BIGINT NOT NULL DEFAULT 0,
		min_stock           BIGINT NOT NULL DEFAULT 0,
		supplier            TEXT,
		supplier_ref        TEXT,
		tax_rate            NUMERIC(8,3)  NOT NULL DEFAULT 0,
		purchase_price      NUMERIC(14,3) NOT NULL DEFAULT 0,
		weighted_avg_price  NUMERIC(14,3) NOT NULL DEFAULT 0,
		gross_margin_pct    NUMERIC(10,3) NOT NULL DEFAULT 0,
		min_sale_price      NUMERIC(14,3) NOT NULL DEFAULT 0,
		sale_price_excl_tax NUMERIC(14,3) NOT NULL DEFAULT 0,
		sale_price_incl_tax NUMERIC(14,3) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		address       TEXT,
		email         TEXT UNIQUE,
		phone         TEXT UNIQUE,
		tax_number    TEXT UNIQUE,
		note          TEXT,
		registered_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		doc_type       SMALLINT NOT NULL,
		doc_num        TEXT NOT NULL UNIQUE,
		doc_date       TEXT NOT NULL,
		doc_time       TEXT NOT NULL,
		client_id      TEXT REFERENCES clients(id),
		payment_mode   TEXT NOT NULL,
		total_excl_tax NUMERIC(14,3) NOT NULL,
		total_tax      NUMERIC(14,3) NOT NULL,
		total_incl_tax NUMERIC(14,3) NOT NULL,
		stamp_duty     NUMERIC(14,3) NOT NULL,
		status         SMALLINT NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS sale_lines (
		id                  TEXT PRIMARY KEY,
		sale_id             TEXT NOT NULL REFERENCES sales(id),
		article_id          TEXT NOT NULL REFERENCES articles(id),
		quantity            BIGINT NOT NULL CHECK (quantity >= 1),
		unit_price_excl_tax NUMERIC(14,3) NOT NULL,
		discount_pct        NUMERIC(8,3)  NOT NULL DEFAULT 0,
		total_excl_tax      NUMERIC(14,3) NOT NULL,
		total_incl_tax      NUMERIC(14,3) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_doc_date ON sales (doc_date)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_sale_id ON sale_lines (sale_id)`,
}

// InitSchema crea las tablas que falten.
func InitSchema(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
