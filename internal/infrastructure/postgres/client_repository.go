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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, COALESCE(address,''), COALESCE(email,''),
	COALESCE(phone,''), COALESCE(tax_number,''), COALESCE(note,''), registered_at`

// Columnas buscables por FindBy. La lista cerrada evita interpolar nombres
// arbitrarios en el SQL.
var clientFieldColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"phone":      "phone",
	"tax_number": "tax_number",
}

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clients (id, name, address, email, phone, tax_number, note, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, nullIfEmpty(client.Address), nullIfEmpty(client.Email),
		nullIfEmpty(client.Phone), nullIfEmpty(client.TaxNumber), nullIfEmpty(client.Note),
		client.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email, teléfono o matrícula fiscal en uso", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Address, &c.Email, &c.Phone, &c.TaxNumber, &c.Note, &c.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	return r.scanClient(row)
}

// FindBy busca un cliente por igualdad sobre una columna permitida.
func (r *ClientRepo) FindBy(field, value string) (*entity.Client, error) {
	column, ok := clientFieldColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: campo %q", domain.ErrInvalidInput, field)
	}
	row := r.q.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE `+column+` = $1`, value)
	return r.scanClient(row)
}

// List devuelve una página de clientes ordenados por nombre.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+clientColumns+` FROM clients ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := r.scanClient(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ApplyUpdate aplica una actualización parcial (campos nil se conservan).
func (r *ClientRepo) ApplyUpdate(id string, upd entity.ClientUpdate) error {
	query := `
		UPDATE clients SET
			name       = COALESCE($2, name),
			address    = COALESCE($3, address),
			email      = COALESCE($4, email),
			phone      = COALESCE($5, phone),
			tax_number = COALESCE($6, tax_number),
			note       = COALESCE($7, note)
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id,
		upd.Name, upd.Address, upd.Email, upd.Phone, upd.TaxNumber, upd.Note)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email, teléfono o matrícula fiscal en uso", domain.ErrDuplicate)
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return nil
}
