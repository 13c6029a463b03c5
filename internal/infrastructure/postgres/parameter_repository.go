package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

var _ repository.ParameterRepository = (*ParameterRepo)(nil)

// ParameterRepo implementación de ParameterRepository (usable con pool o tx).
type ParameterRepo struct {
	q Querier
}

// NewParameterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewParameterRepository(q Querier) *ParameterRepo {
	return &ParameterRepo{q: q}
}

// Get lee el valor de una clave.
func (r *ParameterRepo) Get(key string) (string, error) {
	var value string
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM parameters WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: parámetro %q", domain.ErrNotFound, key)
		}
		return "", fmt.Errorf("get parameter: %w", err)
	}
	return value, nil
}

// Set modifica una clave existente.
func (r *ParameterRepo) Set(key, value string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE parameters SET value = $2 WHERE key = $1`, key, value)
	if err != nil {
		return fmt.Errorf("set parameter: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: parámetro %q", domain.ErrNotFound, key)
	}
	return nil
}

// Add crea una clave nueva.
func (r *ParameterRepo) Add(key, value string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO parameters (key, value) VALUES ($1, $2)`, key, value)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: parámetro %q", domain.ErrDuplicate, key)
		}
		return fmt.Errorf("add parameter: %w", err)
	}
	return nil
}

// SeedDefaults instala las claves que falten sin tocar las existentes.
func (r *ParameterRepo) SeedDefaults(defaults map[string]string) error {
	for key, value := range defaults {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO parameters (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING`,
			key, value)
		if err != nil {
			return fmt.Errorf("seed parameter %q: %w", key, err)
		}
	}
	return nil
}

// IncrementSequence incrementa el contador y devuelve el valor nuevo.
// El UPDATE toma el lock de fila hasta el commit de la transacción, así que
// dos ventas concurrentes del mismo tipo nunca leen el mismo contador; si la
// venta se revierte, el contador vuelve atrás con ella (numeración sin
// huecos).
func (r *ParameterRepo) IncrementSequence(key string) (int64, error) {
	var value int64
	err := r.q.QueryRow(context.Background(),
		`UPDATE parameters
		 SET value = (value::bigint + 1)::text
		 WHERE key = $1
		 RETURNING value::bigint`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %q", domain.ErrSequenceKeyMissing, key)
		}
		return 0, fmt.Errorf("increment sequence %q: %w", key, err)
	}
	return value, nil
}
