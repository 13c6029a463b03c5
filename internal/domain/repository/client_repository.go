package repository

import "github.com/tu-usuario/caisse-pos/internal/domain/entity"

// ClientRepository define el puerto de persistencia de clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// FindBy busca por igualdad sobre un campo permitido (name, email,
	// phone, tax_number).
	FindBy(field, value string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	ApplyUpdate(id string, upd entity.ClientUpdate) error
	Delete(id string) error
}
