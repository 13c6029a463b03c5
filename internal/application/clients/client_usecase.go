package clients

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
	"github.com/tu-usuario/caisse-pos/internal/domain/repository"
)

var (
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]+$`)
)

// ClientUseCase administra la ficha de clientes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

func validateContact(email, phone string) error {
	if email != "" && !emailRe.MatchString(email) {
		return fmt.Errorf("%w: formato de email inválido", domain.ErrInvalidInput)
	}
	if phone != "" && !phoneRe.MatchString(phone) {
		return fmt.Errorf("%w: el teléfono debe contener solo dígitos", domain.ErrInvalidInput)
	}
	return nil
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: falta el nombre", domain.ErrInvalidInput)
	}
	if err := validateContact(in.Email, in.Phone); err != nil {
		return nil, err
	}
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Address:      in.Address,
		Email:        in.Email,
		Phone:        in.Phone,
		TaxNumber:    in.TaxNumber,
		Note:         in.Note,
		RegisteredAt: time.Now(),
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update modifica los campos provistos de un cliente existente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	email, phone := "", ""
	if in.Email != nil {
		email = *in.Email
	}
	if in.Phone != nil {
		phone = *in.Phone
	}
	if err := validateContact(email, phone); err != nil {
		return nil, err
	}
	upd := entity.ClientUpdate{
		Name:      in.Name,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		TaxNumber: in.TaxNumber,
		Note:      in.Note,
	}
	if err := uc.clientRepo.ApplyUpdate(id, upd); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Campos admitidos por FindBy.
var findableClientFields = map[string]bool{
	"id":         true,
	"name":       true,
	"email":      true,
	"phone":      true,
	"tax_number": true,
}

// FindBy busca un cliente por igualdad sobre un campo permitido.
func (uc *ClientUseCase) FindBy(field, value string) (*dto.ClientResponse, error) {
	if !findableClientFields[field] {
		return nil, fmt.Errorf("%w: campo de búsqueda %q", domain.ErrInvalidInput, field)
	}
	client, err := uc.clientRepo.FindBy(field, value)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List devuelve una página de clientes.
func (uc *ClientUseCase) List(limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.clientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.clientRepo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	registered := ""
	if !c.RegisteredAt.IsZero() {
		registered = c.RegisteredAt.Format("2006-01-02")
	}
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Email:        c.Email,
		Phone:        c.Phone,
		TaxNumber:    c.TaxNumber,
		Note:         c.Note,
		RegisteredAt: registered,
	}
}
