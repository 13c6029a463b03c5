package clients_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/caisse-pos/internal/application/clients"
	"github.com/tu-usuario/caisse-pos/internal/application/dto"
	"github.com/tu-usuario/caisse-pos/internal/domain"
	"github.com/tu-usuario/caisse-pos/internal/domain/entity"
)

type memClientRepo struct {
	clients map[string]*entity.Client
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{clients: make(map[string]*entity.Client)}
}

func (r *memClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) FindBy(field, value string) (*entity.Client, error) {
	for _, c := range r.clients {
		var match bool
		switch field {
		case "id":
			match = c.ID == value
		case "name":
			match = c.Name == value
		case "email":
			match = c.Email == value
		case "phone":
			match = c.Phone == value
		case "tax_number":
			match = c.TaxNumber == value
		}
		if match {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memClientRepo) ApplyUpdate(id string, upd entity.ClientUpdate) error {
	c, ok := r.clients[id]
	if !ok {
		return domain.ErrNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Address != nil {
		c.Address = *upd.Address
	}
	if upd.Email != nil {
		c.Email = *upd.Email
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.TaxNumber != nil {
		c.TaxNumber = *upd.TaxNumber
	}
	if upd.Note != nil {
		c.Note = *upd.Note
	}
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func TestCreate(t *testing.T) {
	uc := clients.NewClientUseCase(newMemClientRepo())

	resp, err := uc.Create(dto.CreateClientRequest{
		Name:  "Boulangerie du Centre",
		Email: "contact@boulangerie.tn",
		Phone: "21612345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.RegisteredAt)
}

func TestCreate_ValidaContacto(t *testing.T) {
	uc := clients.NewClientUseCase(newMemClientRepo())

	cases := []struct {
		name string
		in   dto.CreateClientRequest
	}{
		{"sin nombre", dto.CreateClientRequest{}},
		{"email sin arroba", dto.CreateClientRequest{Name: "X", Email: "no-es-email"}},
		{"email sin dominio", dto.CreateClientRequest{Name: "X", Email: "a@b"}},
		{"teléfono con letras", dto.CreateClientRequest{Name: "X", Phone: "216-12-345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Email y teléfono vacíos son válidos: el contacto es opcional.
	_, err := uc.Create(dto.CreateClientRequest{Name: "Sin contacto"})
	require.NoError(t, err)
}

func TestUpdate_Parcial(t *testing.T) {
	repo := newMemClientRepo()
	uc := clients.NewClientUseCase(repo)

	created, err := uc.Create(dto.CreateClientRequest{Name: "Cliente", Phone: "123456"})
	require.NoError(t, err)

	newEmail := "nuevo@dominio.tn"
	resp, err := uc.Update(created.ID, dto.UpdateClientRequest{Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, resp.Email)
	// El teléfono no enviado queda intacto.
	assert.Equal(t, "123456", resp.Phone)

	bad := "email-roto"
	_, err = uc.Update(created.ID, dto.UpdateClientRequest{Email: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("no-existe", dto.UpdateClientRequest{Email: &newEmail})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindBy(t *testing.T) {
	uc := clients.NewClientUseCase(newMemClientRepo())

	created, err := uc.Create(dto.CreateClientRequest{Name: "Cliente", Email: "c@d.tn"})
	require.NoError(t, err)

	found, err := uc.FindBy("email", "c@d.tn")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = uc.FindBy("email", "nadie@d.tn")
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Campo fuera de la lista cerrada.
	_, err = uc.FindBy("note; DROP TABLE clients", "x")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
