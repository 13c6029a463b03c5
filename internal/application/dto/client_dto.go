package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	Note      string `json:"note,omitempty"`
}

// UpdateClientRequest body para PUT /api/clients/:id (parcial).
type UpdateClientRequest struct {
	Name      *string `json:"name,omitempty"`
	Address   *string `json:"address,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	TaxNumber *string `json:"tax_number,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TaxNumber    string `json:"tax_number,omitempty"`
	Note         string `json:"note,omitempty"`
	RegisteredAt string `json:"registered_at,omitempty"`
}
