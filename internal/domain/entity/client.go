package entity

import "time"

// Client representa un cliente del punto de venta.
// Email, Phone y TaxNumber son únicos cuando no están vacíos.
type Client struct {
	ID           string
	Name         string
	Address      string
	Email        string
	Phone        string
	TaxNumber    string // matrícula fiscal
	Note         string
	RegisteredAt time.Time
}

// ClientUpdate actualización parcial: solo los campos no nil se aplican.
type ClientUpdate struct {
	Name      *string
	Address   *string
	Email     *string
	Phone     *string
	TaxNumber *string
	Note      *string
}
