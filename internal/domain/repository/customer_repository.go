package repository

import "github.com/offertmvp/offert-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// FindByAccountNameEmail busca por cuenta + nombre exacto + email exacto.
	// email nil matchea solo clientes guardados sin email (NULL, no string vacío).
	// Devuelve (nil, nil) si no hay match.
	FindByAccountNameEmail(accountID, name string, email *string) (*entity.Customer, error)
}
