package entity

import "time"

// Customer representa un cliente destinatario de ofertas. Pertenece a una
// única Account. Email, teléfono y número de organización son opcionales:
// se guardan como NULL, nunca como string vacío.
type Customer struct {
	ID        string
	AccountID string
	Name      string
	Email     *string
	Phone     *string
	OrgNumber *string // organisationsnummer (Suecia)
	CreatedAt time.Time
}
