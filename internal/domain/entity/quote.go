package entity

import "time"

// Quote representa la cabecera de una oferta (offert). Los montos se guardan
// en öre (unidad menor de SEK) como enteros para evitar errores de redondeo.
// Una Quote es inmutable después de creada: no hay update ni delete.
type Quote struct {
	ID         string
	AccountID  string
	CustomerID string
	CreatedAt  time.Time
	ValidUntil *time.Time
	Subtotal   int64 // öre
	VAT        int64 // öre, moms 25%
	Total      int64 // öre
	Currency   string
}
