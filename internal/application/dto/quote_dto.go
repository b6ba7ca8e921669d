package dto

import "github.com/shopspring/decimal"

// QuoteCustomerRequest cliente dentro del body de creación de oferta.
// Solo el nombre es obligatorio; email/phone/orgNumber vacíos se persisten
// como NULL.
type QuoteCustomerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	OrgNumber string `json:"orgNumber,omitempty"`
}

// QuoteItemRequest línea de oferta. UnitPrice en SEK decimales (p. ej. 149.50);
// el servidor convierte a öre. "dnonneg" es la regla custom registrada en el
// validador (no-negatividad de decimal.Decimal); el cálculo de precios vuelve
// a verificarla como red de seguridad.
type QuoteItemRequest struct {
	Title     string          `json:"title" validate:"required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"dnonneg"`
}

// CreateQuoteRequest body para POST /quotes.
type CreateQuoteRequest struct {
	AccountEmail string               `json:"accountEmail" validate:"required,email"`
	Customer     QuoteCustomerRequest `json:"customer" validate:"required"`
	Items        []QuoteItemRequest   `json:"items" validate:"required,min=1,dive"`
	ValidUntil   string               `json:"validUntil,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// QuoteTotals montos calculados en öre.
type QuoteTotals struct {
	Subtotal int64  `json:"subtotal"`
	VAT      int64  `json:"vat"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
}

// CreateQuoteResponse respuesta de POST /quotes.
type CreateQuoteResponse struct {
	QuoteID string      `json:"quoteId"`
	Totals  QuoteTotals `json:"totals"`
}

// SendQuoteResponse respuesta de POST /quotes/:id/send.
type SendQuoteResponse struct {
	Success bool `json:"success"`
}
