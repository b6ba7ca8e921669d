package repository

import "github.com/offertmvp/offert-api/internal/domain/entity"

// QuoteRepository define el puerto de persistencia para Quote y sus líneas.
// No hay Update ni Delete: las ofertas son append-only.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	CreateItem(item *entity.QuoteItem) error
	// GetByID devuelve la oferta o (nil, nil) si no existe.
	GetByID(id string) (*entity.Quote, error)
	GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error)
}
