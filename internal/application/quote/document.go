package quote

import (
	"fmt"

	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// loadDocument carga el grafo completo de la oferta (cabecera, líneas,
// cliente y cuenta). Oferta inexistente → ErrNotFound.
func loadDocument(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
	quoteID string,
) (*Document, error) {
	q, err := quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("obtener oferta: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}

	items, err := quoteRepo.GetItemsByQuoteID(quoteID)
	if err != nil {
		return nil, fmt.Errorf("obtener líneas: %w", err)
	}

	customer, err := customerRepo.GetByID(q.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente de la oferta: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("oferta %s referencia un cliente inexistente", quoteID)
	}

	account, err := accountRepo.GetByID(q.AccountID)
	if err != nil {
		return nil, fmt.Errorf("obtener cuenta de la oferta: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("oferta %s referencia una cuenta inexistente", quoteID)
	}

	return &Document{Quote: q, Account: account, Customer: customer, Items: items}, nil
}
