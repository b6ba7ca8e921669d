package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
// Montos en öre como BIGINT; sin update ni delete (ofertas append-only).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// Create persiste la cabecera de la oferta.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, account_id, customer_id, created_at, valid_until,
		                    subtotal, vat, total, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.AccountID, quote.CustomerID, quote.CreatedAt, quote.ValidUntil,
		quote.Subtotal, quote.VAT, quote.Total, quote.Currency,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la oferta.
func (r *QuoteRepo) CreateItem(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, title, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.Title, item.Quantity, item.UnitPrice, item.LineTotal,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera, (nil, nil) si no existe.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, account_id, customer_id, created_at, valid_until,
		       subtotal, vat, total, currency
		FROM quotes WHERE id = $1`
	var q entity.Quote
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.AccountID, &q.CustomerID, &q.CreatedAt, &q.ValidUntil,
		&q.Subtotal, &q.VAT, &q.Total, &q.Currency,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}

// GetItemsByQuoteID lista las líneas en orden de inserción (columna seq).
func (r *QuoteRepo) GetItemsByQuoteID(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, title, quantity, unit_price, line_total
		FROM quote_items WHERE quote_id = $1 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.Title, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
