package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente. Los opcionales van como NULL (punteros nil).
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, account_id, name, email, phone, org_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.AccountID, customer.Name,
		customer.Email, customer.Phone, customer.OrgNumber, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, account_id, name, email, phone, org_number, created_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Email, &c.Phone, &c.OrgNumber, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// FindByAccountNameEmail busca por cuenta + nombre exacto + email exacto.
// email nil matchea solo filas con email NULL (IS NOT DISTINCT FROM).
func (r *CustomerRepo) FindByAccountNameEmail(accountID, name string, email *string) (*entity.Customer, error) {
	query := `
		SELECT id, account_id, name, email, phone, org_number, created_at
		FROM customers
		WHERE account_id = $1 AND name = $2 AND email IS NOT DISTINCT FROM $3
		LIMIT 1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, accountID, name, email).Scan(
		&c.ID, &c.AccountID, &c.Name, &c.Email, &c.Phone, &c.OrgNumber, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}
