package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// GetByEmail obtiene la cuenta por email, (nil, nil) si no existe.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	query := `
		SELECT id, email, trial_expires_at, created_at
		FROM accounts WHERE email = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&a.ID, &a.Email, &a.TrialExpiresAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}

// GetByID obtiene la cuenta por id, (nil, nil) si no existe.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	query := `
		SELECT id, email, trial_expires_at, created_at
		FROM accounts WHERE id = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Email, &a.TrialExpiresAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// UpsertTrial crea la cuenta o, si el email ya existe, actualiza solo el
// vencimiento del trial. El id candidato se usa únicamente en el insert.
func (r *AccountRepo) UpsertTrial(id, email string, expiresAt time.Time) (*entity.Account, error) {
	query := `
		INSERT INTO accounts (id, email, trial_expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET trial_expires_at = EXCLUDED.trial_expires_at
		RETURNING id, email, trial_expires_at, created_at`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, id, email, expiresAt, time.Now()).Scan(
		&a.ID, &a.Email, &a.TrialExpiresAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert account trial: %w", err)
	}
	return &a, nil
}
