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

var _ repository.TrialCodeRepository = (*TrialCodeRepo)(nil)

// TrialCodeRepo implementación de TrialCodeRepository (usable con pool o tx).
type TrialCodeRepo struct {
	q Querier
}

// NewTrialCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrialCodeRepository(q Querier) *TrialCodeRepo {
	return &TrialCodeRepo{q: q}
}

// GetByCode obtiene el código, (nil, nil) si no existe.
func (r *TrialCodeRepo) GetByCode(code string) (*entity.TrialCode, error) {
	query := `
		SELECT id, code, used, used_at, used_by, created_at
		FROM trial_codes WHERE code = $1`
	var tc entity.TrialCode
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&tc.ID, &tc.Code, &tc.Used, &tc.UsedAt, &tc.UsedByID, &tc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trial code: %w", err)
	}
	return &tc, nil
}

// Consume marca el código como usado con un update condicional: solo gana la
// activación que encuentre used = false. Devuelve si la fila fue actualizada.
func (r *TrialCodeRepo) Consume(code, accountID string, usedAt time.Time) (bool, error) {
	query := `
		UPDATE trial_codes
		SET used = true, used_at = $2, used_by = $3
		WHERE code = $1 AND used = false`
	tag, err := r.q.Exec(context.Background(), query, code, usedAt, accountID)
	if err != nil {
		return false, fmt.Errorf("consume trial code: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
