package repository

import (
	"time"

	"github.com/offertmvp/offert-api/internal/domain/entity"
)

// TrialCodeRepository define el puerto de persistencia para TrialCode.
type TrialCodeRepository interface {
	// GetByCode devuelve el código o (nil, nil) si no existe.
	GetByCode(code string) (*entity.TrialCode, error)
	// Consume marca el código como usado solo si used=false (update condicional
	// a nivel de fila: dos activaciones simultáneas no pueden gastarlo dos veces).
	// Devuelve false si el código no existía o ya estaba usado.
	Consume(code, accountID string, usedAt time.Time) (bool, error)
}
