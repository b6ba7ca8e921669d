package repository

import (
	"time"

	"github.com/offertmvp/offert-api/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	// GetByEmail devuelve la cuenta o (nil, nil) si no existe.
	GetByEmail(email string) (*entity.Account, error)
	// UpsertTrial crea la cuenta si no existe (con el id candidato) o actualiza
	// su vencimiento de trial si ya existe. Devuelve la fila resultante.
	UpsertTrial(id, email string, expiresAt time.Time) (*entity.Account, error)
	GetByID(id string) (*entity.Account, error)
}
