package entity

import "time"

// Account representa una cuenta identificada por email. Se crea en la primera
// activación de trial (upsert) y nunca se elimina.
type Account struct {
	ID             string
	Email          string
	TrialExpiresAt *time.Time // nil = nunca activó un trial
	CreatedAt      time.Time
}
