package entity

import "time"

// TrialCode es un código de activación de un solo uso. Se crea fuera de banda
// (seed SQL, ver cmd/seedcodes) y se muta una única vez al consumirse.
type TrialCode struct {
	ID        string
	Code      string
	Used      bool
	UsedAt    *time.Time
	UsedByID  *string // cuenta que consumió el código
	CreatedAt time.Time
}
