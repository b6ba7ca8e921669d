package dto

import "time"

// ActivateTrialRequest body para POST /trial/activate.
type ActivateTrialRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// TrialAccount cuenta con su trial en respuestas.
type TrialAccount struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	TrialExpiresAt time.Time `json:"trialExpiresAt"`
}

// ActivateTrialResponse respuesta de una activación exitosa.
type ActivateTrialResponse struct {
	Success bool         `json:"success"`
	Account TrialAccount `json:"account"`
}
