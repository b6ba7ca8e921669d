package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidCode      = errors.New("código de trial inválido o ya usado")
	ErrTrialRequired    = errors.New("se requiere un trial activo")
	ErrTrialExpired     = errors.New("el trial está vencido")
	ErrMissingRecipient = errors.New("el cliente no tiene email")
	ErrRenderingFailed  = errors.New("generación del PDF fallida")
	ErrDeliveryFailed   = errors.New("envío del email fallido")
)
