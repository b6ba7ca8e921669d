package http

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/offertmvp/offert-api/internal/application/dto"
	"github.com/offertmvp/offert-api/internal/domain"
)

// TrialActivator activa códigos de trial (implementado por trial.UseCase).
type TrialActivator interface {
	Activate(ctx context.Context, email, code string) (*dto.TrialAccount, error)
}

// TrialHandler maneja las peticiones HTTP de activación de trial (público).
type TrialHandler struct {
	uc       TrialActivator
	validate *validator.Validate
}

// NewTrialHandler construye el handler.
func NewTrialHandler(uc TrialActivator, validate *validator.Validate) *TrialHandler {
	return &TrialHandler{uc: uc, validate: validate}
}

// Activate consume un código de un solo uso y activa el trial de la cuenta.
// POST /trial/activate
func (h *TrialHandler) Activate(c *fiber.Ctx) error {
	var in dto.ActivateTrialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Email and code are required",
			Details: validationDetails(err),
		})
	}

	account, err := h.uc.Activate(c.Context(), in.Email, in.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCode) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "Invalid or used code"})
		}
		log.Error().Err(err).Str("email", in.Email).Msg("activación de trial fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
	}

	return c.JSON(dto.ActivateTrialResponse{Success: true, Account: *account})
}
