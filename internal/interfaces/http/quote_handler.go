package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/offertmvp/offert-api/internal/application/dto"
	"github.com/offertmvp/offert-api/internal/domain"
)

// QuoteCreator crea ofertas (implementado por quote.CreateUseCase).
type QuoteCreator interface {
	Create(ctx context.Context, in dto.CreateQuoteRequest) (*dto.CreateQuoteResponse, error)
}

// QuotePDFDownloader genera el PDF de una oferta (quote.PDFUseCase).
type QuotePDFDownloader interface {
	DownloadQuotePDF(ctx context.Context, quoteID string) ([]byte, string, error)
}

// QuoteSender envía la oferta por email (quote.SendUseCase).
type QuoteSender interface {
	Send(ctx context.Context, quoteID string) error
}

// QuoteHandler maneja las peticiones HTTP de ofertas.
type QuoteHandler struct {
	creator    QuoteCreator
	downloader QuotePDFDownloader
	sender     QuoteSender
	validate   *validator.Validate
}

// NewQuoteHandler construye el handler.
func NewQuoteHandler(creator QuoteCreator, downloader QuotePDFDownloader, sender QuoteSender, validate *validator.Validate) *QuoteHandler {
	return &QuoteHandler{creator: creator, downloader: downloader, sender: sender, validate: validate}
}

// Create crea una oferta con sus líneas.
// POST /quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "Invalid payload",
			Details: validationDetails(err),
		})
	}

	resp, err := h.creator.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Invalid payload"})
		case errors.Is(err, domain.ErrTrialRequired):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TRIAL_REQUIRED", Message: "Trial required. Activate your trial first."})
		case errors.Is(err, domain.ErrTrialExpired):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TRIAL_EXPIRED", Message: "Trial expired. Please extend or upgrade."})
		}
		log.Error().Err(err).Str("account", in.AccountEmail).Msg("creación de oferta fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPDF devuelve el PDF de la oferta, inline.
// GET /quotes/:id/pdf
func (h *QuoteHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, filename, err := h.downloader.DownloadQuotePDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Quote not found"})
		}
		log.Error().Err(err).Str("quote_id", id).Msg("generación de PDF fallida")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDERING", Message: "PDF generation failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(pdf)
}

// Send envía la oferta por email con el PDF adjunto.
// POST /quotes/:id/send
func (h *QuoteHandler) Send(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.sender.Send(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Quote not found"})
		case errors.Is(err, domain.ErrMissingRecipient):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_RECIPIENT", Message: "Customer has no email"})
		case errors.Is(err, domain.ErrRenderingFailed):
			log.Error().Err(err).Str("quote_id", id).Msg("generación de PDF fallida")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "RENDERING", Message: "PDF generation failed"})
		case errors.Is(err, domain.ErrDeliveryFailed):
			log.Error().Err(err).Str("quote_id", id).Msg("envío de email fallido")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DELIVERY", Message: "Email send failed"})
		}
		log.Error().Err(err).Str("quote_id", id).Msg("envío de oferta fallido")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
	}
	return c.JSON(dto.SendQuoteResponse{Success: true})
}
