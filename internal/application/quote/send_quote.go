package quote

import (
	"context"
	"fmt"

	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// SendUseCase despacha la oferta por email con el PDF adjunto.
type SendUseCase struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	accountRepo  repository.AccountRepository
	renderer     PDFRenderer
	emailTpl     EmailRenderer
	mailer       Mailer
}

// NewSendUseCase construye el caso de uso. El mailer se inyecta construido
// (nunca un singleton a nivel de paquete).
func NewSendUseCase(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
	renderer PDFRenderer,
	emailTpl EmailRenderer,
	mailer Mailer,
) *SendUseCase {
	return &SendUseCase{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		renderer:     renderer,
		emailTpl:     emailTpl,
		mailer:       mailer,
	}
}

// Send envía la oferta al email del cliente.
//
// El destinatario se verifica ANTES de rasterizar: sin email no se lanza
// ningún navegador. Un envío fallido no revierte nada; los bytes del PDF
// simplemente se descartan.
//
// Retorna ErrNotFound, ErrMissingRecipient, ErrRenderingFailed o
// ErrDeliveryFailed según la etapa que falle.
func (uc *SendUseCase) Send(ctx context.Context, quoteID string) error {
	doc, err := loadDocument(uc.quoteRepo, uc.customerRepo, uc.accountRepo, quoteID)
	if err != nil {
		return err
	}
	if doc.Customer.Email == nil {
		return domain.ErrMissingRecipient
	}

	pdf, err := uc.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return err
	}

	body, err := uc.emailTpl.EmailBody(doc)
	if err != nil {
		return fmt.Errorf("%w: cuerpo del email: %v", domain.ErrRenderingFailed, err)
	}

	return uc.mailer.Send(ctx, OutgoingMail{
		To:             *doc.Customer.Email,
		Subject:        fmt.Sprintf("Offert %s – %s", doc.Quote.ID, doc.Customer.Name),
		HTML:           body,
		AttachmentName: fmt.Sprintf("offert-%s.pdf", doc.Quote.ID),
		Attachment:     pdf,
	})
}
