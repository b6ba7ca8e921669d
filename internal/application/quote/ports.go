package quote

import (
	"context"

	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// QuoteTxRunner ejecuta una función dentro de una transacción con los repos
// de cliente y oferta atados a la misma tx (cabecera + líneas atómicas).
type QuoteTxRunner interface {
	RunQuote(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		quoteRepo repository.QuoteRepository,
	) error) error
}

// TrialGate autoriza la creación de ofertas para una cuenta.
// Devuelve ErrTrialRequired o ErrTrialExpired según corresponda.
type TrialGate interface {
	Authorize(email string) (*entity.Account, error)
}

// Document es la oferta completamente cargada que consumen el renderer
// y el template de email.
type Document struct {
	Quote    *entity.Quote
	Account  *entity.Account
	Customer *entity.Customer
	Items    []*entity.QuoteItem
}

// PDFRenderer rasteriza la oferta a un PDF A4 vía navegador headless.
// Cualquier fallo (HTML o navegador) llega envuelto en ErrRenderingFailed.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, doc *Document) ([]byte, error)
}

// EmailRenderer produce el cuerpo HTML simplificado del email
// (no es el mismo template que el PDF).
type EmailRenderer interface {
	EmailBody(doc *Document) (string, error)
}

// OutgoingMail mensaje a despachar por el colaborador de correo.
type OutgoingMail struct {
	To             string
	Subject        string
	HTML           string
	AttachmentName string
	Attachment     []byte
}

// Mailer despacha el email. Fallos del proveedor (error devuelto o respuesta
// sin id) llegan normalizados en ErrDeliveryFailed.
type Mailer interface {
	Send(ctx context.Context, mail OutgoingMail) error
}
