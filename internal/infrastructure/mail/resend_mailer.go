// Package mail implementa el despacho de emails vía Resend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	appquote "github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/domain"
)

// DefaultFrom remitente usable para pruebas rápidas sin dominio propio.
const DefaultFrom = "Offert MVP <onboarding@resend.dev>"

var _ appquote.Mailer = (*ResendMailer)(nil)

// ResendMailer implementa quote.Mailer con el SDK de Resend. El cliente se
// construye una vez y se inyecta; no hay estado mutable a nivel de paquete.
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer construye el mailer. from vacío usa DefaultFrom.
func NewResendMailer(apiKey, from string) *ResendMailer {
	if from == "" {
		from = DefaultFrom
	}
	return &ResendMailer{client: resend.NewClient(apiKey), from: from}
}

// Send despacha el mensaje con el PDF adjunto. Resend reporta fallos de dos
// formas (error devuelto o respuesta sin id); ambas se normalizan a
// ErrDeliveryFailed.
func (m *ResendMailer) Send(ctx context.Context, mail appquote.OutgoingMail) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{mail.To},
		Subject: mail.Subject,
		Html:    mail.HTML,
	}
	if len(mail.Attachment) > 0 {
		params.Attachments = []*resend.Attachment{{
			Filename: mail.AttachmentName,
			Content:  mail.Attachment,
		}}
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("%w: respuesta de resend sin id", domain.ErrDeliveryFailed)
	}
	return nil
}
