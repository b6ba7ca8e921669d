package quote

import (
	"context"
	"fmt"

	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// PDFUseCase genera el PDF descargable de una oferta.
type PDFUseCase struct {
	quoteRepo    repository.QuoteRepository
	customerRepo repository.CustomerRepository
	accountRepo  repository.AccountRepository
	renderer     PDFRenderer
}

// NewPDFUseCase construye el caso de uso inyectando el renderer.
func NewPDFUseCase(
	quoteRepo repository.QuoteRepository,
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
	renderer PDFRenderer,
) *PDFUseCase {
	return &PDFUseCase{
		quoteRepo:    quoteRepo,
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		renderer:     renderer,
	}
}

// DownloadQuotePDF carga la oferta completa y la rasteriza.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrNotFound          si la oferta no existe.
//   - domain.ErrRenderingFailed   si el HTML o el navegador fallan.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, quoteID string) (pdfBytes []byte, filename string, err error) {
	doc, err := loadDocument(uc.quoteRepo, uc.customerRepo, uc.accountRepo, quoteID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.renderer.RenderPDF(ctx, doc)
	if err != nil {
		return nil, "", err
	}

	filename = fmt.Sprintf("offert-%s.pdf", doc.Quote.ID)
	return pdfBytes, filename, nil
}
