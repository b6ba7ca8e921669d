package browser

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	appquote "github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/domain"
)

// Página A4 con los márgenes del documento, en pulgadas (la API DevTools
// trabaja en pulgadas).
const (
	a4WidthInch  = 210.0 / 25.4
	a4HeightInch = 297.0 / 25.4

	marginTopInch    = 14.0 / 25.4
	marginRightInch  = 14.0 / 25.4
	marginBottomInch = 16.0 / 25.4
	marginLeftInch   = 14.0 / 25.4
)

var _ appquote.PDFRenderer = (*PDFRenderer)(nil)

// PDFRenderer rasteriza la oferta con un Chromium headless adquirido por
// request a través del Launcher configurado.
type PDFRenderer struct {
	launcher Launcher
	tpl      *TemplateRenderer
}

// NewPDFRenderer construye el renderer.
func NewPDFRenderer(launcher Launcher, tpl *TemplateRenderer) *PDFRenderer {
	return &PDFRenderer{launcher: launcher, tpl: tpl}
}

// RenderPDF arma el HTML y lo exporta a PDF A4 con fondo y márgenes fijos.
// El proceso del navegador se libera en todos los caminos de salida: los
// cancel de allocator y contexto quedan en defer antes de cualquier Run.
func (r *PDFRenderer) RenderPDF(ctx context.Context, doc *appquote.Document) ([]byte, error) {
	html, err := r.tpl.DocumentHTML(doc)
	if err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.launcher.AllocatorOptions()...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInch).
				WithPaperHeight(a4HeightInch).
				WithMarginTop(marginTopInch).
				WithMarginRight(marginRightInch).
				WithMarginBottom(marginBottomInch).
				WithMarginLeft(marginLeftInch).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: exportar PDF: %v", domain.ErrRenderingFailed, err)
	}
	return pdf, nil
}
