// Package browser implementa el renderizado de ofertas: arma el HTML desde
// los datos de la oferta y lo rasteriza a PDF A4 con un Chromium headless.
package browser

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/domain"
	"github.com/offertmvp/offert-api/internal/domain/pricing"
)

// Los dos templates son deliberadamente distintos: el documento es la versión
// completa paginada; el email es una versión resumida para el cuerpo del
// mensaje. El HTML no referencia recursos externos, así que la espera de red
// del navegador se satisface de inmediato.
var tplFuncs = template.FuncMap{
	"ore": pricing.FormatOre,
	// datum acepta time.Time y *time.Time (ValidUntil es opcional).
	"datum": func(t any) string {
		switch v := t.(type) {
		case time.Time:
			return v.Format("2006-01-02")
		case *time.Time:
			if v == nil {
				return ""
			}
			return v.Format("2006-01-02")
		default:
			return ""
		}
	},
}

var documentTpl = template.Must(template.New("offert").Funcs(tplFuncs).Parse(`<!doctype html>
<html lang="sv">
<head>
  <meta charset="utf-8"/>
  <title>Offert {{.Quote.ID}}</title>
</head>
<body style="font-family:system-ui,Segoe UI,Roboto,Inter,Arial,sans-serif;color:#111;margin:24px;">
  <header style="display:flex;justify-content:space-between;align-items:center;margin-bottom:24px;">
    <div>
      <h1 style="margin:0;font-size:24px;">Offert</h1>
      <div style="font-size:12px;color:#555">ID: {{.Quote.ID}}</div>
      <div style="font-size:12px;color:#555">Datum: {{datum .Quote.CreatedAt}}</div>
      {{if .Quote.ValidUntil}}<div style="font-size:12px;color:#555">Giltig till: {{datum .Quote.ValidUntil}}</div>{{end}}
    </div>
    <div style="text-align:right;">
      <div style="font-size:12px;color:#555">Användare</div>
      <div style="font-weight:600">{{.Account.Email}}</div>
    </div>
  </header>

  <section style="margin-bottom:16px;">
    <div style="font-size:12px;color:#555">Kund</div>
    <div style="font-weight:600">{{.Customer.Name}}</div>
    {{if .Customer.Email}}<div>{{.Customer.Email}}</div>{{end}}
  </section>

  <table style="width:100%;border-collapse:collapse;font-size:14px;margin-top:12px;">
    <thead>
      <tr>
        <th style="text-align:left;padding:8px;border-bottom:2px solid #111;">Titel</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">Antal</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">&agrave;-pris</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">Radbelopp</th>
      </tr>
    </thead>
    <tbody>
    {{range .Items}}
      <tr>
        <td style="padding:8px;border-bottom:1px solid #eee;">{{.Title}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{.Quantity}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{ore .UnitPrice}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{ore .LineTotal}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>

  <div style="width:100%;margin-top:16px;display:flex;justify-content:flex-end;">
    <div style="min-width:280px;">
      <div style="display:flex;justify-content:space-between;padding:6px 0;">
        <span>Delsumma</span><span>{{ore .Quote.Subtotal}}</span>
      </div>
      <div style="display:flex;justify-content:space-between;padding:6px 0;">
        <span>Moms (25%)</span><span>{{ore .Quote.VAT}}</span>
      </div>
      <div style="display:flex;justify-content:space-between;padding:6px 0;font-weight:700;border-top:1px solid #111;margin-top:6px;">
        <span>Att betala</span><span>{{ore .Quote.Total}}</span>
      </div>
    </div>
  </div>

  <footer style="margin-top:36px;font-size:12px;color:#666;">
    Genererad av Offert MVP.
  </footer>
</body>
</html>`))

var emailTpl = template.Must(template.New("offert-email").Funcs(tplFuncs).Parse(`<!doctype html>
<html>
<body style="font-family:system-ui,Segoe UI,Roboto,Inter,Arial,sans-serif;color:#111">
  <h2 style="margin:0 0 8px">Offert {{.Quote.ID}}</h2>
  {{if .Quote.ValidUntil}}<p style="margin:0 0 8px">Giltig till: {{datum .Quote.ValidUntil}}</p>{{end}}
  <table style="width:100%;border-collapse:collapse;font-size:14px;margin:12px 0">
    <thead>
      <tr>
        <th style="text-align:left;padding:8px;border-bottom:2px solid #111;">Titel</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">Antal</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">&agrave;-pris</th>
        <th style="text-align:right;padding:8px;border-bottom:2px solid #111;">Radbelopp</th>
      </tr>
    </thead>
    <tbody>
    {{range .Items}}
      <tr>
        <td style="padding:8px;border-bottom:1px solid #eee;">{{.Title}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{.Quantity}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{ore .UnitPrice}}</td>
        <td style="padding:8px;text-align:right;border-bottom:1px solid #eee;">{{ore .LineTotal}}</td>
      </tr>
    {{end}}
    </tbody>
  </table>
  <div style="text-align:right">
    <div>Delsumma: <strong>{{ore .Quote.Subtotal}}</strong></div>
    <div>Moms (25%): <strong>{{ore .Quote.VAT}}</strong></div>
    <div>Att betala: <strong>{{ore .Quote.Total}}</strong></div>
  </div>
</body>
</html>`))

// TemplateRenderer arma los HTML de la oferta (documento y email).
type TemplateRenderer struct{}

// NewTemplateRenderer construye el renderer de templates.
func NewTemplateRenderer() *TemplateRenderer { return &TemplateRenderer{} }

// DocumentHTML produce el HTML completo que se rasteriza a PDF.
func (r *TemplateRenderer) DocumentHTML(doc *quote.Document) (string, error) {
	var buf bytes.Buffer
	if err := documentTpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: template del documento: %v", domain.ErrRenderingFailed, err)
	}
	return buf.String(), nil
}

// EmailBody produce el cuerpo HTML simplificado del email.
func (r *TemplateRenderer) EmailBody(doc *quote.Document) (string, error) {
	var buf bytes.Buffer
	if err := emailTpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("%w: template del email: %v", domain.ErrRenderingFailed, err)
	}
	return buf.String(), nil
}
