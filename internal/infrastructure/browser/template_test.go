package browser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appquote "github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/domain/entity"
	"github.com/offertmvp/offert-api/internal/domain/pricing"
	"github.com/offertmvp/offert-api/internal/infrastructure/browser"
)

func testDocument(validUntil *time.Time) *appquote.Document {
	email := "kund@byggbolaget.se"
	created, _ := time.Parse("2006-01-02", "2026-08-15")
	return &appquote.Document{
		Quote: &entity.Quote{
			ID: "q-1", AccountID: "acc-1", CustomerID: "cust-1",
			CreatedAt: created, ValidUntil: validUntil,
			Subtotal: 100000, VAT: 25000, Total: 125000, Currency: "SEK",
		},
		Account:  &entity.Account{ID: "acc-1", Email: "anna@example.se"},
		Customer: &entity.Customer{ID: "cust-1", AccountID: "acc-1", Name: "Byggbolaget AB", Email: &email},
		Items: []*entity.QuoteItem{
			{ID: "i-1", QuoteID: "q-1", Title: "Consulting", Quantity: 2, UnitPrice: 50000, LineTotal: 100000},
		},
	}
}

// Los totales visibles del documento son exactamente los strings que produce
// el calculador formateado en sv-SE.
func TestDocumentHTML_TotalesCoincidenConElCalculador(t *testing.T) {
	tpl := browser.NewTemplateRenderer()

	html, err := tpl.DocumentHTML(testDocument(nil))
	require.NoError(t, err)

	assert.Contains(t, html, pricing.FormatOre(100000))
	assert.Contains(t, html, pricing.FormatOre(25000))
	assert.Contains(t, html, pricing.FormatOre(125000))
	assert.Contains(t, html, "Byggbolaget AB")
	assert.Contains(t, html, "anna@example.se")
	assert.Contains(t, html, "Moms (25%)")
	assert.Contains(t, html, "Att betala")
	assert.NotContains(t, html, "Giltig till")
}

func TestDocumentHTML_ConValidez(t *testing.T) {
	tpl := browser.NewTemplateRenderer()
	until, _ := time.Parse("2006-01-02", "2026-12-31")

	html, err := tpl.DocumentHTML(testDocument(&until))
	require.NoError(t, err)

	assert.Contains(t, html, "Giltig till: 2026-12-31")
	assert.Contains(t, html, "Datum: 2026-08-15")
}

// Mismo input → mismo HTML, byte a byte (el PDF solo depende del HTML y de
// la versión del navegador).
func TestDocumentHTML_Determinista(t *testing.T) {
	tpl := browser.NewTemplateRenderer()
	doc := testDocument(nil)

	a, err := tpl.DocumentHTML(doc)
	require.NoError(t, err)
	b, err := tpl.DocumentHTML(doc)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// El HTML no debe referenciar recursos externos: la espera de red del
// navegador se satisface de inmediato.
func TestDocumentHTML_SinReferenciasExternas(t *testing.T) {
	tpl := browser.NewTemplateRenderer()

	html, err := tpl.DocumentHTML(testDocument(nil))
	require.NoError(t, err)

	assert.NotContains(t, html, "http://")
	assert.NotContains(t, html, "https://")
	assert.NotContains(t, html, "<script")
}

func TestEmailBody_VersionResumida(t *testing.T) {
	tpl := browser.NewTemplateRenderer()

	html, err := tpl.EmailBody(testDocument(nil))
	require.NoError(t, err)

	assert.Contains(t, html, "Offert q-1")
	assert.Contains(t, html, pricing.FormatOre(125000))
	// El email no lleva el bloque de usuario del documento completo.
	assert.NotContains(t, html, "Användare")
}

// El título de una línea pasa por el escape de html/template.
func TestDocumentHTML_EscapaElTitulo(t *testing.T) {
	tpl := browser.NewTemplateRenderer()
	doc := testDocument(nil)
	doc.Items[0].Title = `<img src=x onerror=alert(1)>`

	html, err := tpl.DocumentHTML(doc)
	require.NoError(t, err)

	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, "&lt;img")
}
