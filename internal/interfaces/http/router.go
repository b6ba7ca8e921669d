package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TrialActivator TrialActivator
	QuoteCreator   QuoteCreator
	QuotePDF       QuotePDFDownloader
	QuoteSender    QuoteSender
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	validate := NewValidator()

	// Trial (público)
	trialHandler := NewTrialHandler(deps.TrialActivator, validate)
	app.Post("/trial/activate", trialHandler.Activate)

	// Quotes
	quoteHandler := NewQuoteHandler(deps.QuoteCreator, deps.QuotePDF, deps.QuoteSender, validate)
	quotes := app.Group("/quotes")
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/:id/pdf", quoteHandler.GetPDF)
	quotes.Post("/:id/send", quoteHandler.Send)
}
