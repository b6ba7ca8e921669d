package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/application/trial"
	"github.com/offertmvp/offert-api/internal/infrastructure/browser"
	"github.com/offertmvp/offert-api/internal/infrastructure/mail"
	"github.com/offertmvp/offert-api/internal/infrastructure/postgres"
	httpRouter "github.com/offertmvp/offert-api/internal/interfaces/http"
	"github.com/offertmvp/offert-api/pkg/config"
	"github.com/offertmvp/offert-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	codeRepo := postgres.NewTrialCodeRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	trialUC := trial.NewUseCase(accountRepo, codeRepo, txRunner)

	// Render de PDF: plantilla HTML + Chrome headless vía CDP.
	tplRenderer := browser.NewTemplateRenderer()
	launcher := browser.NewLauncher(cfg.Browser.Mode, cfg.Browser.ExecPath)
	pdfRenderer := browser.NewPDFRenderer(launcher, tplRenderer)
	log.Info().Str("mode", cfg.Browser.Mode).Msg("navegador headless configurado")

	if cfg.Mail.ResendAPIKey == "" {
		log.Warn().Msg("RESEND_API_KEY vacío: el envío de ofertas por email fallará")
	}
	mailer := mail.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From)

	createQuoteUC := quote.NewCreateUseCase(txRunner, trialUC, customerRepo)
	quotePDFUC := quote.NewPDFUseCase(quoteRepo, customerRepo, accountRepo, pdfRenderer)
	sendQuoteUC := quote.NewSendUseCase(quoteRepo, customerRepo, accountRepo, pdfRenderer, tplRenderer, mailer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // generar un PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Offert API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TrialActivator: trialUC,
		QuoteCreator:   createQuoteUC,
		QuotePDF:       quotePDFUC,
		QuoteSender:    sendQuoteUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
