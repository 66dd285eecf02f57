package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"chocolatudo/internal/config"
	"chocolatudo/internal/handlers"
	"chocolatudo/internal/mailer"
	"chocolatudo/internal/recaptcha"
	"chocolatudo/internal/repositories"
	"chocolatudo/internal/services"
	"chocolatudo/pkg/logger"
	"chocolatudo/pkg/mailqueue"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(viper.GetString("ENV"), cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- Stores ---
	// Explicit instances constructed once and injected into services;
	// the product store seeds the primary product itself.
	productRepo := repositories.NewMemoryProductRepository()
	cartRepo := repositories.NewMemoryCartRepository()
	contactRepo := repositories.NewMemoryContactRepository()

	// --- Outbound email ---
	// SMTP when configured, queue-backed when a broker is available,
	// log-only otherwise.
	var mail mailer.Mailer = mailer.NewLogMailer(zapLogger)
	var mq *mailqueue.Client
	switch {
	case cfg.SMTPHost != "":
		mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
		zapLogger.Info("using SMTP mailer", zap.String("host", cfg.SMTPHost))
	case cfg.RabbitMQURL != "":
		mq, err = mailqueue.NewClient(mailqueue.Config{URL: cfg.RabbitMQURL}, zapLogger)
		if err != nil {
			log.Fatalf("Failed to initialize mail queue: %v", err)
		}
		defer mq.Close()
		mail = mq
		// Drain the queue in-process; a dedicated worker can take this
		// over without any service change.
		if err := mq.Consume(mailer.NewLogMailer(zapLogger)); err != nil {
			zapLogger.Error("failed to start mail queue consumer", zap.Error(err))
		}
	default:
		zapLogger.Info("no SMTP or broker configured, logging outbound email")
	}

	// --- Spam verification ---
	var verifier recaptcha.Verifier = recaptcha.StaticVerifier{Score: 0.9}
	if cfg.RecaptchaSecret != "" {
		verifier = recaptcha.NewGoogleVerifier(cfg.RecaptchaSecret)
	} else {
		zapLogger.Info("no reCAPTCHA secret configured, using static verifier")
	}

	// --- Services ---
	validate := services.NewValidator()
	productService := services.NewProductService(productRepo, validate)
	cartService := services.NewCartService(cartRepo, productRepo, repositories.FixedSessionResolver{}, validate)
	contactService := services.NewContactService(contactRepo, verifier, mail, cfg.Contact, validate, zapLogger)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService, zapLogger)
	cartHandler := handlers.NewCartHandler(cartService, zapLogger)
	contactHandler := handlers.NewContactHandler(contactService, zapLogger)

	app := fiber.New()
	app.Use(fiberlogger.New())

	api := app.Group("/api/external")
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	zapLogger.Info("starting server", zap.String("port", cfg.AppPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	zapLogger.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		zapLogger.Error("error during shutdown", zap.Error(err))
	}
	zapLogger.Info("server gracefully stopped")
}
