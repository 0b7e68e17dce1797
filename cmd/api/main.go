package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aimlaw-web/config"
	_ "aimlaw-web/docs" // Important for Swagger
	v1 "aimlaw-web/internal/delivery/http/v1"
	"aimlaw-web/internal/domain"
	"aimlaw-web/internal/repository/content"
	"aimlaw-web/internal/usecase"
	"aimlaw-web/pkg/email"
	"aimlaw-web/pkg/logger"
	"aimlaw-web/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           AIM Law Site API
// @version         1.0
// @description     Contact intake, service catalog and translations for the AIM Law website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Log.Info("Starting aim-law site", "port", cfg.Port, "email_provider", cfg.EmailProvider)

	// 3. Load embedded content
	catalog, err := content.LoadCatalog()
	if err != nil {
		logger.Log.Error("Failed to load service catalog", "error", err)
		os.Exit(1)
	}
	bundles, err := content.LoadBundles()
	if err != nil {
		logger.Log.Error("Failed to load locale bundles", "error", err)
		os.Exit(1)
	}

	// 4. Setup Email Sender
	sender := newEmailSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email sender not configured - contact submissions will only be logged", "provider", cfg.EmailProvider)
	}

	// 5. Setup UseCases
	localeUC, err := usecase.NewLocaleUsecase(bundles)
	if err != nil {
		logger.Log.Error("Failed to setup locales", "error", err)
		os.Exit(1)
	}
	contactUC := usecase.NewContactUsecase(catalog, localeUC, sender, validation.New(), usecase.ContactConfig{
		From:     cfg.EmailFrom,
		IntakeTo: cfg.ContactEmailTo,
		SiteURL:  cfg.SiteURL,
	})
	healthUC := usecase.NewHealthUsecase(sender, localeUC)

	// 6. Setup Router
	router, err := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		LocaleUC:  localeUC,
		HealthUC:  healthUC,
		Catalog:   catalog,
		Config:    cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to setup router", "error", err)
		os.Exit(1)
	}

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newEmailSender(cfg *config.Config) domain.EmailSender {
	if cfg.EmailProvider == config.EmailProviderSMTP {
		return email.NewSMTPSender(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	}
	return email.NewResendSender(cfg.ResendAPIKey)
}
