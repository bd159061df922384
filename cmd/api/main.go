package main

import (
	"log"
	"net/http"
	"time"

	"triage-bot/internal/config"
	apihttp "triage-bot/internal/http"
	"triage-bot/internal/i18n"
	"triage-bot/internal/report"
	"triage-bot/internal/repository"
	"triage-bot/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	translator := i18n.NewTranslator()
	if !translator.Supported(cfg.DefaultLanguage) {
		logger.Warn("default language not supported, falling back to english",
			zap.String("language", cfg.DefaultLanguage))
		cfg.DefaultLanguage = "en"
	}

	sessionRepo := repository.NewMemorySessionRepository()
	engine := service.NewTriageEngine(translator)
	chatSvc := service.NewChatService(logger, sessionRepo, engine, translator, cfg.EmergencyNumbers)
	messagingSvc := service.NewMessagingService(logger, chatSvc, cfg.DefaultLanguage)
	reportSvc := report.NewService(logger, translator, cfg.ReportFontPath)

	chatHandler := apihttp.NewChatHandler(logger, chatSvc, translator, cfg.DefaultLanguage)
	clinicianHandler := apihttp.NewClinicianHandler(logger, chatSvc, reportSvc, cfg.DefaultLanguage)
	webhookHandler := apihttp.NewWebhookHandler(logger, messagingSvc, translator, cfg.DefaultLanguage)
	router := apihttp.NewRouter(logger, chatHandler, clinicianHandler, webhookHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
