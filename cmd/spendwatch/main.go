package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendwatch/internal/api"
	"spendwatch/internal/api/handlers"
	"spendwatch/internal/fx"
	"spendwatch/internal/repository"
	"spendwatch/internal/service"
	"spendwatch/pkg/auth"
	"spendwatch/pkg/config"
	"spendwatch/pkg/logger"
	"spendwatch/pkg/postgres"

	"go.uber.org/zap"
)

// @title SpendWatch API
// @version 1.0
// @description Card statement analysis: categorized spending, savings potential and sustainability advisories

// @contact.name API Support
// @contact.email support@spendwatch.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SpendWatch service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	cardRepo := repository.NewCardRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	cardService := service.NewCardService(cardRepo, appLogger)
	statementService := service.NewStatementService(txRepo, appLogger)

	rateClient := fx.NewClient(cfg.FX.BaseURL, cfg.FX.Timeout, appLogger)
	dashboardService := service.NewDashboardService(txRepo, rateClient, appLogger)

	// The narrative endpoint is optional: without an API key the report is
	// served without LLM text.
	var insightService *service.InsightService
	if cfg.GigaChat.APIKey != "" {
		insightService, err = service.NewInsightService(&cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize insight service", zap.Error(err))
		}
		defer insightService.Close()
	} else {
		appLogger.Warn("GIGACHAT_API_KEY not set, report narratives disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	cardHandler := handlers.NewCardHandler(cardService, appLogger)
	statementHandler := handlers.NewStatementHandler(statementService, cardService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, insightService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, cardHandler, statementHandler, dashboardHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
