package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"spendwatch/internal/models"
	"spendwatch/internal/repository"
	"spendwatch/internal/service"
	"spendwatch/pkg/auth"
	"spendwatch/pkg/config"
	"spendwatch/pkg/logger"
	"spendwatch/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@spendwatch.dev"
	demoUsername = "demo"
	demoPassword = "demo1234"
)

// Seeds a demo account with one card and an imported statement so the
// dashboard endpoints have data to show on a fresh database.
func main() {
	statementPath := flag.String("statement", "cmd/seed/statement.csv", "path to a CSV statement to import")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	cardRepo := repository.NewCardRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	statementService := service.NewStatementService(txRepo, appLogger)

	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		appLogger.Info("Creating demo user", zap.String("email", demoEmail))
		hash, err := auth.HashPassword(demoPassword)
		if err != nil {
			appLogger.Fatal("Failed to hash demo password", zap.Error(err))
		}
		now := time.Now()
		user = &models.User{
			ID:        uuid.New(),
			Username:  demoUsername,
			Email:     demoEmail,
			Password:  hash,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			appLogger.Fatal("Failed to create demo user", zap.Error(err))
		}
	} else {
		appLogger.Info("Demo user already exists", zap.String("email", demoEmail))
	}

	now := time.Now()
	card := &models.Card{
		ID:        uuid.New(),
		UserID:    user.ID,
		Label:     "Demo Mastercard",
		LastFour:  "4242",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := cardRepo.Create(ctx, card); err != nil {
		appLogger.Fatal("Failed to create demo card", zap.Error(err))
	}

	file, err := os.Open(*statementPath)
	if err != nil {
		appLogger.Fatal("Failed to open statement file", zap.String("path", *statementPath), zap.Error(err))
	}
	defer file.Close()

	result, err := statementService.Import(ctx, user.ID, card.ID, file)
	if err != nil {
		appLogger.Fatal("Failed to import statement", zap.Error(err))
	}

	appLogger.Info("Seeding completed",
		zap.String("card_id", card.ID.String()),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", len(result.Skipped)),
	)
}
