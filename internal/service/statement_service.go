package service

import (
	"context"
	"io"
	"time"

	"spendwatch/internal/dto"
	"spendwatch/internal/ingest"
	"spendwatch/internal/mcc"
	"spendwatch/internal/models"
	"spendwatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatementService imports CSV card statements: parse at the ingest
// boundary, attach identities, persist in one batch.
type StatementService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewStatementService(txRepo *repository.TransactionRepository, logger *zap.Logger) *StatementService {
	return &StatementService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *StatementService) Import(ctx context.Context, userID, cardID uuid.UUID, r io.Reader) (*dto.ImportResultResponse, error) {
	result, err := ingest.ParseStatement(r)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transactions := make([]*models.Transaction, 0, len(result.Transactions))
	for i := range result.Transactions {
		tx := result.Transactions[i]
		tx.ID = uuid.New()
		tx.CardID = cardID
		tx.UserID = userID
		tx.CreatedAt = now
		transactions = append(transactions, &tx)
	}

	if err := s.txRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	s.logger.Info("Statement imported",
		zap.String("card_id", cardID.String()),
		zap.Int("imported", len(transactions)),
		zap.Int("skipped", len(result.Skipped)),
	)

	response := &dto.ImportResultResponse{
		Imported: len(transactions),
		Skipped:  make([]dto.SkippedRowResponse, 0, len(result.Skipped)),
	}
	for _, skipped := range result.Skipped {
		response.Skipped = append(response.Skipped, dto.SkippedRowResponse{
			Line:   skipped.Line,
			Reason: skipped.Reason,
		})
	}
	return response, nil
}

// ListByCard returns a card's transactions with their derived categories.
func (s *StatementService) ListByCard(ctx context.Context, cardID uuid.UUID) ([]*dto.TransactionResponse, error) {
	transactions, err := s.txRepo.ListByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, &dto.TransactionResponse{
			ID:          tx.ID.String(),
			CardID:      tx.CardID.String(),
			Date:        tx.Date.Format("2006-01-02"),
			Amount:      tx.Amount.String(),
			Currency:    tx.Currency,
			Description: tx.Description,
			City:        tx.City,
			Country:     tx.Country,
			MCC:         tx.MCC,
			Category:    string(mcc.Classify(tx.MCC).Category),
		})
	}
	return responses, nil
}
