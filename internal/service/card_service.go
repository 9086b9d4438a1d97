package service

import (
	"context"
	"errors"
	"time"

	"spendwatch/internal/dto"
	"spendwatch/internal/models"
	"spendwatch/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrCardNotFound = errors.New("card not found")

type CardService struct {
	cardRepo *repository.CardRepository
	logger   *zap.Logger
}

func NewCardService(cardRepo *repository.CardRepository, logger *zap.Logger) *CardService {
	return &CardService{
		cardRepo: cardRepo,
		logger:   logger,
	}
}

func (s *CardService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	now := time.Now()
	card := &models.Card{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     req.Label,
		LastFour:  req.LastFour,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("Card created",
		zap.String("card_id", card.ID.String()),
		zap.String("user_id", userID.String()),
	)
	return cardResponse(card), nil
}

func (s *CardService) List(ctx context.Context, userID uuid.UUID) ([]*dto.CardResponse, error) {
	cards, err := s.cardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, cardResponse(card))
	}
	return responses, nil
}

// Owned returns the card only if it belongs to the given user.
func (s *CardService) Owned(ctx context.Context, cardID, userID uuid.UUID) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return nil, ErrCardNotFound
	}
	if card.UserID != userID {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, cardID, userID uuid.UUID) error {
	if _, err := s.Owned(ctx, cardID, userID); err != nil {
		return err
	}
	return s.cardRepo.Delete(ctx, cardID, userID)
}

func cardResponse(card *models.Card) *dto.CardResponse {
	return &dto.CardResponse{
		ID:        card.ID.String(),
		Label:     card.Label,
		LastFour:  card.LastFour,
		CreatedAt: card.CreatedAt.Format(time.RFC3339),
	}
}
