package repository

import (
	"context"
	"spendwatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CardRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCardRepository(db *pgxpool.Pool, logger *zap.Logger) *CardRepository {
	return &CardRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	query := squirrel.Insert("cards").
		Columns("id", "user_id", "label", "last_four", "created_at", "updated_at").
		Values(card.ID, card.UserID, card.Label, card.LastFour, card.CreatedAt, card.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	query := squirrel.Select("id", "user_id", "label", "last_four", "created_at", "updated_at").
		From("cards").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var card models.Card
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&card.ID, &card.UserID, &card.Label, &card.LastFour, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *CardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Card, error) {
	query := squirrel.Select("id", "user_id", "label", "last_four", "created_at", "updated_at").
		From("cards").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(
			&card.ID, &card.UserID, &card.Label, &card.LastFour, &card.CreatedAt, &card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}

	return cards, rows.Err()
}

func (r *CardRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("cards").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
