package repository

import (
	"context"
	"time"

	"spendwatch/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"id", "card_id", "user_id", "date", "amount", "currency",
	"description", "city", "country", "mcc",
	"card_present", "purchase", "cash", "created_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	builder := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(
			tx.ID, tx.CardID, tx.UserID, tx.Date, tx.Amount, tx.Currency,
			tx.Description, tx.City, tx.Country, tx.MCC,
			tx.CardPresent, tx.Purchase, tx.Cash, tx.CreatedAt,
		)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

func (r *TransactionRepository) ListByCard(ctx context.Context, cardID uuid.UUID) ([]models.Transaction, error) {
	return r.list(ctx, squirrel.Eq{"card_id": cardID})
}

func (r *TransactionRepository) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.GtOrEq{"date": since},
	})
}

func (r *TransactionRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(where).
		OrderBy("date DESC").
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

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.CardID, &tx.UserID, &tx.Date, &tx.Amount, &tx.Currency,
			&tx.Description, &tx.City, &tx.Country, &tx.MCC,
			&tx.CardPresent, &tx.Purchase, &tx.Cash, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
