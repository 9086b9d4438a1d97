package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is an immutable card-statement fact. It is created once by
// ingestion and only ever read afterwards.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	CardID      uuid.UUID       `db:"card_id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        time.Time       `db:"date"` // calendar date, UTC midnight
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"` // ISO 4217 numeric code, 3-digit string
	Description string          `db:"description"`
	City        string          `db:"city"`
	Country     string          `db:"country"`
	MCC         string          `db:"mcc"`
	CardPresent bool            `db:"card_present"`
	Purchase    bool            `db:"purchase"`
	Cash        bool            `db:"cash"`
	CreatedAt   time.Time       `db:"created_at"`
}
