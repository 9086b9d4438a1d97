package dto

type TransactionResponse struct {
	ID          string `json:"id"`
	CardID      string `json:"card_id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
	MCC         string `json:"mcc"`
	Category    string `json:"category"`
}

type ImportResultResponse struct {
	Imported int                  `json:"imported"`
	Skipped  []SkippedRowResponse `json:"skipped"`
}

type SkippedRowResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}
