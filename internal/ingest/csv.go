// Package ingest is the parse-and-validate boundary between raw statement
// files and the typed Transaction model. Untyped rows never cross into the
// core: a row either converts cleanly or is quarantined with a reason.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendwatch/internal/models"
)

const dateLayout = "2006-01-02"

// Column headers accepted in a statement CSV. Matching is case-insensitive.
const (
	colDate        = "date"
	colAmount      = "amount"
	colCurrency    = "currency"
	colDescription = "description"
	colCity        = "city"
	colCountry     = "country"
	colMCC         = "mcc"
	colCardPresent = "card_present"
	colPurchase    = "purchase"
	colCash        = "cash"
)

// SkippedRow records one quarantined statement row.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ParseResult is the outcome of parsing one statement file. Transactions
// carry no identity fields; the caller attaches card and user ids before
// persisting.
type ParseResult struct {
	Transactions []models.Transaction
	Skipped      []SkippedRow
}

// ParseStatement reads a header-keyed CSV statement. Rows that fail
// required-field checks (date, amount, currency) are quarantined
// individually; only an unreadable file or a missing required header is an
// error for the whole parse.
func ParseStatement(r io.Reader) (*ParseResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colDate, colAmount, colCurrency} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	result := &ParseResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// Only CSV syntax errors are row-scoped. Anything else is a
			// broken stream, and csv.Reader returns the same error on
			// every subsequent Read.
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read statement: %w", err)
			}
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "malformed CSV row"})
			continue
		}

		tx, reason := convertRow(record, columns)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: reason})
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

func convertRow(record []string, columns map[string]int) (models.Transaction, string) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rawDate := field(colDate)
	if rawDate == "" {
		return models.Transaction{}, "missing date"
	}
	date, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return models.Transaction{}, fmt.Sprintf("invalid date %q", rawDate)
	}

	rawAmount := field(colAmount)
	if rawAmount == "" {
		return models.Transaction{}, "missing amount"
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return models.Transaction{}, fmt.Sprintf("invalid amount %q", rawAmount)
	}

	currency := field(colCurrency)
	if currency == "" {
		return models.Transaction{}, "missing currency"
	}

	return models.Transaction{
		Date:        date,
		Amount:      amount,
		Currency:    currency,
		Description: field(colDescription),
		City:        field(colCity),
		Country:     field(colCountry),
		MCC:         field(colMCC),
		CardPresent: parseBool(field(colCardPresent)),
		Purchase:    parseBool(field(colPurchase)),
		Cash:        parseBool(field(colCash)),
	}, ""
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
