package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const sampleStatement = `Date,Amount,Currency,Description,City,Country,MCC,Card_Present,Purchase,Cash
2026-07-14,-54.20,756,COOP PRONTO,Zurich,CH,5411,true,true,false
2026-07-15,-12.50,978,SNCF PARIS,Paris,FR,4112,false,true,false
2026-07-16,,756,EMPTY AMOUNT,Bern,CH,5812,true,true,false
not-a-date,-9.90,756,BAD DATE,Basel,CH,5814,true,true,false
2026-07-17,-30.00,,NO CURRENCY,Geneva,CH,5812,true,true,false
2026-07-18,-80.00,756,BP TANKSTELLE,Zug,CH,5541,true,true,false
`

func TestParseStatement(t *testing.T) {
	result, err := ParseStatement(strings.NewReader(sampleStatement))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Transactions) != 3 {
		t.Fatalf("parsed %d transactions, want 3", len(result.Transactions))
	}
	if len(result.Skipped) != 3 {
		t.Fatalf("skipped %d rows, want 3", len(result.Skipped))
	}

	first := result.Transactions[0]
	if got := first.Date.Format("2006-01-02"); got != "2026-07-14" {
		t.Errorf("date = %s, want 2026-07-14", got)
	}
	if !first.Amount.Equal(decimal.RequireFromString("-54.2")) {
		t.Errorf("amount = %s, want -54.2", first.Amount)
	}
	if first.Currency != "756" || first.MCC != "5411" {
		t.Errorf("currency/mcc = %s/%s, want 756/5411", first.Currency, first.MCC)
	}
	if !first.CardPresent || !first.Purchase || first.Cash {
		t.Error("boolean flags parsed incorrectly")
	}

	// Quarantine reasons carry the offending line numbers.
	wantLines := []int{4, 5, 6}
	for i, skipped := range result.Skipped {
		if skipped.Line != wantLines[i] {
			t.Errorf("skipped[%d].Line = %d, want %d", i, skipped.Line, wantLines[i])
		}
		if skipped.Reason == "" {
			t.Errorf("skipped[%d] has no reason", i)
		}
	}
}

func TestParseStatementHeaderCaseInsensitive(t *testing.T) {
	csv := "DATE,AMOUNT,CURRENCY,MCC\n2026-01-02,10,756,5812\n"
	result, err := ParseStatement(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("parsed %d transactions, want 1", len(result.Transactions))
	}
}

func TestParseStatementMissingRequiredColumn(t *testing.T) {
	csv := "Date,Description\n2026-01-02,NO AMOUNT COLUMN\n"
	if _, err := ParseStatement(strings.NewReader(csv)); err == nil {
		t.Fatal("expected error for missing amount column")
	}
}

func TestParseStatementEmptyFile(t *testing.T) {
	if _, err := ParseStatement(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

// brokenReader serves its buffered bytes, then fails every subsequent Read
// with the same error, like a dropped upload connection.
type brokenReader struct {
	data []byte
	err  error
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestParseStatementReaderFailure(t *testing.T) {
	r := &brokenReader{
		data: []byte("Date,Amount,Currency\n2026-07-14,10,756\n"),
		err:  errors.New("connection reset"),
	}
	if _, err := ParseStatement(r); err == nil {
		t.Fatal("expected error when the stream fails mid-parse")
	}
}

func TestParseStatementQuarantinesMalformedRow(t *testing.T) {
	csv := "Date,Amount,Currency\n2026-07-14,10\n2026-07-15,20,756\n"
	result, err := ParseStatement(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Transactions) != 1 {
		t.Fatalf("parsed %d transactions, want 1", len(result.Transactions))
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Line != 2 {
		t.Fatalf("skipped = %+v, want the short row on line 2", result.Skipped)
	}
}

func TestParseStatementOnlyHeader(t *testing.T) {
	result, err := ParseStatement(strings.NewReader("Date,Amount,Currency\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Transactions) != 0 || len(result.Skipped) != 0 {
		t.Error("header-only file must parse to an empty result")
	}
}
