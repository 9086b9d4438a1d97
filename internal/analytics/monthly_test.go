package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwatch/internal/fx"
	"spendwatch/internal/models"
)

func tx(date string, amount string, currency string, mccCode string) models.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{
		Date:     d,
		Amount:   decimal.RequireFromString(amount),
		Currency: currency,
		MCC:      mccCode,
	}
}

func TestAggregateMonthlyEmpty(t *testing.T) {
	result := AggregateMonthly(nil, fx.Table{})
	if len(result.Months) != 0 {
		t.Errorf("expected no months, got %d", len(result.Months))
	}
	if result.SkippedCount != 0 {
		t.Errorf("expected no skipped records, got %d", result.SkippedCount)
	}
}

func TestAggregateMonthlySingleGroceryTransaction(t *testing.T) {
	txs := []models.Transaction{tx("2026-07-14", "100", fx.ReportingCurrency, "5411")}
	result := AggregateMonthly(txs, fx.Table{})

	if len(result.Months) != 1 {
		t.Fatalf("expected 1 month, got %d", len(result.Months))
	}
	m := result.Months[0]
	if m.Year != 2026 || m.Month != 7 {
		t.Errorf("month key = %d-%d, want 2026-7", m.Year, m.Month)
	}
	if m.TransactionCount != 1 {
		t.Errorf("count = %d, want 1", m.TransactionCount)
	}
	if !m.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total = %s, want 100", m.Total)
	}
	if got := m.ByCategory[models.CategoryFoodDining]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Food & Dining = %s, want 100", got)
	}
	if got := m.ByCurrency[fx.ReportingCurrency]; !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("raw CHF sum = %s, want 100", got)
	}
}

func TestAggregateMonthlyGroupingAndOrdering(t *testing.T) {
	txs := []models.Transaction{
		tx("2026-05-02", "10", "756", "5411"),
		tx("2026-07-01", "20", "756", "5812"),
		tx("2026-05-30", "30", "756", "5411"),
		tx("2025-12-31", "40", "756", "5912"),
		tx("2026-07-15", "50", "756", "5814"),
	}
	result := AggregateMonthly(txs, fx.Table{})

	if len(result.Months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(result.Months))
	}
	// Most recent first.
	wantOrder := [][2]int{{2026, 7}, {2026, 5}, {2025, 12}}
	for i, want := range wantOrder {
		if result.Months[i].Year != want[0] || result.Months[i].Month != want[1] {
			t.Errorf("months[%d] = %d-%d, want %d-%d",
				i, result.Months[i].Year, result.Months[i].Month, want[0], want[1])
		}
	}

	// Grouping completeness: counts sum to the input length.
	total := 0
	for _, m := range result.Months {
		total += m.TransactionCount
	}
	if total != len(txs) {
		t.Errorf("transaction counts sum to %d, want %d", total, len(txs))
	}
}

func TestAggregateMonthlyCurrencyNormalization(t *testing.T) {
	rates := fx.Table{"978": decimal.RequireFromString("0.95")}
	txs := []models.Transaction{
		tx("2026-07-01", "50", "978", "5411"),  // 47.5 CHF
		tx("2026-07-02", "100", "756", "5411"), // as-is
		tx("2026-07-03", "10", "840", "5411"),  // no USD rate, passes through
	}
	result := AggregateMonthly(txs, rates)

	m := result.Months[0]
	if want := decimal.RequireFromString("157.5"); !m.Total.Equal(want) {
		t.Errorf("total = %s, want %s", m.Total, want)
	}
	if m.UnconvertedCount != 1 {
		t.Errorf("unconverted = %d, want 1", m.UnconvertedCount)
	}
	if got := m.ByCurrency["978"]; !got.Equal(decimal.NewFromInt(50)) {
		t.Errorf("raw EUR sum = %s, want 50 (original currency units)", got)
	}
}

func TestAggregateMonthlySkipsZeroDates(t *testing.T) {
	txs := []models.Transaction{
		{Amount: decimal.NewFromInt(10), Currency: "756", MCC: "5411"}, // zero date
		tx("2026-07-01", "20", "756", "5411"),
	}
	result := AggregateMonthly(txs, fx.Table{})
	if result.SkippedCount != 1 {
		t.Errorf("skipped = %d, want 1", result.SkippedCount)
	}
	if len(result.Months) != 1 || result.Months[0].TransactionCount != 1 {
		t.Error("valid record must still aggregate when a sibling is skipped")
	}
}

func TestAggregateMonthlyDeterminism(t *testing.T) {
	rates := fx.Table{"978": decimal.RequireFromString("0.93")}
	txs := []models.Transaction{
		tx("2026-06-01", "12.34", "978", "5411"),
		tx("2026-06-11", "56.78", "756", "5812"),
		tx("2026-05-21", "9.99", "978", "4121"),
	}
	a := AggregateMonthly(txs, rates)
	b := AggregateMonthly(txs, rates)

	if len(a.Months) != len(b.Months) {
		t.Fatal("month counts differ across runs")
	}
	for i := range a.Months {
		if !a.Months[i].Total.Equal(b.Months[i].Total) {
			t.Errorf("month %d totals differ: %s vs %s", i, a.Months[i].Total, b.Months[i].Total)
		}
	}
}

func TestCategoryTotals(t *testing.T) {
	txs := []models.Transaction{
		tx("2026-07-01", "100", "756", "5411"),
		tx("2026-07-02", "60", "756", "5812"),
		tx("2026-07-03", "40", "756", "4121"),
	}
	totals := CategoryTotals(txs, fx.Table{})
	if got := totals[models.CategoryFoodDining]; !got.Equal(decimal.NewFromInt(160)) {
		t.Errorf("Food & Dining = %s, want 160", got)
	}
	if got := totals[models.CategoryTransportation]; !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Transportation = %s, want 40", got)
	}
}
