package analytics

import (
	"strings"
	"testing"
	"time"

	"spendwatch/internal/fx"
	"spendwatch/internal/models"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2026-07-05", "600", "756", "5411"),
		tx("2026-06-20", "550", "756", "5411"),
		tx("2026-07-10", "120", "756", "5541"),
		tx("2024-01-01", "999", "756", "5411"), // outside the trailing year
	}
	report := BuildReport(txs, fx.Table{}, 1, now)

	if report.TransactionCount != 4 {
		t.Errorf("transaction count = %d, want 4", report.TransactionCount)
	}
	if got := report.PeriodStart.Format("2006-01-02"); got != "2024-01-01" {
		t.Errorf("period start = %s, want 2024-01-01", got)
	}
	if got := report.PeriodEnd.Format("2006-01-02"); got != "2026-07-10" {
		t.Errorf("period end = %s, want 2026-07-10", got)
	}
	if len(report.Monthly.Months) != 3 {
		t.Errorf("months = %d, want 3", len(report.Monthly.Months))
	}

	// The old transaction must not count toward trailing-year category
	// spending: 600+550 food = 1150/year, well under the 4800 annual limit.
	for _, c := range report.OpportunityCost.Categories {
		if c.Category == models.CategoryFoodDining && !c.IsWithinLimit {
			t.Error("stale transactions leaked into the trailing-year window")
		}
	}

	if len(report.Insights) == 0 {
		t.Error("expected at least one insight")
	}
}

func TestBuildReportFlagsMissingRates(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{tx("2026-07-05", "100", "978", "5411")}

	report := BuildReport(txs, fx.Table{}, 1, now)
	if report.RatesAvailable {
		t.Error("empty rate table must be flagged")
	}

	found := false
	for _, insight := range report.Insights {
		if strings.Contains(insight, "unconverted") {
			found = true
		}
	}
	if !found {
		t.Error("missing rates must surface as an insight")
	}
	if report.Monthly.Months[0].UnconvertedCount != 1 {
		t.Error("foreign amount without a rate must count as unconverted")
	}
}

func TestRenderTextContainsSections(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2026-07-05", "700", "756", "5411"),
		tx("2026-07-08", "90", "756", "5541"),
	}
	text := BuildReport(txs, fx.Table{}, 1, now).RenderText()

	for _, want := range []string{"Monthly totals", "Budget check", "Insights", "2026-07"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q\n%s", want, text)
		}
	}
}
