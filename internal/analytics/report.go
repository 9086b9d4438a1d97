package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendwatch/internal/fx"
	"spendwatch/internal/models"
)

// SpendingReport is the comprehensive dashboard payload: metadata plus every
// derived insight, in a shape that can also be rendered to free text for an
// external summarization model.
type SpendingReport struct {
	GeneratedAt      time.Time       `json:"generated_at"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	TransactionCount int             `json:"transaction_count"`
	RatesAvailable   bool            `json:"rates_available"`
	Monthly          MonthlyResult   `json:"monthly"`
	OpportunityCost  OpportunityCost `json:"opportunity_cost"`
	CO2              Advisory        `json:"co2"`
	Insights         []string        `json:"insights"`
}

// BuildReport assembles the full report from one transaction snapshot.
// householdSize follows the analyzer's caller contract (>= 1).
func BuildReport(transactions []models.Transaction, rates fx.Table, householdSize int, now time.Time) SpendingReport {
	report := SpendingReport{
		GeneratedAt:      now,
		TransactionCount: len(transactions),
		RatesAvailable:   len(rates) > 0,
		Monthly:          AggregateMonthly(transactions, rates),
	}

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		if report.PeriodStart.IsZero() || tx.Date.Before(report.PeriodStart) {
			report.PeriodStart = tx.Date
		}
		if tx.Date.After(report.PeriodEnd) {
			report.PeriodEnd = tx.Date
		}
	}

	trailing := trailingYear(transactions, now)
	report.OpportunityCost = AnalyzeOpportunityCost(CategoryTotals(trailing, rates), householdSize)
	report.CO2 = CheckAdvisory(transactions, rates, now)
	report.Insights = deriveInsights(report)

	return report
}

func trailingYear(transactions []models.Transaction, now time.Time) []models.Transaction {
	since := now.AddDate(-1, 0, 0)
	var window []models.Transaction
	for _, tx := range transactions {
		if !tx.Date.Before(since) && !tx.Date.After(now) {
			window = append(window, tx)
		}
	}
	return window
}

// deriveInsights turns the numeric results into short narrative facts for
// the dashboard and the LLM prompt.
func deriveInsights(r SpendingReport) []string {
	var insights []string

	if !r.RatesAvailable {
		insights = append(insights, "Exchange rates were unavailable; foreign-currency amounts are shown unconverted.")
	}

	if len(r.Monthly.Months) > 0 {
		latest := r.Monthly.Months[0]
		insights = append(insights, fmt.Sprintf(
			"In %04d-%02d you spent %s CHF across %d transactions.",
			latest.Year, latest.Month, latest.Total.StringFixed(2), latest.TransactionCount,
		))
		if top, amount, ok := topCategory(latest.ByCategory); ok {
			insights = append(insights, fmt.Sprintf(
				"Your largest category that month was %s at %s CHF.", top, amount.StringFixed(2),
			))
		}
	}

	for _, c := range r.OpportunityCost.Categories {
		if !c.IsWithinLimit {
			insights = append(insights, fmt.Sprintf(
				"%s runs %s CHF per month over the recommended budget; trimming it would free %s CHF per year.",
				c.Category, c.Overspend.StringFixed(2), c.AnnualSavings.StringFixed(2),
			))
		}
	}
	if r.OpportunityCost.TotalAnnualSavings.IsPositive() {
		if fv, ok := r.OpportunityCost.Projections[10]; ok {
			insights = append(insights, fmt.Sprintf(
				"Invested at 7%% a year, those savings would grow to %s CHF within 10 years.",
				fv.StringFixed(2),
			))
		}
	}

	switch r.CO2.PrimaryTip {
	case "fuel":
		insights = append(insights, fmt.Sprintf(
			"Fuel spending reached %s CHF in the last 30 days; consider public transport for regular trips.",
			r.CO2.FuelTotal.StringFixed(2),
		))
	case "parking":
		insights = append(insights, fmt.Sprintf(
			"Parking fees reached %s CHF in the last 60 days; a park-and-ride pass may pay off.",
			r.CO2.ParkingTotal.StringFixed(2),
		))
	}

	return insights
}

func topCategory(byCategory map[models.Category]decimal.Decimal) (models.Category, decimal.Decimal, bool) {
	var (
		top    models.Category
		amount decimal.Decimal
		found  bool
	)
	for _, category := range models.AllCategories() {
		v, ok := byCategory[category]
		if !ok {
			continue
		}
		if !found || v.GreaterThan(amount) {
			top, amount, found = category, v, true
		}
	}
	return top, amount, found
}

// RenderText flattens the report into plain text for the summarization
// collaborator. The format is stable but not a wire contract.
func (r SpendingReport) RenderText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Spending report generated %s\n", r.GeneratedAt.Format("2006-01-02"))
	if !r.PeriodStart.IsZero() {
		fmt.Fprintf(&b, "Period: %s to %s, %d transactions\n",
			r.PeriodStart.Format("2006-01-02"), r.PeriodEnd.Format("2006-01-02"), r.TransactionCount)
	}
	if !r.RatesAvailable {
		b.WriteString("Note: exchange rates unavailable, totals include unconverted foreign amounts\n")
	}

	b.WriteString("\nMonthly totals (CHF):\n")
	for _, m := range r.Monthly.Months {
		fmt.Fprintf(&b, "  %04d-%02d: %s (%d transactions)\n",
			m.Year, m.Month, m.Total.StringFixed(2), m.TransactionCount)
	}

	b.WriteString("\nBudget check (monthly average vs household-adjusted threshold):\n")
	for _, c := range r.OpportunityCost.Categories {
		status := "within limit"
		if !c.IsWithinLimit {
			status = fmt.Sprintf("over by %s", c.Overspend.StringFixed(2))
		}
		fmt.Fprintf(&b, "  %s: %s vs %s (%s)\n",
			c.Category, c.MonthlyAverage.StringFixed(2), c.Threshold.StringFixed(2), status)
	}
	fmt.Fprintf(&b, "Potential annual savings: %s CHF\n", r.OpportunityCost.TotalAnnualSavings.StringFixed(2))

	b.WriteString("\nInsights:\n")
	for _, insight := range r.Insights {
		fmt.Fprintf(&b, "  - %s\n", insight)
	}

	return b.String()
}
