// Package analytics derives dashboard figures from transaction snapshots:
// monthly aggregates, opportunity-cost analysis and CO2 advisories. Every
// function here is pure; it recomputes from scratch on each call and never
// touches the network or the database.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"spendwatch/internal/fx"
	"spendwatch/internal/mcc"
	"spendwatch/internal/models"
)

// MonthlyAggregate is the derived spending summary for one calendar month.
type MonthlyAggregate struct {
	Year             int                                 `json:"year"`
	Month            int                                 `json:"month"`
	Total            decimal.Decimal                     `json:"total_chf"`
	TransactionCount int                                 `json:"transaction_count"`
	ByCurrency       map[string]decimal.Decimal          `json:"by_currency"`
	ByCategory       map[models.Category]decimal.Decimal `json:"by_category"`
	UnconvertedCount int                                 `json:"unconverted_count"`
}

// MonthlyResult pairs the per-month aggregates with aggregation-level data
// quality counters.
type MonthlyResult struct {
	Months       []MonthlyAggregate `json:"months"`
	SkippedCount int                `json:"skipped_count"`
}

type monthKey struct {
	year  int
	month int
}

// AggregateMonthly groups transactions by calendar month, most recent month
// first. Amounts are normalized into CHF via the rate table; raw per-currency
// sums are kept alongside for display. Records whose date is unusable are
// skipped and counted rather than failing the whole aggregation.
func AggregateMonthly(transactions []models.Transaction, rates fx.Table) MonthlyResult {
	groups := make(map[monthKey]*MonthlyAggregate)
	skipped := 0

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			skipped++
			continue
		}

		// Calendar-date components, no timezone conversion.
		key := monthKey{year: tx.Date.Year(), month: int(tx.Date.Month())}
		agg, ok := groups[key]
		if !ok {
			agg = &MonthlyAggregate{
				Year:       key.year,
				Month:      key.month,
				ByCurrency: make(map[string]decimal.Decimal),
				ByCategory: make(map[models.Category]decimal.Decimal),
			}
			groups[key] = agg
		}

		normalized, converted := rates.Convert(tx.Amount, tx.Currency)
		if !converted {
			agg.UnconvertedCount++
		}

		agg.TransactionCount++
		agg.Total = agg.Total.Add(normalized)
		agg.ByCurrency[tx.Currency] = agg.ByCurrency[tx.Currency].Add(tx.Amount)

		category := mcc.Classify(tx.MCC).Category
		agg.ByCategory[category] = agg.ByCategory[category].Add(normalized)
	}

	months := make([]MonthlyAggregate, 0, len(groups))
	for _, agg := range groups {
		months = append(months, *agg)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})

	return MonthlyResult{Months: months, SkippedCount: skipped}
}

// CategoryTotals sums normalized spending per category over all given
// transactions. Used to feed the opportunity-cost analyzer with a
// trailing-12-month window.
func CategoryTotals(transactions []models.Transaction, rates fx.Table) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, tx := range transactions {
		category := mcc.Classify(tx.MCC).Category
		totals[category] = totals[category].Add(rates.Normalize(tx.Amount, tx.Currency))
	}
	return totals
}
