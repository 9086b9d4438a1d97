// Package fx converts foreign-currency transaction amounts into the single
// reporting currency (CHF) used by every aggregate.
package fx

import "github.com/shopspring/decimal"

// ReportingCurrency is the ISO 4217 numeric code of the reporting currency
// (756 = CHF). Its rate is implicitly 1 and never stored in a table.
const ReportingCurrency = "756"

// Table maps ISO 4217 numeric currency codes (3-digit strings) to the number
// of reporting-currency units per one foreign unit. A table is a per-request
// snapshot; it is never persisted.
type Table map[string]decimal.Decimal

// Convert expresses amount in the reporting currency. The second return
// value reports whether a conversion actually happened: amounts already in
// the reporting currency convert trivially (true), while amounts in a
// currency the table has no rate for are passed through unchanged (false)
// so callers can count unconverted records instead of failing the request.
func (t Table) Convert(amount decimal.Decimal, currency string) (decimal.Decimal, bool) {
	if currency == ReportingCurrency {
		return amount, true
	}
	if rate, ok := t[currency]; ok {
		return amount.Mul(rate), true
	}
	return amount, false
}

// Normalize is Convert without the conversion flag, for callers that do not
// track data quality.
func (t Table) Normalize(amount decimal.Decimal, currency string) decimal.Decimal {
	converted, _ := t.Convert(amount, currency)
	return converted
}
