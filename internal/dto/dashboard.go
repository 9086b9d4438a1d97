package dto

import "spendwatch/internal/analytics"

// Dashboard responses reuse the analytics shapes directly: they are already
// JSON-tagged value types with no internal identifiers to hide.

type MonthlyResponse struct {
	analytics.MonthlyResult
	RatesAvailable bool `json:"rates_available"`
}

type AdvisoryResponse struct {
	analytics.Advisory
}

type OpportunityCostResponse struct {
	analytics.OpportunityCost
	HouseholdSize int `json:"household_size"`
}

type ReportResponse struct {
	analytics.SpendingReport
	Narrative string `json:"narrative,omitempty"`
}
