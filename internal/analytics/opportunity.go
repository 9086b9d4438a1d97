package analytics

import (
	"github.com/shopspring/decimal"

	"spendwatch/internal/models"
)

// Base monthly spending thresholds in CHF for a single-person household.
// Scaled linearly by household size before comparison.
var monthlyThresholds = map[models.Category]decimal.Decimal{
	models.CategoryFoodDining:     decimal.NewFromInt(400),
	models.CategoryRetailShopping: decimal.NewFromInt(300),
	models.CategoryTransportation: decimal.NewFromInt(200),
	models.CategoryEntertainment:  decimal.NewFromInt(150),
}

// annualGrowthRate is the assumed yearly investment return used for the
// future-value projections.
var annualGrowthRate = decimal.NewFromFloat(0.07)

var projectionYears = []int{10, 20, 30}

// CategoryAnalysis compares one category's spending against its
// household-adjusted threshold.
type CategoryAnalysis struct {
	Category       models.Category `json:"category"`
	AnnualSpending decimal.Decimal `json:"annual_spending"`
	MonthlyAverage decimal.Decimal `json:"monthly_average"`
	Threshold      decimal.Decimal `json:"threshold"`
	Overspend      decimal.Decimal `json:"overspend"`
	AnnualSavings  decimal.Decimal `json:"annual_savings"`
	IsWithinLimit  bool            `json:"is_within_limit"`
}

// OpportunityCost is the full analyzer output: per-category breakdown, the
// total annual savings available, and what those savings would compound to
// if invested instead.
type OpportunityCost struct {
	Categories         []CategoryAnalysis      `json:"categories"`
	TotalAnnualSavings decimal.Decimal         `json:"total_annual_savings"`
	Projections        map[int]decimal.Decimal `json:"projections"` // years -> future value
}

// AnalyzeOpportunityCost evaluates trailing-12-month category spending
// against household-adjusted thresholds and projects the compounded value of
// redirecting the overspend into investments.
//
// Only the four thresholded categories are analyzed; a missing category is
// treated as zero spending. householdSize must be >= 1; callers own the
// clamping, the analyzer is a pure numeric transform.
func AnalyzeOpportunityCost(annualByCategory map[models.Category]decimal.Decimal, householdSize int) OpportunityCost {
	household := decimal.NewFromInt(int64(householdSize))
	twelve := decimal.NewFromInt(12)

	result := OpportunityCost{
		Projections: make(map[int]decimal.Decimal, len(projectionYears)),
	}

	// Fixed iteration order keeps the output deterministic.
	for _, category := range []models.Category{
		models.CategoryFoodDining,
		models.CategoryRetailShopping,
		models.CategoryTransportation,
		models.CategoryEntertainment,
	} {
		annual := annualByCategory[category]
		monthly := annual.Div(twelve)
		threshold := monthlyThresholds[category].Mul(household)

		overspend := monthly.Sub(threshold)
		if overspend.IsNegative() {
			overspend = decimal.Zero
		}
		annualSavings := overspend.Mul(twelve)

		result.Categories = append(result.Categories, CategoryAnalysis{
			Category:       category,
			AnnualSpending: annual,
			MonthlyAverage: monthly,
			Threshold:      threshold,
			Overspend:      overspend,
			AnnualSavings:  annualSavings,
			IsWithinLimit:  monthly.LessThanOrEqual(threshold),
		})
		result.TotalAnnualSavings = result.TotalAnnualSavings.Add(annualSavings)
	}

	for _, years := range projectionYears {
		result.Projections[years] = futureValueOfAnnuity(result.TotalAnnualSavings, years)
	}

	return result
}

// futureValueOfAnnuity computes FV = payment * (((1+r)^years - 1) / r) for
// an ordinary annuity at the fixed annual growth rate.
func futureValueOfAnnuity(annualPayment decimal.Decimal, years int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(annualGrowthRate).Pow(decimal.NewFromInt(int64(years)))
	factor := growth.Sub(decimal.NewFromInt(1)).Div(annualGrowthRate)
	return annualPayment.Mul(factor)
}
