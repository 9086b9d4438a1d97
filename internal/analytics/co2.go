package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"spendwatch/internal/fx"
	"spendwatch/internal/mcc"
	"spendwatch/internal/models"
)

// Advisory thresholds and windows. Fuel looks back 30 days, parking 60.
var (
	fuelMCCs       = map[string]bool{"5541": true, "5542": true}
	parkingMCCs    = map[string]bool{"7523": true}
	fuelThreshold  = decimal.NewFromInt(200)
	parkThreshold  = decimal.NewFromInt(15)
	fuelWindowDays = 30
	parkWindowDays = 60
)

// Advisory is the CO2 sustainability check over recent fuel and parking
// spending. The two windows are independent; PrimaryTip applies the
// fuel-first precedence used by single-slot dashboard widgets.
type Advisory struct {
	FuelTip      bool            `json:"fuel_tip"`
	ParkingTip   bool            `json:"parking_tip"`
	FuelTotal    decimal.Decimal `json:"fuel_total"`
	ParkingTotal decimal.Decimal `json:"parking_total"`
	PrimaryTip   string          `json:"primary_tip,omitempty"` // "fuel", "parking" or empty
}

// CheckAdvisory sums normalized fuel and parking spending over their recent
// windows and decides whether to surface a sustainability tip. Amount signs
// are discarded: debits and credits both contribute magnitude.
func CheckAdvisory(transactions []models.Transaction, rates fx.Table, now time.Time) Advisory {
	fuelSince := now.AddDate(0, 0, -fuelWindowDays)
	parkSince := now.AddDate(0, 0, -parkWindowDays)

	var advisory Advisory
	for _, tx := range transactions {
		if tx.Date.IsZero() || tx.Date.After(now) {
			continue
		}
		code := mcc.NormalizeCode(tx.MCC)
		amount := rates.Normalize(tx.Amount, tx.Currency).Abs()

		if fuelMCCs[code] && !tx.Date.Before(fuelSince) {
			advisory.FuelTotal = advisory.FuelTotal.Add(amount)
		}
		if parkingMCCs[code] && !tx.Date.Before(parkSince) {
			advisory.ParkingTotal = advisory.ParkingTotal.Add(amount)
		}
	}

	advisory.FuelTip = advisory.FuelTotal.GreaterThan(fuelThreshold)
	advisory.ParkingTip = advisory.ParkingTotal.GreaterThan(parkThreshold)

	switch {
	case advisory.FuelTip:
		advisory.PrimaryTip = "fuel"
	case advisory.ParkingTip:
		advisory.PrimaryTip = "parking"
	}

	return advisory
}
