package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"spendwatch/internal/fx"
	"spendwatch/internal/models"
)

func TestCheckAdvisoryEmpty(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	advisory := CheckAdvisory(nil, fx.Table{}, now)
	if advisory.FuelTip || advisory.ParkingTip {
		t.Error("empty input must yield no tips")
	}
	if !advisory.FuelTotal.IsZero() || !advisory.ParkingTotal.IsZero() {
		t.Error("empty input must yield zero totals")
	}
	if advisory.PrimaryTip != "" {
		t.Errorf("primary tip = %q, want empty", advisory.PrimaryTip)
	}
}

func TestCheckAdvisoryFuelThreshold(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// Three fuel purchases of 80 CHF within the 30-day window.
	txs := []models.Transaction{
		tx("2026-07-10", "80", "756", "5541"),
		tx("2026-07-20", "80", "756", "5541"),
		tx("2026-07-30", "80", "756", "5541"),
	}
	advisory := CheckAdvisory(txs, fx.Table{}, now)

	if !advisory.FuelTotal.Equal(decimal.NewFromInt(240)) {
		t.Errorf("fuel total = %s, want 240", advisory.FuelTotal)
	}
	if !advisory.FuelTip {
		t.Error("240 > 200 must trigger the fuel tip")
	}
	if advisory.PrimaryTip != "fuel" {
		t.Errorf("primary tip = %q, want fuel", advisory.PrimaryTip)
	}
}

func TestCheckAdvisoryWindows(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2026-06-25", "300", "756", "5542"), // fuel, outside 30-day window
		tx("2026-06-25", "20", "756", "7523"),  // parking, inside 60-day window
		tx("2026-09-01", "500", "756", "5541"), // future-dated, ignored
	}
	advisory := CheckAdvisory(txs, fx.Table{}, now)

	if !advisory.FuelTotal.IsZero() {
		t.Errorf("fuel total = %s, want 0 (outside window)", advisory.FuelTotal)
	}
	if advisory.FuelTip {
		t.Error("fuel tip must not fire outside its window")
	}
	if !advisory.ParkingTotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("parking total = %s, want 20", advisory.ParkingTotal)
	}
	if !advisory.ParkingTip {
		t.Error("20 > 15 must trigger the parking tip")
	}
	if advisory.PrimaryTip != "parking" {
		t.Errorf("primary tip = %q, want parking", advisory.PrimaryTip)
	}
}

func TestCheckAdvisoryAbsoluteAmounts(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// A refund does not reduce the magnitude sum.
	txs := []models.Transaction{
		tx("2026-07-10", "150", "756", "5541"),
		tx("2026-07-12", "-150", "756", "5541"),
	}
	advisory := CheckAdvisory(txs, fx.Table{}, now)
	if !advisory.FuelTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("fuel total = %s, want 300 (signs discarded)", advisory.FuelTotal)
	}
	if !advisory.FuelTip {
		t.Error("300 > 200 must trigger the fuel tip")
	}
}

func TestCheckAdvisoryBothTipsIndependent(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("2026-07-20", "250", "756", "5541"),
		tx("2026-07-21", "30", "756", "7523"),
	}
	advisory := CheckAdvisory(txs, fx.Table{}, now)
	if !advisory.FuelTip || !advisory.ParkingTip {
		t.Error("both windows may trigger simultaneously")
	}
	// Fuel wins the single-slot widget.
	if advisory.PrimaryTip != "fuel" {
		t.Errorf("primary tip = %q, want fuel", advisory.PrimaryTip)
	}
}

func TestCheckAdvisoryNormalizesCurrency(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rates := fx.Table{"978": decimal.RequireFromString("2")}
	txs := []models.Transaction{
		tx("2026-07-20", "150", "978", "5541"), // 300 CHF
	}
	advisory := CheckAdvisory(txs, rates, now)
	if !advisory.FuelTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("fuel total = %s, want 300 CHF", advisory.FuelTotal)
	}
	if !advisory.FuelTip {
		t.Error("normalized 300 > 200 must trigger the fuel tip")
	}
}
