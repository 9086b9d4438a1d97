package mcc

import (
	"strconv"
	"testing"

	"spendwatch/internal/models"
)

func TestClassifyExactMatch(t *testing.T) {
	cases := []struct {
		code     string
		category models.Category
		sub      string
	}{
		{"5411", models.CategoryFoodDining, "Groceries"},
		{"5541", models.CategoryAutomotive, "Fuel"},
		{"7523", models.CategoryTransportation, "Parking"},
		{"8062", models.CategoryHealthcare, "Hospitals"},
		{"9311", models.CategoryGovernment, "Taxes"},
	}
	for _, tc := range cases {
		e := Classify(tc.code)
		if e.Category != tc.category {
			t.Errorf("Classify(%q) category = %q, want %q", tc.code, e.Category, tc.category)
		}
		if e.Subcategory != tc.sub {
			t.Errorf("Classify(%q) subcategory = %q, want %q", tc.code, e.Subcategory, tc.sub)
		}
	}
}

func TestClassifyCountryPrefix(t *testing.T) {
	cases := []string{"CH,5411", "CH5411", "  5411  ", "ch,5411"}
	for _, code := range cases {
		e := Classify(code)
		if e.Category != models.CategoryFoodDining {
			t.Errorf("Classify(%q) = %q, want Food & Dining", code, e.Category)
		}
	}
}

func TestClassifyRangeFallback(t *testing.T) {
	cases := []struct {
		code     string
		category models.Category
	}{
		{"9999", models.CategoryGovernment},  // in [9000,9999], not in table
		{"3100", models.CategoryTravelLodging}, // airline range
		{"4300", models.CategoryTransportation},
		{"6100", models.CategoryFinancial},
		{"0100", models.CategoryBusiness},
		{"2500", models.CategoryProfessional},
	}
	for _, tc := range cases {
		if _, ok := Lookup(tc.code); ok {
			t.Fatalf("test code %q unexpectedly present in table", tc.code)
		}
		e := Classify(tc.code)
		if e.Category != tc.category {
			t.Errorf("Classify(%q) = %q, want %q", tc.code, e.Category, tc.category)
		}
	}
}

func TestClassifyRangeGap(t *testing.T) {
	// 3300-3350 sits between the airline and car-rental brackets.
	for _, code := range []string{"3300", "3350"} {
		e := Classify(code)
		if e.Category != models.CategoryOther {
			t.Errorf("Classify(%q) = %q, want Other", code, e.Category)
		}
	}
}

func TestClassifyGarbage(t *testing.T) {
	for _, code := range []string{"", "   ", "abcd", "12ab", "-1", "0"} {
		e := Classify(code)
		if !models.IsValidCategory(e.Category) {
			t.Errorf("Classify(%q) returned invalid category %q", code, e.Category)
		}
	}
}

// Classification must be total and always land in the closed category set.
func TestClassifyTotality(t *testing.T) {
	for n := 0; n <= 9999; n++ {
		code := strconv.Itoa(n)
		e := Classify(code)
		if !models.IsValidCategory(e.Category) {
			t.Fatalf("Classify(%q) returned invalid category %q", code, e.Category)
		}
	}
}

// Exact table entries must never be shadowed by range inference.
func TestExactMatchPriority(t *testing.T) {
	if Classify("4119").Category != models.CategoryHealthcare {
		t.Error("4119 (ambulance) must use its table category, not the transportation range")
	}
	if Classify("5541").Category != models.CategoryAutomotive {
		t.Error("5541 (fuel) must use its table category, not the retail range")
	}
}

func TestRangeBracketsDisjoint(t *testing.T) {
	for n := 1; n <= 9999; n++ {
		matches := 0
		for _, b := range rangeBrackets {
			if n >= b.lo && n <= b.hi {
				matches++
			}
		}
		if matches > 1 {
			t.Fatalf("code %d matches %d brackets", n, matches)
		}
	}
}

func TestTableCodesAreCanonical(t *testing.T) {
	for code, e := range table {
		if len(code) != 4 {
			t.Errorf("table key %q is not 4 digits", code)
		}
		if _, err := strconv.Atoi(code); err != nil {
			t.Errorf("table key %q is not numeric", code)
		}
		if e.Code != code {
			t.Errorf("entry code %q does not match key %q", e.Code, code)
		}
		if !models.IsValidCategory(e.Category) {
			t.Errorf("entry %q has invalid category %q", code, e.Category)
		}
	}
}
