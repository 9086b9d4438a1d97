// Package mcc classifies merchant-category codes into spending categories.
//
// Classification is total: every input string resolves to a category. Exact
// table matches win; unmapped numeric codes fall back to standard MCC range
// brackets; everything else is Other.
package mcc

import (
	"strconv"
	"strings"

	"spendwatch/internal/models"
)

// rangeBracket classifies an unmapped numeric code by MCC range membership.
// Brackets are disjoint and ordered; the first match wins.
type rangeBracket struct {
	lo, hi      int
	category    models.Category
	subcategory string
}

var rangeBrackets = []rangeBracket{
	{1, 1499, models.CategoryBusiness, ""},
	{1500, 2999, models.CategoryProfessional, ""},
	{3000, 3299, models.CategoryTravelLodging, "Airlines"},
	{3351, 3441, models.CategoryTravelLodging, "Car Rental"},
	{3501, 3999, models.CategoryTravelLodging, "Hotels"},
	{4000, 4799, models.CategoryTransportation, ""},
	{4800, 4999, models.CategoryUtilities, ""},
	{5000, 5599, models.CategoryRetailShopping, ""},
	{5600, 5699, models.CategoryRetailShopping, "Clothing"},
	{5700, 5799, models.CategoryRetailShopping, "Misc"},
	{5800, 5999, models.CategoryFoodDining, ""},
	{6000, 6999, models.CategoryFinancial, ""},
	{7000, 7299, models.CategoryBusiness, ""},
	{7300, 7699, models.CategoryProfessional, ""},
	{7800, 7999, models.CategoryEntertainment, ""},
	{8000, 8999, models.CategoryProfessional, ""},
	{9000, 9999, models.CategoryGovernment, ""},
}

// Classify resolves an MCC string to its table entry. Unknown codes are
// classified by range; unparseable codes and range gaps return Other.
// It never fails.
func Classify(code string) Entry {
	normalized := NormalizeCode(code)

	if entry, ok := table[normalized]; ok {
		return entry
	}

	n, err := strconv.Atoi(normalized)
	if err != nil {
		return otherEntry(code)
	}

	for _, b := range rangeBrackets {
		if n >= b.lo && n <= b.hi {
			return Entry{
				Code:        normalized,
				Description: "Unlisted merchant category",
				Category:    b.category,
				Subcategory: b.subcategory,
			}
		}
	}

	return otherEntry(normalized)
}

// NormalizeCode strips a leading country-code prefix (letters followed by an
// optional comma) and surrounding whitespace from a raw MCC value.
func NormalizeCode(code string) string {
	s := strings.TrimSpace(code)

	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i > 0 {
		s = s[i:]
		s = strings.TrimPrefix(s, ",")
		s = strings.TrimSpace(s)
	}

	return s
}

func otherEntry(code string) Entry {
	return Entry{
		Code:        code,
		Description: "Unknown merchant category",
		Category:    models.CategoryOther,
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
