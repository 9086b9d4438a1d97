package models

// Category is a coarse spending class derived from one or more MCCs.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryRetailShopping Category = "Retail & Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment & Recreation"
	CategoryTravelLodging  Category = "Travel & Lodging"
	CategoryProfessional   Category = "Professional Services"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryHealthcare     Category = "Healthcare & Medical"
	CategoryUtilities      Category = "Utilities & Telecom"
	CategoryGovernment     Category = "Government & Taxes"
	CategoryFinancial      Category = "Financial Services"
	CategoryAutomotive     Category = "Automotive"
	CategoryHomeGarden     Category = "Home & Garden"
	CategoryEducation      Category = "Education"
	CategoryCharitable     Category = "Charitable & Non-Profit"
	CategoryBusiness       Category = "Business Services"
	CategoryOther          Category = "Other"
)

// AllCategories returns every valid category value.
func AllCategories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryRetailShopping,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryTravelLodging,
		CategoryProfessional,
		CategoryPersonalCare,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryGovernment,
		CategoryFinancial,
		CategoryAutomotive,
		CategoryHomeGarden,
		CategoryEducation,
		CategoryCharitable,
		CategoryBusiness,
		CategoryOther,
	}
}

// IsValidCategory reports whether c is one of the closed category set.
func IsValidCategory(c Category) bool {
	for _, valid := range AllCategories() {
		if c == valid {
			return true
		}
	}
	return false
}
