package model

import "strings"

// Category classifies an expense into a fixed set of spending classes.
type Category string

const (
	CategoryGroceries      Category = "GROCERIES"
	CategoryRent           Category = "RENT"
	CategoryUtilities      Category = "UTILITIES"
	CategoryTransportation Category = "TRANSPORTATION"
	CategoryEntertainment  Category = "ENTERTAINMENT"
	CategoryHealthcare     Category = "HEALTHCARE"
	CategoryOther          Category = "OTHER"
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryGroceries,
		CategoryRent,
		CategoryUtilities,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryOther,
	}
}

// CategoryFromString resolves free text to a Category. Input is trimmed
// and matched case-insensitively against the category names; anything
// unrecognized resolves to CategoryOther. It never fails.
func CategoryFromString(value string) Category {
	normalized := Category(strings.ToUpper(strings.TrimSpace(value)))
	for _, c := range Categories() {
		if c == normalized {
			return c
		}
	}
	return CategoryOther
}
