package model

// CategoryOther is the fallback category used when the model cannot place a
// transaction, returns an unknown category, or the AI call fails outright.
const CategoryOther = "Other"

var personalCategories = []string{
	"Food",
	"Shopping",
	"Travel",
	"Bills",
	"Entertainment",
	"Health",
	"Education",
	"Investment",
	"Rent",
	"Income",
	CategoryOther,
}

var businessCategories = []string{
	"Revenue",
	"Salaries",
	"Rent",
	"Utilities",
	"Marketing",
	"Inventory",
	"Logistics",
	"Taxes",
	"Software",
	CategoryOther,
}

// CategoriesForMode returns the permitted categories for a mode. The slice
// is a copy; callers may reorder it freely.
func CategoriesForMode(mode Mode) []string {
	var src []string
	switch mode {
	case ModeBusiness:
		src = businessCategories
	case ModePersonal:
		src = personalCategories
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsValidCategory reports whether category is in the permitted set for mode.
func IsValidCategory(mode Mode, category string) bool {
	for _, c := range CategoriesForMode(mode) {
		if c == category {
			return true
		}
	}
	return false
}
