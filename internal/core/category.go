package core

import "strings"

// Category is one of the fixed expense classifications. The set is
// closed: the server stores whatever string it is given, but this client
// only ever submits one of the seven below.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryBills          Category = "Bills"
	CategoryHealth         Category = "Health"
	CategoryOther          Category = "Other"
)

// Filter restricts which expenses are shown and totaled: FilterAll or
// exactly one category name.
type Filter string

// FilterAll selects every expense regardless of category.
const FilterAll Filter = "All"

var categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryEntertainment,
	CategoryShopping,
	CategoryBills,
	CategoryHealth,
	CategoryOther,
}

var icons = map[Category]string{
	CategoryFood:           "🍔",
	CategoryTransportation: "🚗",
	CategoryEntertainment:  "🎬",
	CategoryShopping:       "🛍",
	CategoryBills:          "🧾",
	CategoryHealth:         "💊",
	CategoryOther:          "💳",
}

// iconDefault covers records whose category is outside the closed set,
// e.g. written by another client.
const iconDefault = "❓"

// Categories returns the fixed seven categories in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Filters returns FilterAll followed by one filter per category, the
// order of the filter bar.
func Filters() []Filter {
	out := make([]Filter, 0, len(categories)+1)
	out = append(out, FilterAll)
	for _, c := range categories {
		out = append(out, Filter(c))
	}
	return out
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	_, ok := icons[c]
	return ok
}

// IconFor maps a category to its display glyph. Unknown categories get
// a default glyph rather than an empty cell.
func IconFor(c Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return iconDefault
}

// ParseFilter matches user input against the known filters,
// case-insensitively. Returns false for anything unrecognized.
func ParseFilter(s string) (Filter, bool) {
	for _, f := range Filters() {
		if strings.EqualFold(string(f), s) {
			return f, true
		}
	}
	return "", false
}

// ParseCategory matches user input against the seven categories,
// case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}
