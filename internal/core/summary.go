package core

// Filtered is a pure projection of the list under a filter. FilterAll
// returns the list unchanged; otherwise only records whose category
// equals the filter, relative order preserved.
func Filtered(expenses []Expense, f Filter) []Expense {
	if f == FilterAll {
		return expenses
	}
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Category == Category(f) {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of the filtered view. A filter with no
// matching records totals to zero.
func Total(expenses []Expense, f Filter) Money {
	var total Money
	for _, e := range Filtered(expenses, f) {
		total = total.Add(e.Amount)
	}
	return total
}
