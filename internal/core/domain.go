package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date wraps time.Time so the wire format stays in one place.
	// The embedded time.Time marshals to RFC 3339 text, which is what
	// the expenses endpoint expects for the date field.
	Date struct {
		time.Time
	}

	// Expense is one tracked transaction as returned by the server.
	// ID is assigned server-side and never changes after creation.
	Expense struct {
		ID          string   `json:"id"`
		Amount      Money    `json:"amount"`
		Description string   `json:"description"`
		Category    Category `json:"category"`
		Date        Date     `json:"date"`
	}

	// NewExpense is an unsent submission: raw form input plus the
	// selected category. Amount stays textual until Validate parses it.
	NewExpense struct {
		Amount      string
		Description string
		Category    Category
	}
)

var (
	ErrEmptyAmount      = errors.New("amount is required")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidCategory  = errors.New("unknown category")
)

// NewDate builds a Date at the given instant.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// Validate checks presence and numeric form only. It returns the parsed
// amount so callers do not parse twice.
func (n NewExpense) Validate() (Money, error) {
	if strings.TrimSpace(n.Amount) == "" {
		return Money{}, ErrEmptyAmount
	}
	if strings.TrimSpace(n.Description) == "" {
		return Money{}, ErrEmptyDescription
	}
	cents, err := ParseDecimalToCents(n.Amount)
	if err != nil {
		return Money{}, err
	}
	if !n.Category.Valid() {
		return Money{}, ErrInvalidCategory
	}
	return Money{Cents: cents}, nil
}

// Normalized returns the expense ready to send: parsed amount, trimmed
// description, and the submission date stamped by the given clock.
func (n NewExpense) Normalized(now time.Time) (Expense, error) {
	amount, err := n.Validate()
	if err != nil {
		return Expense{}, err
	}
	return Expense{
		Amount:      amount,
		Description: strings.TrimSpace(n.Description),
		Category:    n.Category,
		Date:        NewDate(now),
	}, nil
}
