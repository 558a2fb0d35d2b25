package core

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Uncategorized is the normalized label for transactions without a category.
// It is the join key used across every category-keyed structure.
const Uncategorized = "Uncategorized"

// Transaction mirrors the shape returned by the budgeting API. Amount keeps
// the API's signed decimal string representation; under its sign convention
// a negative amount is a debit.
type Transaction struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"` // YYYY-MM-DD, no time component
	Amount            string `json:"amount"`
	CategoryName      string `json:"category_name,omitempty"`
	IsIncome          bool   `json:"is_income"`
	ExcludeFromTotals bool   `json:"exclude_from_totals"`
}

// Category returns the normalized category name: blank maps to Uncategorized.
func (t Transaction) Category() string {
	name := strings.TrimSpace(t.CategoryName)
	if name == "" {
		return Uncategorized
	}
	return name
}

// AbsAmount returns the magnitude of the amount. Malformed strings, NaN and
// infinities all degrade to zero; upstream data problems are never surfaced.
func (t Transaction) AbsAmount() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(t.Amount), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Abs(v)
}

// IsExpense reports whether the transaction participates in aggregation:
// not income, not excluded from totals, and a debit. The sign test is on the
// raw string so that "-0" or a malformed negative amount still shows up in
// weekly line items while contributing zero to every sum.
func (t Transaction) IsExpense() bool {
	return !t.IsIncome && !t.ExcludeFromTotals &&
		strings.HasPrefix(strings.TrimSpace(t.Amount), "-")
}

// When parses the transaction date. ok is false for malformed dates; such
// transactions cannot be mapped to a day index and drop out of every view.
func (t Transaction) When() (time.Time, bool) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(t.Date))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
