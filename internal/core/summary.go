package core

// CategoryAmount is an amount aggregated under a category name.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CategoryDelta is a per-category difference driver for a single day:
// how much a category moved between the compared periods.
type CategoryDelta struct {
	Name         string  `json:"name"`
	CurrentYear  float64 `json:"currentYear"`
	PreviousYear float64 `json:"previousYear"`
	Delta        float64 `json:"delta"`
}

// DailySummary is one entry per calendar day in view.
type DailySummary struct {
	Day                int              `json:"day"`
	CumulativeCurrent  float64          `json:"cumulativeCurrentYear"`
	CumulativePrevious float64          `json:"cumulativePreviousYear"`
	SpendCurrent       float64          `json:"spendCurrentYear"`
	SpendPrevious      float64          `json:"spendPreviousYear"`
	CategoriesCurrent  []CategoryAmount `json:"categoriesCurrentYear,omitempty"`
	CategoriesPrevious []CategoryAmount `json:"categoriesPreviousYear,omitempty"`
	Drivers            []CategoryDelta  `json:"differenceDrivers,omitempty"`
	// Date is the current-period calendar date this day index maps to.
	Date string `json:"date,omitempty"`
}

// CategoryTotal compares one category across the two periods.
// PercentChange is nil when the previous-period amount is zero: the
// category is "New" rather than an infinite percentage.
type CategoryTotal struct {
	Name          string   `json:"name"`
	CurrentYear   float64  `json:"currentYear"`
	PreviousYear  float64  `json:"previousYear"`
	Difference    float64  `json:"difference"`
	PercentChange *float64 `json:"percentChange"`
}

// WeekEntry is one weekly roll-up bucket: an ISO week number in year view,
// a 1-5 week-of-month bucket in month view. Line items are ordered by date.
type WeekEntry struct {
	Week                 int           `json:"week"`
	CurrentTotal         float64       `json:"currentYearTotal"`
	PreviousTotal        float64       `json:"previousYearTotal"`
	CurrentCount         int           `json:"currentYearCount"`
	PreviousCount        int           `json:"previousYearCount"`
	CurrentTransactions  []Transaction `json:"currentYearTransactions,omitempty"`
	PreviousTransactions []Transaction `json:"previousYearTransactions,omitempty"`
}

// SpendSummary is the aggregate root handed to every renderer. It is
// recomputed from scratch on each call and must not be mutated by consumers.
type SpendSummary struct {
	TotalCurrentYear  float64  `json:"totalCurrentYear"`
	TotalPreviousYear float64  `json:"totalPreviousYear"`
	Difference        float64  `json:"difference"`
	PercentChange     *float64 `json:"percentChange"`

	Days          []DailySummary  `json:"dailySpend"`
	TopCategories []CategoryTotal `json:"topCategories"`

	// Categories is the full sorted set of distinct category names across
	// both periods, computed before any category exclusion so that filter
	// controls can always label every known category.
	Categories []string `json:"categories"`

	// Per-category totals per period, also pre-exclusion: toggling a
	// category filter never makes its own label amount disappear.
	CategoryTotals         map[string]float64 `json:"categoryTotals"`
	CategoryTotalsPrevious map[string]float64 `json:"categoryTotalsPreviousYear"`

	// Position markers, zero when the current period is fully elapsed.
	CurrentDay  int `json:"currentDay"`
	CurrentWeek int `json:"currentWeek"`

	Weeks []WeekEntry `json:"weeklyData"`
}
