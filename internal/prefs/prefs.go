// Package prefs defines the key-value port used to persist user choices
// (selected comparison years, month, excluded categories, chart range and
// the API credential) across sessions. The aggregation engine never touches
// this; it exists purely for the surrounding application.
package prefs

import "context"

// Well-known preference keys.
const (
	KeyYear        = "year"
	KeyCompareYear = "compare_year"
	KeyMonth       = "month"
	KeyExcluded    = "excluded_categories"
	KeyChartRange  = "chart_range"
	KeyAPIToken    = "api_token"
)

// IsKnownKey reports whether key is one of the well-known preference keys.
func IsKnownKey(key string) bool {
	switch key {
	case KeyYear, KeyCompareYear, KeyMonth, KeyExcluded, KeyChartRange, KeyAPIToken:
		return true
	}
	return false
}

// Store is a minimal key-value port with pluggable backends.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores or overwrites a value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes a key; removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// All returns a snapshot of every stored preference.
	All(ctx context.Context) (map[string]string, error)

	Close() error
}
