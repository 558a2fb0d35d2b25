// Package memory provides a fixture-backed budget.TransactionSource used
// for local development and tests, seeded from JSON files on disk.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"confronto/internal/core"
)

type Source struct {
	mu    sync.Mutex
	years map[int][]core.Transaction
}

func New() *Source {
	return &Source{years: make(map[int][]core.Transaction)}
}

// NewFromFiles seeds the source with transactions_<year>.json files found
// under base. Missing or malformed files are simply skipped.
func NewFromFiles(base string) *Source {
	s := New()
	matches, err := filepath.Glob(filepath.Join(base, "transactions_*.json"))
	if err != nil {
		return s
	}
	for _, path := range matches {
		var year int
		if _, err := fmt.Sscanf(filepath.Base(path), "transactions_%d.json", &year); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var txs []core.Transaction
		if err := json.Unmarshal(data, &txs); err != nil {
			continue
		}
		s.Seed(year, txs)
	}
	return s
}

// Seed replaces the stored transactions for a year.
func (s *Source) Seed(year int, txs []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.years[year] = append([]core.Transaction(nil), txs...)
}

// ListTransactions implements budget.TransactionSource.
func (s *Source) ListTransactions(_ context.Context, year int) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.years[year]...), nil
}
