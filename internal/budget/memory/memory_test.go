package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"confronto/internal/core"
)

func TestSeedAndList(t *testing.T) {
	s := New()
	s.Seed(2024, []core.Transaction{{ID: 1, Date: "2024-01-02", Amount: "-10"}})

	got, err := s.ListTransactions(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %+v", got)
	}

	// Returned slices are copies; mutating one must not affect the store.
	got[0].Amount = "-999"
	again, _ := s.ListTransactions(context.Background(), 2024)
	if again[0].Amount != "-10" {
		t.Fatalf("store was mutated through a returned slice")
	}
}

func TestListUnknownYear(t *testing.T) {
	s := New()
	got, err := s.ListTransactions(context.Background(), 1999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no transactions, got %d", len(got))
	}
}

func TestNewFromFiles(t *testing.T) {
	dir := t.TempDir()
	fixture := `[{"id":1,"date":"2023-02-03","amount":"-42.50","category_name":"Food"}]`
	if err := os.WriteFile(filepath.Join(dir, "transactions_2023.json"), []byte(fixture), 0644); err != nil {
		t.Fatal(err)
	}
	// Junk that must be skipped quietly.
	_ = os.WriteFile(filepath.Join(dir, "transactions_bad.json"), []byte("{"), 0644)

	s := NewFromFiles(dir)
	got, err := s.ListTransactions(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].CategoryName != "Food" {
		t.Fatalf("got %+v", got)
	}
}
