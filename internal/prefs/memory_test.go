package prefs

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	if _, ok, _ := s.Get(ctx, KeyYear); ok {
		t.Fatalf("expected miss on empty store")
	}

	if err := s.Set(ctx, KeyYear, "2025"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, KeyYear)
	if err != nil || !ok || v != "2025" {
		t.Fatalf("get = %q/%v/%v", v, ok, err)
	}

	if err := s.Set(ctx, KeyYear, "2024"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, KeyYear); v != "2024" {
		t.Fatalf("overwrite not applied, got %q", v)
	}

	if err := s.Remove(ctx, KeyYear); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, KeyYear); ok {
		t.Fatalf("expected miss after remove")
	}
	// Removing an absent key is fine.
	if err := s.Remove(ctx, KeyYear); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestMemoryStoreAll(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	_ = s.Set(ctx, KeyMonth, "1")
	_ = s.Set(ctx, KeyExcluded, "Food,Travel")

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all[KeyMonth] != "1" || all[KeyExcluded] != "Food,Travel" {
		t.Fatalf("all = %v", all)
	}

	// The snapshot is detached from the store.
	all[KeyMonth] = "12"
	if v, _, _ := s.Get(ctx, KeyMonth); v != "1" {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}
