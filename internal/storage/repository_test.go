package storage

import (
	"context"
	"path/filepath"
	"testing"

	"confronto/internal/prefs"
)

// compile-time interface check
var _ prefs.Store = (*SQLitePrefsStore)(nil)

func newTestStore(t *testing.T) *SQLitePrefsStore {
	t.Helper()
	s, err := NewSQLitePrefsStore(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLitePrefsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, ok, err := s.Get(ctx, prefs.KeyYear); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, prefs.KeyYear, "2025"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, prefs.KeyYear)
	if err != nil || !ok || v != "2025" {
		t.Fatalf("get = %q/%v/%v", v, ok, err)
	}

	// Upsert overwrites.
	if err := s.Set(ctx, prefs.KeyYear, "2024"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, prefs.KeyYear); v != "2024" {
		t.Fatalf("overwrite not applied, got %q", v)
	}

	if err := s.Remove(ctx, prefs.KeyYear); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, prefs.KeyYear); ok {
		t.Fatalf("expected miss after remove")
	}
	if err := s.Remove(ctx, prefs.KeyYear); err != nil {
		t.Fatalf("remove absent key: %v", err)
	}
}

func TestSQLitePrefsAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_ = s.Set(ctx, prefs.KeyMonth, "3")
	_ = s.Set(ctx, prefs.KeyExcluded, "Rent")

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all[prefs.KeyMonth] != "3" || all[prefs.KeyExcluded] != "Rent" {
		t.Fatalf("all = %v", all)
	}
}

func TestSQLitePrefsReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := NewSQLitePrefsStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Set(ctx, prefs.KeyCompareYear, "2023"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Preferences survive a restart; migrations are idempotent.
	s2, err := NewSQLitePrefsStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()
	v, ok, err := s2.Get(ctx, prefs.KeyCompareYear)
	if err != nil || !ok || v != "2023" {
		t.Fatalf("after reopen: %q/%v/%v", v, ok, err)
	}
}
