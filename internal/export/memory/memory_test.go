package memory

import (
	"context"
	"testing"

	"confronto/internal/core"
	"confronto/internal/export"
)

func TestWriterCapturesSummaries(t *testing.T) {
	w := New()

	ref := export.SummaryRef{Year: 2025, CompareYear: 2024, Month: 2}
	got, err := w.WriteSummary(context.Background(), ref, core.SpendSummary{TotalCurrentYear: 42})
	if err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if got != "mem:1" {
		t.Errorf("ref = %q", got)
	}

	entries := w.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Ref != ref {
		t.Errorf("ref = %+v", entries[0].Ref)
	}
	if entries[0].Summary.TotalCurrentYear != 42 {
		t.Errorf("summary = %+v", entries[0].Summary)
	}
}
