// Package memory provides an in-process SummaryWriter used in tests and
// local development, capturing the last written summary.
package memory

import (
	"context"
	"fmt"
	"sync"

	"confronto/internal/core"
	"confronto/internal/export"
)

type Writer struct {
	mu      sync.Mutex
	entries []Entry
}

// Entry is one captured export.
type Entry struct {
	Ref     export.SummaryRef
	Summary core.SpendSummary
}

func New() *Writer {
	return &Writer{}
}

var _ export.SummaryWriter = (*Writer)(nil)

// WriteSummary records the summary and returns a synthetic reference.
func (w *Writer) WriteSummary(_ context.Context, ref export.SummaryRef, s core.SpendSummary) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = append(w.entries, Entry{Ref: ref, Summary: s})
	return fmt.Sprintf("mem:%d", len(w.entries)), nil
}

// Entries returns a snapshot of everything written so far.
func (w *Writer) Entries() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Entry(nil), w.entries...)
}
