package export

import (
	"context"

	"confronto/internal/core"
)

// Ports for outbound summary exporters.
type (
	// SummaryWriter persists a computed comparison summary to an external
	// destination and returns a reference to where it landed.
	SummaryWriter interface {
		WriteSummary(ctx context.Context, req SummaryRef, s core.SpendSummary) (ref string, err error)
	}
)

// SummaryRef identifies which comparison a summary describes.
type SummaryRef struct {
	Year        int
	CompareYear int
	Month       int // 0 = full year
}
