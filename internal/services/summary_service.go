package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"confronto/internal/budget"
	"confronto/internal/cache"
	"confronto/internal/core"
)

// SummaryService fetches both comparison periods and runs the aggregation
// engine over them. Results are memoized per option set: every filter
// change recomputes from scratch, but repeated renders of the same view
// reuse the cached, immutable summary.
type SummaryService struct {
	source budget.TransactionSource
	cache  *cache.LRU[core.SpendSummary]

	// now is injectable for tests; the engine receives it so the
	// current-day marker is reproducible.
	now func() time.Time
}

// SummaryRequest carries the dashboard's option set.
type SummaryRequest struct {
	Year        int
	CompareYear int
	Month       int // 0 = full year
	Excluded    []string
}

func NewSummaryService(source budget.TransactionSource, cacheSize int, cacheTTL time.Duration) *SummaryService {
	return &SummaryService{
		source: source,
		cache:  cache.New[core.SpendSummary](cacheSize, cacheTTL, 10*time.Minute),
		now:    time.Now,
	}
}

// Summary returns the full SpendSummary for the requested comparison.
// The two years are fetched concurrently; the engine itself never fails,
// so the only error source is the upstream fetch.
func (s *SummaryService) Summary(ctx context.Context, req SummaryRequest) (core.SpendSummary, error) {
	key := cacheKey(req)
	if cached, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "Summary cache hit", "cache_key", key)
		return cached, nil
	}

	var current, previous []core.Transaction
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := s.source.ListTransactions(gctx, req.Year)
		if err != nil {
			return fmt.Errorf("list transactions for %d: %w", req.Year, err)
		}
		current = txs
		return nil
	})
	g.Go(func() error {
		txs, err := s.source.ListTransactions(gctx, req.CompareYear)
		if err != nil {
			return fmt.Errorf("list transactions for %d: %w", req.CompareYear, err)
		}
		previous = txs
		return nil
	})
	if err := g.Wait(); err != nil {
		return core.SpendSummary{}, err
	}

	summary := core.Summarize(core.CompareInput{
		Current:      current,
		Previous:     previous,
		CurrentYear:  req.Year,
		PreviousYear: req.CompareYear,
		Month:        req.Month,
		Excluded:     req.Excluded,
		Now:          s.now(),
	})

	s.cache.Set(key, summary)
	slog.InfoContext(ctx, "Summary computed",
		"year", req.Year,
		"compare_year", req.CompareYear,
		"month", req.Month,
		"excluded", len(req.Excluded),
		"transactions", len(current)+len(previous))

	return summary, nil
}

// Categories returns the pre-exclusion category totals for the requested
// comparison, sorted by name. Totals ignore any exclusion list so filter
// labels stay stable while categories are toggled off.
func (s *SummaryService) Categories(ctx context.Context, req SummaryRequest) ([]core.CategoryTotal, error) {
	req.Excluded = nil
	summary, err := s.Summary(ctx, req)
	if err != nil {
		return nil, err
	}

	totals := make([]core.CategoryTotal, 0, len(summary.Categories))
	for _, name := range summary.Categories {
		ct := core.CategoryTotal{
			Name:         name,
			CurrentYear:  summary.CategoryTotals[name],
			PreviousYear: summary.CategoryTotalsPrevious[name],
		}
		ct.Difference = ct.CurrentYear - ct.PreviousYear
		if ct.PreviousYear > 0 {
			v := ct.Difference / ct.PreviousYear * 100
			ct.PercentChange = &v
		}
		totals = append(totals, ct)
	}
	return totals, nil
}

// Close releases the cache janitor.
func (s *SummaryService) Close() error {
	s.cache.Stop()
	return nil
}

// cacheKey builds a stable key from the option set; the excluded list is
// order-insensitive.
func cacheKey(req SummaryRequest) string {
	excluded := append([]string(nil), req.Excluded...)
	sort.Strings(excluded)
	return strconv.Itoa(req.Year) + "|" +
		strconv.Itoa(req.CompareYear) + "|" +
		strconv.Itoa(req.Month) + "|" +
		strings.Join(excluded, ",")
}
