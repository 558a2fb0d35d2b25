package google

import (
	"fmt"
	"time"

	"confronto/internal/core"
	"confronto/internal/export"
)

// buildRows flattens a summary into the tabular layout written to the
// spreadsheet: a title block, the period totals, the per-category
// comparison and the weekly roll-up.
func buildRows(ref export.SummaryRef, s core.SpendSummary) [][]any {
	title := fmt.Sprintf("Spending %d vs %d", ref.Year, ref.CompareYear)
	if ref.Month >= 1 && ref.Month <= 12 {
		title = fmt.Sprintf("Spending %s %d vs %d", time.Month(ref.Month).String(), ref.Year, ref.CompareYear)
	}

	rows := [][]any{
		{title},
		{"Generated", time.Now().Format("2006-01-02 15:04")},
		{},
		{"", ref.Year, ref.CompareYear, "Difference", "Change %"},
		{"Total", s.TotalCurrentYear, s.TotalPreviousYear, s.Difference, percentCell(s.PercentChange)},
		{},
		{"Category", ref.Year, ref.CompareYear, "Difference", "Change %"},
	}

	for _, name := range s.Categories {
		cur := s.CategoryTotals[name]
		prev := s.CategoryTotalsPrevious[name]
		var pct any = "new"
		if prev > 0 {
			pct = (cur - prev) / prev * 100
		}
		rows = append(rows, []any{name, cur, prev, cur - prev, pct})
	}

	rows = append(rows, []any{}, []any{"Week", ref.Year, ref.CompareYear, "Transactions", ""})
	for _, w := range s.Weeks {
		rows = append(rows, []any{
			w.Week, w.CurrentTotal, w.PreviousTotal,
			fmt.Sprintf("%d vs %d", w.CurrentCount, w.PreviousCount), "",
		})
	}

	return rows
}

func percentCell(p *float64) any {
	if p == nil {
		return "new"
	}
	return *p
}
