package core

import (
	"math"
	"sort"
	"strings"
	"time"
)

// CompareInput carries everything Summarize needs. Current and Previous are
// the raw transaction lists for the two compared periods; CurrentYear and
// PreviousYear their calendar years. Month restricts both periods to the
// same month index within their respective years (0 means full year).
// Now exists so callers and tests can pin "today"; the zero value falls
// back to time.Now().
type CompareInput struct {
	Current      []Transaction
	Previous     []Transaction
	CurrentYear  int
	PreviousYear int
	Month        int
	Excluded     []string
	Now          time.Time
}

// Summarize is the aggregation engine: a deterministic, side-effect-free
// transformation of two transaction lists into every derived view the
// dashboard renders. It never fails; degenerate input degrades to zero or
// empty output.
func Summarize(in CompareInput) SpendSummary {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	month := in.Month
	if month < 1 || month > 12 {
		// Out-of-range month from upstream misuse: fall back to full year.
		month = 0
	}

	cur := filterExpenses(in.Current, month)
	prev := filterExpenses(in.Previous, month)

	// Canonical category list and per-category totals are computed before
	// exclusion so filter labels survive their own toggle.
	categories := unionCategories(cur, prev)
	catTotalsCur := sumByCategory(cur)
	catTotalsPrev := sumByCategory(prev)

	excluded := normalizeSet(in.Excluded)
	cur = dropExcluded(cur, excluded)
	prev = dropExcluded(prev, excluded)

	totalDays := DaysInYear(in.CurrentYear)
	if month > 0 {
		totalDays = DaysInMonth(in.CurrentYear, month)
	}

	// The current-day marker exists only while the current period is still
	// elapsing; otherwise the period is treated as complete.
	currentDay := 0
	currentWeek := 0
	if in.CurrentYear == now.Year() {
		switch {
		case month == 0:
			currentDay = now.YearDay()
			currentWeek = ISOWeekNumber(now)
		case month == int(now.Month()):
			currentDay = now.Day()
			currentWeek = WeekOfMonth(now.Day())
		}
	}

	curDays := accumulateByDay(cur, month)
	prevDays := accumulateByDay(prev, month)

	days := make([]DailySummary, 0, totalDays)
	var runCur, runPrev float64
	for day := 1; day <= totalDays; day++ {
		spendCur := curDays.total[day]
		spendPrev := prevDays.total[day]

		runPrev += spendPrev
		// Beyond the marker the current cumulative holds flat: it is a
		// projection boundary, not future spend. The per-day breakdown
		// below still reflects whatever is posted on that day.
		if currentDay == 0 || day <= currentDay {
			runCur += spendCur
		}

		days = append(days, DailySummary{
			Day:                day,
			CumulativeCurrent:  math.Round(runCur),
			CumulativePrevious: math.Round(runPrev),
			SpendCurrent:       math.Round(spendCur),
			SpendPrevious:      math.Round(spendPrev),
			CategoriesCurrent:  dayBreakdown(curDays.byCategory[day]),
			CategoriesPrevious: dayBreakdown(prevDays.byCategory[day]),
			Drivers:            differenceDrivers(curDays.byCategory[day], prevDays.byCategory[day]),
			Date:               dateForDay(in.CurrentYear, month, day),
		})
	}

	// The previous period is always the complete baseline; the current one
	// only counts through the marker while the period is elapsing.
	totalPrev := sumAmounts(prev)
	totalCur := sumAmounts(cur)
	if currentDay > 0 {
		totalCur = runCur
	}

	var pct *float64
	if totalPrev > 0 {
		v := (totalCur - totalPrev) / totalPrev * 100
		pct = &v
	}

	return SpendSummary{
		TotalCurrentYear:  math.Round(totalCur),
		TotalPreviousYear: math.Round(totalPrev),
		Difference:        math.Round(totalCur - totalPrev),
		PercentChange:     pct,

		Days:          days,
		TopCategories: topCategories(sumByCategory(cur), sumByCategory(prev), 8),

		Categories:             categories,
		CategoryTotals:         roundMap(catTotalsCur),
		CategoryTotalsPrevious: roundMap(catTotalsPrev),

		CurrentDay:  currentDay,
		CurrentWeek: currentWeek,

		Weeks: weeklyRollup(cur, prev, month),
	}
}

// filterExpenses applies the month restriction and the expense filter, in
// that order. Transactions with a malformed date cannot be placed on the
// calendar and are skipped.
func filterExpenses(txs []Transaction, month int) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		d, ok := t.When()
		if !ok {
			continue
		}
		if month > 0 && int(d.Month()) != month {
			continue
		}
		if !t.IsExpense() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func normalizeSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return set
}

func dropExcluded(txs []Transaction, excluded map[string]struct{}) []Transaction {
	if len(excluded) == 0 {
		return txs
	}
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if _, skip := excluded[t.Category()]; skip {
			continue
		}
		out = append(out, t)
	}
	return out
}

func unionCategories(a, b []Transaction) []string {
	set := make(map[string]struct{})
	for _, t := range a {
		set[t.Category()] = struct{}{}
	}
	for _, t := range b {
		set[t.Category()] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func sumByCategory(txs []Transaction) map[string]float64 {
	sums := make(map[string]float64)
	for _, t := range txs {
		sums[t.Category()] += t.AbsAmount()
	}
	return sums
}

func sumAmounts(txs []Transaction) float64 {
	var total float64
	for _, t := range txs {
		total += t.AbsAmount()
	}
	return total
}

// dayAccumulator holds per-day totals and per-day per-category sums.
type dayAccumulator struct {
	total      map[int]float64
	byCategory map[int]map[string]float64
}

// accumulateByDay maps each expense to its day index (day of year in year
// view, day of month in month view) using the transaction's own date.
func accumulateByDay(txs []Transaction, month int) dayAccumulator {
	acc := dayAccumulator{
		total:      make(map[int]float64),
		byCategory: make(map[int]map[string]float64),
	}
	for _, t := range txs {
		d, ok := t.When()
		if !ok {
			continue
		}
		day := DayOfYear(d)
		if month > 0 {
			day = d.Day()
		}
		amount := t.AbsAmount()
		acc.total[day] += amount
		cats := acc.byCategory[day]
		if cats == nil {
			cats = make(map[string]float64)
			acc.byCategory[day] = cats
		}
		cats[t.Category()] += amount
	}
	return acc
}

// dayBreakdown turns one day's per-category sums into a sorted slice:
// descending by amount, ties alphabetical, zero entries dropped.
func dayBreakdown(sums map[string]float64) []CategoryAmount {
	if len(sums) == 0 {
		return nil
	}
	out := make([]CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		if amount == 0 {
			continue
		}
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Amount = math.Round(out[i].Amount)
	}
	return out
}

// differenceDrivers ranks categories by how much they moved between the two
// periods on a single day: descending absolute delta, ties broken by total
// magnitude and then name. Categories at zero in both periods are omitted.
func differenceDrivers(cur, prev map[string]float64) []CategoryDelta {
	if len(cur) == 0 && len(prev) == 0 {
		return nil
	}
	names := make(map[string]struct{}, len(cur)+len(prev))
	for n := range cur {
		names[n] = struct{}{}
	}
	for n := range prev {
		names[n] = struct{}{}
	}
	out := make([]CategoryDelta, 0, len(names))
	for n := range names {
		a, b := cur[n], prev[n]
		if a == 0 && b == 0 {
			continue
		}
		out = append(out, CategoryDelta{
			Name:         n,
			CurrentYear:  a,
			PreviousYear: b,
			Delta:        a - b,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := math.Abs(out[i].Delta), math.Abs(out[j].Delta)
		if di != dj {
			return di > dj
		}
		mi := out[i].CurrentYear + out[i].PreviousYear
		mj := out[j].CurrentYear + out[j].PreviousYear
		if mi != mj {
			return mi > mj
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].CurrentYear = math.Round(out[i].CurrentYear)
		out[i].PreviousYear = math.Round(out[i].PreviousYear)
		out[i].Delta = math.Round(out[i].Delta)
	}
	return out
}

// topCategories reduces the post-exclusion per-category sums to the top n
// entries by current-period spend.
func topCategories(cur, prev map[string]float64, n int) []CategoryTotal {
	names := make(map[string]struct{}, len(cur)+len(prev))
	for name, v := range cur {
		if v != 0 {
			names[name] = struct{}{}
		}
	}
	for name, v := range prev {
		if v != 0 {
			names[name] = struct{}{}
		}
	}
	out := make([]CategoryTotal, 0, len(names))
	for name := range names {
		a, b := cur[name], prev[name]
		ct := CategoryTotal{
			Name:         name,
			CurrentYear:  math.Round(a),
			PreviousYear: math.Round(b),
			Difference:   math.Round(a - b),
		}
		if b > 0 {
			v := (a - b) / b * 100
			ct.PercentChange = &v
		}
		out = append(out, ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CurrentYear != out[j].CurrentYear {
			return out[i].CurrentYear > out[j].CurrentYear
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// weeklyRollup buckets expenses by ISO week number in year view or by the
// 1-5 week-of-month bucket in month view. Every bucket keeps its running
// total, its count and the contributing transactions ordered by date; the
// exposed key set is the union of both periods' non-empty buckets.
func weeklyRollup(cur, prev []Transaction, month int) []WeekEntry {
	entries := make(map[int]*WeekEntry)
	bucket := func(week int) *WeekEntry {
		e := entries[week]
		if e == nil {
			e = &WeekEntry{Week: week}
			entries[week] = e
		}
		return e
	}

	for _, t := range cur {
		if week, ok := weekIndex(t, month); ok {
			e := bucket(week)
			e.CurrentTotal += t.AbsAmount()
			e.CurrentCount++
			e.CurrentTransactions = append(e.CurrentTransactions, t)
		}
	}
	for _, t := range prev {
		if week, ok := weekIndex(t, month); ok {
			e := bucket(week)
			e.PreviousTotal += t.AbsAmount()
			e.PreviousCount++
			e.PreviousTransactions = append(e.PreviousTransactions, t)
		}
	}

	weeks := make([]int, 0, len(entries))
	for w := range entries {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	out := make([]WeekEntry, 0, len(weeks))
	for _, w := range weeks {
		e := entries[w]
		sortByDate(e.CurrentTransactions)
		sortByDate(e.PreviousTransactions)
		e.CurrentTotal = math.Round(e.CurrentTotal)
		e.PreviousTotal = math.Round(e.PreviousTotal)
		out = append(out, *e)
	}
	return out
}

func weekIndex(t Transaction, month int) (int, bool) {
	d, ok := t.When()
	if !ok {
		return 0, false
	}
	if month > 0 {
		return WeekOfMonth(d.Day()), true
	}
	return ISOWeekNumber(d), true
}

func sortByDate(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		// YYYY-MM-DD compares correctly as a string.
		return txs[i].Date < txs[j].Date
	})
}

// dateForDay maps a day index back to the current-period calendar date.
func dateForDay(year, month, day int) string {
	if month > 0 {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, day-1).Format("2006-01-02")
}

func roundMap(sums map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(sums))
	for name, v := range sums {
		out[name] = math.Round(v)
	}
	return out
}
