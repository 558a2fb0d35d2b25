package core

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
	}
	for _, tc := range cases {
		if got := IsLeapYear(tc.year); got != tc.leap {
			t.Fatalf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.leap)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	if got := DaysInYear(2024); got != 366 {
		t.Fatalf("expected 366, got %d", got)
	}
	if got := DaysInYear(2023); got != 365 {
		t.Fatalf("expected 365, got %d", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, days int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.days {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.days)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	if got := DayOfYear(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)); got != 61 {
		t.Fatalf("expected 61 (leap year), got %d", got)
	}
	if got := DayOfYear(time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestISOWeekNumber(t *testing.T) {
	// 2024-01-04 falls in ISO week 1 of 2024.
	if got := ISOWeekNumber(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
	// 2023-01-01 is a Sunday and belongs to week 52 of the previous ISO year.
	if got := ISOWeekNumber(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)); got != 52 {
		t.Fatalf("expected week 52, got %d", got)
	}
}

func TestWeekOfMonth(t *testing.T) {
	cases := []struct{ day, week int }{
		{1, 1}, {7, 1},
		{8, 2}, {14, 2},
		{15, 3}, {21, 3},
		{22, 4}, {28, 4},
		{29, 5}, {31, 5},
	}
	for _, tc := range cases {
		if got := WeekOfMonth(tc.day); got != tc.week {
			t.Fatalf("WeekOfMonth(%d) = %d, want %d", tc.day, got, tc.week)
		}
	}
}
