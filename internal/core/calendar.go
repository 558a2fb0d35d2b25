// Package core holds the pure aggregation engine and its calendar helpers.
//
// This file contains the leaf calendar arithmetic the engine depends on:
// leap years, day-of-year and day-of-month indexing, ISO week numbers and
// the 1-5 week-of-month bucketing used in month view.
package core

import "time"

// IsLeapYear reports whether the given year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfYear returns the 1-based day index within the date's own year.
func DayOfYear(d time.Time) int {
	return d.YearDay()
}

// ISOWeekNumber returns the ISO 8601 week number for the date.
// The ISO year is deliberately discarded: weekly buckets are keyed on the
// number alone so the same week index lines up across compared years.
func ISOWeekNumber(d time.Time) int {
	_, week := d.ISOWeek()
	return week
}

// WeekOfMonth buckets a day of month into a 1-5 week index in 7-day spans:
// days 1-7 map to 1, 8-14 to 2, and day 29 onward is capped at 5.
func WeekOfMonth(day int) int {
	week := (day-1)/7 + 1
	if week > 5 {
		week = 5
	}
	return week
}
