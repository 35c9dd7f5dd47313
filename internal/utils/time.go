package utils

import (
	"fmt"
	"time"

	"daydesk/internal/constants"
)

// ParseClock parses a clock string in HH:MM format.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t, nil
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	return t, nil
}

// DayString returns the calendar-day key for t (YYYY-MM-DD, local time).
// Used wherever "same day" comparisons are needed.
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// MonthDay returns the recurring calendar key for t (MM-DD).
func MonthDay(t time.Time) string {
	return t.Format(constants.MonthDayFormat)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddMonths advances t by n calendar months, clamping the day-of-month to
// the last day of the target month instead of letting it spill over
// (Jan 31 + 1 month is Feb 28/29, not Mar 3). Time-of-day and location are
// preserved.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Day 0 of month m+1 is the last day of month m.
	lastDay := time.Date(year, month+time.Month(n)+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month+time.Month(n), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// NthWeekdayOfMonth returns the date of the nth occurrence of weekday in
// the given month (n = 1 for first, 2 for second, ...).
func NthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// DayOfYear returns the 1-based ordinal day of the year for t.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}
