package models

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// CalendarDate drops the clock part of t and returns midnight UTC of its year/month/day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SubtractMonths moves t back by n calendar months. When the day of month does
// not exist in the target month it is clamped to that month's last day, so
// 2025-08-31 minus 6 months is 2025-02-28 rather than time.AddDate's 2025-03-03.
func SubtractMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()

	// first day of the target month, normalized by time.Date
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := daysIn(first.Year(), first.Month())
	if d > last {
		d = last
	}

	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
