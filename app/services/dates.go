package services

import "time"

// DateLayout is the fixed-width calendar date format used everywhere a date
// crosses the engine boundary. Comparisons are plain string comparisons,
// which is safe only because the format is zero-padded.
const DateLayout = "2006-01-02"

// DateOf formats t as a calendar date in t's location.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfWeek returns the date of the most recent Sunday on or before t.
// When t is a Sunday the result is t's own date.
func StartOfWeek(t time.Time) string {
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateLayout)
}

// StartOfMonth returns the date of the first day of t's month.
func StartOfMonth(t time.Time) string {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Format(DateLayout)
}
