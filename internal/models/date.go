// ABOUTME: Calendar date helpers shared by the calendar, history and dashboard views.
// ABOUTME: Dates are local calendar days rendered as YYYY-MM-DD strings.
package models

import "time"

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"

// FormatDate renders the calendar day of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday that starts t's week, at midnight.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
