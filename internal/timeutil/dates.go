package timeutil

import "time"

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the ISO Monday on or before t
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday 0 .. Sunday 6
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// CivilDate strips the clock and location from t, keeping its calendar date
// as midnight UTC. Calendar arithmetic on civil dates never crosses DST.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t as HH:MM
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// DayName returns the English weekday name of t (e.g. "Friday")
func DayName(t time.Time) string {
	return t.Weekday().String()
}
