package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Week identifies an ISO-8601 week: week 1 contains the year's first Thursday
type Week struct {
	Year   int
	Number int
}

var weekIDPattern = regexp.MustCompile(`^(\d{4})-?W(\d{1,2})$`)

// WeekOf returns the ISO week containing t
func WeekOf(t time.Time) Week {
	year, week := t.ISOWeek()
	return Week{Year: year, Number: week}
}

// NewWeek validates the week number against the ISO calendar of year
func NewWeek(year, number int) (Week, error) {
	if number < 1 || number > WeeksInYear(year) {
		return Week{}, fmt.Errorf("invalid week %d for %d (valid range 1-%d)", number, year, WeeksInYear(year))
	}
	return Week{Year: year, Number: number}, nil
}

// ParseWeek parses a week identifier such as "2025-W42" or "2025W42"
func ParseWeek(input string) (Week, error) {
	m := weekIDPattern.FindStringSubmatch(input)
	if m == nil {
		return Week{}, fmt.Errorf("invalid week '%s' (use format YYYY-Www, e.g., 2025-W42)", input)
	}
	year, _ := strconv.Atoi(m[1])
	number, _ := strconv.Atoi(m[2])
	return NewWeek(year, number)
}

// WeeksInYear returns 52 or 53: the ISO week number of Dec 28 of year
func WeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// Start returns Monday of the week as a civil date.
// January 4 is always in week 1.
func (w Week) Start() time.Time {
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	return StartOfWeek(jan4).AddDate(0, 0, (w.Number-1)*7)
}

// End returns Sunday of the week as a civil date
func (w Week) End() time.Time {
	return w.Start().AddDate(0, 0, 6)
}

// Days returns the seven civil dates of the week, Monday first
func (w Week) Days() []time.Time {
	days := make([]time.Time, 7)
	start := w.Start()
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether date (YYYY-MM-DD) falls in the week
func (w Week) Contains(date string) bool {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return WeekOf(t) == w
}

// Next returns the following week
func (w Week) Next() Week {
	return WeekOf(w.Start().AddDate(0, 0, 7))
}

// Previous returns the preceding week
func (w Week) Previous() Week {
	return WeekOf(w.Start().AddDate(0, 0, -7))
}

// ID returns the week identifier used in file names, e.g. "2025-W42"
func (w Week) ID() string {
	return fmt.Sprintf("%d-W%02d", w.Year, w.Number)
}

func (w Week) String() string {
	return w.ID()
}

// Header renders the human week header, e.g. "Week 42 (Oct 13-19, 2025)"
// or "Week 40 (Sep 29-Oct 5, 2025)" when the week spans two months.
func (w Week) Header() string {
	start, end := w.Start(), w.End()
	if start.Month() == end.Month() {
		return fmt.Sprintf("Week %d (%s %d-%d, %d)", w.Number, start.Format("Jan"), start.Day(), end.Day(), w.Year)
	}
	return fmt.Sprintf("Week %d (%s %d-%s %d, %d)", w.Number, start.Format("Jan"), start.Day(), end.Format("Jan"), end.Day(), w.Year)
}
