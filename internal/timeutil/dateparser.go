package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used throughout week documents
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format of entry lines
	ClockLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

var (
	isoDatePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoPartialRe       = regexp.MustCompile(`^\d{4}-\d{1,2}$`)      // YYYY-MM (missing day)
	yearOnlyRe         = regexp.MustCompile(`^\d{4}$`)              // YYYY (year only)
	isoPartialDayRe    = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)    // MM-DD (missing year)
	clockInputPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	relativeAgoPattern = regexp.MustCompile(`^(\d+)\s*(hours?|hrs?|h|minutes?|mins?|m)\s*ago$`)
)

// dayParts maps contextual time words to their wall-clock hour
var dayParts = []struct {
	word string
	hour int
}{
	{"morning", 9},
	{"afternoon", 14},
	{"evening", 18},
	{"night", 20},
}

// ParseDate resolves a date reference relative to now and returns the civil date.
//
// Valid inputs:
//   - "" or "today"
//   - "yesterday", "tomorrow"
//   - "2025-10-17" (ISO format)
//
// Anything else is an error wrapping ErrInvalidDate with the accepted formats.
func ParseDate(input string, now time.Time) (time.Time, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	today := CivilDate(now)

	switch lower {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if isoDatePattern.MatchString(lower) {
		t, err := time.Parse(DateLayout, lower)
		if err == nil {
			return t, nil
		}
		return time.Time{}, fmt.Errorf("%w: '%s' is not a calendar date (use format YYYY-MM-DD, e.g., 2025-10-17)", ErrInvalidDate, input)
	}

	return time.Time{}, buildDateParseError(input)
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case yearOnlyRe.MatchString(input):
		return fmt.Errorf("%w: incomplete date '%s': missing month and day (use format YYYY-MM-DD, e.g., %s-01-15)", ErrInvalidDate, input, input)
	case isoPartialRe.MatchString(input):
		return fmt.Errorf("%w: incomplete date '%s': missing day (use format YYYY-MM-DD, e.g., %s-15)", ErrInvalidDate, input, input)
	case isoPartialDayRe.MatchString(input):
		return fmt.Errorf("%w: incomplete date '%s': missing year (use format YYYY-MM-DD, e.g., 2025-%s)", ErrInvalidDate, input, input)
	default:
		return fmt.Errorf("%w: '%s' (use today, yesterday, tomorrow or YYYY-MM-DD, e.g., 2025-10-17)", ErrInvalidDate, input)
	}
}

// ParseTime resolves a time-of-day reference against base, which carries
// the calendar date and the current wall clock. The returned time may fall
// on an earlier day for relative inputs such as "3 hours ago".
//
// Valid inputs:
//   - "" or "now"
//   - "14:30", "9:05"
//   - "2 hours ago", "30 minutes ago", "1h ago"
//   - "morning" (09:00), "afternoon" (14:00), "evening" (18:00), "night" (20:00),
//     also inside phrases such as "this morning"
//
// Anything else is an error wrapping ErrInvalidTime with the accepted formats.
func ParseTime(input string, base time.Time) (time.Time, error) {
	lower := strings.ToLower(strings.TrimSpace(input))

	if lower == "" || lower == "now" {
		return base, nil
	}

	if m := clockInputPattern.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return time.Time{}, fmt.Errorf("%w: '%s' is out of range (use HH:MM between 00:00 and 23:59)", ErrInvalidTime, input)
		}
		return atClock(base, hour, minute), nil
	}

	if m := relativeAgoPattern.FindStringSubmatch(lower); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid number in '%s'", ErrInvalidTime, input)
		}
		if strings.HasPrefix(m[2], "h") {
			return base.Add(-time.Duration(amount) * time.Hour), nil
		}
		return base.Add(-time.Duration(amount) * time.Minute), nil
	}

	for _, part := range dayParts {
		if strings.Contains(lower, part.word) {
			return atClock(base, part.hour, 0), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: '%s' (use now, HH:MM, 'N hours ago', 'N minutes ago', morning, afternoon, evening or night)", ErrInvalidTime, input)
}

func atClock(base time.Time, hour, minute int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

// ResolveWhen combines a date reference and a time reference into the
// calendar date and HH:MM clock of an entry. now supplies "today" and the
// current wall clock.
func ResolveWhen(dateInput, timeInput string, now time.Time) (date string, clock string, err error) {
	day, err := ParseDate(dateInput, now)
	if err != nil {
		return "", "", err
	}

	base := time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	at, err := ParseTime(timeInput, base)
	if err != nil {
		return "", "", err
	}

	return FormatDate(at), FormatClock(at), nil
}
