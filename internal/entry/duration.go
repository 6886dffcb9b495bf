package entry

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinDurationHours is the shortest accepted duration (3 minutes)
	MinDurationHours = 0.05
	// MaxDurationHours is the longest accepted duration per entry
	MaxDurationHours = 24.0
)

// acceptedFormats is appended to parse errors so users know what to type
const acceptedFormats = `try formats like "2h", "1.5 hours", "90m", "PT2H30M", "half an hour" or "1.5"`

var (
	halfHourPattern    = regexp.MustCompile(`^half\s*(an?\s*)?hour$`)
	quarterHourPattern = regexp.MustCompile(`^quarter\s*(of\s*an?\s*)?hour$`)
	hoursPattern       = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)$`)
	minutesPattern     = regexp.MustCompile(`^(\d+)\s*(?:minutes?|mins?|m)$`)
	isoPattern         = regexp.MustCompile(`^pt(?:(\d+)h)?(?:(\d+)m)?(?:(\d+(?:\.\d+)?)s)?$`)
	numberPattern      = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// Duration is a parsed duration in decimal hours together with its canonical text
type Duration struct {
	Hours     float64
	Canonical string
}

// ParseDuration parses a free-text duration and returns it in decimal hours.
// Productions are tried in order: "half an hour"/"quarter hour", "<n>h|hr|hours",
// "<n>m|min|minutes", ISO-8601 "PT#H#M#S", and a bare number of hours.
// Valid inputs: "2h" (2), "90m" (1.5), "PT2H30M" (2.5), "half an hour" (0.5)
// Invalid inputs: "abc", "-5h", "" (ErrInvalidDuration); "1m", "25h" (ErrDurationOutOfRange)
func ParseDuration(input string) (Duration, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	hours, ok := matchDuration(normalized)
	if !ok {
		return Duration{}, fmt.Errorf("%w: unable to parse %q, %s", ErrInvalidDuration, input, acceptedFormats)
	}

	if err := validateHours(hours, input); err != nil {
		return Duration{}, err
	}

	return Duration{Hours: hours, Canonical: FormatHours(hours)}, nil
}

// matchDuration applies the productions in priority order
func matchDuration(s string) (float64, bool) {
	if halfHourPattern.MatchString(s) {
		return 0.5, true
	}
	if quarterHourPattern.MatchString(s) {
		return 0.25, true
	}

	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		return hours, err == nil
	}

	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		minutes, err := strconv.Atoi(m[1])
		return float64(minutes) / 60, err == nil
	}

	// "pt" alone matches the ISO pattern with every group empty
	if s != "pt" {
		if m := isoPattern.FindStringSubmatch(s); m != nil {
			total := 0.0
			if m[1] != "" {
				h, _ := strconv.Atoi(m[1])
				total += float64(h)
			}
			if m[2] != "" {
				mins, _ := strconv.Atoi(m[2])
				total += float64(mins) / 60
			}
			if m[3] != "" {
				secs, _ := strconv.ParseFloat(m[3], 64)
				total += secs / 3600
			}
			return total, true
		}
	}

	if numberPattern.MatchString(s) {
		hours, err := strconv.ParseFloat(s, 64)
		return hours, err == nil
	}

	return 0, false
}

func validateHours(hours float64, input string) error {
	switch {
	case math.IsNaN(hours) || math.IsInf(hours, 0):
		return fmt.Errorf("%w: %q is not a finite duration", ErrDurationOutOfRange, input)
	case hours < 0:
		return fmt.Errorf("%w: %q cannot be negative", ErrDurationOutOfRange, input)
	case hours < MinDurationHours:
		return fmt.Errorf("%w: %q is too short, minimum duration is 3 minutes (0.05h)", ErrDurationOutOfRange, input)
	case hours > MaxDurationHours:
		return fmt.Errorf("%w: %q is too long, maximum duration is 24 hours per entry", ErrDurationOutOfRange, input)
	}
	return nil
}

// RoundHours rounds to one decimal place, half away from zero
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// FormatHours renders hours in canonical form: "2h" for whole values,
// "2.5h" (exactly one decimal) otherwise.
func FormatHours(hours float64) string {
	rounded := RoundHours(hours)
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(rounded, 'f', 0, 64) + "h"
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64) + "h"
}

// FormatHoursDetailed renders hours as "2h 30m", "45m" or "3h"
func FormatHoursDetailed(hours float64) string {
	whole := int(math.Floor(hours))
	minutes := int(math.Round((hours - float64(whole)) * 60))
	if minutes == 60 {
		whole++
		minutes = 0
	}

	switch {
	case minutes == 0:
		return fmt.Sprintf("%dh", whole)
	case whole == 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%dh %dm", whole, minutes)
	}
}
