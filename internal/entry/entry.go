package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/xolan/timesheet/internal/timeutil"
)

// DateLayout is the calendar date format used in day headers and entries
const DateLayout = timeutil.DateLayout

// MaxTaskLength is the maximum number of characters allowed in a task description
const MaxTaskLength = 500

// Common errors for entry construction and parsing
var (
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrDurationOutOfRange = errors.New("duration out of range")
	ErrInvalidTime        = timeutil.ErrInvalidTime
	ErrInvalidDate        = timeutil.ErrInvalidDate
	ErrInvalidTask        = errors.New("invalid task")
	ErrInvalidTag         = errors.New("invalid tag")
)

// Entry represents a single time tracking entry in a week document
type Entry struct {
	Date  string   // YYYY-MM-DD
	Time  string   // HH:MM
	Task  string   // Task description
	Hours float64  // Duration in decimal hours
	Tags  []string // Tags without the leading '#'
}

var (
	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	tagPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// New validates its arguments and returns an Entry.
// Tags may be given with or without a leading '#'.
func New(date, clock, task string, hours float64, tags []string) (Entry, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Entry{}, fmt.Errorf("%w: %q (use YYYY-MM-DD, e.g. 2025-10-17)", ErrInvalidDate, date)
	}
	if !clockPattern.MatchString(clock) {
		return Entry{}, fmt.Errorf("%w: %q (use HH:MM, e.g. 14:30)", ErrInvalidTime, clock)
	}

	task = SanitizeTask(task)
	if task == "" {
		return Entry{}, fmt.Errorf("%w: task description cannot be empty", ErrInvalidTask)
	}
	if utf8.RuneCountInString(task) > MaxTaskLength {
		return Entry{}, fmt.Errorf("%w: task description exceeds %d characters", ErrInvalidTask, MaxTaskLength)
	}

	if err := validateHours(hours, FormatHours(hours)); err != nil {
		return Entry{}, err
	}

	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if !tagPattern.MatchString(tag) {
			return Entry{}, fmt.Errorf("%w: %q (tags may contain letters, digits, '-' and '_')", ErrInvalidTag, tag)
		}
		cleaned = append(cleaned, tag)
	}

	return Entry{
		Date:  date,
		Time:  clock,
		Task:  task,
		Hours: hours,
		Tags:  cleaned,
	}, nil
}

// SanitizeTask collapses whitespace (including newlines) so a task always
// fits on a single entry line.
func SanitizeTask(task string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(task, " "))
}

// Day returns the entry date as a time.Time at midnight UTC
func (e Entry) Day() time.Time {
	t, _ := time.Parse(DateLayout, e.Date)
	return t
}

// HasTag reports whether the entry carries the given tag
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// FormatTags renders tags as "#a #b", or defaultValue when there are none
func FormatTags(tags []string, defaultValue string) string {
	if len(tags) == 0 {
		return defaultValue
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = "#" + t
	}
	return strings.Join(parts, " ")
}
