package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timesheet/internal/timeutil"
)

// ResolveWeek turns a week reference into a week relative to now:
// "" or "current", "last" or "previous", "next", or an ISO week like "2025-W42"
func ResolveWeek(input string, now time.Time) (timeutil.Week, error) {
	current := timeutil.WeekOf(now)
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "current", "this":
		return current, nil
	case "last", "previous":
		return current.Previous(), nil
	case "next":
		return current.Next(), nil
	}

	week, err := timeutil.ParseWeek(input)
	if err != nil {
		return timeutil.Week{}, fmt.Errorf("invalid week %q: use current, last, next or YYYY-Www (e.g. 2025-W42): %w", input, err)
	}
	return week, nil
}
