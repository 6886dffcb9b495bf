package stats

import (
	"fmt"
	"math"

	"github.com/xolan/timesheet/internal/entry"
)

// FormatComparison describes the change between two totals, e.g.
// "up 2.5h from last week". Differences that round to zero read as "same as".
func FormatComparison(current, previous float64, period string) string {
	diff := entry.RoundHours(current - previous)
	switch {
	case diff > 0:
		return fmt.Sprintf("up %s from last %s", entry.FormatHours(diff), period)
	case diff < 0:
		return fmt.Sprintf("down %s from last %s", entry.FormatHours(math.Abs(diff)), period)
	default:
		return fmt.Sprintf("same as last %s", period)
	}
}
