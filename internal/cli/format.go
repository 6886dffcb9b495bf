// Package cli provides the presentation layer for the timesheet application.
// It renders week documents, summaries and reports as text for the command
// line and the MCP server.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/timesheet/internal/document"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/timeutil"
)

// maxListedUnparsedLines is how many unparsed lines are shown verbatim
// under a parse warning; beyond that only the count is reported
const maxListedUnparsedLines = 3

// FormatHours renders hours with one decimal, e.g. "2.0h"
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// FormatLimit renders a configured limit without trailing zeros, e.g. "40h"
func FormatLimit(limit float64) string {
	return strconv.FormatFloat(limit, 'f', -1, 64) + "h"
}

// FormatEntry formats an entry for display, e.g. "09:00 Design review (2.0h) #meeting"
func FormatEntry(e entry.Entry) string {
	line := fmt.Sprintf("%s %s (%s)", e.Time, e.Task, FormatHours(e.Hours))
	if tags := entry.FormatTags(e.Tags, ""); tags != "" {
		line += " " + tags
	}
	return line
}

// FormatParseWarnings renders the warnings of a parse, listing the
// unparsed lines when there are only a few. Returns an empty string when
// there is nothing to report.
func FormatParseWarnings(issues document.ParseIssues) string {
	if !issues.HasWarnings() {
		return ""
	}

	var b strings.Builder
	b.WriteString("⚠️ **Parse Warnings:**\n")
	for _, w := range issues.Warnings {
		fmt.Fprintf(&b, "• %s\n", w)
	}

	if n := len(issues.UnparsedLines); n > 0 && n <= maxListedUnparsedLines {
		b.WriteString("\nUnparsed lines:\n")
		for _, l := range issues.UnparsedLines {
			fmt.Fprintf(&b, "  Line %d: %s\n", l.LineNumber, l.Content)
		}
	}
	return b.String()
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") && len(word) > 1 && !strings.ContainsRune("aeiou", rune(word[len(word)-2])) {
		return word[:len(word)-1] + "ies"
	}
	return word + "s"
}

// dayName returns the weekday name of a YYYY-MM-DD date
func dayName(date string) string {
	t, err := time.Parse(timeutil.DateLayout, date)
	if err != nil {
		return ""
	}
	return timeutil.DayName(t)
}
