package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
)

// Options control how entry lines are read and rewritten
type Options struct {
	Mode entry.Mode
	// Normalize rewrites every entry duration token to canonical form
	Normalize bool
}

// Result is the outcome of a mutation: the new text, the summary it
// displays and the issues found while parsing it
type Result struct {
	Text    string
	Summary stats.WeeklySummary
	Issues  ParseIssues
}

// AddEntry inserts e into the week document and recomputes its derived
// regions. When the document does not exist (or is blank) a new one is
// created from the template.
func AddEntry(existing string, exists bool, e entry.Entry, cfg config.Company, opts Options) (Result, error) {
	day, err := time.Parse(timeutil.DateLayout, e.Date)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", entry.ErrInvalidDate, e.Date)
	}
	week := timeutil.WeekOf(day)

	text := existing
	if !exists || strings.TrimSpace(existing) == "" {
		text = Template(cfg.Name, week)
	}

	doc := Parse(text)
	doc.InsertEntry(e)

	return recompute(doc, week, cfg, opts), nil
}

// Recompute normalizes (when enabled) and rewrites the summary block and
// day header totals of text without adding anything. Applying it to its
// own output changes nothing.
func Recompute(text string, week timeutil.Week, cfg config.Company, opts Options) Result {
	return recompute(Parse(text), week, cfg, opts)
}

func recompute(doc *Document, week timeutil.Week, cfg config.Company, opts Options) Result {
	if opts.Normalize {
		doc.NormalizeEntries(opts.Mode)
	}

	entries, _ := ParseEntries(doc.String(), opts.Mode)
	summary := stats.Summarize(week, entries, cfg)

	hasSummary := doc.SetSummary(SummaryLines(summary, cfg))

	days := summary.DaysByDate()
	doc.SetDayHours(func(date string) string {
		return entry.FormatHours(days[date].TotalHours)
	})

	// Issues are collected from the final text so line numbers match it
	text := doc.String()
	_, issues := ParseEntries(text, opts.Mode)
	if !hasSummary {
		issues.Warnings = append(issues.Warnings, "Summary block not found; summary was not updated")
	}

	return Result{
		Text:    text,
		Summary: summary,
		Issues:  issues,
	}
}
