package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
)

// FormatLogConfirmation renders the outcome of logging an entry: the
// entry, the status of its week and any parse warnings of the document
func FormatLogConfirmation(r *service.LogResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "✓ Logged %s for \"%s\" at %s", r.Duration.Canonical, r.Entry.Task, r.Entry.Time)
	if r.ExplicitDate {
		fmt.Fprintf(&b, " on %s", r.Entry.Date)
	}
	if tags := entry.FormatTags(r.Entry.Tags, ""); tags != "" {
		fmt.Fprintf(&b, " [%s]", tags)
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Week %d Status:**\n", r.Week.Number)
	fmt.Fprintf(&b, "• Total: %s", FormatHours(r.Summary.TotalHours))
	if total, ok := stats.Usage(r.Summary, r.Config); ok {
		fmt.Fprintf(&b, " / %s (%d%%)", FormatLimit(total.Limit), total.Percentage)
		switch total.Status {
		case stats.StatusOver:
			b.WriteString(" ⚠️ OVER LIMIT")
		case stats.StatusApproaching:
			b.WriteString(" ⚠️ Close to limit")
		}
	}
	b.WriteString("\n")

	for _, u := range stats.CommitmentUsages(r.Summary, r.Config) {
		if u.Limit <= 0 {
			continue
		}
		fmt.Fprintf(&b, "• %s: %s / %s (%d%%)", config.DisplayName(u.Name), FormatHours(u.Hours), FormatLimit(u.Limit), u.Percentage)
		if u.Status != stats.StatusWithin {
			b.WriteString(" " + u.Status.Indicator())
		}
		b.WriteString("\n")
	}

	if warnings := FormatParseWarnings(r.Issues); warnings != "" {
		b.WriteString("\n\n" + warnings)
	}

	return b.String()
}

// FormatDay renders the entries of one day
func FormatDay(d *service.DayResult) string {
	date := timeutil.FormatDate(d.Date)
	name := timeutil.DayName(d.Date)

	if len(d.Day.Entries) == 0 {
		return fmt.Sprintf("No time logged for %s, %s.\n", name, date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **%s, %s**\n\n", name, date)
	fmt.Fprintf(&b, "**Total:** %s\n\n", FormatHours(d.Day.TotalHours))
	b.WriteString("**Entries:**\n")
	for _, e := range d.Day.Entries {
		fmt.Fprintf(&b, "• %s\n", FormatEntry(e))
	}
	return b.String()
}

// FormatWeekSummary renders the totals of a week by commitment and day,
// and by project and tag when breakdown is set
func FormatWeekSummary(w *service.WeekResult, breakdown bool) string {
	s := w.Summary
	if s.TotalHours == 0 {
		return fmt.Sprintf("No time logged yet for week %d.\n", w.Week.Number)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Week %d Summary**\n\n", w.Week.Number)
	fmt.Fprintf(&b, "**Total:** %s", FormatHours(s.TotalHours))
	if total, ok := stats.Usage(s, w.Config); ok {
		fmt.Fprintf(&b, " / %s (%d%%)", FormatLimit(total.Limit), total.Percentage)
	}
	b.WriteString("\n\n")

	if usages := stats.CommitmentUsages(s, w.Config); len(usages) > 0 {
		b.WriteString("**By Commitment:**\n")
		for _, u := range usages {
			if u.Limit <= 0 {
				fmt.Fprintf(&b, "• %s: %s\n", config.DisplayName(u.Name), FormatHours(u.Hours))
				continue
			}
			fmt.Fprintf(&b, "• %s: %s / %s (%d%%)", config.DisplayName(u.Name), FormatHours(u.Hours), FormatLimit(u.Limit), u.Percentage)
			if u.Status == stats.StatusOver {
				b.WriteString(" ⚠️")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if breakdown {
		b.WriteString(formatProjectBreakdown(s))
		b.WriteString(formatTagBreakdown(s))
	}

	b.WriteString("**By Day:**\n")
	for _, day := range newestFirst(s.Days) {
		count := len(day.Entries)
		fmt.Fprintf(&b, "• %s %s: %s (%d %s)\n", dayName(day.Date), day.Date, FormatHours(day.TotalHours), count, Pluralize("entry", count))
	}

	return b.String()
}

// FormatStatus renders the current week's total against its limit and the
// usage of every commitment
func FormatStatus(w *service.WeekResult) string {
	s := w.Summary
	if s.TotalHours == 0 {
		return fmt.Sprintf("No time logged yet for week %d.\n", w.Week.Number)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 **Week %d Status**\n\n", w.Week.Number)

	if total, ok := stats.Usage(s, w.Config); ok {
		fmt.Fprintf(&b, "**Total:** %s / %s (%d%%)", FormatHours(total.Hours), FormatLimit(total.Limit), total.Percentage)
		switch {
		case total.Percentage >= 100:
			b.WriteString(" 🚫 OVER LIMIT\n")
		case total.Percentage >= 90:
			b.WriteString(" ⚠️ Almost at limit\n")
		default:
			b.WriteString(" ✓\n")
		}
		fmt.Fprintf(&b, "**Remaining:** %s available\n\n", FormatHours(total.Remaining))
	} else {
		fmt.Fprintf(&b, "**Total:** %s\n\n", FormatHours(s.TotalHours))
	}

	if usages := stats.CommitmentUsages(s, w.Config); len(usages) > 0 {
		b.WriteString("**By Commitment:**\n")
		for _, u := range usages {
			if u.Limit <= 0 {
				fmt.Fprintf(&b, "• %s: %s\n", config.DisplayName(u.Name), FormatHours(u.Hours))
				continue
			}
			fmt.Fprintf(&b, "• %s: %s / %s (%d%%) %s\n", config.DisplayName(u.Name), FormatHours(u.Hours), FormatLimit(u.Limit), u.Percentage, u.Status.Indicator())
		}
	}

	return b.String()
}

// FormatWeeklyReport renders a complete markdown report of a week with
// every entry organized by day, newest first
func FormatWeeklyReport(r *service.ReportData, generated time.Time) string {
	s := r.Summary
	if s.TotalHours == 0 {
		if !r.Filter.IsEmpty() {
			return fmt.Sprintf("No time logged matching %s for week %d of %d.\n", r.Filter.String(), r.Week.Number, r.Week.Year)
		}
		return fmt.Sprintf("No time logged for week %d of %d.\n", r.Week.Number, r.Week.Year)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 📊 Time Report - %s\n", r.Config.Name)
	fmt.Fprintf(&b, "## %s\n\n", r.Week.Header())
	b.WriteString("---\n\n")

	b.WriteString("## Summary\n\n")
	if !r.Filter.IsEmpty() {
		fmt.Fprintf(&b, "**Filter:** %s\n", r.Filter.String())
	}
	fmt.Fprintf(&b, "**Total Time:** %s", FormatHours(s.TotalHours))
	if total, ok := stats.Usage(s, r.Config); ok {
		fmt.Fprintf(&b, " / %s (%d%%)\n", FormatLimit(total.Limit), total.Percentage)
		fmt.Fprintf(&b, "**Remaining:** %s available\n", FormatHours(total.Remaining))
	} else {
		b.WriteString("\n")
	}
	if r.Comparison != "" {
		fmt.Fprintf(&b, "**Trend:** %s\n", r.Comparison)
	}
	b.WriteString("\n")

	if usages := stats.CommitmentUsages(s, r.Config); len(usages) > 0 {
		b.WriteString("**Commitment Breakdown:**\n")
		for _, u := range usages {
			if u.Limit <= 0 {
				fmt.Fprintf(&b, "• **%s:** %s\n", config.DisplayName(u.Name), FormatHours(u.Hours))
				continue
			}
			fmt.Fprintf(&b, "• **%s:** %s / %s (%d%%) %s\n", config.DisplayName(u.Name), FormatHours(u.Hours), FormatLimit(u.Limit), u.Percentage, reportStatus(u.Status))
		}
		b.WriteString("\n")
	}

	b.WriteString(formatProjectBreakdown(s))
	b.WriteString(formatTagBreakdown(s))

	b.WriteString("---\n\n")
	b.WriteString("## Daily Breakdown\n\n")
	for _, day := range newestFirst(s.Days) {
		fmt.Fprintf(&b, "### %s %s (%s)\n\n", day.Date, dayName(day.Date), FormatHours(day.TotalHours))
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "- %s\n", FormatEntry(e))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Report generated: %s*\n", timeutil.FormatDate(generated))

	return b.String()
}

func reportStatus(s stats.Status) string {
	switch s {
	case stats.StatusOver:
		return "🚫 OVER"
	case stats.StatusApproaching:
		return "⚠️ Close"
	default:
		return "✓"
	}
}

func formatProjectBreakdown(s stats.WeeklySummary) string {
	projects := stats.ProjectStatistics(s)
	if len(projects) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("**By Project:**\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "• %s: %s\n", p.Project, FormatHours(p.Hours))
	}
	b.WriteString("\n")
	return b.String()
}

func formatTagBreakdown(s stats.WeeklySummary) string {
	tags := stats.TagStatistics(s)
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("**By Tag:**\n")
	for _, t := range tags {
		fmt.Fprintf(&b, "• #%s: %s\n", t.Tag, FormatHours(t.Hours))
	}
	b.WriteString("\n")
	return b.String()
}

// newestFirst returns a copy of days sorted by date, most recent first
func newestFirst(days []stats.DailySummary) []stats.DailySummary {
	sorted := append([]stats.DailySummary(nil), days...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
