package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/stats"
)

// ShowStatus prints the current week's totals against the commitments
func ShowStatus(deps *cli.Deps, companyInput string) {
	if !ready(deps) {
		return
	}

	result, err := deps.Services.Time.Status(companyInput)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatStatus(result))
}

// ShowWeek prints the summary of a week ("current", "last" or "2025-W42")
func ShowWeek(deps *cli.Deps, companyInput, weekInput string, breakdown bool) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	result, err := deps.Services.Time.WeeklySummary(companyInput, week)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatWeekSummary(result, breakdown))
	if warnings := cli.FormatParseWarnings(result.Issues); warnings != "" {
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprint(deps.Stderr, warnings)
	}
}

// ShowWeeklyStats prints statistics of a week compared with the week before
func ShowWeeklyStats(deps *cli.Deps, companyInput, weekInput string) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	result, err := deps.Services.Report.Weekly(companyInput, week, nil)
	if err != nil {
		printError(deps, err)
		return
	}

	s := result.Summary
	days := len(s.Days)

	_, _ = fmt.Fprintf(deps.Stdout, "Statistics for %s (%s):\n", week.Header(), result.Config.Name)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Total time:      %s\n", entry.FormatHoursDetailed(s.TotalHours))
	_, _ = fmt.Fprintf(deps.Stdout, "Total entries:   %d %s\n", result.EntryCount, cli.Pluralize("entry", result.EntryCount))
	_, _ = fmt.Fprintf(deps.Stdout, "Days with work:  %d %s\n", days, cli.Pluralize("day", days))
	_, _ = fmt.Fprintf(deps.Stdout, "Average per day: %s\n", entry.FormatHoursDetailed(stats.AveragePerDay(s)))

	if busiest, ok := stats.BusiestDay(s); ok {
		_, _ = fmt.Fprintf(deps.Stdout, "Busiest day:     %s (%s)\n", busiest.Date, entry.FormatHoursDetailed(busiest.TotalHours))
	}
	if lightest, ok := stats.LightestDay(s); ok && days > 1 {
		_, _ = fmt.Fprintf(deps.Stdout, "Lightest day:    %s (%s)\n", lightest.Date, entry.FormatHoursDetailed(lightest.TotalHours))
	}

	if top := stats.TagStatistics(s); len(top) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Top tags:")
		for i, t := range top {
			if i == 5 {
				break
			}
			_, _ = fmt.Fprintf(deps.Stdout, "  %-20s %8s  (%d%%)\n", "#"+t.Tag, cli.FormatHours(t.Hours), t.Percentage)
		}
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Comparison: %s\n", result.Comparison)
}
