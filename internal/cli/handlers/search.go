package handlers

import (
	"fmt"
	"strings"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/filter"
)

// Search lists the entries of a week matching f, oldest first
func Search(deps *cli.Deps, companyInput, weekInput string, f *filter.Filter) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	result, err := deps.Services.Report.Weekly(companyInput, week, f)
	if err != nil {
		printError(deps, err)
		return
	}

	criteria := f.String()
	if result.EntryCount == 0 {
		if criteria != "" {
			_, _ = fmt.Fprintf(deps.Stdout, "No entries found matching %s in %s\n", criteria, week.ID())
		} else {
			_, _ = fmt.Fprintf(deps.Stdout, "No entries found in %s\n", week.ID())
		}
		return
	}

	header := fmt.Sprintf("Search results for %s in %s", criteria, week.ID())
	if criteria == "" {
		header = fmt.Sprintf("All entries in %s", week.ID())
	}

	_, _ = fmt.Fprintf(deps.Stdout, "%s (%d %s, %s):\n", header, result.EntryCount, cli.Pluralize("result", result.EntryCount), cli.FormatHours(result.Summary.TotalHours))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	for _, day := range result.Summary.Days {
		for _, e := range day.Entries {
			_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", e.Date, cli.FormatEntry(e))
		}
	}
}
