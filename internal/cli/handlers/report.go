package handlers

import (
	"fmt"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/filter"
)

// WeeklyReport prints the markdown report of a week, restricted to the
// entries matching f when it is not empty
func WeeklyReport(deps *cli.Deps, companyInput, weekInput string, f *filter.Filter) {
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

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatWeeklyReport(result, deps.Services.Time.Now()))
	if warnings := cli.FormatParseWarnings(result.Issues); warnings != "" {
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprint(deps.Stderr, warnings)
	}
}
