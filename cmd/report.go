package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
	"github.com/xolan/timesheet/internal/filter"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [current|last|YYYY-Www] [@project] [#tag...]",
	Short: "Generate a markdown report of a week",
	Long: `Generate a markdown report of a week: totals against the commitments,
breakdowns by project and tag, the change from the week before and every
entry grouped by day.

Filters narrow the entries that are reported. @project and #tag are
shorthand for --project and --tag.

Examples:
  timesheet report                       The current week
  timesheet report last                  The previous week
  timesheet report 2025-W42 @platform    Only entries of project Platform
  timesheet report #meeting              Only entries tagged meeting
  timesheet report --keyword review      Only entries mentioning review`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		args, f := parseShorthandFilters(cmd, args)
		if len(args) > 1 {
			d := cli.GetDeps()
			_, _ = fmt.Fprintf(d.Stderr, "Error: expected at most one week, got %q\n", strings.Join(args, " "))
			d.Exit(1)
			return
		}
		handlers.WeeklyReport(cli.GetDeps(), companyFlag(cmd), weekArg(cmd, args), f)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addWeekFlag(reportCmd)
	addFilterFlags(reportCmd)
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "p", "", "Only entries of this project")
	cmd.Flags().StringSliceP("tag", "t", nil, "Only entries with this tag (repeatable, all must match)")
	cmd.Flags().StringP("keyword", "k", "", "Only entries whose task contains this text")
}

// parseShorthandFilters removes @project and #tag arguments from args and
// returns the rest with a filter combining them with the filter flags.
// The flags win over the shorthand for the project.
func parseShorthandFilters(cmd *cobra.Command, args []string) ([]string, *filter.Filter) {
	project, _ := cmd.Flags().GetString("project")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	keyword, _ := cmd.Flags().GetString("keyword")

	var rest []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@") && len(arg) > 1:
			if project == "" {
				project = arg[1:]
			}
		case strings.HasPrefix(arg, "#") && len(arg) > 1:
			tags = append(tags, arg[1:])
		default:
			rest = append(rest, arg)
		}
	}

	return rest, filter.NewFilter(keyword, project, tags)
}
