package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current week against its commitments",
	Long: `Show the hours logged in the current week, the hours remaining and the
progress of every commitment of the company.

Examples:
  timesheet status
  timesheet status --company hm`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowStatus(cli.GetDeps(), companyFlag(cmd))
	},
}

// hoursCmd represents the hours command
var hoursCmd = &cobra.Command{
	Use:     "hours [today|yesterday|YYYY-MM-DD]",
	Aliases: []string{"day"},
	Short:   "List the entries of one day",
	Long: `List the entries logged on one day with the day's total.

Examples:
  timesheet hours               Today's entries
  timesheet hours yesterday     Yesterday's entries
  timesheet hours 2025-10-17    Entries of a specific date`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		day := ""
		if len(args) == 1 {
			day = args[0]
		}
		handlers.ShowDay(cli.GetDeps(), companyFlag(cmd), day)
	},
}

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week [current|last|next|YYYY-Www]",
	Short: "Show the summary of a week",
	Long: `Show a week's total and per-commitment hours, with breakdowns by project,
tag and day.

Examples:
  timesheet week                   The current week
  timesheet week last              The previous week
  timesheet week 2025-W42          ISO week 42 of 2025
  timesheet week --no-breakdown    Totals only`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		noBreakdown, _ := cmd.Flags().GetBool("no-breakdown")
		handlers.ShowWeek(cli.GetDeps(), companyFlag(cmd), weekArg(cmd, args), !noBreakdown)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(hoursCmd)
	rootCmd.AddCommand(weekCmd)

	addWeekFlag(weekCmd)
	weekCmd.Flags().Bool("no-breakdown", false, "Hide the project, tag and day breakdowns")
}

// weekArg prefers a positional week over --week
func weekArg(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return weekFlag(cmd)
}
