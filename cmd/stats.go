package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [current|last|YYYY-Www]",
	Short: "Show statistics of a week",
	Long: `Show statistics of a week: total hours, entries, days worked, the average
per day and the change from the week before.

Examples:
  timesheet stats              Statistics of the current week
  timesheet stats last         Statistics of the previous week
  timesheet stats 2025-W42     Statistics of a specific week`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowWeeklyStats(cli.GetDeps(), companyFlag(cmd), weekArg(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addWeekFlag(statsCmd)
}
