package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "A weekly markdown time tracker",
	Long: `timesheet logs completed work into one markdown file per ISO week and keeps
the weekly summary and the day totals of that file up to date.

Usage:
  timesheet <duration> <task> [#tag...]         Log time (e.g., timesheet 2h security review #dev)
  timesheet                                     Show the current week's status
  timesheet hours [today|yesterday|date]        List the entries of a day
  timesheet week [current|last|YYYY-Www]        Show a week's summary
  timesheet report [week] [@project] [#tag]     Generate a weekly report
  timesheet validate                            Check a week file for problems
  timesheet normalize                           Rewrite a week's summary and totals
  timesheet restore [n]                         Restore a week file from backup
  timesheet serve                               Run the MCP server on stdio

Duration format: 2h, 1.5h, 90m, 1h30m, PT2H30M, "half an hour"
In multi-company mode prefix the company: timesheet hm 2h review`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}

		if len(args) == 0 {
			handlers.ShowStatus(cli.GetDeps(), companyFlag(cmd))
			return
		}

		runLog(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("company", "c", "", "Company name or abbreviation (multi-company mode)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	addLogFlags(rootCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"timesheet version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// companyFlag returns the --company value, empty when not given
func companyFlag(cmd *cobra.Command) string {
	company, _ := cmd.Flags().GetString("company")
	return company
}

// addWeekFlag adds --week to commands that work on one week document
func addWeekFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("week", "w", "", "Week: current, last, next or YYYY-Www (default: current)")
}

func weekFlag(cmd *cobra.Command) string {
	week, _ := cmd.Flags().GetString("week")
	return week
}

// configureLogging applies the log level of the settings, or debug with
// --verbose. Logs always go to stderr.
func configureLogging(cmd *cobra.Command) {
	log.SetOutput(os.Stderr)

	level := log.WarnLevel
	if d := cli.GetDeps(); d.Services != nil {
		if parsed, err := log.ParseLevel(d.Services.Config.Settings().LogLevel); err == nil {
			level = parsed
		}
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

// ExecuteArgs runs the root command with args instead of os.Args
func ExecuteArgs(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
