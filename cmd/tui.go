package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive week browser",
	Long: `Launch the interactive Terminal User Interface for timesheet.

Views available:
  - Week: The days of the week with their entries and totals
  - Summary: Commitments, projects, tags and the change from last week
  - Config: Settings, company commitments and the color theme

Keyboard shortcuts:
  - Tab/Shift+Tab or 1-3: Switch views
  - h/l or arrows: Previous/next week
  - w: Back to this week
  - c: Next company (multi-company mode)
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI(companyFlag(cmd))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().Bool("tui", false, "Launch interactive terminal UI")
}

// runTUI runs the TUI on the loaded services
func runTUI(company string) {
	d := cli.GetDeps()
	if d.Services == nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error initializing services: %v\n", d.LoadErr)
		d.Exit(1)
		return
	}

	if err := tui.Run(d.Services, company); err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error running TUI: %v\n", err)
		d.Exit(1)
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	tuiFlag, _ := cmd.Root().PersistentFlags().GetBool("tui")
	if tuiFlag {
		runTUI(companyFlag(cmd))
		return true
	}
	return false
}
