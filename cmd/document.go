package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a week file for problems",
	Long: `Check a week file without changing it. Reports lines that look like entries
but cannot be parsed, a missing or unexpected format version, and whether
the summary or the day totals disagree with the entries.

Exits with status 1 when problems are found.

Examples:
  timesheet validate               The current week
  timesheet validate -w 2025-W42   A specific week`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateWeek(cli.GetDeps(), companyFlag(cmd), weekFlag(cmd))
	},
}

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite a week's summary and day totals",
	Long: `Recompute the summary block and the day totals of a week file from its
entries. Everything else in the file is kept byte for byte. The previous
version is saved as a backup first.

Examples:
  timesheet normalize               The current week
  timesheet normalize -w last       The previous week
  timesheet normalize --dry-run     Show what would change`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		handlers.NormalizeWeek(cli.GetDeps(), companyFlag(cmd), weekFlag(cmd), dryRun)
	},
}

// backupsCmd represents the backups command
var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List the backups of a week file",
	Long: `List the backups kept for a week file, most recent first.

Examples:
  timesheet backups
  timesheet backups -w last`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListBackups(cli.GetDeps(), companyFlag(cmd), weekFlag(cmd))
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [backup_number]",
	Short: "Restore a week file from a backup",
	Long: `Restore a week file from one of its backups.

By default, restores from the most recent backup (.bak.1). The version
being replaced becomes the new backup 1.

Examples:
  timesheet restore             Restore the current week from backup 1
  timesheet restore 2 -w last   Restore last week from backup 2
  timesheet restore --yes       Skip the confirmation`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		number := "1"
		if len(args) == 1 {
			number = args[0]
		}
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.RestoreBackup(cli.GetDeps(), companyFlag(cmd), weekFlag(cmd), number, yes)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(restoreCmd)

	for _, c := range []*cobra.Command{validateCmd, normalizeCmd, backupsCmd, restoreCmd} {
		addWeekFlag(c)
	}
	normalizeCmd.Flags().Bool("dry-run", false, "Show the result without writing it")
	restoreCmd.Flags().BoolP("yes", "y", false, "Restore without asking for confirmation")
}
