package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage the settings",
	Long: `Display the effective settings of timesheet.

Settings are read from settings.yaml in the user config directory and can be
overridden with TIMESHEET_* environment variables (e.g. TIMESHEET_DIR,
TIMESHEET_COMPANIES). Without a settings file the defaults apply:
  - dir: ~/Documents/time-tracking
  - companies: none (single-company mode)
  - normalize_durations: true

Examples:
  timesheet config                   Show all current settings
  timesheet config init              Create a settings file with the defaults
  timesheet config company           Show the company configuration
  timesheet config company init      Create a company config.toml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a settings file with the defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

// configCompanyCmd represents the config company command
var configCompanyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show a company's commitments, projects and tag mappings",
	Long: `Show the configuration of a company: its weekly commitments, the projects
and their tags, and the tag mappings. Without a config.toml the company has
a single 40h total commitment.

Examples:
  timesheet config company
  timesheet config company -c hm`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowCompanyConfig(cli.GetDeps(), companyFlag(cmd))
	},
}

// configCompanyInitCmd represents the config company init command
var configCompanyInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config.toml for a company",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitCompanyConfig(cli.GetDeps(), companyFlag(cmd))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configCompanyCmd)
	configCompanyCmd.AddCommand(configCompanyInitCmd)
}
