package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <keyword> [@project] [#tag...]",
	Short: "Search the entries of a week",
	Long: `Search a week's entries by keyword, project or tag.

The keyword match is case-insensitive. Tags must all be present.

Examples:
  timesheet search review                 Entries mentioning review this week
  timesheet search "code review" -w last  A phrase in the previous week
  timesheet search @platform              Entries of project Platform
  timesheet search deploy #ops            Keyword and tag together`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		args, f := parseShorthandFilters(cmd, args)
		if keyword := strings.Join(args, " "); keyword != "" {
			f.Keyword = keyword
		}
		handlers.Search(cli.GetDeps(), companyFlag(cmd), weekFlag(cmd), f)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addWeekFlag(searchCmd)
	searchCmd.Flags().StringP("project", "p", "", "Only entries of this project")
	searchCmd.Flags().StringSliceP("tag", "t", nil, "Only entries with this tag (repeatable, all must match)")
}
