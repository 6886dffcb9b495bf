package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for timesheet.

Bash:
  source <(timesheet completion bash)
  timesheet completion bash > ~/.local/share/bash-completion/completions/timesheet

Zsh:
  timesheet completion zsh > "${fpath[1]}/_timesheet"
  # then start a new shell (compinit must be enabled in ~/.zshrc)

Fish:
  timesheet completion fish > ~/.config/fish/completions/timesheet.fish

PowerShell:
  timesheet completion powershell | Out-String | Invoke-Expression
  # add the line above to $PROFILE to load it in every session`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(cli.GetDeps(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionGenerators = map[string]func(w io.Writer) error{
	"bash":       rootCmd.GenBashCompletion,
	"zsh":        rootCmd.GenZshCompletion,
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

// generateCompletion writes the completion script of shell to deps.Stdout
func generateCompletion(deps *cli.Deps, shell string) {
	generate, ok := completionGenerators[shell]
	if !ok {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err := generate(deps.Stdout); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
	}
}
