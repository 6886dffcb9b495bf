package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/mcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout so assistants can log
and check time. Tools: log_time, check_hours, weekly_report and status.

Logs go to stderr; stdout carries protocol messages only.

Example client configuration:
  {"command": "timesheet", "args": ["serve"]}`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runServe(cmd.Root().Version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(version string) {
	d := cli.GetDeps()
	if d.Services == nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: %v\n", d.LoadErr)
		d.Exit(1)
		return
	}
	if version == "" {
		version = "dev"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := mcp.New(d.Services, version)
	if err := mcp.Serve(ctx, s, d.Stdin, d.Stdout); err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: MCP server failed: %v\n", err)
		d.Exit(1)
	}
}
