package main

import (
	"os"

	"github.com/xolan/timesheet/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code
func run(args []string) int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.ExecuteArgs(args); err != nil {
		return 1
	}
	return 0
}
