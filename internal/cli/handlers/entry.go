package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/timeutil"
)

// LogTime records a completed entry and prints the status of its week
func LogTime(deps *cli.Deps, in service.LogTimeInput) {
	if !ready(deps) {
		return
	}

	result, err := deps.Services.Time.LogTime(in)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrInvalidDuration), errors.Is(err, entry.ErrDurationOutOfRange):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: timesheet log <duration> <task> [#tag...]")
			_, _ = fmt.Fprintln(deps.Stderr, "Example: timesheet log 2h security review #development")
		case errors.Is(err, entry.ErrInvalidTask):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		default:
			printError(deps, err)
			return
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatLogConfirmation(result))
}

// ShowDay prints the entries of one day, e.g. "today", "yesterday" or "2025-10-17"
func ShowDay(deps *cli.Deps, companyInput, dayInput string) {
	if !ready(deps) {
		return
	}

	day := deps.Services.Time.Now()
	if strings.TrimSpace(dayInput) != "" {
		parsed, err := timeutil.ParseDate(dayInput, day)
		if err != nil {
			printError(deps, err)
			return
		}
		day = parsed
	}

	result, err := deps.Services.Time.Day(companyInput, day)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprint(deps.Stdout, cli.FormatDay(result))
}

// ready reports whether the services loaded, printing why they did not
func ready(deps *cli.Deps) bool {
	if deps.Services != nil {
		return true
	}
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", deps.LoadErr)
	_, _ = fmt.Fprintln(deps.Stderr, "Hint: fix the settings file or override it with TIMESHEET_* environment variables")
	deps.Exit(1)
	return false
}

// printError prints err with a hint for the errors users can fix and exits
func printError(deps *cli.Deps, err error) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
	if errors.Is(err, service.ErrCompanyRequired) || errors.Is(err, service.ErrUnknownCompany) {
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: choose a company with --company <name or abbreviation>")
	}
	deps.Exit(1)
}

// promptConfirmation asks the user a yes/no question, defaulting to no
func promptConfirmation(stdout io.Writer, stdin io.Reader, question string) bool {
	_, _ = fmt.Fprintf(stdout, "%s [y/N]: ", question)

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
