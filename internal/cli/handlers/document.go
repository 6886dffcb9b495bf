package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/storage"
)

// ValidateWeek checks a week document without changing it. It exits with 1
// when the document has parse warnings or an out of date summary.
func ValidateWeek(deps *cli.Deps, companyInput, weekInput string) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	result, err := deps.Services.Time.Validate(companyInput, week)
	if err != nil {
		printError(deps, err)
		return
	}

	if !result.Exists {
		_, _ = fmt.Fprintf(deps.Stdout, "No document for %s at %s\n", week.ID(), result.Path)
		return
	}

	entries := result.Summary.EntryCount()
	days := len(result.Summary.Days)
	version := result.Issues.FormatVersion
	if version == "" {
		version = "(missing)"
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Validating %s:\n", result.Path)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Format version: %s\n", version)
	_, _ = fmt.Fprintf(deps.Stdout, "Entries:        %d %s on %d %s\n", entries, cli.Pluralize("entry", entries), days, cli.Pluralize("day", days))
	_, _ = fmt.Fprintf(deps.Stdout, "Total:          %s\n", cli.FormatHours(result.Summary.TotalHours))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))

	tags := make([]string, 0, len(result.AmbiguousTags))
	for tag := range result.AmbiguousTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		projects := result.AmbiguousTags[tag]
		_, _ = fmt.Fprintf(deps.Stdout, "Note: #%s is listed by %s, using %s\n", tag, strings.Join(projects, ", "), projects[0])
	}

	ok := true
	if warnings := cli.FormatParseWarnings(result.Issues); warnings != "" {
		_, _ = fmt.Fprint(deps.Stdout, warnings)
		ok = false
	}
	if result.Stale {
		_, _ = fmt.Fprintf(deps.Stdout, "Summary or day totals are out of date. Run 'timesheet normalize --week %s' to rewrite them.\n", week.ID())
		ok = false
	}

	if !ok {
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, "✓ Document is valid and up to date")
}

// NormalizeWeek rewrites the duration tokens, summary and day totals of a
// week document. With dryRun it only reports whether anything would change.
func NormalizeWeek(deps *cli.Deps, companyInput, weekInput string, dryRun bool) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	result, err := deps.Services.Time.Normalize(companyInput, week, dryRun)
	if err != nil {
		printError(deps, err)
		return
	}

	switch {
	case !result.Exists:
		_, _ = fmt.Fprintf(deps.Stdout, "No document for %s at %s\n", week.ID(), result.Path)
		return
	case !result.Changed:
		_, _ = fmt.Fprintf(deps.Stdout, "%s is already normalized\n", result.Path)
	case dryRun:
		_, _ = fmt.Fprintf(deps.Stdout, "Would normalize %s (dry run, nothing written)\n", result.Path)
	default:
		_, _ = fmt.Fprintf(deps.Stdout, "Normalized %s\n", result.Path)
		_, _ = fmt.Fprintf(deps.Stdout, "Previous version saved as %s\n", storage.BackupPath(result.Path, 1))
	}

	if warnings := cli.FormatParseWarnings(result.Issues); warnings != "" {
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprint(deps.Stderr, warnings)
	}
}

// ListBackups prints the backups of a week document, most recent first
func ListBackups(deps *cli.Deps, companyInput, weekInput string) {
	if !ready(deps) {
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	path, backups, err := deps.Services.Time.Backups(companyInput, week)
	if err != nil {
		printError(deps, err)
		return
	}

	if len(backups) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No backups found for %s\n", path)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Backups of %s (%d %s):\n", path, len(backups), cli.Pluralize("backup", len(backups)))
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, b := range backups {
		_, _ = fmt.Fprintf(deps.Stdout, "  [%d] %s\n", b.Number, b.Path)
	}
}

// RestoreBackup replaces a week document with backup n after confirmation
func RestoreBackup(deps *cli.Deps, companyInput, weekInput, numberStr string, skipConfirm bool) {
	if !ready(deps) {
		return
	}

	n, err := strconv.Atoi(numberStr)
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid backup number '%s'. Must be a number from 1 to %d\n", numberStr, storage.MaxBackupCount)
		deps.Exit(1)
		return
	}

	week, err := deps.Services.Report.ResolveWeek(weekInput)
	if err != nil {
		printError(deps, err)
		return
	}

	if !skipConfirm {
		question := fmt.Sprintf("Restore %s from backup %d?", week.ID(), n)
		if !promptConfirmation(deps.Stdout, deps.Stdin, question) {
			_, _ = fmt.Fprintln(deps.Stdout, "Restore cancelled")
			return
		}
	}

	path, err := deps.Services.Time.Restore(companyInput, week, n)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Restored %s from backup %d\n", path, n)
	_, _ = fmt.Fprintln(deps.Stdout, "Tip: the replaced version was saved as backup 1")
}
