package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/cli/handlers"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/service"
)

// maxDurationWords bounds the words of one duration ("half an hour")
const maxDurationWords = 3

var errMissingDuration = errors.New("no duration found")

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [company] <duration> <task...> [#tag...]",
	Short: "Log completed work",
	Long: `Log a completed piece of work into the week file of its date.

The duration comes first, followed by the task. Words starting with '#'
become tags. In multi-company mode the company may precede the duration
("timesheet log hm 2h review") or follow the task ("2h review for hm").

Examples:
  timesheet log 2h security review #development
  timesheet log 90m code review --time 14:00
  timesheet log "half an hour" standup #meeting --date yesterday
  timesheet log hm 1.5h platform work`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runLog(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	addLogFlags(logCmd)
}

func addLogFlags(cmd *cobra.Command) {
	cmd.Flags().String("time", "", `When the work was done (e.g. "14:30", "2 hours ago", "morning")`)
	cmd.Flags().StringP("date", "d", "", `Date of the work (e.g. "yesterday", "2025-10-17")`)
	cmd.Flags().StringSlice("tag", nil, "Tag to add (repeatable, without '#')")
}

func runLog(cmd *cobra.Command, args []string) {
	d := cli.GetDeps()

	multiCompany := d.Services != nil && !d.Services.Config.Settings().SingleCompany()
	explicitCompany := companyFlag(cmd)

	parsed, err := parseLogArgs(args, multiCompany && explicitCompany == "")
	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: %v\n", err)
		_, _ = fmt.Fprintln(d.Stderr, "Usage: timesheet log <duration> <task> [#tag...]")
		_, _ = fmt.Fprintln(d.Stderr, "Example: timesheet log 2h security review #development")
		d.Exit(1)
		return
	}

	timeInput, _ := cmd.Flags().GetString("time")
	dateInput, _ := cmd.Flags().GetString("date")
	extraTags, _ := cmd.Flags().GetStringSlice("tag")

	company := explicitCompany
	if company == "" {
		company = parsed.company
	}

	handlers.LogTime(d, service.LogTimeInput{
		Task:     parsed.task,
		Duration: parsed.duration,
		Time:     timeInput,
		Date:     dateInput,
		Tags:     append(parsed.tags, extraTags...),
		Company:  company,
	})
}

type logArgs struct {
	company  string
	duration string
	task     string
	tags     []string
}

// parseLogArgs splits "[company] <duration> <task...>" into its parts. The
// duration is the first run of up to three words that parses as one, the
// longest run winning. Words before it are the company when
// companyPrefix is set and part of the task otherwise.
func parseLogArgs(args []string, companyPrefix bool) (logArgs, error) {
	words := strings.Fields(strings.Join(args, " "))

	start, length := findDuration(words)
	if start < 0 {
		return logArgs{}, fmt.Errorf("%w in %q", errMissingDuration, strings.Join(words, " "))
	}

	var result logArgs
	result.duration = strings.Join(words[start:start+length], " ")

	var taskWords []string
	if companyPrefix {
		result.company = strings.Join(words[:start], " ")
	} else {
		taskWords = append(taskWords, words[:start]...)
	}

	for _, w := range words[start+length:] {
		if strings.HasPrefix(w, "#") {
			if tag := strings.TrimPrefix(w, "#"); tag != "" {
				result.tags = append(result.tags, tag)
			}
			continue
		}
		taskWords = append(taskWords, w)
	}
	result.task = strings.Join(taskWords, " ")

	if result.task == "" {
		return logArgs{}, fmt.Errorf("%w: task cannot be empty", entry.ErrInvalidTask)
	}
	return result, nil
}

// findDuration returns the position and word count of the first duration in
// words, or -1. Out of range durations count so their error is reported.
func findDuration(words []string) (int, int) {
	for i := range words {
		for n := min(maxDurationWords, len(words)-i); n > 0; n-- {
			_, err := entry.ParseDuration(strings.Join(words[i:i+n], " "))
			if err == nil || errors.Is(err, entry.ErrDurationOutOfRange) {
				return i, n
			}
		}
	}
	return -1, 0
}
