package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/timeutil"
	"github.com/xolan/timesheet/internal/tui/ui"
)

// EntryRenderOptions configures how entries are rendered
type EntryRenderOptions struct {
	Width int // available width; the task column is truncated to fit
}

// RenderEntryList renders entries with aligned time, task and duration columns
func RenderEntryList(entries []entry.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	tasks := make([]string, len(entries))
	maxTaskWidth := 0
	for i, e := range entries {
		tasks[i] = e.Task
		if len(tasks[i]) > maxTaskWidth {
			maxTaskWidth = len(tasks[i])
		}
	}

	// time and duration columns plus padding
	allowed := max(opts.Width-6-8-4, 20)
	maxTaskWidth = min(maxTaskWidth, allowed)

	var b strings.Builder
	for i, e := range entries {
		task := tasks[i]
		if len(task) > maxTaskWidth {
			task = task[:maxTaskWidth-1] + "…"
		}

		line := fmt.Sprintf("  %s %s %s",
			styles.EntryTime.Render(e.Time),
			styles.EntryTask.Render(fmt.Sprintf("%-*s", maxTaskWidth, task)),
			styles.EntryDuration.Render(cli.FormatHours(e.Hours)))
		if tags := entry.FormatTags(e.Tags, ""); tags != "" {
			line += " " + styles.EntryTag.Render(tags)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// weekLoadedMsg carries a freshly read week document
type weekLoadedMsg struct {
	week    timeutil.Week
	company string
	result  *service.WeekResult
	err     error
}

// reportLoadedMsg carries the report data of a week
type reportLoadedMsg struct {
	week    timeutil.Week
	company string
	result  *service.ReportData
	err     error
}

func loadWeek(services *service.Services, week timeutil.Week, company string) tea.Cmd {
	return func() tea.Msg {
		result, err := services.Time.WeeklySummary(company, week)
		return weekLoadedMsg{week: week, company: company, result: result, err: err}
	}
}

func loadReport(services *service.Services, week timeutil.Week, company string) tea.Cmd {
	return func() tea.Msg {
		result, err := services.Report.Weekly(company, week, nil)
		return reportLoadedMsg{week: week, company: company, result: result, err: err}
	}
}

func renderStatLine(styles ui.Styles, label, value string) string {
	return styles.StatLabel.Render(label) + " " + styles.StatValue.Render(value) + "\n"
}

// weekTitle is the header of a week followed by the company, if any
func weekTitle(week timeutil.Week, company string) string {
	if company == "" {
		return week.Header()
	}
	return fmt.Sprintf("%s · %s", week.Header(), company)
}
