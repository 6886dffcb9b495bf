package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
	"github.com/xolan/timesheet/internal/tui/ui"
)

// WeekModel lists the days of a week with their totals and shows the
// entries of the selected day
type WeekModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	week    timeutil.Week
	company string
	cursor  int // index into week.Days()

	result  *service.WeekResult
	loading bool
	err     error
}

// NewWeekModel creates the week view for week of company ("" in
// single-company mode)
func NewWeekModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, week timeutil.Week, company string) WeekModel {
	m := WeekModel{
		services: services,
		styles:   styles,
		keys:     keys,
		week:     week,
		company:  company,
		loading:  true,
	}
	m.cursor = m.defaultCursor()
	return m
}

// Init implements tea.Model
func (m WeekModel) Init() tea.Cmd {
	return loadWeek(m.services, m.week, m.company)
}

// Update implements tea.Model
func (m WeekModel) Update(msg tea.Msg) (WeekModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < 6 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, loadWeek(m.services, m.week, m.company)
		}

	case ui.WeekSelectedMsg:
		m.week = msg.Week
		m.company = msg.Company
		m.cursor = m.defaultCursor()
		m.loading = true
		return m, loadWeek(m.services, m.week, m.company)

	case weekLoadedMsg:
		// a slower load of a week we already left
		if msg.week != m.week || msg.company != m.company {
			return m, nil
		}
		m.loading = false
		m.result = msg.result
		m.err = msg.err

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
	}

	return m, nil
}

// View implements tea.Model
func (m WeekModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(weekTitle(m.week, m.company)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil {
		b.WriteString("No data")
		return b.String()
	}

	b.WriteString(m.renderTotal())
	if top := stats.TopTags(m.result.Summary, 3); len(top) > 0 {
		b.WriteString(renderStatLine(m.styles, "Top tags:", entry.FormatTags(top, "")))
	}
	b.WriteString("\n")

	days := m.week.Days()
	for i, day := range days {
		b.WriteString(m.renderDayRow(day, i == m.cursor))
		b.WriteString("\n")
	}

	selected := m.result.Summary.Day(timeutil.FormatDate(days[m.cursor]))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%s %s", timeutil.DayName(days[m.cursor]), selected.Date)))
	b.WriteString("\n")
	if len(selected.Entries) == 0 {
		b.WriteString(m.styles.DayEmpty.Render("  No entries"))
		b.WriteString("\n")
	} else {
		b.WriteString(RenderEntryList(selected.Entries, m.styles, EntryRenderOptions{Width: m.width}))
	}

	if m.result.Issues.HasWarnings() {
		b.WriteString("\n")
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("⚠ %d parse %s, run 'timesheet validate --week %s'",
			len(m.result.Issues.Warnings), cli.Pluralize("warning", len(m.result.Issues.Warnings)), m.week.ID())))
		b.WriteString("\n")
	}

	return b.String()
}

func (m WeekModel) renderTotal() string {
	summary := m.result.Summary
	value := cli.FormatHours(summary.TotalHours)
	if total, ok := stats.Usage(summary, m.result.Config); ok {
		value = fmt.Sprintf("%s / %s (%d%%) %s", value, cli.FormatLimit(total.Limit), total.Percentage, total.Status.Indicator())
	}
	return renderStatLine(m.styles, "Total:", value)
}

func (m WeekModel) renderDayRow(day time.Time, selected bool) string {
	d := m.result.Summary.Day(timeutil.FormatDate(day))

	marker := "  "
	if selected {
		marker = "▸ "
	}
	label := fmt.Sprintf("%s%-9s %s", marker, timeutil.DayName(day), d.Date)
	total := m.styles.DayTotal.Render(cli.FormatHours(d.TotalHours))
	count := ""
	if n := len(d.Entries); n > 0 {
		count = fmt.Sprintf("  (%d %s)", n, cli.Pluralize("entry", n))
	}

	style := m.styles.DayNormal
	switch {
	case selected:
		style = m.styles.DaySelected
	case len(d.Entries) == 0:
		style = m.styles.DayEmpty
	}
	return style.Render(label) + " " + total + count
}

// defaultCursor selects today when it falls in the week, Monday otherwise
func (m WeekModel) defaultCursor() int {
	today := timeutil.FormatDate(m.services.Time.Now())
	for i, day := range m.week.Days() {
		if timeutil.FormatDate(day) == today {
			return i
		}
	}
	return 0
}

// SetSize sets the view dimensions
func (m *WeekModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Week returns the browsed week
func (m WeekModel) Week() timeutil.Week {
	return m.week
}

// SelectedDate returns the date under the cursor
func (m WeekModel) SelectedDate() string {
	return timeutil.FormatDate(m.week.Days()[m.cursor])
}
