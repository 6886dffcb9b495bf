package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
	"github.com/xolan/timesheet/internal/tui/ui"
)

// SummaryModel shows the totals of the browsed week against the commitments,
// with breakdowns by project and tag and the change from the week before
type SummaryModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	week    timeutil.Week
	company string

	result  *service.ReportData
	loading bool
	err     error
}

// NewSummaryModel creates the summary view
func NewSummaryModel(services *service.Services, styles ui.Styles, keys ui.KeyMap, week timeutil.Week, company string) SummaryModel {
	return SummaryModel{
		services: services,
		styles:   styles,
		keys:     keys,
		week:     week,
		company:  company,
		loading:  true,
	}
}

// Init implements tea.Model
func (m SummaryModel) Init() tea.Cmd {
	return loadReport(m.services, m.week, m.company)
}

// Update implements tea.Model
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Refresh) {
			m.loading = true
			return m, loadReport(m.services, m.week, m.company)
		}

	case ui.WeekSelectedMsg:
		m.week = msg.Week
		m.company = msg.Company
		m.loading = true
		return m, loadReport(m.services, m.week, m.company)

	case reportLoadedMsg:
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
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Summary: " + weekTitle(m.week, m.company)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...")
		return b.String()
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		return b.String()
	}
	if m.result == nil || len(m.result.Summary.Days) == 0 {
		b.WriteString(fmt.Sprintf("No time logged for week %d of %d.", m.week.Number, m.week.Year))
		return b.String()
	}

	s := m.result.Summary
	cfg := m.result.Config

	if total, ok := stats.Usage(s, cfg); ok {
		b.WriteString(m.renderUsage("Total:", total))
		b.WriteString(renderStatLine(m.styles, "Remaining:", cli.FormatHours(total.Remaining)))
	} else {
		b.WriteString(renderStatLine(m.styles, "Total:", cli.FormatHours(s.TotalHours)))
	}
	days := len(s.Days)
	b.WriteString(renderStatLine(m.styles, "Entries:", fmt.Sprintf("%d %s on %d %s",
		m.result.EntryCount, cli.Pluralize("entry", m.result.EntryCount), days, cli.Pluralize("day", days))))
	b.WriteString(renderStatLine(m.styles, "Average per day:", cli.FormatHours(stats.AveragePerDay(s))))
	b.WriteString(renderStatLine(m.styles, "Comparison:", m.result.Comparison))

	if usages := stats.CommitmentUsages(s, cfg); len(usages) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("By Commitment"))
		b.WriteString("\n")
		for _, u := range usages {
			b.WriteString(m.renderUsage(config.DisplayName(u.Name)+":", u))
		}
	}

	if projects := stats.ProjectStatistics(s); len(projects) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("By Project"))
		b.WriteString("\n")
		for _, p := range projects {
			b.WriteString(fmt.Sprintf("  %-20s %8s\n", p.Project, cli.FormatHours(p.Hours)))
		}
	}

	if tags := stats.TagStatistics(s); len(tags) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("By Tag"))
		b.WriteString("\n")
		for _, t := range tags {
			b.WriteString(fmt.Sprintf("  %-20s %8s  (%d%%)\n", "#"+t.Tag, cli.FormatHours(t.Hours), t.Percentage))
		}
	}

	return b.String()
}

// renderUsage renders hours against a limit, colored by status
func (m SummaryModel) renderUsage(label string, u stats.CommitmentUsage) string {
	if u.Limit <= 0 {
		return renderStatLine(m.styles, label, cli.FormatHours(u.Hours))
	}

	value := fmt.Sprintf("%s / %s (%d%%) %s", cli.FormatHours(u.Hours), cli.FormatLimit(u.Limit), u.Percentage, u.Status.Indicator())
	style := m.styles.Success
	switch u.Status {
	case stats.StatusOver:
		style = m.styles.Error
	case stats.StatusApproaching:
		style = m.styles.Warning
	}
	return m.styles.StatLabel.Render(label) + " " + style.Render(value) + "\n"
}

// SetSize sets the view dimensions
func (m *SummaryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
