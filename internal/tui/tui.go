// Package tui provides the terminal week browser of the timesheet application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/timeutil"
	"github.com/xolan/timesheet/internal/tui/ui"
	"github.com/xolan/timesheet/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabWeek Tab = iota
	TabSummary
	TabConfig
)

var tabNames = []string{"Week", "Summary", "Config"}

// Model is the root TUI model. It owns the browsed week and company and
// broadcasts changes to the views.
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	week       timeutil.Week
	companies  []string // empty in single-company mode
	companyIdx int

	weekView    views.WeekModel
	summaryView views.SummaryModel
	configView  views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates the TUI model starting on the current week. companyInput
// picks the company in multi-company mode; empty means the first one.
func New(services *service.Services, companyInput string) (Model, error) {
	settings := services.Config.Settings()

	var companies []string
	companyIdx := 0
	if !settings.SingleCompany() {
		companies = settings.CompanyNames()
		if strings.TrimSpace(companyInput) != "" {
			name, _, err := services.Config.CompanyPath(companyInput)
			if err != nil {
				return Model{}, err
			}
			for i, c := range companies {
				if c == name {
					companyIdx = i
				}
			}
		}
	}

	themeProvider := ui.NewThemeProvider(settings.Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()
	week := timeutil.WeekOf(services.Time.Now())

	m := Model{
		services:      services,
		activeTab:     TabWeek,
		week:          week,
		companies:     companies,
		companyIdx:    companyIdx,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
	}
	m.weekView = views.NewWeekModel(services, styles, keys, week, m.company())
	m.summaryView = views.NewSummaryModel(services, styles, keys, week, m.company())
	m.configView = views.NewConfigModel(services, themeProvider, styles, keys, m.company())
	return m, nil
}

// company is the browsed company, "" in single-company mode
func (m Model) company() string {
	if len(m.companies) == 0 {
		return ""
	}
	return m.companies[m.companyIdx]
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.weekView.Init(),
		m.summaryView.Init(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// the theme list owns navigation keys while it is open
		capturing := m.activeTab == TabConfig && m.configView.IsSelectingTheme()

		switch {
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !capturing:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !capturing:
			m.activeTab = TabWeek
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !capturing:
			m.activeTab = TabSummary
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !capturing:
			m.activeTab = TabConfig
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevWeek) && !capturing:
			return m.selectWeek(m.week.Previous())

		case key.Matches(msg, m.keys.NextWeek) && !capturing:
			return m.selectWeek(m.week.Next())

		case key.Matches(msg, m.keys.ThisWeek) && !capturing:
			return m.selectWeek(timeutil.WeekOf(m.services.Time.Now()))

		case key.Matches(msg, m.keys.NextCompany) && !capturing:
			if len(m.companies) < 2 {
				return m, nil
			}
			m.companyIdx = (m.companyIdx + 1) % len(m.companies)
			return m.selectWeek(m.week)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // tabs and status bar
		m.weekView.SetSize(m.width, contentHeight)
		m.summaryView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: m.themeProvider.CurrentName(),
			Styles:    m.styles,
		}
		m.weekView, _ = m.weekView.Update(themeMsg)
		m.summaryView, _ = m.summaryView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveTheme(themeMsg.ThemeName)
	}

	// data messages go to every view, keys only to the active one
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch m.activeTab {
		case TabWeek:
			m.weekView, cmd = m.weekView.Update(msg)
		case TabSummary:
			m.summaryView, cmd = m.summaryView.Update(msg)
		case TabConfig:
			m.configView, cmd = m.configView.Update(msg)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	m.weekView, cmd = m.weekView.Update(msg)
	cmds = append(cmds, cmd)
	m.summaryView, cmd = m.summaryView.Update(msg)
	cmds = append(cmds, cmd)
	m.configView, cmd = m.configView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// selectWeek moves every view to week of the current company
func (m Model) selectWeek(week timeutil.Week) (tea.Model, tea.Cmd) {
	m.week = week
	msg := ui.WeekSelectedMsg{Week: week, Company: m.company()}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.weekView, cmd = m.weekView.Update(msg)
	cmds = append(cmds, cmd)
	m.summaryView, cmd = m.summaryView.Update(msg)
	cmds = append(cmds, cmd)
	m.configView, cmd = m.configView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabWeek:
		b.WriteString(m.weekView.View())
	case TabSummary:
		b.WriteString(m.summaryView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderStatusBar() string {
	var parts []string

	switch m.activeTab {
	case TabWeek:
		parts = append(parts, m.renderKeyHelp("j/k", "day"))
	case TabConfig:
		parts = append(parts, m.renderKeyHelp("t", "themes"))
	}
	parts = append(parts, m.renderKeyHelp("h/l", "week"))
	parts = append(parts, m.renderKeyHelp("w", "this week"))
	if len(m.companies) > 1 {
		parts = append(parts, m.renderKeyHelp("c", "company"))
	}
	parts = append(parts, m.renderKeyHelp("1-3", "views"))
	parts = append(parts, m.renderKeyHelp("?", "help"))
	parts = append(parts, m.renderKeyHelp("q", "quit"))

	content := strings.Join(parts, "  ")
	if padding := m.width - lipgloss.Width(content); padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// initCurrentView reloads the view being switched to
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabWeek:
		return m.weekView.Init()
	case TabSummary:
		return m.summaryView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// saveTheme stores the theme in the settings file
func (m Model) saveTheme(themeName string) tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Config.SetTheme(themeName); err != nil {
			log.Warnf("failed to save theme %s: %v", themeName, err)
		}
		return nil
	}
}

func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-3    Switch views\n")
	help.WriteString("  h/l ←/→    Previous/next week\n")
	help.WriteString("  w          This week\n")
	if len(m.companies) > 1 {
		help.WriteString("  c          Next company\n")
	}
	help.WriteString("  r          Refresh\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabWeek:
		help.WriteString(m.styles.StatLabel.Render("Week:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Select day\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI
func Run(services *service.Services, companyInput string) error {
	model, err := New(services, companyInput)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
