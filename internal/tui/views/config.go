package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// ConfigModel shows the settings and the company configuration, and lets
// the user pick a theme
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	company       string
	settings      config.Settings
	settingsPath  string
	settingsFound bool
	companyConfig config.Company
	companyPath   string
	err           error
	themeName     string

	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// configLoadedMsg is sent when the configuration has been read
type configLoadedMsg struct {
	company       string
	settings      config.Settings
	settingsPath  string
	settingsFound bool
	companyConfig config.Company
	companyPath   string
	err           error
}

// NewConfigModel creates the config view
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap, company string) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		company:   company,
		themes:    themeProvider.AvailableThemes(),
		themeName: themeProvider.CurrentName(),
	}
	m.resetThemeCursor()
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadConfig()
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}
		if key.Matches(msg, m.keys.Select) || key.Matches(msg, m.keys.Theme) {
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		}
		if key.Matches(msg, m.keys.Refresh) {
			return m, m.loadConfig()
		}

	case ui.WeekSelectedMsg:
		if msg.Company != m.company {
			m.company = msg.Company
			return m, m.loadConfig()
		}

	case configLoadedMsg:
		if msg.company != m.company {
			return m, nil
		}
		m.settings = msg.settings
		m.settingsPath = msg.settingsPath
		m.settingsFound = msg.settingsFound
		m.companyConfig = msg.companyConfig
		m.companyPath = msg.companyPath
		m.err = msg.err

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		m.resetThemeCursor()
	}

	return m, nil
}

// handleThemeSelection handles keys while the theme list is open
func (m ConfigModel) handleThemeSelection(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
	case key.Matches(msg, m.keys.Select):
		m.selectingTheme = false
		if len(m.themes) == 0 {
			return m, nil
		}
		selected := m.themes[m.themeCursor]
		return m, func() tea.Msg {
			return ui.ThemeChangeRequestMsg{ThemeName: selected}
		}
	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.resetThemeCursor()
	}
	return m, nil
}

func (m *ConfigModel) resetThemeCursor() {
	for i, t := range m.themes {
		if t == m.themeName {
			m.themeCursor = i
			break
		}
	}
}

// updateThemeOffset scrolls the theme list to keep the cursor visible
func (m *ConfigModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// IsSelectingTheme reports whether the theme list captures the keyboard
func (m ConfigModel) IsSelectingTheme() bool {
	return m.selectingTheme
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "Settings file:", m.settingsPath))
	b.WriteString(m.styles.StatLabel.Render("Status:"))
	b.WriteString(" ")
	if m.settingsFound {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no settings file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderStatLine(m.styles, "dir:", m.settings.Dir))
	if m.settings.SingleCompany() {
		b.WriteString(renderStatLine(m.styles, "companies:", "(single-company mode)"))
	} else {
		b.WriteString(renderStatLine(m.styles, "companies:", strings.Join(m.settings.Companies, ", ")))
	}
	b.WriteString(renderStatLine(m.styles, "timezone:", m.settings.TimezoneName))
	b.WriteString(renderStatLine(m.styles, "normalize_durations:", fmt.Sprintf("%t", m.settings.NormalizeDurations)))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
		return b.String()
	}
	b.WriteString(renderStatLine(m.styles, "theme:", m.themeName))

	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Company: " + m.companyConfig.Name))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(renderStatLine(m.styles, "config:", m.companyPath))
		for _, c := range m.companyConfig.Commitments {
			b.WriteString(renderStatLine(m.styles, config.DisplayName(c.Name)+":", cli.FormatLimit(c.Limit)+" "+c.Unit))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press Enter or 't' to change theme"))
	return b.String()
}

// renderThemeSelector renders the scrollable theme list
func (m ConfigModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.StatLabel.Render("theme:"))
	b.WriteString(" ")
	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < end; i++ {
		theme := m.themes[i]
		current := ""
		if theme == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.DaySelected.Render("▸ " + theme))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(theme))
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m ConfigModel) loadConfig() tea.Cmd {
	company := m.company
	return func() tea.Msg {
		cfg, path, err := m.services.Config.Company(company)
		return configLoadedMsg{
			company:       company,
			settings:      m.services.Config.Settings(),
			settingsPath:  m.services.Config.GetPath(),
			settingsFound: m.services.Config.Exists(),
			companyConfig: cfg,
			companyPath:   path,
			err:           err,
		}
	}
}
