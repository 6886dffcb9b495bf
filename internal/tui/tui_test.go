package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/timeutil"
	"github.com/xolan/timesheet/internal/tui/ui"
)

var fixedNow = time.Date(2025, 10, 17, 15, 45, 0, 0, time.UTC)

func setupTestServicesWith(t *testing.T, mutate func(*config.Settings)) *service.Services {
	t.Helper()
	tmpDir := t.TempDir()

	settings := config.DefaultSettings()
	settings.Dir = filepath.Join(tmpDir, "tracking")
	if mutate != nil {
		mutate(&settings)
	}

	rt, err := service.NewRuntimeWithClock(settings, &timeutil.MockClock{FixedNow: fixedNow})
	if err != nil {
		t.Fatalf("failed to create runtime: %v", err)
	}
	return service.NewServicesWithRuntime(filepath.Join(tmpDir, "settings.yaml"), rt)
}

func setupTestServices(t *testing.T) *service.Services {
	t.Helper()
	return setupTestServicesWith(t, nil)
}

func multiCompany(s *config.Settings) {
	s.Companies = []string{"Acme", "Beta"}
	s.Abbreviations = "Acme:ac,Beta:b"
}

func newModel(t *testing.T, services *service.Services, company string) Model {
	t.Helper()
	m, err := New(services, company)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	if model.activeTab != TabWeek {
		t.Errorf("expected initial tab to be Week, got %d", model.activeTab)
	}
	if model.week != (timeutil.Week{Year: 2025, Number: 42}) {
		t.Errorf("expected current week, got %v", model.week)
	}
	if model.company() != "" {
		t.Errorf("expected no company in single-company mode, got %q", model.company())
	}
	if model.showHelp {
		t.Error("expected showHelp to be false initially")
	}
}

func TestNew_MultiCompany(t *testing.T) {
	services := setupTestServicesWith(t, multiCompany)

	tests := []struct {
		input    string
		expected string
	}{
		{"", "Acme"},
		{"b", "Beta"},
		{"beta", "Beta"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m := newModel(t, services, tt.input)
			if m.company() != tt.expected {
				t.Errorf("New(%q).company() = %q, expected %q", tt.input, m.company(), tt.expected)
			}
		})
	}
}

func TestNew_UnknownCompany(t *testing.T) {
	services := setupTestServicesWith(t, multiCompany)

	if _, err := New(services, "zz"); err == nil {
		t.Error("expected error for unknown company")
	}
}

func TestInit(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	if cmd := model.Init(); cmd == nil {
		t.Error("expected Init to return a command")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	next, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m := next.(Model)

	if m.width != 100 || m.height != 50 {
		t.Errorf("expected 100x50, got %dx%d", m.width, m.height)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	_, cmd := press(t, model, runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestUpdate_HelpKey(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	m, _ := press(t, model, runeKey('?'))
	if !m.showHelp {
		t.Error("expected showHelp to be true after pressing ?")
	}

	m, _ = press(t, m, runeKey('?'))
	if m.showHelp {
		t.Error("expected showHelp to be false after pressing ? again")
	}
}

func TestUpdate_TabNavigation(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	tests := []struct {
		name     string
		key      tea.KeyMsg
		expected Tab
	}{
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, TabSummary},
		{"tab again", tea.KeyMsg{Type: tea.KeyTab}, TabConfig},
		{"tab wraps", tea.KeyMsg{Type: tea.KeyTab}, TabWeek},
		{"shift+tab wraps back", tea.KeyMsg{Type: tea.KeyShiftTab}, TabConfig},
		{"1", runeKey('1'), TabWeek},
		{"2", runeKey('2'), TabSummary},
		{"3", runeKey('3'), TabConfig},
	}

	m := model
	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		if m.activeTab != tt.expected {
			t.Errorf("%s: activeTab = %d, expected %d", tt.name, m.activeTab, tt.expected)
		}
	}
}

func TestUpdate_WeekNavigation(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")
	current := model.week

	m, cmd := press(t, model, runeKey('h'))
	if m.week != current.Previous() {
		t.Errorf("expected previous week, got %v", m.week)
	}
	if cmd == nil {
		t.Error("expected reload command")
	}
	if m.weekView.Week() != current.Previous() {
		t.Errorf("expected week view to follow, got %v", m.weekView.Week())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, runeKey(']'))
	if m.week != current.Next() {
		t.Errorf("expected next week, got %v", m.week)
	}

	m, _ = press(t, m, runeKey('w'))
	if m.week != current {
		t.Errorf("expected current week, got %v", m.week)
	}
}

func TestUpdate_NextCompany(t *testing.T) {
	m := newModel(t, setupTestServicesWith(t, multiCompany), "")

	m, _ = press(t, m, runeKey('c'))
	if m.company() != "Beta" {
		t.Errorf("expected Beta, got %q", m.company())
	}
	m, _ = press(t, m, runeKey('c'))
	if m.company() != "Acme" {
		t.Errorf("expected wrap to Acme, got %q", m.company())
	}

	single := newModel(t, setupTestServices(t), "")
	single, cmd := press(t, single, runeKey('c'))
	if cmd != nil || single.company() != "" {
		t.Error("expected no company switch in single-company mode")
	}
}

func TestUpdate_ThemeSelectorCapturesKeys(t *testing.T) {
	m := newModel(t, setupTestServices(t), "")
	m, _ = press(t, m, runeKey('3'))
	m, _ = press(t, m, runeKey('t'))

	if !m.configView.IsSelectingTheme() {
		t.Fatal("expected theme selector to be open")
	}

	week := m.week
	m, _ = press(t, m, runeKey('h'))
	if m.week != week {
		t.Error("expected week navigation to be blocked while selecting a theme")
	}
	m, cmd := press(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("expected quit to be blocked while selecting a theme")
	}
	if m.activeTab != TabConfig {
		t.Errorf("expected to stay on config, got %d", m.activeTab)
	}
}

func TestUpdate_ThemeChange(t *testing.T) {
	services := setupTestServices(t)
	m := newModel(t, services, "")

	next, cmd := m.Update(ui.ThemeChangeRequestMsg{ThemeName: "nord"})
	m = next.(Model)

	if m.themeProvider.CurrentName() != "nord" {
		t.Errorf("expected theme nord, got %q", m.themeProvider.CurrentName())
	}
	if cmd == nil {
		t.Fatal("expected save command")
	}
	cmd()

	if services.Config.Settings().Theme != "nord" {
		t.Errorf("expected theme to be saved, got %q", services.Config.Settings().Theme)
	}
	if !services.Config.Exists() {
		t.Error("expected settings file to be written")
	}
}

func TestView(t *testing.T) {
	model := newModel(t, setupTestServices(t), "")

	if model.View() != "Loading..." {
		t.Errorf("expected loading view before the window size is known, got %q", model.View())
	}

	next, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := next.(Model)

	tests := []struct {
		tab      Tab
		contains string
	}{
		{TabWeek, "Week 42 (Oct 13-19, 2025)"},
		{TabSummary, "Summary:"},
		{TabConfig, "Configuration"},
	}
	for _, tt := range tests {
		m.activeTab = tt.tab
		view := m.View()
		if !strings.Contains(view, tt.contains) {
			t.Errorf("tab %d: expected %q in view, got %q", tt.tab, tt.contains, view)
		}
		for _, name := range tabNames {
			if !strings.Contains(view, name) {
				t.Errorf("expected tab %q in view", name)
			}
		}
	}

	m.showHelp = true
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Errorf("expected help overlay, got %q", m.View())
	}
}

func TestUpdate_DataMessagesReachAllViews(t *testing.T) {
	services := setupTestServices(t)
	if _, err := services.Time.LogTime(service.LogTimeInput{Task: "Design review", Duration: "2h"}); err != nil {
		t.Fatal(err)
	}

	m := newModel(t, services, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	for _, cmd := range []tea.Cmd{m.weekView.Init(), m.summaryView.Init()} {
		next, _ = m.Update(cmd())
		m = next.(Model)
	}

	if !strings.Contains(m.weekView.View(), "Design review") {
		t.Errorf("expected week view to be loaded, got %q", m.weekView.View())
	}
	if !strings.Contains(m.summaryView.View(), "2.0h / 40h") {
		t.Errorf("expected summary view to be loaded, got %q", m.summaryView.View())
	}
}
