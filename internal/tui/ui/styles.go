package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Tab bar
	TabBar      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ViewTitle lipgloss.Style
	Subtitle  lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Day list
	DaySelected lipgloss.Style
	DayNormal   lipgloss.Style
	DayEmpty    lipgloss.Style
	DayTotal    lipgloss.Style

	// Entry list
	EntryTime     lipgloss.Style
	EntryTask     lipgloss.Style
	EntryDuration lipgloss.Style
	EntryTag      lipgloss.Style

	// Summary
	StatLabel lipgloss.Style
	StatValue lipgloss.Style

	Dialog lipgloss.Style

	// Commitment status
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// palette maps semantic roles to colors
type palette struct {
	primary, secondary, accent, muted lipgloss.TerminalColor
	success, warning, danger          lipgloss.TerminalColor
	fg, bg, highlight                 lipgloss.TerminalColor
}

// DefaultStyles returns styles using ANSI 256 colors, for terminals where
// no theme applies
func DefaultStyles() Styles {
	return newStyles(palette{
		primary:   lipgloss.Color("99"),
		secondary: lipgloss.Color("39"),
		accent:    lipgloss.Color("212"),
		muted:     lipgloss.Color("240"),
		success:   lipgloss.Color("82"),
		warning:   lipgloss.Color("214"),
		danger:    lipgloss.Color("196"),
		fg:        lipgloss.Color("252"),
		bg:        lipgloss.Color("236"),
		highlight: lipgloss.Color("237"),
	})
}

// NewStylesFromRegistry creates styles from the current theme of a
// bubbletint registry. Purple is the primary color, cyan the secondary.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return newStyles(palette{
		primary:   r.Purple(),
		secondary: r.Cyan(),
		accent:    r.BrightPurple(),
		muted:     r.BrightBlack(),
		success:   r.Green(),
		warning:   r.Yellow(),
		danger:    r.Red(),
		fg:        r.Fg(),
		bg:        r.Bg(),
		highlight: r.BrightBlack(),
	})
}

func newStyles(p palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		TabBar: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.muted),
		TabActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 2),
		TabInactive: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 2),

		ViewTitle: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(p.muted),

		DaySelected: lipgloss.NewStyle().
			Background(p.highlight).
			Bold(true),
		DayNormal: lipgloss.NewStyle().
			Foreground(p.fg),
		DayEmpty: lipgloss.NewStyle().
			Foreground(p.muted),
		DayTotal: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(8).
			Align(lipgloss.Right),

		EntryTime: lipgloss.NewStyle().
			Foreground(p.secondary).
			Width(6),
		EntryTask: lipgloss.NewStyle().
			Foreground(p.fg),
		EntryDuration: lipgloss.NewStyle().
			Foreground(p.accent).
			Width(8).
			Align(lipgloss.Right),
		EntryTag: lipgloss.NewStyle().
			Foreground(p.secondary),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(20),
		StatValue: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2).
			Width(50),

		Error: lipgloss.NewStyle().
			Foreground(p.danger),
		Warning: lipgloss.NewStyle().
			Foreground(p.warning),
		Success: lipgloss.NewStyle().
			Foreground(p.success),
	}
}
