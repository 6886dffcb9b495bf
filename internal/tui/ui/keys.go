package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings of the week browser
type KeyMap struct {
	// Day cursor
	Up   key.Binding
	Down key.Binding

	// Week navigation
	PrevWeek    key.Binding
	NextWeek    key.Binding
	ThisWeek    key.Binding
	NextCompany key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding

	// Actions
	Select  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Refresh key.Binding
	Theme   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous day"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next day"),
		),

		PrevWeek: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←/h", "previous week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→/l", "next week"),
		),
		ThisWeek: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "this week"),
		),
		NextCompany: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next company"),
		),

		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "week"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "summary"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "config"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "themes"),
		),
	}
}
