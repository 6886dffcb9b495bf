package ui

import "github.com/xolan/timesheet/internal/timeutil"

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// WeekSelectedMsg is broadcast to all views when the browsed week or
// company changes. Views reload their data when they receive it.
type WeekSelectedMsg struct {
	Week    timeutil.Week
	Company string
}
