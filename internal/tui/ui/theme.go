package ui

import (
	"sort"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when no theme is configured or the configured one
// does not exist
const DefaultTheme = "dracula"

// ThemeProvider keeps the current color theme on top of a bubbletint registry
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a provider starting with initialTheme
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}

	return &ThemeProvider{registry: registry}
}

// SetTheme switches to the theme with the given ID and reports whether it exists
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// CurrentName returns the ID of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// AvailableThemes returns the sorted theme IDs
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	sort.Strings(ids)
	return ids
}

// Styles returns the styles of the current theme, or DefaultStyles for a
// provider without a registry
func (tp *ThemeProvider) Styles() Styles {
	if tp == nil || tp.registry == nil {
		return DefaultStyles()
	}
	return NewStylesFromRegistry(tp.registry)
}
