package ui

import (
	"testing"
)

func TestNewThemeProvider_Default(t *testing.T) {
	tp := NewThemeProvider("")

	if tp == nil {
		t.Fatal("expected non-nil ThemeProvider")
	}
	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected default theme %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestNewThemeProvider_WithTheme(t *testing.T) {
	tp := NewThemeProvider("nord")

	if tp.CurrentName() != "nord" {
		t.Errorf("expected theme 'nord', got %q", tp.CurrentName())
	}
}

func TestNewThemeProvider_InvalidTheme(t *testing.T) {
	tp := NewThemeProvider("nonexistent-theme-xyz")

	if tp.CurrentName() != DefaultTheme {
		t.Errorf("expected fallback to %q, got %q", DefaultTheme, tp.CurrentName())
	}
}

func TestThemeProvider_SetTheme(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		ok       bool
		expected string
	}{
		{"valid", "nord", true, "nord"},
		{"invalid keeps current", "nonexistent-theme-xyz", false, DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewThemeProvider(DefaultTheme)

			if ok := tp.SetTheme(tt.theme); ok != tt.ok {
				t.Errorf("SetTheme(%q) = %v, expected %v", tt.theme, ok, tt.ok)
			}
			if tp.CurrentName() != tt.expected {
				t.Errorf("CurrentName() = %q, expected %q", tp.CurrentName(), tt.expected)
			}
		})
	}
}

func TestThemeProvider_AvailableThemes(t *testing.T) {
	tp := NewThemeProvider("")

	themes := tp.AvailableThemes()

	if len(themes) == 0 {
		t.Fatal("expected at least one available theme")
	}
	for i := 1; i < len(themes); i++ {
		if themes[i] < themes[i-1] {
			t.Errorf("themes not sorted: %q < %q", themes[i], themes[i-1])
		}
	}

	found := false
	for _, theme := range themes {
		if theme == DefaultTheme {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected %q in available themes", DefaultTheme)
	}
}

func TestThemeProvider_Styles(t *testing.T) {
	tp := NewThemeProvider("dracula")

	styles := tp.Styles()
	if styles.App.GetPaddingTop() == 0 {
		t.Error("expected App style to have padding")
	}
}

func TestThemeProvider_NilFallsBackToDefaultStyles(t *testing.T) {
	var tp *ThemeProvider

	styles := tp.Styles()
	if styles.DayTotal.GetWidth() != DefaultStyles().DayTotal.GetWidth() {
		t.Error("expected default styles for a nil provider")
	}
}
