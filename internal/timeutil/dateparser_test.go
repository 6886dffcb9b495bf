package timeutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedNow = time.Date(2025, time.October, 17, 15, 45, 0, 0, time.UTC)

func TestParseDate_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "2025-10-17"},
		{"today", "2025-10-17"},
		{"Yesterday", "2025-10-16"},
		{"tomorrow", "2025-10-18"},
		{"2025-10-13", "2025-10-13"},
		{"2024-02-29", "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseDate(tt.input, fixedNow)
			if err != nil {
				t.Fatalf("ParseDate(%q) returned unexpected error: %v", tt.input, err)
			}
			if got := FormatDate(result); got != tt.expected {
				t.Errorf("ParseDate(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		errorSubstring string
	}{
		{"not a date", "someday", "YYYY-MM-DD"},
		{"year only", "2025", "missing month and day"},
		{"missing day", "2025-10", "missing day"},
		{"missing year", "10-17", "missing year"},
		{"impossible date", "2025-02-30", "not a calendar date"},
		{"european format", "17/10/2025", "YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDate(tt.input, fixedNow)
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDate(%q) error = %v, expected ErrInvalidDate", tt.input, err)
			}
			if !strings.Contains(err.Error(), tt.errorSubstring) {
				t.Errorf("ParseDate(%q) error = %q, expected to contain %q", tt.input, err.Error(), tt.errorSubstring)
			}
		})
	}
}

func TestParseTime_Valid(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "2025-10-17 15:45"},
		{"now", "2025-10-17 15:45"},
		{"14:30", "2025-10-17 14:30"},
		{"9:05", "2025-10-17 09:05"},
		{"2 hours ago", "2025-10-17 13:45"},
		{"30 minutes ago", "2025-10-17 15:15"},
		{"1h ago", "2025-10-17 14:45"},
		{"16 hours ago", "2025-10-16 23:45"},
		{"this morning", "2025-10-17 09:00"},
		{"afternoon", "2025-10-17 14:00"},
		{"Evening", "2025-10-17 18:00"},
		{"last night", "2025-10-17 20:00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseTime(tt.input, fixedNow)
			if err != nil {
				t.Fatalf("ParseTime(%q) returned unexpected error: %v", tt.input, err)
			}
			if got := result.Format("2006-01-02 15:04"); got != tt.expected {
				t.Errorf("ParseTime(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseTime_Invalid(t *testing.T) {
	for _, input := range []string{"25:00", "12:60", "soonish", "noon-ish", "in 2 hours"} {
		_, err := ParseTime(input, fixedNow)
		if !errors.Is(err, ErrInvalidTime) {
			t.Errorf("ParseTime(%q) error = %v, expected ErrInvalidTime", input, err)
		}
	}
}

func TestResolveWhen(t *testing.T) {
	tests := []struct {
		date, clock   string
		expectedDate  string
		expectedClock string
	}{
		{"", "", "2025-10-17", "15:45"},
		{"yesterday", "afternoon", "2025-10-16", "14:00"},
		{"2025-10-13", "09:00", "2025-10-13", "09:00"},
		{"2025-10-13", "", "2025-10-13", "15:45"},
		{"today", "16 hours ago", "2025-10-16", "23:45"},
	}

	for _, tt := range tests {
		date, clock, err := ResolveWhen(tt.date, tt.clock, fixedNow)
		if err != nil {
			t.Errorf("ResolveWhen(%q, %q) returned unexpected error: %v", tt.date, tt.clock, err)
			continue
		}
		if date != tt.expectedDate || clock != tt.expectedClock {
			t.Errorf("ResolveWhen(%q, %q) = %s %s, expected %s %s", tt.date, tt.clock, date, clock, tt.expectedDate, tt.expectedClock)
		}
	}

	if _, _, err := ResolveWhen("bogus", "", fixedNow); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ResolveWhen(bogus) error = %v, expected ErrInvalidDate", err)
	}
	if _, _, err := ResolveWhen("", "bogus", fixedNow); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("ResolveWhen(_, bogus) error = %v, expected ErrInvalidTime", err)
	}
}
