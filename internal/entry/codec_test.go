package entry

import (
	"reflect"
	"testing"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			name:     "with tags",
			entry:    Entry{Date: "2025-10-17", Time: "09:00", Task: "Design review", Hours: 2, Tags: []string{"meeting", "design"}},
			expected: "- 09:00 Design review (2h) #meeting #design",
		},
		{
			name:     "without tags",
			entry:    Entry{Date: "2025-10-17", Time: "14:30", Task: "Code review", Hours: 1.5},
			expected: "- 14:30 Code review (1.5h)",
		},
		{
			name:     "fractional hours are rounded",
			entry:    Entry{Date: "2025-10-17", Time: "08:05", Task: "Standup", Hours: 0.25},
			expected: "- 08:05 Standup (0.3h)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatLine(tt.entry)
			if result != tt.expected {
				t.Errorf("FormatLine() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestParseLine_Strict(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Entry
		ok       bool
	}{
		{
			name:     "canonical with tags",
			line:     "- 09:00 Design review (2h) #meeting #design",
			expected: Entry{Date: "2025-10-17", Time: "09:00", Task: "Design review", Hours: 2, Tags: []string{"meeting", "design"}},
			ok:       true,
		},
		{
			name:     "decimal hours no tags",
			line:     "- 14:30 Code review (1.5h)",
			expected: Entry{Date: "2025-10-17", Time: "14:30", Task: "Code review", Hours: 1.5, Tags: []string{}},
			ok:       true,
		},
		{
			name:     "duplicate tags preserved",
			line:     "- 10:00 Pairing (1h) #dev #dev",
			expected: Entry{Date: "2025-10-17", Time: "10:00", Task: "Pairing", Hours: 1, Tags: []string{"dev", "dev"}},
			ok:       true,
		},
		{
			name:     "tags mixed with trailing text",
			line:     "- 10:00 Pairing (1h) with Sam #dev",
			expected: Entry{Date: "2025-10-17", Time: "10:00", Task: "Pairing", Hours: 1, Tags: []string{"dev"}},
			ok:       true,
		},
		{
			name:     "duration inside the task",
			line:     "- 09:00 Retro (1h) follow-up (2h) #meeting",
			expected: Entry{Date: "2025-10-17", Time: "09:00", Task: "Retro (1h) follow-up", Hours: 2, Tags: []string{"meeting"}},
			ok:       true,
		},
		{name: "minutes token rejected", line: "- 06:01 task (30m)"},
		{name: "bogus line", line: "- bogus entry without proper shape"},
		{name: "missing duration", line: "- 09:00 Design review"},
		{name: "invalid clock", line: "- 25:00 Late night (1h)"},
		{name: "out of range", line: "- 09:00 Marathon (30h)"},
		{name: "not an entry", line: "Some prose (2h)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseLine(tt.line, "2025-10-17", Strict)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			}
			if ok && !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ParseLine(%q) = %+v, expected %+v", tt.line, result, tt.expected)
			}
		})
	}
}

func TestParseLine_Flexible(t *testing.T) {
	tests := []struct {
		line     string
		expected float64
		ok       bool
	}{
		{"- 06:01 task (30m)", 0.5, true},
		{"- 06:01 task (PT1H30M)", 1.5, true},
		{"- 06:01 task (half an hour) #ops", 0.5, true},
		{"- 06:01 task (2h)", 2, true},
		{"- 06:01 task (soon)", 0, false},
		{"- 06:01 task (1m)", 0, false},
		{"- 09:00 Sync (Bob) (30m)", 0.5, true},
		{"- 09:00 Sync (30m) (see notes)", 0.5, true},
	}

	for _, tt := range tests {
		result, ok := ParseLine(tt.line, "2025-10-17", Flexible)
		if ok != tt.ok {
			t.Errorf("ParseLine(%q, Flexible) ok = %v, expected %v", tt.line, ok, tt.ok)
			continue
		}
		if ok && result.Hours != tt.expected {
			t.Errorf("ParseLine(%q, Flexible) hours = %v, expected %v", tt.line, result.Hours, tt.expected)
		}
	}
}

func TestParseLine_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Date: "2025-10-17", Time: "09:00", Task: "Design review", Hours: 2, Tags: []string{"meeting"}},
		{Date: "2025-10-13", Time: "23:59", Task: "Deploy (phase 2)", Hours: 0.1, Tags: []string{}},
		{Date: "2025-10-19", Time: "00:00", Task: "Write docs", Hours: 24, Tags: []string{"docs", "v1-release", "docs"}},
		{Date: "2025-10-14", Time: "12:15", Task: "Lunch & learn", Hours: 1.3, Tags: []string{"learning"}},
		{Date: "2025-10-15", Time: "09:00", Task: "Retro (1h) follow-up", Hours: 2, Tags: []string{"meeting"}},
	}

	for _, e := range entries {
		line := FormatLine(e)
		parsed, ok := ParseLine(line, e.Date, Strict)
		if !ok {
			t.Errorf("ParseLine(%q) failed to parse formatted entry", line)
			continue
		}
		if !reflect.DeepEqual(parsed, e) {
			t.Errorf("round trip of %q = %+v, expected %+v", line, parsed, e)
		}
	}
}

func TestParseLine_TaskParenthetical(t *testing.T) {
	result, ok := ParseLine("- 09:00 Sync (Bob) (30m) #meeting", "2025-10-17", Flexible)
	if !ok {
		t.Fatal("expected the line to parse")
	}
	if result.Task != "Sync (Bob)" || result.Hours != 0.5 {
		t.Errorf("ParseLine() = %q %vh, expected \"Sync (Bob)\" 0.5h", result.Task, result.Hours)
	}
	if !reflect.DeepEqual(result.Tags, []string{"meeting"}) {
		t.Errorf("ParseLine() tags = %v, expected [meeting]", result.Tags)
	}
}

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		mode     Mode
		expected string
		ok       bool
	}{
		{"minutes to hours", "- 06:01 task (30m)", Flexible, "- 06:01 task (0.5h)", true},
		{"keeps trailing text", "- 06:01 task (90 minutes) #ops  extra", Flexible, "- 06:01 task (1.5h) #ops  extra", true},
		{"canonical is unchanged", "- 06:01 task (2h) #ops", Strict, "- 06:01 task (2h) #ops", true},
		{"trailing zero removed", "- 06:01 task (2.0h)", Strict, "- 06:01 task (2h)", true},
		{"strict ignores minutes", "- 06:01 task (30m)", Strict, "- 06:01 task (30m)", false},
		{"unparsable left alone", "- 06:01 task (soon)", Flexible, "- 06:01 task (soon)", false},
		{"task parenthetical kept", "- 09:00 Sync (Bob) (30m)", Flexible, "- 09:00 Sync (Bob) (0.5h)", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := NormalizeLine(tt.line, tt.mode)
			if ok != tt.ok {
				t.Errorf("NormalizeLine(%q) ok = %v, expected %v", tt.line, ok, tt.ok)
			}
			if result != tt.expected {
				t.Errorf("NormalizeLine(%q) = %q, expected %q", tt.line, result, tt.expected)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		input        string
		expectedDesc string
		expectedTags []string
	}{
		{"fix bug #bugfix #urgent", "fix bug", []string{"bugfix", "urgent"}},
		{"#meeting Design review", "Design review", []string{"meeting"}},
		{"plain task", "plain task", nil},
		{"review #v1-release   notes", "review notes", []string{"v1-release"}},
	}

	for _, tt := range tests {
		desc, tags := SplitTags(tt.input)
		if desc != tt.expectedDesc {
			t.Errorf("SplitTags(%q) desc = %q, expected %q", tt.input, desc, tt.expectedDesc)
		}
		if !reflect.DeepEqual(tags, tt.expectedTags) {
			t.Errorf("SplitTags(%q) tags = %v, expected %v", tt.input, tags, tt.expectedTags)
		}
	}
}

func TestModeFor(t *testing.T) {
	if ModeFor(true) != Flexible {
		t.Errorf("ModeFor(true) = %v, expected flexible", ModeFor(true))
	}
	if ModeFor(false) != Strict {
		t.Errorf("ModeFor(false) = %v, expected strict", ModeFor(false))
	}
}
