package handlers

import (
	"strings"
	"testing"
)

func TestShowStatus(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	writeCompanyConfig(t, deps, "", acmeConfig)
	logSample(t, deps)
	stdout.Reset()

	ShowStatus(deps, "")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	expected := "📊 **Week 42 Status**\n\n" +
		"**Total:** 3.0h / 40h (8%) ✓\n" +
		"**Remaining:** 37.0h available\n\n" +
		"**By Commitment:**\n" +
		"• Development: 1.0h / 25h (4%) ✓\n" +
		"• Meeting: 2.0h / 5h (40%) ✓\n"
	if stdout.String() != expected {
		t.Errorf("ShowStatus() output = %q, expected %q", stdout.String(), expected)
	}
}

func TestShowStatus_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowStatus(deps, "")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if stdout.String() != "No time logged yet for week 42.\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestShowStatus_UnknownCompany(t *testing.T) {
	deps, _, stderr, exitCode := setupMultiCompanyDeps(t)

	ShowStatus(deps, "zz")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), `unknown company: "zz"`) {
		t.Errorf("expected unknown company error, got %q", stderr.String())
	}
}

func TestShowWeek(t *testing.T) {
	tests := []struct {
		name      string
		week      string
		breakdown bool
		contains  []string
		absent    []string
	}{
		{
			name:      "current with breakdown",
			week:      "current",
			breakdown: true,
			contains:  []string{"📊 **Week 42 Summary**", "**By Project:**\n• Platform: 1.0h", "**By Tag:**", "• Friday 2025-10-17: 3.0h (2 entries)"},
		},
		{
			name:     "iso week without breakdown",
			week:     "2025-W42",
			contains: []string{"📊 **Week 42 Summary**", "**By Day:**"},
			absent:   []string{"**By Tag:**", "**By Project:**"},
		},
		{
			name:     "last week is empty",
			week:     "last",
			contains: []string{"No time logged yet for week 41."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, _, exitCode := setupTestDeps(t)
			writeCompanyConfig(t, deps, "", acmeConfig)
			logSample(t, deps)
			stdout.Reset()

			ShowWeek(deps, "", tt.week, tt.breakdown)

			if *exitCode != 0 {
				t.Errorf("expected exit code 0, got %d", *exitCode)
			}
			for _, want := range tt.contains {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("expected %q in output, got %q", want, stdout.String())
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(stdout.String(), unwanted) {
					t.Errorf("expected no %q in output, got %q", unwanted, stdout.String())
				}
			}
		})
	}
}

func TestShowWeek_InvalidWeek(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowWeek(deps, "", "someday", true)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("expected error in stderr, got %q", stderr.String())
	}
}

func TestShowWeeklyStats(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	writeCompanyConfig(t, deps, "", acmeConfig)
	logSample(t, deps)
	stdout.Reset()

	ShowWeeklyStats(deps, "", "current")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{
		"Statistics for Week 42 (Oct 13-19, 2025) (Acme Corp):",
		"Total time:      3h\n",
		"Total entries:   2 entries\n",
		"Days with work:  1 day\n",
		"Average per day: 3h\n",
		"Busiest day:     2025-10-17 (3h)\n",
		"Top tags:",
		"#meeting",
		"Comparison: up 3h from last week\n",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
	if strings.Contains(stdout.String(), "Lightest day:") {
		t.Errorf("expected no lightest day for a single day, got %q", stdout.String())
	}
}
