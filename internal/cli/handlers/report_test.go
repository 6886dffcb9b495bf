package handlers

import (
	"strings"
	"testing"

	"github.com/xolan/timesheet/internal/filter"
)

func TestWeeklyReport(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	writeCompanyConfig(t, deps, "", acmeConfig)
	logSample(t, deps)
	stdout.Reset()

	WeeklyReport(deps, "", "current", nil)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	for _, want := range []string{
		"# 📊 Time Report - Acme Corp\n## Week 42 (Oct 13-19, 2025)\n",
		"**Total Time:** 3.0h / 40h (8%)\n",
		"**Remaining:** 37.0h available\n",
		"**Trend:** up 3h from last week\n",
		"### 2025-10-17 Friday (3.0h)\n\n- 09:00 API work (1.0h) #api\n- 15:45 Design review (2.0h) #meeting\n",
		"*Report generated: 2025-10-17*\n",
	} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected %q in output, got %q", want, stdout.String())
		}
	}
}

func TestWeeklyReport_Filtered(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	logSample(t, deps)
	stdout.Reset()

	WeeklyReport(deps, "", "2025-W42", filter.NewFilter("", "", []string{"#meeting"}))

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "**Filter:** #meeting\n") {
		t.Errorf("expected filter line in output, got %q", stdout.String())
	}
	if strings.Contains(stdout.String(), "API work") {
		t.Errorf("expected filtered out entry to be absent, got %q", stdout.String())
	}
}

func TestWeeklyReport_Empty(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	WeeklyReport(deps, "", "last", nil)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if stdout.String() != "No time logged for week 41 of 2025.\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestWeeklyReport_CompanyRequired(t *testing.T) {
	deps, _, stderr, exitCode := setupMultiCompanyDeps(t)

	WeeklyReport(deps, "", "current", nil)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Hint: choose a company") {
		t.Errorf("expected company hint, got %q", stderr.String())
	}
}
