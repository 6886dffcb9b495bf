package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/document"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/filter"
	"github.com/xolan/timesheet/internal/service"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
)

var week42 = timeutil.Week{Year: 2025, Number: 42}

const acmeConfig = `
company = "Acme Corp"

[commitments.total]
limit = 40
max = 45

[commitments.development]
limit = 25

[commitments.meeting]
limit = 5

[[projects]]
name = "Platform"
tags = ["platform", "api"]
commitment = "development"
`

func acmeCompany(t *testing.T) config.Company {
	t.Helper()
	cfg, err := config.ParseCompany(acmeConfig, "acme")
	require.NoError(t, err)
	return cfg
}

func weekFixture(t *testing.T, entries ...entry.Entry) *service.WeekResult {
	t.Helper()
	cfg := acmeCompany(t)
	return &service.WeekResult{
		Company: "acme",
		Config:  cfg,
		Week:    week42,
		Exists:  len(entries) > 0,
		Summary: stats.Summarize(week42, entries, cfg),
	}
}

func sampleEntries() []entry.Entry {
	return []entry.Entry{
		{Date: "2025-10-17", Time: "09:00", Task: "API work", Hours: 3, Tags: []string{"api"}},
		{Date: "2025-10-17", Time: "14:00", Task: "Standup", Hours: 0.5, Tags: []string{"meeting"}},
		{Date: "2025-10-16", Time: "10:00", Task: "Review", Hours: 2, Tags: []string{"platform", "review"}},
	}
}

func TestFormatStatus(t *testing.T) {
	expected := "📊 **Week 42 Status**\n\n" +
		"**Total:** 5.5h / 40h (14%) ✓\n" +
		"**Remaining:** 34.5h available\n\n" +
		"**By Commitment:**\n" +
		"• Development: 5.0h / 25h (20%) ✓\n" +
		"• Meeting: 0.5h / 5h (10%) ✓\n"

	assert.Equal(t, expected, FormatStatus(weekFixture(t, sampleEntries()...)))
}

func TestFormatStatus_Limits(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		contains string
	}{
		{"within", 20, "(50%) ✓\n"},
		{"almost", 36, "(90%) ⚠️ Almost at limit\n"},
		{"over", 42, "(105%) 🚫 OVER LIMIT\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entry.Entry{Date: "2025-10-15", Time: "09:00", Task: "Work", Hours: tt.hours / 2}
			result := FormatStatus(weekFixture(t, e, e))
			assert.Contains(t, result, tt.contains)
		})
	}
}

func TestFormatStatus_OverCommitment(t *testing.T) {
	e := entry.Entry{Date: "2025-10-15", Time: "09:00", Task: "Sync", Hours: 6, Tags: []string{"meeting"}}
	result := FormatStatus(weekFixture(t, e))
	assert.Contains(t, result, "• Meeting: 6.0h / 5h (120%) 🚫\n")
}

func TestFormatStatus_Empty(t *testing.T) {
	assert.Equal(t, "No time logged yet for week 42.\n", FormatStatus(weekFixture(t)))
}

func TestFormatStatus_NoTotalLimit(t *testing.T) {
	cfg, err := config.ParseCompany("[commitments.meeting]\nlimit = 5\n", "beta")
	require.NoError(t, err)
	e := entry.Entry{Date: "2025-10-15", Time: "09:00", Task: "Sync", Hours: 1, Tags: []string{"meeting"}}
	w := &service.WeekResult{Config: cfg, Week: week42, Summary: stats.Summarize(week42, []entry.Entry{e}, cfg)}

	expected := "📊 **Week 42 Status**\n\n" +
		"**Total:** 1.0h\n\n" +
		"**By Commitment:**\n" +
		"• Meeting: 1.0h / 5h (20%) ✓\n"
	assert.Equal(t, expected, FormatStatus(w))
}

func TestFormatWeekSummary(t *testing.T) {
	expected := "📊 **Week 42 Summary**\n\n" +
		"**Total:** 5.5h / 40h (14%)\n\n" +
		"**By Commitment:**\n" +
		"• Development: 5.0h / 25h (20%)\n" +
		"• Meeting: 0.5h / 5h (10%)\n\n" +
		"**By Project:**\n" +
		"• Platform: 5.0h\n\n" +
		"**By Tag:**\n" +
		"• #api: 3.0h\n" +
		"• #platform: 2.0h\n" +
		"• #review: 2.0h\n" +
		"• #meeting: 0.5h\n\n" +
		"**By Day:**\n" +
		"• Friday 2025-10-17: 3.5h (2 entries)\n" +
		"• Thursday 2025-10-16: 2.0h (1 entry)\n"

	assert.Equal(t, expected, FormatWeekSummary(weekFixture(t, sampleEntries()...), true))
}

func TestFormatWeekSummary_WithoutBreakdown(t *testing.T) {
	result := FormatWeekSummary(weekFixture(t, sampleEntries()...), false)
	assert.NotContains(t, result, "**By Project:**")
	assert.NotContains(t, result, "**By Tag:**")
	assert.Contains(t, result, "**By Day:**")
}

func TestFormatWeekSummary_Empty(t *testing.T) {
	assert.Equal(t, "No time logged yet for week 42.\n", FormatWeekSummary(weekFixture(t), true))
}

func TestFormatDay(t *testing.T) {
	week := weekFixture(t, sampleEntries()...)
	day := &service.DayResult{
		WeekResult: *week,
		Date:       time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		Day:        week.Summary.Day("2025-10-17"),
	}

	expected := "📅 **Friday, 2025-10-17**\n\n" +
		"**Total:** 3.5h\n\n" +
		"**Entries:**\n" +
		"• 09:00 API work (3.0h) #api\n" +
		"• 14:00 Standup (0.5h) #meeting\n"
	assert.Equal(t, expected, FormatDay(day))
}

func TestFormatDay_Empty(t *testing.T) {
	week := weekFixture(t, sampleEntries()...)
	day := &service.DayResult{
		WeekResult: *week,
		Date:       time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		Day:        week.Summary.Day("2025-10-18"),
	}
	assert.Equal(t, "No time logged for Saturday, 2025-10-18.\n", FormatDay(day))
}

func TestFormatWeeklyReport(t *testing.T) {
	report := &service.ReportData{
		WeekResult: *weekFixture(t, sampleEntries()...),
		Comparison: "up 5.5h from last week",
		EntryCount: 3,
	}

	expected := "# 📊 Time Report - Acme Corp\n" +
		"## Week 42 (Oct 13-19, 2025)\n\n" +
		"---\n\n" +
		"## Summary\n\n" +
		"**Total Time:** 5.5h / 40h (14%)\n" +
		"**Remaining:** 34.5h available\n" +
		"**Trend:** up 5.5h from last week\n\n" +
		"**Commitment Breakdown:**\n" +
		"• **Development:** 5.0h / 25h (20%) ✓\n" +
		"• **Meeting:** 0.5h / 5h (10%) ✓\n\n" +
		"**By Project:**\n" +
		"• Platform: 5.0h\n\n" +
		"**By Tag:**\n" +
		"• #api: 3.0h\n" +
		"• #platform: 2.0h\n" +
		"• #review: 2.0h\n" +
		"• #meeting: 0.5h\n\n" +
		"---\n\n" +
		"## Daily Breakdown\n\n" +
		"### 2025-10-17 Friday (3.5h)\n\n" +
		"- 09:00 API work (3.0h) #api\n" +
		"- 14:00 Standup (0.5h) #meeting\n\n" +
		"### 2025-10-16 Thursday (2.0h)\n\n" +
		"- 10:00 Review (2.0h) #platform #review\n\n" +
		"---\n\n" +
		"*Report generated: 2025-10-17*\n"

	generated := time.Date(2025, 10, 17, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, expected, FormatWeeklyReport(report, generated))
}

func TestFormatWeeklyReport_Statuses(t *testing.T) {
	entries := []entry.Entry{
		{Date: "2025-10-15", Time: "09:00", Task: "Sync", Hours: 6, Tags: []string{"meeting"}},
		{Date: "2025-10-15", Time: "11:00", Task: "Build", Hours: 23, Tags: []string{"api"}},
	}
	result := FormatWeeklyReport(&service.ReportData{WeekResult: *weekFixture(t, entries...)}, time.Now())

	assert.Contains(t, result, "• **Meeting:** 6.0h / 5h (120%) 🚫 OVER\n")
	assert.Contains(t, result, "• **Development:** 23.0h / 25h (92%) ⚠️ Close\n")
	assert.NotContains(t, result, "**Trend:**")
}

func TestFormatWeeklyReport_Filter(t *testing.T) {
	report := &service.ReportData{
		WeekResult: *weekFixture(t, sampleEntries()[2]),
		Filter:     filter.NewFilter("", "", []string{"review"}),
	}
	result := FormatWeeklyReport(report, time.Now())
	assert.Contains(t, result, "**Filter:** #review\n")

	empty := &service.ReportData{WeekResult: *weekFixture(t), Filter: filter.NewFilter("", "", []string{"review"})}
	assert.Equal(t, "No time logged matching #review for week 42 of 2025.\n", FormatWeeklyReport(empty, time.Now()))
}

func TestFormatWeeklyReport_Empty(t *testing.T) {
	report := &service.ReportData{WeekResult: *weekFixture(t)}
	assert.Equal(t, "No time logged for week 42 of 2025.\n", FormatWeeklyReport(report, time.Now()))
}

func TestFormatLogConfirmation(t *testing.T) {
	e := entry.Entry{Date: "2025-10-17", Time: "15:45", Task: "Design review", Hours: 2, Tags: []string{"meeting"}}
	week := weekFixture(t, e)
	result := &service.LogResult{
		Company:  "acme",
		Entry:    e,
		Duration: entry.Duration{Hours: 2, Canonical: "2h"},
		Week:     week42,
		Summary:  week.Summary,
		Config:   week.Config,
		Issues:   document.ParseIssues{FormatVersion: "v1.0"},
	}

	expected := "✓ Logged 2h for \"Design review\" at 15:45 [#meeting]\n\n" +
		"**Week 42 Status:**\n" +
		"• Total: 2.0h / 40h (5%)\n" +
		"• Meeting: 2.0h / 5h (40%)\n"
	assert.Equal(t, expected, FormatLogConfirmation(result))
}

func TestFormatLogConfirmation_ExplicitDateAndWarnings(t *testing.T) {
	e := entry.Entry{Date: "2025-10-16", Time: "10:00", Task: "Sync", Hours: 5, Tags: []string{"meeting"}}
	week := weekFixture(t, e, entry.Entry{Date: "2025-10-16", Time: "11:00", Task: "Build", Hours: 33})
	result := &service.LogResult{
		Entry:        e,
		Duration:     entry.Duration{Hours: 5, Canonical: "5h"},
		Week:         week42,
		Summary:      week.Summary,
		Config:       week.Config,
		ExplicitDate: true,
		Issues: document.ParseIssues{
			UnparsedLines: []document.UnparsedLine{{LineNumber: 9, Content: "- broken"}},
			Warnings:      []string{"Found 1 unparsed entry line(s)"},
		},
	}

	expected := "✓ Logged 5h for \"Sync\" at 10:00 on 2025-10-16 [#meeting]\n\n" +
		"**Week 42 Status:**\n" +
		"• Total: 38.0h / 40h (95%) ⚠️ Close to limit\n" +
		"• Meeting: 5.0h / 5h (100%) ⚠️\n" +
		"\n\n⚠️ **Parse Warnings:**\n" +
		"• Found 1 unparsed entry line(s)\n" +
		"\nUnparsed lines:\n" +
		"  Line 9: - broken\n"
	assert.Equal(t, expected, FormatLogConfirmation(result))
}

func TestFormatLogConfirmation_OverLimit(t *testing.T) {
	e := entry.Entry{Date: "2025-10-16", Time: "10:00", Task: "Crunch", Hours: 21}
	week := weekFixture(t, e, e)
	result := &service.LogResult{
		Entry:    e,
		Duration: entry.Duration{Hours: 21, Canonical: "21h"},
		Week:     week42,
		Summary:  week.Summary,
		Config:   week.Config,
	}
	assert.Contains(t, FormatLogConfirmation(result), "• Total: 42.0h / 40h (105%) ⚠️ OVER LIMIT\n")
}
