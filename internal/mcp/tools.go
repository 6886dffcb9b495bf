package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/service"
)

// Periods accepted by check_hours
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

const monthNotImplemented = "Month view not yet implemented. Try \"today\" or \"week\"."

const companyDescription = "Company name or abbreviation (optional, uses the default if omitted)"

// Tools holds the tool handlers
type Tools struct {
	services *service.Services
}

func logTimeTool() mcp.Tool {
	return mcp.NewTool("log_time",
		mcp.WithDescription(`Record a completed piece of work in the weekly timesheet.

Call it when the user says things like "2h on security review" or
"log 90m code review yesterday". The entry is added to the week's markdown
file and the weekly totals are recomputed.

The company can be part of the task: "hm 2h review" (prefix) or
"2h review for hm" (suffix). The answer includes the week's status and any
parse warnings found in the file.`),
		mcp.WithTitleAnnotation("Log time"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description(`Task description (e.g. "Platform: security review")`),
		),
		mcp.WithString("duration",
			mcp.Required(),
			mcp.Description(`Duration (e.g. "2h", "90m", "1.5h", "half hour")`),
		),
		mcp.WithString("time",
			mcp.Description(`When the work was done (e.g. "14:30", "2 hours ago", "morning"); omit for now`),
		),
		mcp.WithString("date",
			mcp.Description(`Date of the work (e.g. "today", "yesterday", "2025-10-17"); omit for today`),
		),
		mcp.WithArray("tags",
			mcp.Description(`Tags without '#' (e.g. ["development", "security"])`),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("company", mcp.Description(companyDescription)),
	)
}

func checkHoursTool() mcp.Tool {
	return mcp.NewTool("check_hours",
		mcp.WithDescription(`Show logged hours for today or the current week, with totals per
commitment and optional breakdowns by project, tag and day.`),
		mcp.WithTitleAnnotation("Check hours"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("period",
			mcp.Description("Period to check (default: week)"),
			mcp.Enum(PeriodToday, PeriodWeek, PeriodMonth),
			mcp.DefaultString(PeriodWeek),
		),
		mcp.WithBoolean("breakdown",
			mcp.Description("Include the breakdown by project and tag"),
			mcp.DefaultBool(true),
		),
		mcp.WithString("company", mcp.Description(companyDescription)),
	)
}

func weeklyReportTool() mcp.Tool {
	return mcp.NewTool("weekly_report",
		mcp.WithDescription(`Generate a markdown report of a week: totals against commitments,
breakdowns by project and tag, the change from the week before and every
entry grouped by day.`),
		mcp.WithTitleAnnotation("Weekly report"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("week",
			mcp.Description(`Which week: "current", "last" or an ISO week such as "2025-W42"`),
			mcp.DefaultString("current"),
		),
		mcp.WithString("company", mcp.Description(companyDescription)),
	)
}

func statusTool() mcp.Tool {
	return mcp.NewTool("status",
		mcp.WithDescription(`Quick status of the current week: total hours, remaining hours and
progress of each commitment.`),
		mcp.WithTitleAnnotation("Status"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
		mcp.WithString("company", mcp.Description(companyDescription)),
	)
}

// LogTime handles log_time
func (t *Tools) LogTime(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task, err := req.RequireString("task")
	if err != nil {
		return toolError("logging time", err), nil
	}
	duration, err := req.RequireString("duration")
	if err != nil {
		return toolError("logging time", err), nil
	}

	result, err := t.services.Time.LogTime(service.LogTimeInput{
		Task:     task,
		Duration: duration,
		Time:     req.GetString("time", ""),
		Date:     req.GetString("date", ""),
		Tags:     req.GetStringSlice("tags", nil),
		Company:  req.GetString("company", ""),
	})
	if err != nil {
		return toolError("logging time", err), nil
	}

	log.Debugf("log_time: %s %s (%s)", result.Entry.Date, result.Entry.Task, result.Company)
	return mcp.NewToolResultText(cli.FormatLogConfirmation(result)), nil
}

// CheckHours handles check_hours
func (t *Tools) CheckHours(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	company := req.GetString("company", "")
	breakdown := req.GetBool("breakdown", true)

	switch period := req.GetString("period", PeriodWeek); period {
	case PeriodToday:
		day, err := t.services.Time.Today(company)
		if err != nil {
			return toolError("checking hours", err), nil
		}
		return mcp.NewToolResultText(cli.FormatDay(day)), nil
	case PeriodWeek:
		week, err := t.services.Time.CurrentWeek(company)
		if err != nil {
			return toolError("checking hours", err), nil
		}
		return mcp.NewToolResultText(withWarnings(cli.FormatWeekSummary(week, breakdown), week)), nil
	case PeriodMonth:
		return mcp.NewToolResultText(monthNotImplemented), nil
	default:
		return toolError("checking hours", fmt.Errorf("unknown period %q, expected today, week or month", period)), nil
	}
}

// WeeklyReport handles weekly_report
func (t *Tools) WeeklyReport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := t.services.Report.ResolveWeek(req.GetString("week", "current"))
	if err != nil {
		return toolError("generating weekly report", err), nil
	}

	report, err := t.services.Report.Weekly(req.GetString("company", ""), week, nil)
	if err != nil {
		return toolError("generating weekly report", err), nil
	}

	text := cli.FormatWeeklyReport(report, t.services.Time.Now())
	return mcp.NewToolResultText(withWarnings(text, &report.WeekResult)), nil
}

// Status handles status
func (t *Tools) Status(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week, err := t.services.Time.Status(req.GetString("company", ""))
	if err != nil {
		return toolError("checking status", err), nil
	}
	return mcp.NewToolResultText(cli.FormatStatus(week)), nil
}

// withWarnings appends the parse warnings of w to text
func withWarnings(text string, w *service.WeekResult) string {
	if warnings := cli.FormatParseWarnings(w.Issues); warnings != "" {
		return text + "\n" + warnings
	}
	return text
}

func toolError(action string, err error) *mcp.CallToolResult {
	log.Errorf("error %s: %v", action, err)
	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %v", action, err))
}
