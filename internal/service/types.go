// Package service provides the business logic layer for the timesheet
// application. It ties settings, company configuration, week documents,
// backups and the audit log together behind one API for the CLI, the TUI
// and the MCP server.
package service

import (
	"time"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/document"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/filter"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
)

// LogTimeInput is a request to record completed work. Only Task and
// Duration are required.
type LogTimeInput struct {
	Task     string
	Duration string   // e.g. "2h", "90m", "half hour"
	Time     string   // e.g. "14:30", "2 hours ago"; empty means now
	Date     string   // e.g. "yesterday", "2025-10-17"; empty means today
	Tags     []string // without '#'
	Company  string   // name or abbreviation; ignored in single-company mode
}

// LogResult is the outcome of LogTime
type LogResult struct {
	Company  string
	Entry    entry.Entry
	Duration entry.Duration
	Week     timeutil.Week
	Summary  stats.WeeklySummary
	Config   config.Company
	Issues   document.ParseIssues
	Path     string
	// ExplicitDate is set when the entry was logged for a day other than today
	ExplicitDate bool
}

// WeekResult is a parsed week document
type WeekResult struct {
	Company string
	Config  config.Company
	Week    timeutil.Week
	Path    string
	Exists  bool
	Summary stats.WeeklySummary
	Issues  document.ParseIssues
}

// DayResult is one day of a week document
type DayResult struct {
	WeekResult
	Date time.Time
	Day  stats.DailySummary
}

// ValidateResult reports problems with a week document without changing it
type ValidateResult struct {
	WeekResult
	// Stale is set when the summary or day headers disagree with the entries
	Stale bool
	// AmbiguousTags lists tags claimed by several projects
	AmbiguousTags map[string][]string
}

// NormalizeResult is the outcome of Normalize
type NormalizeResult struct {
	WeekResult
	Changed bool
	DryRun  bool
}

// ReportData is a week summary restricted to the entries matching a filter
type ReportData struct {
	WeekResult
	Filter *filter.Filter
	// Comparison describes the change from the previous week's total
	Comparison string
	// EntryCount is the number of matching entries
	EntryCount int
}
