package service

import (
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/filter"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/timeutil"
)

// ReportService provides operations for generating reports
type ReportService struct {
	rt *Runtime
}

// NewReportService creates a new ReportService
func NewReportService(rt *Runtime) *ReportService {
	return &ReportService{rt: rt}
}

// Weekly summarizes the entries of week matching f (nil matches all) and
// compares the total with the previous week under the same filter
func (s *ReportService) Weekly(companyInput string, week timeutil.Week, f *filter.Filter) (*ReportData, error) {
	current, err := s.filtered(companyInput, week, f)
	if err != nil {
		return nil, err
	}

	previous, err := s.filtered(current.Company, week.Previous(), f)
	if err != nil {
		return nil, err
	}

	return &ReportData{
		WeekResult: *current,
		Filter:     f,
		Comparison: stats.FormatComparison(current.Summary.TotalHours, previous.Summary.TotalHours, "week"),
		EntryCount: current.Summary.EntryCount(),
	}, nil
}

// ResolveWeek turns "current", "last", "next" or an ISO week such as
// "2025-W42" into a week relative to today
func (s *ReportService) ResolveWeek(input string) (timeutil.Week, error) {
	return ResolveWeek(input, s.rt.Clock.Now())
}

func (s *ReportService) filtered(companyInput string, week timeutil.Week, f *filter.Filter) (*WeekResult, error) {
	result, _, err := s.rt.loadWeek(companyInput, week)
	if err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return result, nil
	}

	var entries []entry.Entry
	for _, day := range result.Summary.Days {
		entries = append(entries, filter.FilterEntries(day.Entries, f, result.Config)...)
	}
	result.Summary = stats.Summarize(week, entries, result.Config)
	return result, nil
}
