package service

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/audit"
	"github.com/xolan/timesheet/internal/document"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/storage"
	"github.com/xolan/timesheet/internal/timeutil"
)

// TimeService records entries and reads week documents
type TimeService struct {
	rt *Runtime
}

// NewTimeService creates a new TimeService
func NewTimeService(rt *Runtime) *TimeService {
	return &TimeService{rt: rt}
}

// Now returns the current time in the display timezone
func (s *TimeService) Now() time.Time {
	return s.rt.Clock.Now()
}

// LogTime records one entry: it resolves the company, date and time, adds
// the entry to its week document (rewriting the summary and day totals),
// backs up the previous version, writes the document durably and appends an
// audit record.
func (s *TimeService) LogTime(in LogTimeInput) (*LogResult, error) {
	userInput := strings.TrimSpace(in.Task + " " + in.Duration)
	name, err := s.rt.Resolver.ForOperation(in.Company, userInput)
	if err != nil {
		return nil, err
	}

	duration, err := entry.ParseDuration(in.Duration)
	if err != nil {
		return nil, err
	}

	now := s.rt.Clock.Now()
	date, clock, err := timeutil.ResolveWhen(in.Date, in.Time, now)
	if err != nil {
		return nil, err
	}

	e, err := entry.New(date, clock, in.Task, entry.RoundHours(duration.Hours), in.Tags)
	if err != nil {
		return nil, err
	}

	cfg, err := s.rt.loadCompany(name)
	if err != nil {
		return nil, err
	}

	week := timeutil.WeekOf(e.Day())
	path := s.rt.Layout.WeekFilePath(name, week.Year, week.Number)

	text, exists, err := s.rt.Store.ReadIfExists(path)
	if err != nil {
		return nil, err
	}

	result, err := document.AddEntry(text, exists, e, cfg, s.rt.documentOptions())
	if err != nil {
		return nil, err
	}

	if err := s.write(path, exists, result.Text); err != nil {
		return nil, err
	}

	if err := s.rt.Audit.Record(name, audit.OpAdd, e); err != nil {
		log.Warnf("failed to write audit record for %s: %v", name, err)
	}

	for _, w := range result.Issues.Warnings {
		log.Debugf("%s: %s", path, w)
	}
	log.Infof("logged %s for %q on %s at %s (%s)", duration.Canonical, e.Task, e.Date, e.Time, name)

	return &LogResult{
		Company:      name,
		Entry:        e,
		Duration:     duration,
		Week:         week,
		Summary:      result.Summary,
		Config:       cfg,
		Issues:       result.Issues,
		Path:         path,
		ExplicitDate: e.Date != timeutil.FormatDate(now),
	}, nil
}

// write backs up an existing document before replacing it
func (s *TimeService) write(path string, exists bool, text string) error {
	if exists {
		if err := storage.CreateBackup(path); err != nil {
			return fmt.Errorf("failed to back up %s: %w", path, err)
		}
	}
	return s.rt.Store.WriteDurably(path, text)
}

// WeeklySummary reads the document of week. A missing document yields an
// empty summary.
func (s *TimeService) WeeklySummary(companyInput string, week timeutil.Week) (*WeekResult, error) {
	result, _, err := s.rt.loadWeek(companyInput, week)
	return result, err
}

// CurrentWeek reads the document of the week containing today
func (s *TimeService) CurrentWeek(companyInput string) (*WeekResult, error) {
	return s.WeeklySummary(companyInput, timeutil.WeekOf(s.rt.Clock.Now()))
}

// Status is the current week with commitment tracking; it is an alias of
// CurrentWeek kept for the status views
func (s *TimeService) Status(companyInput string) (*WeekResult, error) {
	return s.CurrentWeek(companyInput)
}

// Today returns today's entries
func (s *TimeService) Today(companyInput string) (*DayResult, error) {
	return s.Day(companyInput, s.rt.Clock.Now())
}

// Day returns the entries of the calendar date of day
func (s *TimeService) Day(companyInput string, day time.Time) (*DayResult, error) {
	week, err := s.WeeklySummary(companyInput, timeutil.WeekOf(day))
	if err != nil {
		return nil, err
	}
	return &DayResult{
		WeekResult: *week,
		Date:       timeutil.CivilDate(day),
		Day:        week.Summary.Day(timeutil.FormatDate(day)),
	}, nil
}

// Validate parses the week document and reports whether its derived
// regions are out of date. Nothing is written.
func (s *TimeService) Validate(companyInput string, week timeutil.Week) (*ValidateResult, error) {
	result, text, err := s.rt.loadWeek(companyInput, week)
	if err != nil {
		return nil, err
	}

	stale := false
	if result.Exists {
		opts := s.rt.documentOptions()
		opts.Normalize = false
		stale = document.Recompute(text, week, result.Config, opts).Text != text
	}

	return &ValidateResult{
		WeekResult:    *result,
		Stale:         stale,
		AmbiguousTags: result.Config.AmbiguousTags(),
	}, nil
}

// Normalize rewrites every duration token of the week document to canonical
// form and recomputes its summary and day totals. With dryRun nothing is
// written. A missing document is left missing.
func (s *TimeService) Normalize(companyInput string, week timeutil.Week, dryRun bool) (*NormalizeResult, error) {
	result, text, err := s.rt.loadWeek(companyInput, week)
	if err != nil {
		return nil, err
	}
	if !result.Exists {
		return &NormalizeResult{WeekResult: *result, DryRun: dryRun}, nil
	}

	opts := s.rt.documentOptions()
	opts.Normalize = true
	recomputed := document.Recompute(text, week, result.Config, opts)

	changed := recomputed.Text != text
	if changed && !dryRun {
		if err := s.write(result.Path, true, recomputed.Text); err != nil {
			return nil, err
		}
		log.Infof("normalized %s", result.Path)
	}

	result.Summary = recomputed.Summary
	result.Issues = recomputed.Issues

	return &NormalizeResult{WeekResult: *result, Changed: changed, DryRun: dryRun}, nil
}

// Backups lists the backups of a week document, most recent first
func (s *TimeService) Backups(companyInput string, week timeutil.Week) (string, []storage.BackupInfo, error) {
	name, err := s.rt.Resolver.ForOperation(companyInput, "")
	if err != nil {
		return "", nil, err
	}
	path := s.rt.Layout.WeekFilePath(name, week.Year, week.Number)
	return path, storage.ListBackups(path), nil
}

// Restore replaces a week document with one of its backups
func (s *TimeService) Restore(companyInput string, week timeutil.Week, n int) (string, error) {
	path, _, err := s.Backups(companyInput, week)
	if err != nil {
		return "", err
	}
	if err := storage.RestoreBackup(s.rt.Store, path, n); err != nil {
		return "", err
	}
	log.Infof("restored %s from backup %d", path, n)
	return path, nil
}
