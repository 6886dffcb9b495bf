package service

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/audit"
	"github.com/xolan/timesheet/internal/company"
	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/document"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/osutil"
	"github.com/xolan/timesheet/internal/stats"
	"github.com/xolan/timesheet/internal/storage"
	"github.com/xolan/timesheet/internal/timeutil"
)

// Errors returned when picking the company of an operation
var (
	ErrUnknownCompany  = company.ErrUnknownCompany
	ErrCompanyRequired = company.ErrCompanyRequired
)

// Services holds all service instances used by the application
type Services struct {
	Time   *TimeService
	Report *ReportService
	Config *ConfigService
}

// Runtime is the shared environment of the services. Company configuration
// is not part of it: it is read from disk on every operation.
type Runtime struct {
	Settings config.Settings
	Layout   storage.Layout
	Store    storage.FileStore
	Audit    audit.Sink
	Clock    timeutil.Clock
	Resolver *company.Resolver
}

// NewRuntime builds the runtime for settings using the local filesystem and
// the system clock shifted to the configured display timezone
func NewRuntime(settings config.Settings) (*Runtime, error) {
	offset, err := settings.OffsetHours()
	if err != nil {
		return nil, err
	}
	return NewRuntimeWithClock(settings, timeutil.NewZoneClock(timeutil.SystemClock{}, settings.TimezoneName, offset))
}

// NewRuntimeWithClock builds the runtime for settings on top of clock
func NewRuntimeWithClock(settings config.Settings, clock timeutil.Clock) (*Runtime, error) {
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	root, err := osutil.ExpandHome(settings.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tracking directory: %w", err)
	}

	layout := storage.Layout{Root: root, SingleCompany: settings.SingleCompany()}

	return &Runtime{
		Settings: settings,
		Layout:   layout,
		Store:    storage.OSFileStore{},
		Audit:    audit.NewFileSink(layout, clock),
		Clock:    clock,
		Resolver: company.FromSettings(settings),
	}, nil
}

// NewServices loads the settings file and creates the services
func NewServices() (*Services, error) {
	settingsPath, err := config.GetSettingsPath()
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	rt, err := NewRuntime(settings)
	if err != nil {
		return nil, err
	}

	return NewServicesWithRuntime(settingsPath, rt), nil
}

// NewServicesWithRuntime creates the services on top of rt (useful for testing)
func NewServicesWithRuntime(settingsPath string, rt *Runtime) *Services {
	return &Services{
		Time:   NewTimeService(rt),
		Report: NewReportService(rt),
		Config: NewConfigService(settingsPath, rt),
	}
}

func (r *Runtime) documentOptions() document.Options {
	return document.Options{
		Mode:      entry.ModeFor(r.Settings.FlexibleDurations),
		Normalize: r.Settings.NormalizeDurations,
	}
}

// loadCompany reads the configuration of a resolved company
func (r *Runtime) loadCompany(name string) (config.Company, error) {
	cfg, err := config.LoadCompany(r.Layout.CompanyConfigPath(name), name)
	if err != nil {
		return config.Company{}, err
	}
	for tag, projects := range cfg.AmbiguousTags() {
		log.Warnf("company %s: tag #%s is listed by several projects %v, using %s", name, tag, projects, projects[0])
	}
	return cfg, nil
}

// loadWeek reads and parses the week document of company
func (r *Runtime) loadWeek(companyInput string, week timeutil.Week) (*WeekResult, string, error) {
	name, err := r.Resolver.ForOperation(companyInput, "")
	if err != nil {
		return nil, "", err
	}

	cfg, err := r.loadCompany(name)
	if err != nil {
		return nil, "", err
	}

	path := r.Layout.WeekFilePath(name, week.Year, week.Number)
	text, exists, err := r.Store.ReadIfExists(path)
	if err != nil {
		return nil, "", err
	}

	entries, issues := document.ParseEntries(text, r.documentOptions().Mode)
	// A missing document has nothing to warn about
	if !exists {
		issues = document.ParseIssues{}
	}
	for _, w := range issues.Warnings {
		log.Debugf("%s: %s", path, w)
	}

	return &WeekResult{
		Company: name,
		Config:  cfg,
		Week:    week,
		Path:    path,
		Exists:  exists,
		Summary: stats.Summarize(week, entries, cfg),
		Issues:  issues,
	}, text, nil
}
