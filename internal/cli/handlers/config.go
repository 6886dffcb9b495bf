package handlers

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xolan/timesheet/internal/cli"
	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
)

// ShowConfig displays the current settings
func ShowConfig(deps *cli.Deps) {
	if !ready(deps) {
		return
	}

	s := deps.Services.Config.Settings()
	path := deps.Services.Config.GetPath()

	companies := strings.Join(s.Companies, ", ")
	if s.SingleCompany() {
		companies = "(single-company mode)"
	}
	offset := s.TimezoneOffset
	if offset == "" {
		offset = "system"
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Settings file: %s\n", path)
	if deps.Services.Config.Exists() {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no settings file)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "dir:                 %s\n", s.Dir)
	_, _ = fmt.Fprintf(deps.Stdout, "companies:           %s\n", companies)
	_, _ = fmt.Fprintf(deps.Stdout, "abbreviations:       %s\n", s.Abbreviations)
	_, _ = fmt.Fprintf(deps.Stdout, "timezone:            %s (offset: %s)\n", s.TimezoneName, offset)
	_, _ = fmt.Fprintf(deps.Stdout, "flexible_durations:  %t\n", s.FlexibleDurations)
	_, _ = fmt.Fprintf(deps.Stdout, "normalize_durations: %t\n", s.NormalizeDurations)
	_, _ = fmt.Fprintf(deps.Stdout, "theme:               %s\n", s.Theme)
	_, _ = fmt.Fprintf(deps.Stdout, "log_level:           %s\n", s.LogLevel)
}

// InitConfig creates a sample settings file
func InitConfig(deps *cli.Deps) {
	if !ready(deps) {
		return
	}

	if err := deps.Services.Config.Init(); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
		return
	}

	path := deps.Services.Config.GetPath()
	_, _ = fmt.Fprintf(deps.Stdout, "Created settings file: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to customize your settings.")
}

// ShowCompanyConfig displays the commitments, projects and tag mappings of
// a company
func ShowCompanyConfig(deps *cli.Deps, companyInput string) {
	if !ready(deps) {
		return
	}

	cfg, path, err := deps.Services.Config.Company(companyInput)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Company: %s\n", cfg.Name)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file: %s\n", path)
	if _, err := os.Stat(path); err == nil {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: File exists")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: Using defaults (no config file)")
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintln(deps.Stdout, "Commitments:")
	for _, c := range cfg.Commitments {
		limit := cli.FormatLimit(c.Limit)
		if c.HasMax() {
			limit += fmt.Sprintf(" (max %s)", cli.FormatLimit(c.Max))
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %-16s %-16s %s\n", config.DisplayName(c.Name), limit, c.Unit)
	}

	if len(cfg.Projects) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Projects:")
		for _, p := range cfg.Projects {
			line := fmt.Sprintf("  %-16s %s", p.Name, entry.FormatTags(p.Tags, ""))
			if p.Commitment != "" {
				line += " -> " + p.Commitment
			}
			_, _ = fmt.Fprintln(deps.Stdout, line)
		}
	}

	if len(cfg.TagMappings) > 0 {
		from := make([]string, 0, len(cfg.TagMappings))
		for tag := range cfg.TagMappings {
			from = append(from, tag)
		}
		sort.Strings(from)

		_, _ = fmt.Fprintln(deps.Stdout, "Tag mappings:")
		for _, tag := range from {
			_, _ = fmt.Fprintf(deps.Stdout, "  #%s -> #%s\n", tag, cfg.TagMappings[tag])
		}
	}
}

// InitCompanyConfig creates a sample config.toml for a company
func InitCompanyConfig(deps *cli.Deps, companyInput string) {
	if !ready(deps) {
		return
	}

	path, err := deps.Services.Config.InitCompany(companyInput)
	if err != nil {
		printError(deps, err)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Created company config: %s\n", path)
	_, _ = fmt.Fprintln(deps.Stdout, "Edit this file to set your commitments and projects.")
}
