package filter

import (
	"fmt"
	"strings"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
)

// Filter represents search and filtering criteria for time entries.
// All filter fields are optional - empty values match all entries.
type Filter struct {
	Keyword string   // Case-insensitive substring search in entry tasks
	Project string   // Project name from the company config (case-insensitive)
	Tags    []string // All specified tags must be present (AND logic, case-insensitive)
}

// NewFilter creates a new Filter with the given criteria. Leading '#' is
// stripped from tags.
func NewFilter(keyword, project string, tags []string) *Filter {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimPrefix(strings.TrimSpace(t), "#"); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return &Filter{
		Keyword: strings.TrimSpace(keyword),
		Project: strings.TrimSpace(project),
		Tags:    cleaned,
	}
}

// IsEmpty returns true if all filter fields are empty (matches all entries)
func (f *Filter) IsEmpty() bool {
	return f == nil || (f.Keyword == "" && f.Project == "" && len(f.Tags) == 0)
}

// FilterEntries returns a new slice containing only entries that match the filter criteria.
// If the filter is empty, returns all entries.
func FilterEntries(entries []entry.Entry, f *Filter, cfg config.Company) []entry.Entry {
	if f.IsEmpty() {
		return entries
	}

	filtered := make([]entry.Entry, 0)
	for _, e := range entries {
		if f.Matches(e, cfg) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// MatchesKeyword returns true if the keyword is found in the entry's task (case-insensitive).
// An empty keyword matches all entries.
func (f *Filter) MatchesKeyword(e entry.Entry) bool {
	if f.Keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Task), strings.ToLower(f.Keyword))
}

// MatchesProject returns true if one of the entry's tags belongs to the
// filter project in cfg. An empty project filter matches all entries.
func (f *Filter) MatchesProject(e entry.Entry, cfg config.Company) bool {
	if f.Project == "" {
		return true
	}
	for _, tag := range e.Tags {
		if p, ok := cfg.ResolveProject(cfg.CanonicalTag(tag)); ok && strings.EqualFold(p.Name, f.Project) {
			return true
		}
	}
	return false
}

// MatchesTags returns true if the entry has ALL specified tags (case-insensitive).
// Tag mappings apply to both sides, so filtering by an alias finds its target.
// An empty tags filter matches all entries.
func (f *Filter) MatchesTags(e entry.Entry, cfg config.Company) bool {
	if len(f.Tags) == 0 {
		return true
	}

	for _, filterTag := range f.Tags {
		want := cfg.CanonicalTag(filterTag)
		found := false
		for _, entryTag := range e.Tags {
			if strings.EqualFold(cfg.CanonicalTag(entryTag), want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Matches returns true if the entry satisfies every criterion
func (f *Filter) Matches(e entry.Entry, cfg config.Company) bool {
	return f.MatchesKeyword(e) && f.MatchesProject(e, cfg) && f.MatchesTags(e, cfg)
}

// String describes the filter for report headings, e.g. `#review project:Core "bug"`
func (f *Filter) String() string {
	if f.IsEmpty() {
		return ""
	}
	var parts []string
	for _, t := range f.Tags {
		parts = append(parts, "#"+t)
	}
	if f.Project != "" {
		parts = append(parts, "project:"+f.Project)
	}
	if f.Keyword != "" {
		parts = append(parts, fmt.Sprintf("%q", f.Keyword))
	}
	return strings.Join(parts, " ")
}
