// Package company resolves which company an operation applies to.
package company

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xolan/timesheet/internal/config"
)

var (
	// ErrUnknownCompany is returned when a name matches no company or abbreviation
	ErrUnknownCompany = errors.New("unknown company")
	// ErrCompanyRequired is returned when several companies are configured and
	// none was named
	ErrCompanyRequired = errors.New("company required when multiple companies configured")
)

// Resolver maps names and abbreviations to configured companies
type Resolver struct {
	companies     []string
	abbreviations map[string][]string // keyed by canonical company name
}

type identifier struct {
	text    string // lowercase
	company string
}

// NewResolver creates a resolver. Abbreviation keys are matched to companies
// case-insensitively; abbreviations for unknown companies are ignored.
func NewResolver(companies []string, abbreviations map[string][]string) *Resolver {
	r := &Resolver{
		companies:     append([]string(nil), companies...),
		abbreviations: make(map[string][]string),
	}
	for key, abbrevs := range abbreviations {
		for _, c := range r.companies {
			if strings.EqualFold(c, key) {
				r.abbreviations[c] = append(r.abbreviations[c], abbrevs...)
			}
		}
	}
	return r
}

// FromSettings builds the resolver for the configured companies
func FromSettings(s config.Settings) *Resolver {
	return NewResolver(s.CompanyNames(), s.AbbreviationMap())
}

// Companies returns the configured companies in order
func (r *Resolver) Companies() []string {
	return append([]string(nil), r.companies...)
}

// Single reports whether exactly one company is configured
func (r *Resolver) Single() bool {
	return len(r.companies) == 1
}

// Resolve returns the canonical company for a full name or abbreviation,
// compared case-insensitively
func (r *Resolver) Resolve(input string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, c := range r.companies {
		if strings.ToLower(c) == normalized {
			return c, nil
		}
	}
	for _, c := range r.companies {
		for _, abbr := range r.abbreviations[c] {
			if strings.ToLower(abbr) == normalized {
				return c, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %q. Valid options: %s", ErrUnknownCompany, input, strings.Join(r.validOptions(), ", "))
}

// Extract finds a company named in free text, either as a prefix
// ("hm 2h debugging") or after "for" ("2h debugging for hm"). Longer
// identifiers win over shorter ones.
func (r *Resolver) Extract(input string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	ids := r.identifiers()

	for _, id := range ids {
		if strings.HasPrefix(normalized, id.text+" ") {
			return id.company, true
		}
	}
	for _, id := range ids {
		pattern := " for " + id.text
		if strings.HasSuffix(normalized, pattern) || strings.Contains(normalized, pattern+" ") {
			return id.company, true
		}
	}
	return "", false
}

// ForOperation picks the company for an operation. With a single company it
// is always used; otherwise explicit wins, then a company extracted from
// naturalInput, and having neither is ErrCompanyRequired.
func (r *Resolver) ForOperation(explicit, naturalInput string) (string, error) {
	if r.Single() {
		return r.companies[0], nil
	}

	name := strings.TrimSpace(explicit)
	if name == "" && naturalInput != "" {
		name, _ = r.Extract(naturalInput)
	}
	if name == "" {
		examples := make([]string, 0, len(r.companies))
		for _, c := range r.companies {
			if abbrevs := r.abbreviations[c]; len(abbrevs) > 0 {
				examples = append(examples, fmt.Sprintf("'%s/%s'", c, abbrevs[0]))
			} else {
				examples = append(examples, fmt.Sprintf("'%s'", c))
			}
		}
		joined := strings.Join(examples, " or ")
		return "", fmt.Errorf("%w. Use prefix pattern (%s 2h task) or suffix pattern (2h task for %s)", ErrCompanyRequired, joined, joined)
	}

	return r.Resolve(name)
}

func (r *Resolver) identifiers() []identifier {
	var ids []identifier
	for _, c := range r.companies {
		ids = append(ids, identifier{text: strings.ToLower(c), company: c})
		for _, abbr := range r.abbreviations[c] {
			ids = append(ids, identifier{text: strings.ToLower(abbr), company: c})
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return len(ids[i].text) > len(ids[j].text)
	})
	return ids
}

func (r *Resolver) validOptions() []string {
	options := make([]string, 0, len(r.companies))
	for _, c := range r.companies {
		if abbrevs := r.abbreviations[c]; len(abbrevs) > 0 {
			options = append(options, fmt.Sprintf("%s (%s)", c, strings.Join(abbrevs, "/")))
		} else {
			options = append(options, c)
		}
	}
	return options
}
