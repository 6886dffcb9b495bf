package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

const (
	// CompanyConfigFile is the name of the per-company TOML configuration file
	CompanyConfigFile = "config.toml"
	// TotalCommitment is the commitment key holding the weekly hour budget
	TotalCommitment = "total"
	// DefaultTotalLimit is the weekly limit used when a company has no config
	DefaultTotalLimit = 40
)

// ErrInvalidCompanyConfig is returned when a company configuration fails validation
var ErrInvalidCompanyConfig = errors.New("invalid company configuration")

// Commitment is a named hour budget
type Commitment struct {
	Name  string
	Limit float64
	// Max is an optional hard ceiling above Limit; zero means none
	Max  float64
	Unit string
}

// HasMax reports whether an overflow buffer is configured
func (c Commitment) HasMax() bool {
	return c.Max > 0
}

// Project groups tags and rolls them up into a commitment
type Project struct {
	Name       string   `toml:"name"`
	Tags       []string `toml:"tags"`
	Commitment string   `toml:"commitment"`
}

// Company is the per-company configuration. Commitments and Projects keep
// their declaration order; the first project containing a tag owns it.
type Company struct {
	Name        string
	Commitments []Commitment
	Projects    []Project
	TagMappings map[string]string
}

type commitmentFile struct {
	Limit float64 `toml:"limit"`
	Max   float64 `toml:"max"`
	Unit  string  `toml:"unit"`
}

type companyFile struct {
	Company     string                    `toml:"company"`
	Commitments map[string]commitmentFile `toml:"commitments"`
	Projects    []Project                 `toml:"projects"`
	TagMappings map[string]string         `toml:"tag_mappings"`
}

// DefaultCompany returns the configuration used when a company has no
// config file: a single 40 hour "total" commitment. The directory name is
// shown with a capital first letter.
func DefaultCompany(name string) Company {
	return Company{
		Name: DisplayName(name),
		Commitments: []Commitment{
			{Name: TotalCommitment, Limit: DefaultTotalLimit, Unit: "hours/week"},
		},
		TagMappings: map[string]string{},
	}
}

// LoadCompany reads the TOML company configuration at path. A missing file
// yields DefaultCompany(name).
func LoadCompany(path, name string) (Company, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultCompany(name), nil
		}
		return Company{}, fmt.Errorf("failed to stat company config %s: %w", path, err)
	}

	var raw companyFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse company config %s: %w", path, err)
	}

	cfg := fromFile(raw, commitmentOrder(meta), name)
	if err := cfg.Validate(); err != nil {
		return Company{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseCompany decodes a TOML company configuration from text
func ParseCompany(text, name string) (Company, error) {
	var raw companyFile
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Company{}, fmt.Errorf("failed to parse company config: %w", err)
	}
	cfg := fromFile(raw, commitmentOrder(meta), name)
	if err := cfg.Validate(); err != nil {
		return Company{}, err
	}
	return cfg, nil
}

// commitmentOrder recovers the declaration order of [commitments.*] tables
func commitmentOrder(meta toml.MetaData) []string {
	var order []string
	seen := make(map[string]bool)
	for _, key := range meta.Keys() {
		if len(key) >= 2 && key[0] == "commitments" && !seen[key[1]] {
			seen[key[1]] = true
			order = append(order, key[1])
		}
	}
	return order
}

func fromFile(raw companyFile, order []string, name string) Company {
	cfg := Company{
		Name:        DisplayName(name),
		Projects:    raw.Projects,
		TagMappings: raw.TagMappings,
	}
	if strings.TrimSpace(raw.Company) != "" {
		cfg.Name = strings.TrimSpace(raw.Company)
	}
	if cfg.TagMappings == nil {
		cfg.TagMappings = map[string]string{}
	}

	for _, key := range order {
		c, ok := raw.Commitments[key]
		if !ok {
			continue
		}
		unit := c.Unit
		if unit == "" {
			unit = "hours/week"
		}
		cfg.Commitments = append(cfg.Commitments, Commitment{Name: key, Limit: c.Limit, Max: c.Max, Unit: unit})
	}

	if len(cfg.Commitments) == 0 {
		cfg.Commitments = DefaultCompany(name).Commitments
	}
	return cfg
}

// Validate rejects non-positive limits, a max below its limit and projects
// pointing at undeclared commitments
func (c Company) Validate() error {
	for _, commitment := range c.Commitments {
		if commitment.Limit <= 0 {
			return fmt.Errorf("%w: commitment %q must have a positive limit, got %v", ErrInvalidCompanyConfig, commitment.Name, commitment.Limit)
		}
		if commitment.Max < 0 || (commitment.HasMax() && commitment.Max < commitment.Limit) {
			return fmt.Errorf("%w: commitment %q max (%v) must not be below its limit (%v)", ErrInvalidCompanyConfig, commitment.Name, commitment.Max, commitment.Limit)
		}
	}
	for _, p := range c.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: every project needs a name", ErrInvalidCompanyConfig)
		}
		if p.Commitment != "" {
			if _, ok := c.Commitment(p.Commitment); !ok {
				return fmt.Errorf("%w: project %q references unknown commitment %q", ErrInvalidCompanyConfig, p.Name, p.Commitment)
			}
		}
	}
	return nil
}

// Commitment looks up a commitment by name
func (c Company) Commitment(name string) (Commitment, bool) {
	for _, commitment := range c.Commitments {
		if commitment.Name == name {
			return commitment, true
		}
	}
	return Commitment{}, false
}

// Total returns the "total" commitment if configured
func (c Company) Total() (Commitment, bool) {
	return c.Commitment(TotalCommitment)
}

// DisplayName capitalizes the first letter of a commitment name
func DisplayName(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// CanonicalTag applies the tag mapping
func (c Company) CanonicalTag(tag string) string {
	if mapped, ok := c.TagMappings[tag]; ok {
		return mapped
	}
	return tag
}

// ResolveCommitment returns the commitment a canonical tag rolls up into:
// the tag itself when it names a commitment, else the commitment of the
// first project listing the tag.
func (c Company) ResolveCommitment(tag string) (string, bool) {
	if _, ok := c.Commitment(tag); ok {
		return tag, true
	}
	if p, ok := c.ResolveProject(tag); ok && p.Commitment != "" {
		return p.Commitment, true
	}
	return "", false
}

// ResolveProject returns the first project, in declaration order, listing tag
func (c Company) ResolveProject(tag string) (Project, bool) {
	for _, p := range c.Projects {
		for _, t := range p.Tags {
			if t == tag {
				return p, true
			}
		}
	}
	return Project{}, false
}

// AmbiguousTags returns tags listed by more than one project, mapped to the
// projects listing them in declaration order
func (c Company) AmbiguousTags() map[string][]string {
	owners := make(map[string][]string)
	for _, p := range c.Projects {
		for _, t := range p.Tags {
			owners[t] = append(owners[t], p.Name)
		}
	}
	result := make(map[string][]string)
	for tag, projects := range owners {
		if len(projects) > 1 {
			result[tag] = projects
		}
	}
	return result
}

// CommitmentOrder sorts commitment names: declared commitments first in
// declaration order, unknown names after in alphabetical order
func (c Company) CommitmentOrder(names []string) []string {
	rank := make(map[string]int, len(c.Commitments))
	for i, commitment := range c.Commitments {
		rank[commitment.Name] = i
	}
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iKnown := rank[sorted[i]]
		rj, jKnown := rank[sorted[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return sorted[i] < sorted[j]
		}
	})
	return sorted
}

// GenerateSampleCompanyConfig returns a sample company config.toml with
// every option documented.
func GenerateSampleCompanyConfig(name string) string {
	return fmt.Sprintf(`# timesheet company configuration
# Place this file at <tracking dir>/<company>/config.toml

# Display name used in week document titles
company = %q

# Commitments are weekly hour budgets, reported in declaration order.
# "total" is the overall weekly limit; "max" is an optional hard ceiling
# above the limit (hours between limit and max are reported as overflow).
[commitments.total]
limit = 40
max = 45
unit = "hours/week"

[commitments.development]
limit = 25
unit = "hours/week"

[commitments.meeting]
limit = 5
unit = "hours/week"

# Projects group tags and roll them up into a commitment.
# A tag belongs to the first project that lists it.
[[projects]]
name = "Platform"
tags = ["platform", "infra"]
commitment = "development"

[[projects]]
name = "Planning"
tags = ["standup", "planning"]
commitment = "meeting"

# Tag mappings rewrite tags before they are aggregated
[tag_mappings]
dev = "development"
mtg = "meeting"
`, name)
}
