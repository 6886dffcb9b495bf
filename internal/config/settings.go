package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/osutil"
)

const (
	// AppName is the application name used for the settings directory
	AppName = "timesheet"
	// SettingsFile is the name of the YAML settings file
	SettingsFile = "settings.yaml"
	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "TIMESHEET_"
	// DefaultDir is the tracking root used when none is configured
	DefaultDir = "~/Documents/time-tracking"
	// DefaultCompanyName is used in single-company mode
	DefaultCompanyName = "default"
)

// Settings is the application-level configuration
type Settings struct {
	// Dir is the tracking root holding one directory per company
	Dir string `koanf:"dir"`
	// Companies lists the configured companies; empty means single-company mode
	Companies []string `koanf:"companies"`
	// Abbreviations maps companies to short names, e.g. "Acme:ac:acm,Beta:b"
	Abbreviations string `koanf:"abbreviations"`
	// TimezoneOffset is the display timezone as hours from UTC; empty keeps the system zone
	TimezoneOffset string `koanf:"timezone_offset"`
	// TimezoneName labels the display timezone (e.g. "AEST")
	TimezoneName string `koanf:"timezone_name"`
	// FlexibleDurations accepts non-canonical duration tokens in documents
	FlexibleDurations bool `koanf:"flexible_durations"`
	// NormalizeDurations rewrites duration tokens to canonical form on every mutation
	NormalizeDurations bool `koanf:"normalize_durations"`
	// Theme is the TUI color theme ID
	Theme string `koanf:"theme"`
	// LogLevel is a logrus level name
	LogLevel string `koanf:"log_level"`
}

// DefaultSettings returns Settings with sensible defaults
func DefaultSettings() Settings {
	return Settings{
		Dir:                DefaultDir,
		TimezoneName:       "UTC",
		NormalizeDurations: true,
		Theme:              "dracula",
		LogLevel:           "warn",
	}
}

// GetSettingsPath returns the path to the settings file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetSettingsPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SettingsFile), nil
}

// LoadSettings layers defaults, the optional YAML file at path and
// TIMESHEET_* environment variables, in that order of precedence.
func LoadSettings(path string) (Settings, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(DefaultSettings(), "koanf"), nil); err != nil {
		log.Errorf("error loading settings from defaults: %v", err)
		return Settings{}, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if os.IsNotExist(err) {
				log.Debugf("Settings file not found at %s, using defaults and environment variables", path)
			} else {
				log.Errorf("error loading settings from YAML: %v", err)
				return Settings{}, fmt.Errorf("failed to load settings from %s: %w", path, err)
			}
		} else {
			log.Debugf("Loaded settings from file: %s", path)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
			if k == "companies" {
				return k, splitList(v)
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading settings from envs: %v", err)
		return Settings{}, err
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Normalize trims list values and applies defaults to empty fields
func (s *Settings) Normalize() {
	s.Dir = strings.TrimSpace(s.Dir)
	if s.Dir == "" {
		s.Dir = DefaultDir
	}
	s.Companies = splitList(strings.Join(s.Companies, ","))
	s.TimezoneOffset = strings.TrimSpace(s.TimezoneOffset)
	if strings.TrimSpace(s.TimezoneName) == "" {
		s.TimezoneName = "UTC"
	}
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
}

// Validate checks the settings for values the application cannot use
func (s Settings) Validate() error {
	if _, err := s.OffsetHours(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(s.LogLevel); s.LogLevel != "" && err != nil {
		return fmt.Errorf("invalid log_level %q: %w", s.LogLevel, err)
	}
	known := make(map[string]bool, len(s.Companies))
	for _, c := range s.Companies {
		known[strings.ToLower(c)] = true
	}
	for company := range s.AbbreviationMap() {
		if len(s.Companies) > 0 && !known[strings.ToLower(company)] {
			return fmt.Errorf("abbreviations reference unknown company %q (configured: %s)", company, strings.Join(s.Companies, ", "))
		}
	}
	return nil
}

// OffsetHours returns the configured display offset, or nil for the system timezone
func (s Settings) OffsetHours() (*float64, error) {
	if s.TimezoneOffset == "" {
		return nil, nil
	}
	hours, err := strconv.ParseFloat(s.TimezoneOffset, 64)
	if err != nil || hours < -14 || hours > 14 {
		return nil, fmt.Errorf("invalid timezone_offset %q: expected hours between -14 and 14 (e.g. 10 or -5.5)", s.TimezoneOffset)
	}
	return &hours, nil
}

// SingleCompany reports whether no companies are configured
func (s Settings) SingleCompany() bool {
	return len(s.Companies) == 0
}

// CompanyNames returns the configured companies, or the default company in
// single-company mode
func (s Settings) CompanyNames() []string {
	if s.SingleCompany() {
		return []string{DefaultCompanyName}
	}
	return s.Companies
}

// AbbreviationMap parses Abbreviations ("Acme:ac:acm,Beta:b") into
// company -> abbreviations
func (s Settings) AbbreviationMap() map[string][]string {
	result := make(map[string][]string)
	for _, group := range splitList(s.Abbreviations) {
		parts := strings.Split(group, ":")
		company := strings.TrimSpace(parts[0])
		if company == "" {
			continue
		}
		for _, abbr := range parts[1:] {
			if abbr = strings.TrimSpace(abbr); abbr != "" {
				result[company] = append(result[company], abbr)
			}
		}
	}
	return result
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GenerateSampleSettings returns a sample settings.yaml with every option
// documented
func GenerateSampleSettings() string {
	return `# timesheet settings
# Every value can be overridden with a TIMESHEET_<KEY> environment variable,
# e.g. TIMESHEET_DIR or TIMESHEET_COMPANIES=Acme,Beta

# Tracking directory holding the week documents
dir: ~/Documents/time-tracking

# Companies to track. Leave empty to keep every file directly in dir.
# With companies configured each one gets its own subdirectory.
companies: []

# Short names for companies, e.g. "Acme:ac:acm,Beta:b"
abbreviations: ""

# Display timezone as hours from UTC (e.g. 10 or -5.5); empty uses the system zone
timezone_offset: ""
timezone_name: UTC

# Accept durations like "(30m)" in documents, not only "(0.5h)"
flexible_durations: false

# Rewrite every duration to canonical hours when a document is updated
normalize_durations: true

# TUI color theme
theme: dracula

# Log level: panic, fatal, error, warn, info, debug, trace
log_level: warn
`
}

// UpdateSettingsFile returns the YAML of the settings file at path with key
// set to value. Other keys keep their values; a missing file starts empty.
func UpdateSettingsFile(path, key string, value any) ([]byte, error) {
	var k = koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	if err := k.Set(key, value); err != nil {
		return nil, err
	}

	return k.Marshal(yaml.Parser())
}
