package service

import (
	"fmt"
	"os"

	"github.com/xolan/timesheet/internal/config"
)

// ConfigService provides operations for managing settings and company
// configuration files
type ConfigService struct {
	settingsPath string
	rt           *Runtime
}

// NewConfigService creates a new ConfigService
func NewConfigService(settingsPath string, rt *Runtime) *ConfigService {
	return &ConfigService{
		settingsPath: settingsPath,
		rt:           rt,
	}
}

// Settings returns the active settings
func (s *ConfigService) Settings() config.Settings {
	return s.rt.Settings
}

// GetPath returns the path to the settings file
func (s *ConfigService) GetPath() string {
	return s.settingsPath
}

// Exists checks if the settings file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.settingsPath)
	return err == nil
}

// Init creates a sample settings file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("settings file already exists at %s", s.settingsPath)
	}

	if err := s.rt.Store.WriteDurably(s.settingsPath, config.GenerateSampleSettings()); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// CompanyPath returns the resolved company and its config file path
func (s *ConfigService) CompanyPath(companyInput string) (string, string, error) {
	name, err := s.rt.Resolver.ForOperation(companyInput, "")
	if err != nil {
		return "", "", err
	}
	return name, s.rt.Layout.CompanyConfigPath(name), nil
}

// Company loads the configuration of a company, falling back to the
// defaults when it has no config file
func (s *ConfigService) Company(companyInput string) (config.Company, string, error) {
	name, path, err := s.CompanyPath(companyInput)
	if err != nil {
		return config.Company{}, "", err
	}
	cfg, err := s.rt.loadCompany(name)
	return cfg, path, err
}

// InitCompany writes a sample config.toml for a company and returns its path
func (s *ConfigService) InitCompany(companyInput string) (string, error) {
	name, path, err := s.CompanyPath(companyInput)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("company config already exists at %s", path)
	}

	if err := s.rt.Store.WriteDurably(path, config.GenerateSampleCompanyConfig(name)); err != nil {
		return "", fmt.Errorf("failed to write company config: %w", err)
	}
	return path, nil
}

// SetTheme stores the TUI theme in the settings file
func (s *ConfigService) SetTheme(theme string) error {
	data, err := config.UpdateSettingsFile(s.settingsPath, "theme", theme)
	if err != nil {
		return err
	}
	if err := s.rt.Store.WriteDurably(s.settingsPath, string(data)); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	s.rt.Settings.Theme = theme
	return nil
}
