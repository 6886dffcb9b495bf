package storage

import (
	"fmt"
	"path/filepath"
)

const (
	// CompanyConfigFile is the per-company TOML configuration file name
	CompanyConfigFile = "config.toml"
	// AuditLogFile is the per-company audit log file name
	AuditLogFile = "audit.log"
)

// Layout maps companies and weeks to paths under the tracking root.
// In single-company mode every file lives directly in Root; otherwise each
// company gets its own subdirectory.
type Layout struct {
	Root          string
	SingleCompany bool
}

// CompanyDir returns the directory holding the files of company
func (l Layout) CompanyDir(company string) string {
	if l.SingleCompany {
		return l.Root
	}
	return filepath.Join(l.Root, company)
}

// WeekFileName returns the document name of an ISO week, e.g. "2025-W07.md"
func WeekFileName(year, week int) string {
	return fmt.Sprintf("%d-W%02d.md", year, week)
}

// WeekFilePath returns the path of the week document of company
func (l Layout) WeekFilePath(company string, year, week int) string {
	return filepath.Join(l.CompanyDir(company), WeekFileName(year, week))
}

// CompanyConfigPath returns the path of the company configuration file
func (l Layout) CompanyConfigPath(company string) string {
	return filepath.Join(l.CompanyDir(company), CompanyConfigFile)
}

// AuditLogPath returns the path of the company audit log
func (l Layout) AuditLogPath(company string) string {
	return filepath.Join(l.CompanyDir(company), AuditLogFile)
}
