// Package document reads and rewrites weekly time tracking documents.
//
// A week document is plain markdown: a version marker, a title, a summary
// block and one section per day. Everything except the summary block and
// the hour suffix of day headers belongs to the person editing the file and
// is preserved byte for byte.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xolan/timesheet/internal/entry"
)

// FormatVersion is the document format written and understood by this package
const FormatVersion = "v1.0"

// VersionMarker is the first line of every generated document
const VersionMarker = "<!-- time-tracking-format: " + FormatVersion + " -->"

var (
	dateHeaderPattern    = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2})`)
	versionMarkerPattern = regexp.MustCompile(`<!--\s*time-tracking-format:\s*(v\d+\.\d+)\s*-->`)
)

// UnparsedLine is an entry-shaped line that could not be read
type UnparsedLine struct {
	LineNumber int // 1-based
	Content    string
}

// ParseIssues collects the soft failures of one parse
type ParseIssues struct {
	UnparsedLines []UnparsedLine
	// FormatVersion is the detected version marker, empty when absent
	FormatVersion string
	Warnings      []string
}

// HasWarnings reports whether anything should be surfaced to the user
func (p ParseIssues) HasWarnings() bool {
	return len(p.Warnings) > 0
}

// ParseEntries scans text line by line and recovers every entry. Entries
// belong to the closest "## YYYY-MM-DD" header above them. Lines that look
// like entries but cannot be read are collected in the returned issues
// instead of failing the parse.
func ParseEntries(text string, mode entry.Mode) ([]entry.Entry, ParseIssues) {
	var (
		entries     []entry.Entry
		issues      ParseIssues
		currentDate string
	)

	if m := versionMarkerPattern.FindStringSubmatch(text); m != nil {
		issues.FormatVersion = m[1]
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")

		if m := dateHeaderPattern.FindStringSubmatch(line); m != nil {
			currentDate = m[1]
			continue
		}

		if skipLine(line) {
			continue
		}

		if !strings.HasPrefix(line, entry.EntryPrefix) {
			continue
		}

		if currentDate == "" {
			continue
		}

		e, ok := entry.ParseLine(line, currentDate, mode)
		if !ok {
			issues.UnparsedLines = append(issues.UnparsedLines, UnparsedLine{LineNumber: i + 1, Content: line})
			continue
		}
		entries = append(entries, e)
	}

	switch {
	case issues.FormatVersion == "":
		issues.Warnings = append(issues.Warnings, fmt.Sprintf("Format version marker not found (expected %s)", FormatVersion))
	case issues.FormatVersion != FormatVersion:
		issues.Warnings = append(issues.Warnings, fmt.Sprintf("Format version %s differs from supported %s", issues.FormatVersion, FormatVersion))
	}

	if n := len(issues.UnparsedLines); n > 0 {
		issues.Warnings = append(issues.Warnings, fmt.Sprintf("Found %d unparsed entry line(s)", n))
	}

	return entries, issues
}

// skipLine reports lines that are never entries and never unparsed
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "---") ||
		strings.HasPrefix(line, "<!--") ||
		strings.HasPrefix(line, "**")
}
