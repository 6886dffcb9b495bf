package document

import (
	"fmt"
	"strconv"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/stats"
)

// SummaryLines renders the summary block for s: the heading, a Total line,
// one line per commitment with hours (configuration order) and a Remaining
// line when a total limit is configured, followed by a blank line.
func SummaryLines(s stats.WeeklySummary, cfg config.Company) []string {
	lines := []string{summaryHeading, totalLine(s.TotalHours, cfg)}

	var names []string
	for name := range s.ByCommitment {
		if name != config.TotalCommitment {
			names = append(names, name)
		}
	}

	for _, name := range cfg.CommitmentOrder(names) {
		hours := s.ByCommitment[name]
		line := fmt.Sprintf("- **%s:** %s", config.DisplayName(name), formatSummaryHours(hours))
		if c, ok := cfg.Commitment(name); ok && c.Limit > 0 {
			line += fmt.Sprintf(" / %sh (%d%%)", formatLimit(c.Limit), stats.Percentage(hours, c.Limit))
			if stats.CommitmentStatus(hours, c.Limit) == stats.StatusOver {
				line += " ⚠️ OVER"
			}
		}
		lines = append(lines, line)
	}

	if total, ok := cfg.Total(); ok && total.Limit > 0 {
		lines = append(lines, fmt.Sprintf("- **Remaining:** %s available", formatSummaryHours(stats.Remaining(s.TotalHours, total.Limit))))
	}

	return append(lines, "")
}

func totalLine(hours float64, cfg config.Company) string {
	line := "- **Total:** " + formatSummaryHours(hours)

	total, ok := cfg.Total()
	if !ok || total.Limit <= 0 {
		return line
	}

	line += fmt.Sprintf(" / %sh limit (%d%%)", formatLimit(total.Limit), stats.Percentage(hours, total.Limit))

	switch {
	case total.HasMax() && hours > total.Max:
		line += fmt.Sprintf(" 🚨 EXCEEDED MAX (+%s over %sh max)", formatSummaryHours(hours-total.Max), formatLimit(total.Max))
	case total.HasMax() && hours > total.Limit:
		line += fmt.Sprintf(" ⚠️ OVERFLOW (+%s into %sh buffer)", formatSummaryHours(hours-total.Limit), formatLimit(total.Max-total.Limit))
	}

	return line
}

// formatSummaryHours renders hours with one decimal, e.g. "2.0h"
func formatSummaryHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 1, 64) + "h"
}

// formatLimit renders a configured limit without trailing zeros, e.g. "40" or "37.5"
func formatLimit(limit float64) string {
	return strconv.FormatFloat(limit, 'f', -1, 64)
}
