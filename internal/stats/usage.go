package stats

import (
	"github.com/xolan/timesheet/internal/config"
)

// CommitmentUsage is the hours spent against one commitment
type CommitmentUsage struct {
	Name       string
	Hours      float64
	Limit      float64 // zero when the commitment is not configured
	Percentage int
	Remaining  float64
	Status     Status
}

// Usage returns the week total against the "total" commitment
func Usage(s WeeklySummary, cfg config.Company) (CommitmentUsage, bool) {
	total, ok := cfg.Total()
	if !ok || total.Limit <= 0 {
		return CommitmentUsage{Name: config.TotalCommitment, Hours: s.TotalHours, Status: StatusWithin}, false
	}
	return usage(config.TotalCommitment, s.TotalHours, total.Limit), true
}

// CommitmentUsages returns one usage per commitment with hours, excluding
// "total", in configuration order
func CommitmentUsages(s WeeklySummary, cfg config.Company) []CommitmentUsage {
	var names []string
	for name := range s.ByCommitment {
		if name != config.TotalCommitment {
			names = append(names, name)
		}
	}

	usages := make([]CommitmentUsage, 0, len(names))
	for _, name := range cfg.CommitmentOrder(names) {
		var limit float64
		if c, ok := cfg.Commitment(name); ok {
			limit = c.Limit
		}
		usages = append(usages, usage(name, s.ByCommitment[name], limit))
	}
	return usages
}

func usage(name string, hours, limit float64) CommitmentUsage {
	return CommitmentUsage{
		Name:       name,
		Hours:      hours,
		Limit:      limit,
		Percentage: Percentage(hours, limit),
		Remaining:  Remaining(hours, limit),
		Status:     CommitmentStatus(hours, limit),
	}
}

// Indicator is the status emoji shown next to a commitment
func (s Status) Indicator() string {
	switch s {
	case StatusOver:
		return "🚫"
	case StatusApproaching:
		return "⚠️"
	default:
		return "✓"
	}
}
