package stats

import (
	"math"
	"sort"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/timeutil"
)

// DailySummary holds the entries of one calendar date and their total
type DailySummary struct {
	Date       string
	Entries    []entry.Entry
	TotalHours float64
}

// WeeklySummary is the full rollup of one ISO week
type WeeklySummary struct {
	WeekNumber   int
	Year         int
	StartDate    string
	EndDate      string
	Days         []DailySummary // sorted by date
	TotalHours   float64
	ByCommitment map[string]float64
	ByTag        map[string]float64
	ByProject    map[string]float64
}

// Status classifies usage of a commitment
type Status string

const (
	StatusWithin      Status = "within"
	StatusApproaching Status = "approaching"
	StatusOver        Status = "over"
)

// Summarize groups entries by date and rolls them up by tag, commitment and
// project. Hours are never rounded here; an entry with several tags adds its
// full duration to each tag but only once to TotalHours.
func Summarize(week timeutil.Week, entries []entry.Entry, cfg config.Company) WeeklySummary {
	summary := WeeklySummary{
		WeekNumber:   week.Number,
		Year:         week.Year,
		StartDate:    timeutil.FormatDate(week.Start()),
		EndDate:      timeutil.FormatDate(week.End()),
		Days:         []DailySummary{},
		ByCommitment: make(map[string]float64),
		ByTag:        make(map[string]float64),
		ByProject:    make(map[string]float64),
	}

	dayIndex := make(map[string]int)
	for _, e := range entries {
		i, ok := dayIndex[e.Date]
		if !ok {
			i = len(summary.Days)
			dayIndex[e.Date] = i
			summary.Days = append(summary.Days, DailySummary{Date: e.Date})
		}
		summary.Days[i].Entries = append(summary.Days[i].Entries, e)
		summary.Days[i].TotalHours += e.Hours

		summary.TotalHours += e.Hours

		for _, tag := range e.Tags {
			canonical := cfg.CanonicalTag(tag)
			summary.ByTag[canonical] += e.Hours

			if commitment, ok := cfg.ResolveCommitment(canonical); ok {
				summary.ByCommitment[commitment] += e.Hours
			}
			if project, ok := cfg.ResolveProject(canonical); ok {
				summary.ByProject[project.Name] += e.Hours
			}
		}
	}

	sort.SliceStable(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date < summary.Days[j].Date
	})

	return summary
}

// DaysByDate indexes the daily summaries by date
func (s WeeklySummary) DaysByDate() map[string]DailySummary {
	result := make(map[string]DailySummary, len(s.Days))
	for _, d := range s.Days {
		result[d.Date] = d
	}
	return result
}

// Day returns the summary for date, or an empty one
func (s WeeklySummary) Day(date string) DailySummary {
	for _, d := range s.Days {
		if d.Date == date {
			return d
		}
	}
	return DailySummary{Date: date}
}

// EntryCount returns the number of entries in the week
func (s WeeklySummary) EntryCount() int {
	count := 0
	for _, d := range s.Days {
		count += len(d.Entries)
	}
	return count
}

// Percentage returns hours as a whole percentage of limit
func Percentage(hours, limit float64) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Round(hours / limit * 100))
}

// Remaining returns the hours left before limit, never negative
func Remaining(hours, limit float64) float64 {
	return math.Max(0, limit-hours)
}

// CommitmentStatus is over above 100% of limit, approaching above 90%
func CommitmentStatus(hours, limit float64) Status {
	if limit <= 0 {
		return StatusWithin
	}
	percent := hours / limit * 100
	switch {
	case percent > 100:
		return StatusOver
	case percent > 90:
		return StatusApproaching
	default:
		return StatusWithin
	}
}

// TagBreakdown contains statistics for a single tag
type TagBreakdown struct {
	Tag        string
	Hours      float64
	Percentage int
}

// TagStatistics returns the tag rollup sorted by hours descending, ties by name.
// Percentages are relative to the week total and may sum above 100.
func TagStatistics(s WeeklySummary) []TagBreakdown {
	breakdowns := make([]TagBreakdown, 0, len(s.ByTag))
	for tag, hours := range s.ByTag {
		breakdowns = append(breakdowns, TagBreakdown{
			Tag:        tag,
			Hours:      hours,
			Percentage: Percentage(hours, s.TotalHours),
		})
	}

	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Hours != breakdowns[j].Hours {
			return breakdowns[i].Hours > breakdowns[j].Hours
		}
		return breakdowns[i].Tag < breakdowns[j].Tag
	})

	return breakdowns
}

// TopTags returns the n tags with the most hours
func TopTags(s WeeklySummary, n int) []string {
	stats := TagStatistics(s)
	if n < len(stats) {
		stats = stats[:n]
	}
	tags := make([]string, len(stats))
	for i, st := range stats {
		tags[i] = st.Tag
	}
	return tags
}

// ProjectBreakdown contains the hours of a single project
type ProjectBreakdown struct {
	Project string
	Hours   float64
}

// ProjectStatistics returns the project rollup sorted by hours descending
func ProjectStatistics(s WeeklySummary) []ProjectBreakdown {
	breakdowns := make([]ProjectBreakdown, 0, len(s.ByProject))
	for project, hours := range s.ByProject {
		breakdowns = append(breakdowns, ProjectBreakdown{Project: project, Hours: hours})
	}
	sort.Slice(breakdowns, func(i, j int) bool {
		if breakdowns[i].Hours != breakdowns[j].Hours {
			return breakdowns[i].Hours > breakdowns[j].Hours
		}
		return breakdowns[i].Project < breakdowns[j].Project
	})
	return breakdowns
}

// AveragePerDay divides the week total by the number of days with entries
func AveragePerDay(s WeeklySummary) float64 {
	if len(s.Days) == 0 {
		return 0
	}
	return s.TotalHours / float64(len(s.Days))
}

// BusiestDay returns the day with the most hours; the earliest wins ties
func BusiestDay(s WeeklySummary) (DailySummary, bool) {
	if len(s.Days) == 0 {
		return DailySummary{}, false
	}
	busiest := s.Days[0]
	for _, d := range s.Days[1:] {
		if d.TotalHours > busiest.TotalHours {
			busiest = d
		}
	}
	return busiest, true
}

// LightestDay returns the day with the fewest hours; the earliest wins ties
func LightestDay(s WeeklySummary) (DailySummary, bool) {
	if len(s.Days) == 0 {
		return DailySummary{}, false
	}
	lightest := s.Days[0]
	for _, d := range s.Days[1:] {
		if d.TotalHours < lightest.TotalHours {
			lightest = d
		}
	}
	return lightest, true
}
