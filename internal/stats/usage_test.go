package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/timesheet/internal/config"
	"github.com/xolan/timesheet/internal/entry"
)

func TestUsage(t *testing.T) {
	s := Summarize(week42, entryFixtures{
		{"2025-10-13", 20, nil},
		{"2025-10-14", 17, []string{"platform"}},
	}.entries(), testCompany(t))

	total, ok := Usage(s, testCompany(t))
	require.True(t, ok)
	assert.Equal(t, 93, total.Percentage)
	assert.InDelta(t, 3, total.Remaining, 1e-9)
	assert.Equal(t, StatusApproaching, total.Status)

	_, ok = Usage(s, config.Company{Name: "none"})
	assert.False(t, ok)
}

func TestCommitmentUsages(t *testing.T) {
	cfg := testCompany(t)
	s := Summarize(week42, entryFixtures{
		{"2025-10-13", 6, []string{"mtg"}},
		{"2025-10-13", 2, []string{"infra"}},
		{"2025-10-14", 1, []string{"custom"}},
	}.entries(), cfg)
	s.ByCommitment["research"] = 1

	usages := CommitmentUsages(s, cfg)
	require.Len(t, usages, 3)

	assert.Equal(t, "development", usages[0].Name)
	assert.Equal(t, 8, usages[0].Percentage)
	assert.Equal(t, StatusWithin, usages[0].Status)

	assert.Equal(t, "meeting", usages[1].Name)
	assert.Equal(t, 120, usages[1].Percentage)
	assert.Equal(t, StatusOver, usages[1].Status)

	assert.Equal(t, "research", usages[2].Name)
	assert.Zero(t, usages[2].Limit)
}

func TestStatusIndicator(t *testing.T) {
	assert.Equal(t, "✓", StatusWithin.Indicator())
	assert.Equal(t, "⚠️", StatusApproaching.Indicator())
	assert.Equal(t, "🚫", StatusOver.Indicator())
}

type entryFixture struct {
	date  string
	hours float64
	tags  []string
}

type entryFixtures []entryFixture

func (f entryFixtures) entries() []entry.Entry {
	entries := make([]entry.Entry, len(f))
	for i, e := range f {
		entries[i] = makeEntry(e.date, "09:00", "work", e.hours, e.tags...)
	}
	return entries
}
