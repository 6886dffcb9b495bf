package audit

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/storage"
	"github.com/xolan/timesheet/internal/timeutil"
)

func testEntry(t *testing.T, tags ...string) entry.Entry {
	t.Helper()
	e, err := entry.New("2025-10-17", "09:00", "Design review", 2, tags)
	require.NoError(t, err)
	return e
}

func TestFormatLine(t *testing.T) {
	at := time.Date(2025, 10, 17, 9, 30, 0, 0, time.UTC)

	assert.Equal(t,
		"2025-10-17T09:30:00.000Z | ADD | 2025-10-17 | 09:00 | 2.00h | Design review | #meeting #code | id-1",
		FormatLine(at, OpAdd, testEntry(t, "meeting", "code"), "id-1"))

	assert.Equal(t,
		"2025-10-17T09:30:00.000Z | DELETE | 2025-10-17 | 09:00 | 2.00h | Design review | no-tags | id-2",
		FormatLine(at, OpDelete, testEntry(t), "id-2"))
}

func TestFileSink_Record(t *testing.T) {
	layout := storage.Layout{Root: t.TempDir()}
	clock := &timeutil.MockClock{FixedNow: time.Date(2025, 10, 17, 9, 30, 0, 0, time.UTC)}
	sink := NewFileSink(layout, clock)

	require.NoError(t, sink.Record("acme", OpAdd, testEntry(t, "meeting")))
	clock.SetNow(clock.FixedNow.Add(time.Hour))
	require.NoError(t, sink.Record("acme", OpEdit, testEntry(t)))

	data, err := os.ReadFile(layout.AuditLogPath("acme"))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "# Time Tracking Audit Log\n"), "header is written once")
	assert.Equal(t, 1, strings.Count(text, "# audit-log-format: v1.0"))

	records := strings.Split(strings.TrimSpace(strings.SplitN(text, "\n\n", 2)[1]), "\n")
	require.Len(t, records, 2)
	assert.Contains(t, records[0], "2025-10-17T09:30:00.000Z | ADD |")
	assert.Contains(t, records[1], "2025-10-17T10:30:00.000Z | EDIT |")

	for _, record := range records {
		fields := strings.Split(record, " | ")
		require.Len(t, fields, 8)
		_, err := uuid.Parse(fields[7])
		assert.NoError(t, err, "op_id must be a UUID")
	}
}

func TestFileSink_FixedIDs(t *testing.T) {
	layout := storage.Layout{Root: t.TempDir(), SingleCompany: true}
	sink := &FileSink{
		Layout: layout,
		Clock:  &timeutil.MockClock{FixedNow: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)},
		NewID:  func() string { return "fixed" },
	}

	require.NoError(t, sink.Record("ignored", OpAdd, testEntry(t)))

	data, err := os.ReadFile(layout.AuditLogPath("ignored"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), " | no-tags | fixed\n"))
}

func TestFileSink_Error(t *testing.T) {
	root := t.TempDir() + "/file"
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	err := NewFileSink(storage.Layout{Root: root}, nil).Record("acme", OpAdd, testEntry(t))
	assert.ErrorIs(t, err, storage.ErrIO)
}

func TestDiscard(t *testing.T) {
	var sink Sink = Discard{}
	assert.NoError(t, sink.Record("acme", OpAdd, entry.Entry{}))
}
