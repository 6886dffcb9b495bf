// Package audit keeps an append-only log of time entry operations.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/storage"
	"github.com/xolan/timesheet/internal/timeutil"
)

// Operation is the kind of change recorded
type Operation string

const (
	OpAdd    Operation = "ADD"
	OpEdit   Operation = "EDIT"
	OpDelete Operation = "DELETE"
)

// FormatVersion is written into the header of new audit logs
const FormatVersion = "v1.0"

const header = "# Time Tracking Audit Log\n" +
	"# Format: ISO8601_TIMESTAMP | OPERATION | DATE | TIME | DURATION | TASK | TAGS | OP_ID\n" +
	"# audit-log-format: " + FormatVersion + "\n\n"

// Sink records entry operations
type Sink interface {
	Record(company string, op Operation, e entry.Entry) error
}

// FileSink appends one line per operation to the company audit log
type FileSink struct {
	Layout storage.Layout
	Clock  timeutil.Clock
	// NewID generates operation IDs; uuid.NewString when nil
	NewID func() string
}

// NewFileSink creates a FileSink writing under layout
func NewFileSink(layout storage.Layout, clock timeutil.Clock) *FileSink {
	return &FileSink{Layout: layout, Clock: clock}
}

// Record implements Sink. The log and its directory are created on first use.
func (s *FileSink) Record(company string, op Operation, e entry.Entry) error {
	path := s.Layout.AuditLogPath(company)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: create audit log directory: %v", storage.ErrIO, err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: open audit log %s: %v", storage.ErrIO, path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat audit log %s: %v", storage.ErrIO, path, err)
	}

	var b strings.Builder
	if info.Size() == 0 {
		b.WriteString(header)
	}
	b.WriteString(FormatLine(s.now(), op, e, s.newID()))
	b.WriteString("\n")

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("%w: append audit log %s: %v", storage.ErrIO, path, err)
	}
	return nil
}

func (s *FileSink) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *FileSink) newID() string {
	if s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}

// FormatLine renders one audit record, e.g.
// "2025-10-17T09:00:00.000Z | ADD | 2025-10-17 | 09:00 | 2.00h | Review | #code | 4b1e..."
func FormatLine(at time.Time, op Operation, e entry.Entry, opID string) string {
	return strings.Join([]string{
		at.UTC().Format("2006-01-02T15:04:05.000Z"),
		string(op),
		e.Date,
		e.Time,
		fmt.Sprintf("%.2fh", e.Hours),
		e.Task,
		entry.FormatTags(e.Tags, "no-tags"),
		opID,
	}, " | ")
}

// Discard is a Sink that records nothing
type Discard struct{}

// Record implements Sink
func (Discard) Record(string, Operation, entry.Entry) error { return nil }
