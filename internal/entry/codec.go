package entry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects how strictly the duration token of an entry line is read
type Mode int

const (
	// Strict accepts only canonical "<number>h" duration tokens
	Strict Mode = iota
	// Flexible runs the token through ParseDuration, falling back to Strict
	Flexible
)

// ModeFor returns Flexible when flexible is true and Strict otherwise
func ModeFor(flexible bool) Mode {
	if flexible {
		return Flexible
	}
	return Strict
}

func (m Mode) String() string {
	if m == Flexible {
		return "flexible"
	}
	return "strict"
}

// EntryPrefix starts every entry line
const EntryPrefix = "- "

var (
	// entryHeadPattern matches the "- HH:MM Task " part before the duration
	entryHeadPattern = regexp.MustCompile(`^- (\d{2}:\d{2}) (.+) $`)
	// parenTokenPattern matches a parenthesised token that may be the duration
	parenTokenPattern = regexp.MustCompile(`\(([^()]+)\)`)
	// strictTokenPattern matches the canonical "2.5h" duration token
	strictTokenPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)h$`)
	// inlineTagPattern matches #tag tokens (e.g. "#bugfix", "#v1-release")
	inlineTagPattern = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
)

// FormatLine renders an entry as "- HH:MM Task (Xh) #tag1 #tag2"
func FormatLine(e Entry) string {
	line := fmt.Sprintf("- %s %s (%s)", e.Time, e.Task, FormatHours(e.Hours))
	if len(e.Tags) > 0 {
		line += " " + FormatTags(e.Tags, "")
	}
	return line
}

// lineMatch is the raw result of matching an entry line
type lineMatch struct {
	clock      string
	task       string
	hours      float64
	rest       string
	tokenStart int
	tokenEnd   int
}

// matchLine finds the entry components of line in the given mode. The
// duration is the last parenthesised token that reads as one, so a task may
// carry its own parentheticals, even "(1h)".
func matchLine(line string, mode Mode) (lineMatch, bool) {
	tokens := parenTokenPattern.FindAllStringSubmatchIndex(line, -1)
	for i := len(tokens) - 1; i >= 0; i-- {
		idx := tokens[i]
		head := entryHeadPattern.FindStringSubmatch(line[:idx[0]])
		if head == nil {
			continue
		}
		hours, ok := tokenHours(line[idx[2]:idx[3]], mode)
		if !ok {
			continue
		}
		return lineMatch{
			clock:      head[1],
			task:       head[2],
			hours:      hours,
			rest:       line[idx[1]:],
			tokenStart: idx[2],
			tokenEnd:   idx[3],
		}, true
	}
	return lineMatch{}, false
}

// tokenHours reads a duration token. Flexible mode tries ParseDuration
// before the canonical form.
func tokenHours(token string, mode Mode) (float64, bool) {
	if mode == Flexible {
		if d, err := ParseDuration(token); err == nil {
			return d.Hours, true
		}
	}
	m := strictTokenPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

// ParseLine parses a single entry line belonging to date.
// A line that does not have entry shape, or whose fields fail validation,
// is reported as not-an-entry (false) rather than an error.
func ParseLine(line, date string, mode Mode) (Entry, bool) {
	m, ok := matchLine(strings.TrimRight(line, "\r"), mode)
	if !ok {
		return Entry{}, false
	}

	e, err := New(date, m.clock, m.task, m.hours, ExtractTags(m.rest))
	if err != nil {
		return Entry{}, false
	}
	// Keep the task text exactly as written
	e.Task = strings.TrimSpace(m.task)
	return e, true
}

// NormalizeLine rewrites the duration token of an entry line to canonical
// form, leaving every other byte of the line untouched. It reports whether
// the line was recognised as an entry.
func NormalizeLine(line string, mode Mode) (string, bool) {
	m, ok := matchLine(line, mode)
	if !ok {
		return line, false
	}
	if !clockPattern.MatchString(m.clock) {
		return line, false
	}
	if err := validateHours(m.hours, line[m.tokenStart:m.tokenEnd]); err != nil {
		return line, false
	}
	return line[:m.tokenStart] + FormatHours(m.hours) + line[m.tokenEnd:], true
}

// ExtractTags returns every #tag in text, order and duplicates preserved
func ExtractTags(text string) []string {
	var tags []string
	for _, match := range inlineTagPattern.FindAllStringSubmatch(text, -1) {
		tags = append(tags, match[1])
	}
	return tags
}

// SplitTags extracts #tags from a free-text task description.
// Returns the cleaned description (without the tags) and the tags.
// Example: "fix bug #bugfix #urgent" -> ("fix bug", ["bugfix", "urgent"])
func SplitTags(description string) (cleanDesc string, tags []string) {
	tags = ExtractTags(description)
	cleanDesc = inlineTagPattern.ReplaceAllString(description, "")
	return SanitizeTask(cleanDesc), tags
}
