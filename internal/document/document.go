package document

import (
	"regexp"
	"strings"
	"time"

	"github.com/xolan/timesheet/internal/entry"
	"github.com/xolan/timesheet/internal/timeutil"
)

const (
	summaryHeading = "## Summary"
	separator      = "---"
)

// dayHeaderPattern matches a well-formed day header "## 2025-10-17 Friday (3.5h)"
var dayHeaderPattern = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2}) ([A-Za-z]+) \(([^)]*)\)(.*)$`)

type nodeKind int

const (
	verbatimNode nodeKind = iota
	summaryNode
	dayHeaderNode
)

// DayHeader is the typed form of a day header line. Only Hours is derived;
// Tail keeps anything written after the closing parenthesis.
type DayHeader struct {
	Date    string
	Weekday string
	Hours   string
	Tail    string
	cr      bool
}

func (h DayHeader) String() string {
	line := "## " + h.Date + " " + h.Weekday + " (" + h.Hours + ")" + h.Tail
	if h.cr {
		line += "\r"
	}
	return line
}

type node struct {
	kind nodeKind
	// text is the raw line of a verbatim node
	text string
	// lines are the raw lines of the summary block
	lines  []string
	header DayHeader
}

func (n node) render() []string {
	switch n.kind {
	case summaryNode:
		return n.lines
	case dayHeaderNode:
		return []string{n.header.String()}
	default:
		return []string{n.text}
	}
}

// Document is a week document split into verbatim lines, one summary block
// and typed day headers. String reproduces the input byte for byte until a
// typed node is changed.
type Document struct {
	nodes []node
	// crlf is set when the first line break is "\r\n"; added lines follow it
	crlf bool
}

// Parse splits text into nodes. The summary block runs from the first
// "## Summary" line up to, not including, the next "---" line; without a
// closing separator there is no summary block.
func Parse(text string) *Document {
	lines := strings.Split(text, "\n")
	doc := &Document{nodes: make([]node, 0, len(lines))}
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		doc.crlf = true
	}

	summaryFound := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimRight(line, "\r")

		if !summaryFound && trimmed == summaryHeading {
			if end := findSeparator(lines, i+1); end != -1 {
				summaryFound = true
				block := append([]string(nil), lines[i:end]...)
				doc.nodes = append(doc.nodes, node{kind: summaryNode, lines: block})
				i = end - 1
				continue
			}
		}

		if h, ok := parseDayHeader(trimmed); ok {
			h.cr = len(trimmed) != len(line)
			doc.nodes = append(doc.nodes, node{kind: dayHeaderNode, header: h})
			continue
		}

		doc.nodes = append(doc.nodes, node{kind: verbatimNode, text: line})
	}

	return doc
}

func findSeparator(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if isSeparator(lines[j]) {
			return j
		}
	}
	return -1
}

func isSeparator(line string) bool {
	return strings.TrimSpace(line) == separator
}

// parseDayHeader accepts a header only when its weekday matches its date
func parseDayHeader(line string) (DayHeader, bool) {
	m := dayHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return DayHeader{}, false
	}
	day, err := time.Parse(timeutil.DateLayout, m[1])
	if err != nil || timeutil.DayName(day) != m[2] {
		return DayHeader{}, false
	}
	return DayHeader{Date: m[1], Weekday: m[2], Hours: m[3], Tail: m[4]}, true
}

// String reserializes the document
func (d *Document) String() string {
	var lines []string
	for _, n := range d.nodes {
		lines = append(lines, n.render()...)
	}
	return strings.Join(lines, "\n")
}

// HasSummary reports whether the document has a summary block
func (d *Document) HasSummary() bool {
	return d.summaryIndex() != -1
}

func (d *Document) summaryIndex() int {
	for i, n := range d.nodes {
		if n.kind == summaryNode {
			return i
		}
	}
	return -1
}

// Summary returns the lines of the summary block
func (d *Document) Summary() []string {
	if i := d.summaryIndex(); i != -1 {
		return append([]string(nil), d.nodes[i].lines...)
	}
	return nil
}

// SetSummary replaces the summary block with the given lines. It reports
// false when the document has no summary block.
func (d *Document) SetSummary(lines []string) bool {
	i := d.summaryIndex()
	if i == -1 {
		return false
	}
	block := make([]string, len(lines))
	for j, l := range lines {
		block[j] = d.withEOL(l)
	}
	d.nodes[i].lines = block
	return true
}

// withEOL appends the carriage return of a CRLF document to line
func (d *Document) withEOL(line string) string {
	if d.crlf && !strings.HasSuffix(line, "\r") {
		return line + "\r"
	}
	return line
}

// DayHeaders returns the typed day headers in document order
func (d *Document) DayHeaders() []DayHeader {
	var headers []DayHeader
	for _, n := range d.nodes {
		if n.kind == dayHeaderNode {
			headers = append(headers, n.header)
		}
	}
	return headers
}

// SetDayHours rewrites the hour suffix of every day header using hoursFor
func (d *Document) SetDayHours(hoursFor func(date string) string) {
	for i := range d.nodes {
		if d.nodes[i].kind == dayHeaderNode {
			d.nodes[i].header.Hours = hoursFor(d.nodes[i].header.Date)
		}
	}
}

// NormalizeEntries rewrites the duration token of every entry line below a
// date header to canonical form. It returns the number of changed lines.
func (d *Document) NormalizeEntries(mode entry.Mode) int {
	changed := 0
	inDay := false
	for i := range d.nodes {
		n := &d.nodes[i]
		switch n.kind {
		case dayHeaderNode:
			inDay = true
		case verbatimNode:
			if dateHeaderPattern.MatchString(n.text) {
				inDay = true
				continue
			}
			if !inDay || !strings.HasPrefix(n.text, entry.EntryPrefix) {
				continue
			}
			if normalized, ok := entry.NormalizeLine(n.text, mode); ok && normalized != n.text {
				n.text = normalized
				changed++
			}
		}
	}
	return changed
}

// lineAt returns the first rendered line of node i
func (d *Document) lineAt(i int) string {
	return strings.TrimRight(d.nodes[i].render()[0], "\r")
}

func (d *Document) insert(at int, lines ...string) {
	added := make([]node, len(lines))
	for i, l := range lines {
		if h, ok := parseDayHeader(l); ok {
			h.cr = d.crlf
			added[i] = node{kind: dayHeaderNode, header: h}
		} else {
			added[i] = node{kind: verbatimNode, text: d.withEOL(l)}
		}
	}
	d.nodes = append(d.nodes[:at], append(added, d.nodes[at:]...)...)
}

// InsertEntry adds the entry line as the first entry of its day section,
// creating the section right after the summary block when it is missing.
func (d *Document) InsertEntry(e entry.Entry) {
	header := "## " + e.Date + " " + timeutil.DayName(e.Day())
	line := entry.FormatLine(e)

	for i := range d.nodes {
		if strings.HasPrefix(d.lineAt(i), header) {
			d.insertIntoSection(i, line)
			return
		}
	}

	section := []string{"", header + " (0h)", "", line, "", separator}
	d.insert(d.sectionInsertPoint(), section...)
}

func (d *Document) insertIntoSection(headerIndex int, line string) {
	for j := headerIndex + 1; j < len(d.nodes); j++ {
		l := d.lineAt(j)
		if strings.HasPrefix(l, entry.EntryPrefix) {
			d.insert(j, line)
			return
		}
		if isSeparator(l) || strings.HasPrefix(l, "## ") {
			break
		}
	}

	// Section without entries: place the line after the blank below the header
	at := headerIndex + 1
	if at < len(d.nodes) && strings.TrimSpace(d.lineAt(at)) == "" {
		at++
	}
	if at < len(d.nodes) && d.isSectionEnd(at) {
		d.insert(at, line, "")
		return
	}
	d.insert(at, line)
}

func (d *Document) isSectionEnd(i int) bool {
	l := d.lineAt(i)
	return isSeparator(l) || strings.HasPrefix(l, "## ")
}

// sectionInsertPoint is the node index right after the separator closing
// the summary block, else after the first separator, else before the final
// newline.
func (d *Document) sectionInsertPoint() int {
	if s := d.summaryIndex(); s != -1 && s+1 < len(d.nodes) {
		return s + 2
	}
	for i := range d.nodes {
		if d.nodes[i].kind == verbatimNode && isSeparator(d.nodes[i].text) {
			return i + 1
		}
	}
	if n := len(d.nodes); n > 0 && d.nodes[n-1].kind == verbatimNode && d.nodes[n-1].text == "" {
		return n - 1
	}
	return len(d.nodes)
}
