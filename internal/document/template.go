package document

import (
	"strings"

	"github.com/xolan/timesheet/internal/timeutil"
)

// Template returns the text of a new, empty week document
func Template(companyName string, week timeutil.Week) string {
	var b strings.Builder
	b.WriteString(VersionMarker + "\n")
	b.WriteString("# Time Tracking - " + companyName + " - " + week.Header() + "\n")
	b.WriteString("\n")
	b.WriteString(summaryHeading + "\n")
	b.WriteString("- **Total:** 0.0h\n")
	b.WriteString("\n")
	b.WriteString(separator + "\n")
	b.WriteString("\n")
	return b.String()
}
