// Package report encodes scan findings as fixed-width text, CSV and XLSX.
package report

import (
	"fmt"
	"io"
	"strings"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// NoIssuesMessage is printed instead of an empty table.
const NoIssuesMessage = "No potentially dangerous JavaScript commands found."

const (
	fileColumnWidth  = 60
	lineColumnWidth  = 6
	issueColumnWidth = 30
	ruleWidth        = 120
	ellipsis         = "..."
)

// Headers are the column titles shared by every report format.
var Headers = []string{"File", "Line", "Issue", "Code"}

// WriteText renders matches as the fixed-width text table followed by a total line.
func WriteText(w io.Writer, matches []m.Match) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, NoIssuesMessage)
		return err
	}

	var b strings.Builder

	b.WriteString(formatRow(Headers[0], Headers[1], Headers[2], Headers[3]))
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')

	for _, match := range matches {
		b.WriteString(formatRow(Truncate(string(match.File), fileColumnWidth), fmt.Sprintf("%d", match.Line), match.Issue, match.Code))
	}

	fmt.Fprintf(&b, "\n%s\n", TotalLine(len(matches)))

	_, err := io.WriteString(w, b.String())

	return err
}

// TotalLine returns the trailing summary line.
func TotalLine(count int) string {
	return fmt.Sprintf("Total Issues Found: %d", count)
}

// Truncate shortens s to limit runes, marking the cut with an ellipsis.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

func formatRow(file, line, issue, code string) string {
	return fmt.Sprintf("%-*s %-*s %-*s %s\n",
		fileColumnWidth, file,
		lineColumnWidth, line,
		issueColumnWidth, issue,
		code,
	)
}
