// Package model defines the data structures shared by the scanner and its renderers.
package model

// Match is a single finding: one pattern matched on one line of one file.
type Match struct {
	File  Path
	Issue string
	Line  int    // 1-based
	Code  string // line trimmed of surrounding whitespace
}

// Target identifies where a report is rendered.
type Target string

const (
	// TargetConsole renders to the command's standard output.
	TargetConsole Target = "console"
	// TargetText writes the fixed-width text report to a file.
	TargetText Target = "text"
	// TargetCSV writes a CSV report to a file.
	TargetCSV Target = "csv"
	// TargetXLSX writes an Excel workbook to a file.
	TargetXLSX Target = "xlsx"
)

// Label returns the short name used in operator messages.
func (t Target) Label() string {
	switch t {
	case TargetCSV:
		return "CSV"
	case TargetXLSX:
		return "XLSX"
	case TargetText:
		return "text"
	default:
		return string(t)
	}
}
