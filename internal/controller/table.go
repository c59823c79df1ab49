package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "jsguard.dev/pkg/jsguard/internal/model"
	"jsguard.dev/pkg/jsguard/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	pathColumnWidth = 60
	// Space taken by the path, line and issue columns plus padding.
	fixedColumnsWidth = pathColumnWidth + 6 + 30 + 8
	minCodeWidth      = 20
)

// TableUI implements UI for interactive terminals: a borderless table with
// the code column clipped to the terminal width.
type TableUI struct {
	cmd   *cobra.Command
	width int
}

// NewTableUI creates a TableUI. A width of 0 disables clipping.
func NewTableUI(cmd *cobra.Command, width int) *TableUI {
	return &TableUI{cmd: cmd, width: width}
}

// DisplayBanner prints the resolved scan root.
func (t *TableUI) DisplayBanner(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s %s\n\n", titleStyle.Render("Scanning directory:"), root)
}

// DisplayMatches renders the findings table followed by the total.
func (t *TableUI) DisplayMatches(ctx context.Context, matches []m.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(matches) == 0 {
		t.printf("%s\n", okStyle.Render(report.NoIssuesMessage))
		return nil
	}

	t.printf("\n%s\n%s\n", renderMatchTable(matches, t.codeWidth()), warnStyle.Render(report.TotalLine(len(matches))))

	return nil
}

// DisplayNotice prints an informational line.
func (t *TableUI) DisplayNotice(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.printf("%s\n", infoStyle.Render(message))
}

// DisplayError prints a diagnostic to the error stream.
func (t *TableUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(t.cmd.ErrOrStderr(), "%s %v\n", errorStyle.Render("Error:"), err)
}

func (t *TableUI) codeWidth() int {
	if t.width == 0 {
		return 0
	}

	return max(t.width-fixedColumnsWidth, minCodeWidth)
}

func (t *TableUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.cmd.OutOrStdout(), format, args...)
}

func renderMatchTable(matches []m.Match, codeWidth int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(report.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, match := range matches {
		table.Append([]string{
			report.Truncate(string(match.File), pathColumnWidth),
			strconv.Itoa(match.Line),
			match.Issue,
			clip(match.Code, codeWidth),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// clip shortens s to width runes; width 0 means unlimited.
func clip(s string, width int) string {
	if width == 0 {
		return s
	}

	return report.Truncate(s, width)
}
