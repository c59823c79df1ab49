// Package controller provides console output for scan results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// UI defines how the workflow talks to the operator.
// Implementations can use different output methods (plain text, styled table).
type UI interface {
	DisplayBanner(ctx context.Context, root m.Path)
	DisplayMatches(ctx context.Context, matches []m.Match) error
	DisplayNotice(ctx context.Context, message string)
	DisplayError(ctx context.Context, err error)
}

// NewUI returns a TableUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTableUI(cmd, TerminalWidth(os.Stdout))
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TerminalWidth returns the column count of the terminal behind f, or 0 when unknown.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return 0
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}

	return width
}
