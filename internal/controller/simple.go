package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "jsguard.dev/pkg/jsguard/internal/model"
	"jsguard.dev/pkg/jsguard/internal/report"
)

// SimpleUI implements UI using the cobra command's output streams and the
// fixed-width text layout.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBanner prints the resolved scan root.
func (s *SimpleUI) DisplayBanner(ctx context.Context, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scanning directory: %s\n\n", root)
}

// DisplayMatches prints the findings table, or the no-issues line.
func (s *SimpleUI) DisplayMatches(ctx context.Context, matches []m.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(matches) > 0 {
		s.printf("\n")
	}

	return report.WriteText(s.cmd.OutOrStdout(), matches)
}

// DisplayNotice prints an informational line.
func (s *SimpleUI) DisplayNotice(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayError prints a diagnostic to the error stream.
func (s *SimpleUI) DisplayError(_ context.Context, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "Error: %v\n", err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
