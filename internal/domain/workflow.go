package domain

import (
	"context"
	"fmt"
	"log/slog"

	"jsguard.dev/pkg/jsguard/internal/adapter"
	"jsguard.dev/pkg/jsguard/internal/controller"
	m "jsguard.dev/pkg/jsguard/internal/model"
)

// ScanArgs configures one scan: the root, the directory names to prune and
// the optional file destinations. With no destination set, results go to the console.
type ScanArgs struct {
	Root       m.Path
	Exclude    []string
	TextOutput m.Path
	CSVOutput  m.Path
	XLSXOutput m.Path
}

// WritesFiles reports whether any file destination was requested.
func (a ScanArgs) WritesFiles() bool {
	return a.TextOutput != "" || a.CSVOutput != "" || a.XLSXOutput != ""
}

// Workflow runs the validate, scan and render pipeline.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	walker Walker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	walker Walker,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		walker:          walker,
	}
}

// Scan validates the root, walks it and renders the findings. Only an invalid
// root fails the run; unreadable files and unwritable reports are reported
// and skipped.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	root := args.Root
	if root == "" {
		root = "."
	}

	info, err := w.FileInfo(root)
	if err != nil || !info.IsDir() {
		slog.Error("invalid scan root", "root", root, "error", err)
		return fmt.Errorf("%s is %w", root, ErrInvalidRoot)
	}

	abs, err := w.AbsPath(root)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", root, err)
	}

	w.DisplayBanner(ctx, abs)

	matches, err := w.walker.Walk(ctx, root, args.Exclude)
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	slog.Info("scan complete", "root", abs, "matches", len(matches), "exclude", args.Exclude)

	if args.TextOutput != "" {
		w.export(ctx, m.TargetText, args.TextOutput, matches, w.SaveText)
	}

	if args.CSVOutput != "" {
		w.exportNonEmpty(ctx, m.TargetCSV, args.CSVOutput, matches, w.SaveCSV)
	}

	if args.XLSXOutput != "" {
		w.exportNonEmpty(ctx, m.TargetXLSX, args.XLSXOutput, matches, w.SaveXLSX)
	}

	if !args.WritesFiles() {
		if err := w.DisplayMatches(ctx, matches); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	return nil
}

type saveFunc func(path m.Path, matches []m.Match) error

// exportNonEmpty skips writing when there is nothing to export.
func (w *workflow) exportNonEmpty(ctx context.Context, target m.Target, path m.Path, matches []m.Match, save saveFunc) {
	if len(matches) == 0 {
		w.DisplayNotice(ctx, fmt.Sprintf("No issues to export to %s.", target.Label()))
		return
	}

	w.export(ctx, target, path, matches, save)
}

func (w *workflow) export(ctx context.Context, target m.Target, path m.Path, matches []m.Match, save saveFunc) {
	if err := save(path, matches); err != nil {
		slog.Error("failed to write report", "target", target, "path", path, "error", err)
		w.DisplayError(ctx, &OutputWriteError{Target: target, Path: path, Err: err})

		return
	}

	slog.Info("report written", "target", target, "path", path, "matches", len(matches))
	w.DisplayNotice(ctx, fmt.Sprintf("Report successfully exported to %s", path))
}
