package domain

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"jsguard.dev/pkg/jsguard/internal/adapter"
	"jsguard.dev/pkg/jsguard/internal/controller"
	m "jsguard.dev/pkg/jsguard/internal/model"
)

// scriptExtensions are the file suffixes selected for scanning. Matching is case-sensitive.
var scriptExtensions = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".ts":  {},
	".tsx": {},
}

// Walker collects matches from every script file under a root.
type Walker interface {
	Walk(ctx context.Context, root m.Path, exclude []string) ([]m.Match, error)
}

type walker struct {
	adapter.SourceFSAdapter
	Scanner
	controller.UI
}

// NewWalker creates a Walker that delegates each selected file to scanner and
// reports unreadable files and directories through ui.
func NewWalker(fsAdapter adapter.SourceFSAdapter, scanner Scanner, ui controller.UI) Walker {
	return &walker{
		SourceFSAdapter: fsAdapter,
		Scanner:         scanner,
		UI:              ui,
	}
}

// Walk visits root top-down, pruning directories named in exclude wherever
// they occur. Per-file failures are reported and skipped; only context
// cancellation stops the walk.
func (w *walker) Walk(ctx context.Context, root m.Path, exclude []string) ([]m.Match, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	var matches []m.Match

	err := w.SourceFSAdapter.Walk(root, excluded, func(path m.Path, entry fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			w.reportReadError(ctx, path, err)

			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() || !isScriptFile(entry.Name()) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, statErr := w.FileInfo(path)
			if statErr == nil && info.IsDir() {
				return nil
			}
		}

		fileMatches, scanErr := w.ScanFile(ctx, path)
		if scanErr != nil {
			w.reportReadError(ctx, path, scanErr)
			return nil
		}

		slog.Debug("scanned file", "path", path, "matches", len(fileMatches))

		matches = append(matches, fileMatches...)

		return nil
	})
	if err != nil {
		return matches, err
	}

	return matches, nil
}

func (w *walker) reportReadError(ctx context.Context, path m.Path, err error) {
	slog.Warn("skipping unreadable path", "path", path, "error", err)
	w.DisplayError(ctx, &FileReadError{Path: path, Err: err})
}

// isScriptFile reports whether name carries one of the scanned suffixes.
// A leading dot does not start a suffix, so ".js" alone is not selected.
func isScriptFile(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return false
	}

	_, ok := scriptExtensions[name[i:]]

	return ok
}
