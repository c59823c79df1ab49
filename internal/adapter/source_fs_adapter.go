// Package adapter contains the filesystem and report-file infrastructure used by the scanner.
package adapter

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// walker and scanner can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root top-down. Directories whose base name is in exclude
	// are pruned before they are entered; the root itself is never pruned.
	Walk(root m.Path, exclude map[string]struct{}, fn WalkFunc) error

	// Open opens a file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// AbsPath resolves path against the working directory.
	AbsPath(path m.Path) (m.Path, error)
}

// WalkFunc mirrors the callback shape used by filepath.WalkDir. Returning
// filepath.SkipDir from a directory entry skips that directory.
type WalkFunc func(path m.Path, entry fs.DirEntry, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over entries under root in lexical order, pruning excluded directory names.
func (a *LocalSourceFSAdapter) Walk(root m.Path, exclude map[string]struct{}, fn WalkFunc) error {
	rootStr := string(root)

	return filepath.WalkDir(rootStr, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(m.Path(path), entry, err)
		}

		if entry.IsDir() && path != rootStr {
			if _, skip := exclude[entry.Name()]; skip {
				return filepath.SkipDir
			}
		}

		return fn(m.Path(path), entry, nil)
	})
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - scanning user-selected files is the purpose of the tool
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
