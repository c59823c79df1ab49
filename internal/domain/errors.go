package domain

import (
	"errors"
	"fmt"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("not a valid directory")

// FileReadError reports a file that could not be opened or read. The file
// contributes no matches; the scan carries on.
type FileReadError struct {
	Path m.Path
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// OutputWriteError reports a report destination that could not be written.
type OutputWriteError struct {
	Target m.Target
	Path   m.Path
	Err    error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("writing %s report to %s: %v", e.Target.Label(), e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
