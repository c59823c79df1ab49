package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	m "jsguard.dev/pkg/jsguard/internal/model"
	"jsguard.dev/pkg/jsguard/internal/report"
)

const reportFilePerm = 0o644

// ReportStore persists rendered reports to files.
type ReportStore interface {
	SaveText(path m.Path, matches []m.Match) error
	SaveCSV(path m.Path, matches []m.Match) error
	SaveXLSX(path m.Path, matches []m.Match) error
}

type encodeFunc func(w io.Writer, matches []m.Match) error

// LocalReportStore writes reports to the local filesystem, truncating existing files.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveText writes the fixed-width text report to path.
func (s *LocalReportStore) SaveText(path m.Path, matches []m.Match) error {
	return s.save(path, matches, report.WriteText)
}

// SaveCSV writes the CSV report to path.
func (s *LocalReportStore) SaveCSV(path m.Path, matches []m.Match) error {
	return s.save(path, matches, report.WriteCSV)
}

// SaveXLSX writes the workbook report to path.
func (s *LocalReportStore) SaveXLSX(path m.Path, matches []m.Match) error {
	return s.save(path, matches, report.WriteXLSX)
}

func (s *LocalReportStore) save(path m.Path, matches []m.Match, encode encodeFunc) (err error) {
	// #nosec G304 - destination is chosen by the operator
	file, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, reportFilePerm)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := encode(file, matches); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	slog.Debug("report saved", "path", path, "matches", len(matches))

	return nil
}
