package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// ErrBadHeader is returned by ReadCSV when the first record is not the report header.
var ErrBadHeader = errors.New("unexpected CSV header")

// WriteCSV writes a header row followed by one record per match. Paths are not truncated.
func WriteCSV(w io.Writer, matches []m.Match) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, match := range matches {
		record := []string{string(match.File), strconv.Itoa(match.Line), match.Issue, match.Code}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record for %s:%d: %w", match.File, match.Line, err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// ReadCSV parses a report produced by WriteCSV back into matches.
func ReadCSV(r io.Reader) ([]m.Match, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Headers)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	for i, name := range Headers {
		if header[i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], name)
		}
	}

	var matches []m.Match

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		line, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("parse line number %q: %w", record[1], err)
		}

		matches = append(matches, m.Match{
			File:  m.Path(record[0]),
			Line:  line,
			Issue: record[2],
			Code:  record[3],
		})
	}

	return matches, nil
}
