// Package domain contains the scanning workflow: pattern registry, file
// scanner and tree walker.
package domain

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"jsguard.dev/pkg/jsguard/internal/adapter"
	m "jsguard.dev/pkg/jsguard/internal/model"
)

const (
	initialLineBuffer = 64 * 1024
	// Minified bundles put whole programs on one line.
	maxLineSize = 64 * 1024 * 1024
)

// Scanner finds registry matches in a single file.
type Scanner interface {
	ScanFile(ctx context.Context, path m.Path) ([]m.Match, error)
}

type scanner struct {
	adapter.SourceFSAdapter
	registry Registry
}

// NewScanner creates a Scanner reading through fsAdapter and matching against registry.
func NewScanner(fsAdapter adapter.SourceFSAdapter, registry Registry) Scanner {
	return &scanner{
		SourceFSAdapter: fsAdapter,
		registry:        registry,
	}
}

// ScanFile reads path line by line. Malformed UTF-8 bytes are dropped rather
// than rejected. On any read failure it returns the error and no matches.
func (s *scanner) ScanFile(ctx context.Context, path m.Path) ([]m.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := s.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = rc.Close()
	}()

	lines := bufio.NewScanner(transform.NewReader(rc, lossyUTF8()))
	lines.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	lines.Split(scanUniversalLines)

	var matches []m.Match

	lineNumber := 0
	for lines.Scan() {
		lineNumber++

		text := lines.Text()
		for _, issue := range s.registry.MatchLine(text) {
			matches = append(matches, m.Match{
				File:  path,
				Issue: issue,
				Line:  lineNumber,
				Code:  strings.TrimSpace(text),
			})
		}
	}

	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNumber+1, err)
	}

	return matches, nil
}

// lossyUTF8 decodes UTF-8 and discards ill-formed sequences. The decoder
// marks them with U+FFFD, which is then removed.
func lossyUTF8() transform.Transformer {
	return transform.Chain(
		unicode.UTF8.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
}

// scanUniversalLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone "\r".
func scanUniversalLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}

			return i + 1, data[:i], nil
		}

		if atEOF {
			return i + 1, data[:i], nil
		}

		// Trailing "\r": wait to see whether "\n" follows.
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
