// Package csvio reads submission exports and writes schedule tables.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one raw data row keyed by header name. Line is the 1-based line in
// the input file (the header is line 1).
type Row struct {
	Line   int
	Fields map[string]string
}

// ReadRows loads every data row of the export. Quoted cells are handled by
// the csv reader, so a bounty cell like "A, B" arrives as one field. Ragged
// rows are kept; missing trailing cells simply stay absent from the map and
// are caught by the normalizer. Rows with broken quoting are skipped and
// counted in the returned skip count. An unreadable file, a mid-file read
// failure and an empty or header-only input are fatal.
func ReadRows(_ context.Context, path string) ([]Row, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, ErrEmptyInput
		}
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []Row
	skipped := 0
	line := 1
	for {
		rec, err := r.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			// Record-scoped quoting problem: the reader resumes on the
			// next line, so only this row is lost.
			skipped++
			continue
		}
		if err != nil {
			// Anything else is an I/O failure that repeats on every
			// subsequent Read.
			return nil, 0, fmt.Errorf("read row %d: %w", line, err)
		}
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if col == "" || i >= len(rec) {
				continue
			}
			fields[col] = rec[i]
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}

	if len(rows) == 0 {
		return nil, skipped, ErrNoRows
	}
	return rows, skipped, nil
}
