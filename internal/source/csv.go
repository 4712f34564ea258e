// Package source reads employee rows from delimited text files.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"empclean/internal/models"
)

// Source errors.
var (
	ErrSourceNotFound = errors.New("input file does not exist")
	ErrMissingColumn  = errors.New("required column missing from header")
)

const utf8BOM = "\ufeff"

// Table is the parsed content of one input file.
type Table struct {
	Headers []string
	Rows    []models.RawRecord
}

// Columns returns the required fields in the order they appear in the header.
func (t *Table) Columns() []string {
	required := make(map[string]bool, len(models.RequiredFields))
	for _, f := range models.RequiredFields {
		required[f] = true
	}

	cols := make([]string, 0, len(models.RequiredFields))

	for _, h := range t.Headers {
		if required[h] {
			cols = append(cols, h)
			required[h] = false
		}
	}

	return cols
}

// Reader parses delimited files with a header row.
type Reader struct {
	Delimiter rune
}

// NewReader creates a reader for the given column delimiter.
func NewReader(delimiter rune) *Reader {
	if delimiter == 0 {
		delimiter = ','
	}

	return &Reader{Delimiter: delimiter}
}

// ReadFile opens path and parses it. A missing file yields ErrSourceNotFound.
func (r *Reader) ReadFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}

		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return r.Read(ctx, f)
}

// Read parses rows from in. An empty input yields an empty table.
func (r *Reader) Read(ctx context.Context, in io.Reader) (*Table, error) {
	reader := csv.NewReader(in)
	reader.Comma = r.Delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	headers := normalizeHeader(header)
	if err := checkHeader(headers); err != nil {
		return nil, err
	}

	table := &Table{Headers: headers}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		table.Rows = append(table.Rows, toRecord(line, headers, cells))
	}

	return table, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))

	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}

		out[i] = strings.TrimSpace(h)
	}

	return out
}

func checkHeader(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string

	for _, f := range models.RequiredFields {
		if !present[f] {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return nil
}

// toRecord maps cells onto header names. Cells beyond the header are
// dropped; missing trailing cells read as empty.
func toRecord(line int, headers, cells []string) models.RawRecord {
	values := make(map[string]string, len(headers))

	for i, h := range headers {
		if i < len(cells) {
			values[h] = cells[i]
		} else {
			values[h] = ""
		}
	}

	return models.RawRecord{
		Line:    line,
		Headers: headers,
		Values:  values,
	}
}
