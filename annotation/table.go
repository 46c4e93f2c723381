// SPDX-License-Identifier: EPL-2.0

// Package annotation reads, transforms and writes the CSV annotation that
// lists the files of an audio dataset.
package annotation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Well known column names.
const (
	PathColumn         = "absolute_path"
	RelativePathColumn = "relative_path"
	DurationColumn     = "duration_sec"
)

// UnknownDuration marks a duration that could not be determined.
const UnknownDuration = -1.0

// Row maps a column name to the raw cell text.
type Row map[string]string

// Table is an annotation held in memory. Header order and row order are
// those of the source file.
type Table struct {
	Header []string
	Rows   []Row
}

// Read parses the CSV annotation at path.
func Read(path string) (*Table, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening annotation: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a UTF-8 CSV document with a header row. A leading byte order
// mark is dropped and any invalid UTF-8 fails with ErrEncoding; cells are
// never rewritten. Rows shorter than the header are padded with empty
// cells; longer rows are rejected.
func Parse(r io.Reader) (*Table, error) {
	dec := transform.Chain(encoding.UTF8Validator, unicode.BOMOverride(transform.Nop))
	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, readError("reading header", err)
	}
	if len(header) == 0 || (len(header) == 1 && strings.TrimSpace(header[0]) == "") {
		return nil, ErrNoHeader
	}

	t := &Table{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError("reading rows", err)
		}

		if len(record) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d", ErrTooManyFields, line)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

func readError(what string, err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return fmt.Errorf("%s: %w: %w", what, ErrEncoding, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Has reports whether the header contains column.
func (t *Table) Has(column string) bool {
	return slices.Contains(t.Header, column)
}

// PathColumn returns the column holding file paths: absolute_path when it
// exists, otherwise the first column.
func (t *Table) PathColumn() string {
	if t.Has(PathColumn) || len(t.Header) == 0 {
		return PathColumn
	}
	return t.Header[0]
}

// Values returns the cells of column in row order.
func (t *Table) Values(column string) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[column]
	}
	return out
}

// Floats returns column parsed as numbers. Cells that do not parse hold
// UnknownDuration.
func (t *Table) Floats(column string) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = ParseFloat(row[column])
	}
	return out
}

// ParseFloat parses a numeric cell, returning UnknownDuration for blanks
// and garbage.
func ParseFloat(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return UnknownDuration
	}
	return v
}

// Rename renames header columns according to names (old -> new). Columns
// missing from the table are ignored. Renames apply simultaneously, so
// chains and swaps work; a collision in the resulting header fails with
// ErrDuplicateColumn and leaves the table unchanged.
func (t *Table) Rename(names map[string]string) error {
	header := make([]string, len(t.Header))
	seen := make(map[string]bool, len(t.Header))
	for i, col := range t.Header {
		header[i] = col
		if to, ok := names[col]; ok {
			header[i] = to
		}
		if seen[header[i]] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, header[i])
		}
		seen[header[i]] = true
	}

	vals := make([]string, len(header))
	for _, row := range t.Rows {
		for i, col := range t.Header {
			vals[i] = row[col]
			if header[i] != col {
				delete(row, col)
			}
		}
		for i, col := range header {
			if col != t.Header[i] {
				row[col] = vals[i]
			}
		}
	}
	t.Header = header

	return nil
}

// DefaultRenames maps the headings produced by the dataset collection
// tooling onto the canonical column names.
var DefaultRenames = map[string]string{
	"Absolute path":      PathColumn,
	"Relative path":      RelativePathColumn,
	"absolute path":      PathColumn,
	"relative path":      RelativePathColumn,
	"Абсолютный путь":    PathColumn,
	"Относительный путь": RelativePathColumn,
}

// SetColumn stores values as column, appending it to the header when new.
func (t *Table) SetColumn(column string, values []string) {
	if !t.Has(column) {
		t.Header = append(t.Header, column)
	}
	for i, row := range t.Rows {
		if i < len(values) {
			row[column] = values[i]
		} else {
			row[column] = ""
		}
	}
}

// SortBy returns a copy of t with rows stably sorted by the numeric value
// of column.
func (t *Table) SortBy(column string, ascending bool) (*Table, error) {
	if !t.Has(column) {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, column)
	}

	out := t.clone()
	slices.SortStableFunc(out.Rows, func(a, b Row) int {
		x, y := ParseFloat(a[column]), ParseFloat(b[column])
		if !ascending {
			x, y = y, x
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})

	return out, nil
}

// FilterMin returns a copy of t holding only rows whose column value is at
// least minimum.
func (t *Table) FilterMin(column string, minimum float64) (*Table, error) {
	if !t.Has(column) {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, column)
	}

	out := &Table{Header: slices.Clone(t.Header)}
	for _, row := range t.Rows {
		if ParseFloat(row[column]) >= minimum {
			out.Rows = append(out.Rows, row)
		}
	}

	return out, nil
}

// clone copies the header and row slice; rows themselves are shared.
func (t *Table) clone() *Table {
	return &Table{
		Header: slices.Clone(t.Header),
		Rows:   slices.Clone(t.Rows),
	}
}

// WriteTo writes t as CSV, header first.
func (t *Table) WriteTo(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("%w", err)
	}

	record := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for i, col := range t.Header {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Write saves t as CSV at path, replacing any existing file.
func (t *Table) Write(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := t.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
