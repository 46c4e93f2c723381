// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ik5/audset/annotation"
)

// ExistsFunc reports whether the file at path is present.
type ExistsFunc func(path string) bool

// Option customises Load.
type Option func(*loader)

type loader struct {
	exists ExistsFunc
}

// WithExists replaces the file existence check used to drop rows.
func WithExists(fn ExistsFunc) Option {
	return func(l *loader) {
		if fn != nil {
			l.exists = fn
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the annotation at path and returns an index of the rows whose
// file exists, in file order. The path column is absolute_path when present,
// otherwise the first column; durations come from duration_sec.
func Load(path string, opts ...Option) (*Index, error) {
	l := loader{exists: fileExists}
	for _, opt := range opts {
		opt(&l)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	tbl, err := annotation.Read(path)
	switch {
	case errors.Is(err, annotation.ErrNoHeader):
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return build(tbl, l.exists, path)
}

func build(tbl *annotation.Table, exists ExistsFunc, source string) (*Index, error) {
	pathCol := tbl.PathColumn()
	if !tbl.Has(pathCol) {
		return nil, fmt.Errorf("%w: %s: no path column", ErrInvalid, source)
	}
	hasDuration := tbl.Has(annotation.DurationColumn)

	entries := make([]Entry, 0, tbl.Len())
	for _, row := range tbl.Rows {
		p := row[pathCol]
		if p == "" || !exists(p) {
			continue
		}

		seconds := annotation.UnknownDuration
		if hasDuration {
			seconds = annotation.ParseFloat(row[annotation.DurationColumn])
		}
		entries = append(entries, NewEntry(p, seconds))
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s: no existing files", ErrInvalid, source)
	}

	return &Index{entries: entries}, nil
}
