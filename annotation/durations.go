// SPDX-License-Identifier: EPL-2.0

package annotation

import (
	"context"
	"math"
	"os"
	"strconv"
)

// DurationFunc returns the length of the audio file at path in seconds.
type DurationFunc func(ctx context.Context, path string) (float64, error)

// AddDurations computes the duration of every row's file and stores it in
// DurationColumn. Rows whose file is missing or cannot be measured get
// UnknownDuration. tick, when not nil, is called once per row.
//
// Only context cancellation is reported as an error; the column is left
// untouched in that case.
func (t *Table) AddDurations(ctx context.Context, fn DurationFunc, tick func()) error {
	column := t.PathColumn()
	values := make([]string, len(t.Rows))

	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}

		values[i] = FormatSeconds(measure(ctx, fn, row[column]))
		if tick != nil {
			tick()
		}
	}

	t.SetColumn(DurationColumn, values)
	return nil
}

func measure(ctx context.Context, fn DurationFunc, path string) float64 {
	if path == "" {
		return UnknownDuration
	}
	if _, err := os.Stat(path); err != nil {
		return UnknownDuration
	}

	seconds, err := fn(ctx, path)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return UnknownDuration
	}
	return seconds
}

// FormatSeconds renders seconds rounded to the millisecond.
func FormatSeconds(seconds float64) string {
	if seconds != UnknownDuration {
		seconds = math.Round(seconds*1000) / 1000
	}
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
