// SPDX-License-Identifier: EPL-2.0

// Package dataset builds a circular, read-only index over the audio files
// listed in an annotation and navigates it forwards and backwards.
package dataset

import (
	"fmt"
	"math"
	"path/filepath"
)

// UnknownDuration is shown when a file's duration is absent or unusable.
const UnknownDuration = "---"

// Entry describes one playable file.
type Entry struct {
	Path     string
	Name     string
	Duration string
}

// NewEntry builds an entry for path with the given duration in seconds.
func NewEntry(path string, seconds float64) Entry {
	return Entry{
		Path:     path,
		Name:     filepath.Base(path),
		Duration: FormatDuration(seconds),
	}
}

// FormatDuration renders seconds as MM:SS, rounding half to even. Negative
// and non finite values yield UnknownDuration. Minutes are not capped.
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return UnknownDuration
	}

	total := int64(math.RoundToEven(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
