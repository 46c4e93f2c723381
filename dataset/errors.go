// SPDX-License-Identifier: EPL-2.0

package dataset

import "errors"

var (
	// ErrNotFound is returned when the annotation itself does not exist.
	ErrNotFound = errors.New("annotation not found")
	// ErrInvalid is returned for an annotation without columns or without a
	// single playable row.
	ErrInvalid = errors.New("invalid annotation")
	// ErrIO wraps any other failure while reading the annotation.
	ErrIO = errors.New("reading annotation failed")
)
