// SPDX-License-Identifier: EPL-2.0

package annotation

import "errors"

var (
	ErrNoHeader        = errors.New("annotation has no header row")
	ErrEncoding        = errors.New("annotation is not valid UTF-8")
	ErrTooManyFields   = errors.New("row has more fields than the header")
	ErrNoColumn        = errors.New("column not found")
	ErrDuplicateColumn = errors.New("column already exists")
)
