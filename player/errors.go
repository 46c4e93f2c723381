// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	ErrFileMissing = errors.New("file not found")
	ErrNotLoaded   = errors.New("nothing loaded")
)
