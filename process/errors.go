// SPDX-License-Identifier: EPL-2.0

package process

import "errors"

var (
	ErrNoOutputDir = errors.New("no output directory")
	ErrOutput      = errors.New("writing output failed")
	ErrSkipped     = errors.New("file skipped")
)
