// SPDX-License-Identifier: EPL-2.0

package plot

import "errors"

var (
	ErrNoData       = errors.New("nothing to plot")
	ErrNoSampleRate = errors.New("signal has no sample rate")
)
