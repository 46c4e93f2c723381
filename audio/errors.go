// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidFactor  = errors.New("reduction factor must be in range (0.0, 1.0]")
	ErrNoChannels     = errors.New("source reports no channels")
	ErrNoSampleRate   = errors.New("source reports no sample rate")
)
