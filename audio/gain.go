// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audset/utils"
)

// ValidateReduction reports whether factor can be used to reduce amplitude.
// Only 0 < factor <= 1 is accepted.
func ValidateReduction(factor float64) error {
	if !(factor > 0 && factor <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidFactor, factor)
	}
	return nil
}

// Gain scales every sample of src by a constant factor and clips the result
// into [-1, 1].
type Gain struct {
	src    Source
	factor float32
}

// NewGain returns a Gain stage reducing src by factor.
func NewGain(src Source, factor float64) (*Gain, error) {
	if err := ValidateReduction(factor); err != nil {
		return nil, err
	}

	return &Gain{src: src, factor: float32(factor)}, nil
}

func (g *Gain) SampleRate() int { return g.src.SampleRate() }
func (g *Gain) Channels() int   { return g.src.Channels() }
func (g *Gain) BufSize() int    { return g.src.BufSize() }
func (g *Gain) Factor() float64 { return float64(g.factor) }

func (g *Gain) Frames() int64 {
	if l, ok := g.src.(Lengther); ok {
		return l.Frames()
	}
	return -1
}

func (g *Gain) Close() error {
	if err := g.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.src.ReadSamples(dst)
	for i, v := range dst[:n] {
		dst[i] = utils.Clamp(v * g.factor)
	}

	return n, err
}
