// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audset/utils"
)

// maxEmptyReads bounds how often a source may answer (0, nil) in a row
// before the resampler treats it as exhausted.
const maxEmptyReads = 8

// maxBlockFrames caps how many source frames are pulled per read.
const maxBlockFrames = 4096

// Resampler streams from src to a target sample rate using cubic
// interpolation. Works on interleaved samples and preserves the channel
// count. When downsampling a one-pole low-pass filter is applied to the
// incoming frames.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// window around the read position: t-1, t0, t+1, t+2
	frames [4][]float32
	valid  [4]bool
	pos    float64 // fractional offset between frames[1] and frames[2]

	// block of source frames; [bufPos, bufLen) is not consumed yet
	srcBuf []float32
	bufPos int
	bufLen int
	srcErr error // reported once srcBuf is drained

	primed bool
	eof    bool

	lowpass bool
	alpha   float32
	state   []float32
	seeded  bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)
	if dstRate <= 0 {
		dstRate = src.SampleRate()
	}
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    ratio,
		channels: channels,
		srcBuf:   make([]float32, blockFrames(src, channels)*channels),
		lowpass:  ratio > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func blockFrames(src Source, channels int) int {
	return min(max(src.BufSize()/channels, 1), maxBlockFrames)
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

// Frames estimates the output length from the source length.
func (r *Resampler) Frames() int64 {
	l, ok := r.src.(Lengther)
	if !ok || l.Frames() <= 0 {
		return -1
	}

	return int64(math.Ceil(float64(l.Frames()) / r.ratio))
}

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame returns the next source frame, refilling the block buffer
// when it runs dry.
func (r *Resampler) nextFrame() ([]float32, error) {
	empty := 0
	for r.bufPos >= r.bufLen {
		if r.srcErr != nil {
			return nil, r.srcErr
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		n -= n % r.channels
		r.bufPos, r.bufLen = 0, n

		switch {
		case err != nil:
			r.srcErr = err
		case n == 0:
			empty++
			if empty >= maxEmptyReads {
				r.srcErr = io.EOF
			}
		}
	}

	frame := r.srcBuf[r.bufPos : r.bufPos+r.channels]
	r.bufPos += r.channels
	return frame, nil
}

// load puts the next source frame into slot.
func (r *Resampler) load(slot int) error {
	src, err := r.nextFrame()
	if err != nil {
		r.valid[slot] = false
		r.eof = true
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w", err)
	}

	r.valid[slot] = true
	frame := r.frames[slot]
	copy(frame, src)

	if r.lowpass {
		if !r.seeded {
			copy(r.state, frame)
			r.seeded = true
		}
		for c := range frame {
			frame[c] = r.alpha*frame[c] + (1-r.alpha)*r.state[c]
			r.state[c] = frame[c]
		}
	}

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	for slot := 1; slot < len(r.frames) && !r.eof; slot++ {
		if err := r.load(slot); err != nil {
			return err
		}
	}

	if !r.valid[1] {
		return io.EOF
	}
	return nil
}

// advance slides the window one source frame forward.
func (r *Resampler) advance() error {
	for i := 0; i < len(r.frames)-1; i++ {
		copy(r.frames[i], r.frames[i+1])
		r.valid[i] = r.valid[i+1]
	}

	if r.eof {
		r.valid[3] = false
		return nil
	}

	return r.load(3)
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	want := len(dst) / r.channels
	written := 0

	for written < want {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		// The last frame is still emitted when it is hit exactly.
		if !r.valid[1] || (!r.valid[2] && r.pos > 0) {
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			y1 := r.frames[1][c]
			y0, y2, y3 := y1, y1, y1
			if r.valid[0] {
				y0 = r.frames[0][c]
			}
			if r.valid[2] {
				y2 = r.frames[2][c]
				y3 = y2
			}
			if r.valid[3] {
				y3 = r.frames[3][c]
			}
			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
