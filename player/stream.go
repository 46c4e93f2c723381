// SPDX-License-Identifier: EPL-2.0

package player

import (
	"io"

	"github.com/gopxl/beep"

	"github.com/ik5/audset/audio"
)

// streamer feeds an audio.Source to beep. Mono is copied to both sides;
// sources with more than two channels play their first two.
type streamer struct {
	src      audio.Source
	channels int
	buf      []float32
	err      error
	done     bool
}

func newStreamer(src audio.Source) *streamer {
	return &streamer{src: src, channels: max(src.Channels(), 1)}
}

func (s *streamer) Stream(samples [][2]float64) (int, bool) {
	if s.done {
		return 0, false
	}

	want := len(samples) * s.channels
	if cap(s.buf) < want {
		s.buf = make([]float32, want)
	}
	buf := s.buf[:want]

	filled := 0
	empty := 0
	for filled < want {
		n, err := s.src.ReadSamples(buf[filled:])
		filled += n

		if err == io.EOF {
			s.done = true
			break
		}
		if err != nil {
			s.err = err
			s.done = true
			break
		}
		if n == 0 {
			empty++
			if empty > 8 {
				s.done = true
				break
			}
		}
	}

	frames := filled / s.channels
	for i := range frames {
		frame := buf[i*s.channels : (i+1)*s.channels]
		l := float64(frame[0])
		r := l
		if s.channels > 1 {
			r = float64(frame[1])
		}
		samples[i] = [2]float64{l, r}
	}

	return frames, frames > 0
}

func (s *streamer) Err() error { return s.err }

var _ beep.Streamer = (*streamer)(nil)
