// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Duration returns the playing time of src. Sources implementing Lengther
// are answered without reading; everything else is decoded to the end and
// its frames counted, so src is consumed.
func Duration(src Source) (time.Duration, error) {
	rate := src.SampleRate()
	if rate <= 0 {
		return 0, ErrNoSampleRate
	}

	channels := src.Channels()
	if channels < 1 {
		return 0, ErrNoChannels
	}

	if l, ok := src.(Lengther); ok && l.Frames() > 0 {
		return framesToDuration(l.Frames(), rate), nil
	}

	bufSize := max(src.BufSize(), 4096)
	buf := make([]float32, bufSize-bufSize%channels)

	var samples int64
	for {
		n, err := src.ReadSamples(buf)
		samples += int64(n)

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("counting frames: %w", err)
		}
	}

	return framesToDuration(samples/int64(channels), rate), nil
}

func framesToDuration(frames int64, rate int) time.Duration {
	return time.Duration(float64(frames) / float64(rate) * float64(time.Second))
}
