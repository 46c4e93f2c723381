// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BufferSource serves interleaved samples held in memory.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	off        int
}

// NewBufferSource wraps samples, which must be interleaved by channels.
func NewBufferSource(samples []float32, sampleRate, channels int) *BufferSource {
	return &BufferSource{
		samples:    samples,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
	}
}

func (b *BufferSource) SampleRate() int    { return b.sampleRate }
func (b *BufferSource) Channels() int      { return b.channels }
func (b *BufferSource) BufSize() int       { return len(b.samples) }
func (b *BufferSource) Close() error       { return nil }
func (b *BufferSource) Frames() int64      { return int64(len(b.samples) / b.channels) }
func (b *BufferSource) Samples() []float32 { return b.samples }

// Rewind moves the read position back to the first frame.
func (b *BufferSource) Rewind() { b.off = 0 }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%b.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if b.off >= len(b.samples) {
		return 0, io.EOF
	}

	n := copy(dst, b.samples[b.off:])
	b.off += n

	if b.off >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}

// ReadAll drains src and returns every interleaved sample it produced.
// bufSize is rounded down to a whole number of frames.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	bufSize = max(bufSize-bufSize%channels, channels)
	buf := make([]float32, bufSize)

	var out []float32
	if l, ok := src.(Lengther); ok && l.Frames() > 0 {
		out = make([]float32, 0, l.Frames()*int64(channels))
	}

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w", err)
		}
		if n == 0 {
			// a source that stops producing without EOF is treated as finished
			return out, nil
		}
	}
}
