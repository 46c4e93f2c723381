// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/ik5/audset/internal/audiotest"
)

func TestBufferSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	src := NewBufferSource(samples, 8000, 2)

	if src.Frames() != 3 {
		t.Fatalf("Frames() = %d, want 3", src.Frames())
	}

	if got := drain(t, src, 4); !slices.Equal(got, samples) {
		t.Errorf("drained %v, want %v", got, samples)
	}

	if n, err := src.ReadSamples(make([]float32, 2)); n != 0 || err != io.EOF {
		t.Errorf("after end: ReadSamples() = %d, %v; want 0, EOF", n, err)
	}

	src.Rewind()
	if got := drain(t, src, 2); !slices.Equal(got, samples) {
		t.Errorf("after Rewind drained %v, want %v", got, samples)
	}
}

func TestBufferSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := NewBufferSource(make([]float32, 6), 8000, 2)
	if _, err := src.ReadSamples(make([]float32, 5)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChannelSource(8000, 1000, 0.1, 0.2, 0.3)
	got, err := ReadAll(src, 100)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 3000 {
		t.Fatalf("ReadAll() returned %d samples, want 3000", len(got))
	}
	if got[2999] != 0.3 {
		t.Errorf("last sample = %v, want 0.3", got[2999])
	}
}

func TestReadAll_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("truncated")
	src := audiotest.NewSilentSource(8000, 1, 100)
	src.FailAfter = 40
	src.Err = boom

	got, err := ReadAll(src, 16)
	if !errors.Is(err, boom) {
		t.Fatalf("ReadAll() error = %v, want %v", err, boom)
	}
	if len(got) != 40 {
		t.Errorf("ReadAll() kept %d samples, want 40", len(got))
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rate   int
		chans  int
		frames int
		known  bool
		want   time.Duration
	}{
		{name: "counted mono", rate: 8000, chans: 1, frames: 12000, want: 1500 * time.Millisecond},
		{name: "counted stereo", rate: 44100, chans: 2, frames: 44100, want: time.Second},
		{name: "known length", rate: 16000, chans: 2, frames: 8000, known: true, want: 500 * time.Millisecond},
		{name: "empty", rate: 8000, chans: 1, frames: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSilentSource(tt.rate, tt.chans, tt.frames)
			src.Known = tt.known

			got, err := Duration(src)
			if err != nil {
				t.Fatalf("Duration() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuration_KnownLengthDoesNotRead(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 8000)
	src.Known = true
	src.FailAfter = 1
	src.Err = errors.New("should not be read")

	if _, err := Duration(src); err != nil {
		t.Errorf("Duration() error = %v, want nil", err)
	}
}

func TestDuration_InvalidSource(t *testing.T) {
	t.Parallel()

	if _, err := Duration(audiotest.NewSilentSource(0, 1, 10)); !errors.Is(err, ErrNoSampleRate) {
		t.Errorf("Duration() error = %v, want ErrNoSampleRate", err)
	}
	if _, err := Duration(audiotest.NewSilentSource(8000, 0, 10)); !errors.Is(err, ErrNoChannels) {
		t.Errorf("Duration() error = %v, want ErrNoChannels", err)
	}
}
