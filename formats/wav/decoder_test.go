// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func wavBytes(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, sampleRate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		samples    int
	}{
		{name: "mono 8k", sampleRate: 8000, channels: 1, samples: 800},
		{name: "stereo 44.1k", sampleRate: 44100, channels: 2, samples: 4410},
		{name: "stereo 48k", sampleRate: 48000, channels: 2, samples: 96},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := wavBytes(t, tt.sampleRate, tt.channels, make([]int16, tt.samples))
			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}

			frames := src.(interface{ Frames() int64 }).Frames()
			if want := int64(tt.samples / tt.channels); frames != want {
				t.Errorf("Frames() = %d, want %d", frames, want)
			}
		})
	}
}

func TestDecoder_Samples(t *testing.T) {
	t.Parallel()

	input := []int16{0, 16384, -16384, math.MaxInt16, math.MinInt16, 8192}
	src, err := Decoder{}.Decode(bytes.NewReader(wavBytes(t, 8000, 2, input)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 16)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(input) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(input))
	}

	for i, v := range input {
		want := float32(v) / 32768
		if math.Abs(float64(buf[i]-want)) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want)
		}
	}

	if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("after end: ReadSamples() = %d, %v; want 0, EOF", n, err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := wavBytes(t, 16000, 1, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(struct{ io.Reader }{bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
}

func TestDecoder_NotWAV(t *testing.T) {
	t.Parallel()

	inputs := map[string][]byte{
		"text":      []byte("this is certainly not RIFF data, just some text padding it out"),
		"empty":     {},
		"truncated": []byte("RIFF\x24\x00\x00\x00WAVE"),
	}

	for name, data := range inputs {
		data := data
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

type fakePCM struct {
	data []int
	err  error
}

func (f *fakePCM) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	n := copy(buf.Data, f.data)
	f.data = f.data[n:]
	if n == 0 {
		return 0, f.err
	}
	return n, nil
}

func TestSource_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		raw      int
		want     float32
	}{
		{name: "8-bit unsigned midpoint", bitDepth: 8, raw: 128, want: 0},
		{name: "8-bit unsigned max", bitDepth: 8, raw: 192, want: 0.5},
		{name: "24-bit", bitDepth: 24, raw: -4194304, want: -0.5},
		{name: "32-bit", bitDepth: 32, raw: 1073741824, want: 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{
				dec:        &fakePCM{data: []int{tt.raw}},
				sampleRate: 8000,
				channels:   1,
				bitDepth:   tt.bitDepth,
			}

			buf := make([]float32, 4)
			n, err := src.ReadSamples(buf)
			if n != 1 || err != io.EOF {
				t.Fatalf("ReadSamples() = %d, %v; want 1, EOF", n, err)
			}
			if buf[0] != tt.want {
				t.Errorf("sample = %v, want %v", buf[0], tt.want)
			}
		})
	}
}

func TestSource_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad chunk")
	src := &source{dec: &fakePCM{err: boom}, sampleRate: 8000, channels: 1, bitDepth: 16}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}
