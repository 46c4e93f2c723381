// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ik5/audset/formats/wav"
)

func writeWAV(t *testing.T, path string, sampleRate, channels, frames int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	samples := make([]int16, frames*channels)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	if err := wav.WriteWAV16(f, sampleRate, channels, samples); err != nil {
		t.Fatal(err)
	}
}

func TestNewRegistry_Formats(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, ext := range []string{"wav", "WAV", "mp3", "ogg", "aiff", "aif"} {
		if _, ok := reg.Get(ext); !ok {
			t.Errorf("no decoder registered for %q", ext)
		}
	}
	if _, ok := reg.Get("flac"); ok {
		t.Error("flac should not be registered")
	}
}

func TestFileDuration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "clip.wav")
	writeWAV(t, path, 8000, 2, 20000)

	got, err := FileDuration(nil, path)
	if err != nil {
		t.Fatalf("FileDuration() error = %v", err)
	}
	if got != 2500*time.Millisecond {
		t.Errorf("FileDuration() = %v, want 2.5s", got)
	}
}

func TestOpenFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := OpenFile(nil, filepath.Join(dir, "track.flac")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("flac: error = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := OpenFile(nil, filepath.Join(dir, "missing.wav")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing: error = %v, want fs.ErrNotExist", err)
	}

	bogus := filepath.Join(dir, "bogus.wav")
	if err := os.WriteFile(bogus, []byte("not audio at all, just bytes in a file"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(nil, bogus); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("bogus: error = %v, want wav.ErrNotWavFile", err)
	}
}

func TestOpenFile_Close(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.wav")
	writeWAV(t, path, 16000, 1, 160)

	src, err := OpenFile(NewRegistry(), path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if src.SampleRate() != 16000 || src.Channels() != 1 {
		t.Errorf("got %d ch @ %d Hz, want 1 ch @ 16000 Hz", src.Channels(), src.SampleRate())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
