// SPDX-License-Identifier: EPL-2.0

package audset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/formats/aiff"
	"github.com/ik5/audset/formats/mp3"
	"github.com/ik5/audset/formats/vorbis"
	"github.com/ik5/audset/formats/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// NewRegistry returns a registry with every bundled decoder registered
// under its usual file extensions.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// fileSource ties a decoded stream to the file it reads from.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Frames() int64 {
	if l, ok := s.Source.(audio.Lengther); ok {
		return l.Frames()
	}
	return -1
}

func (s *fileSource) Close() error {
	err := errors.Join(s.Source.Close(), s.f.Close())
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// OpenFile decodes path with the decoder registered for its extension.
// Closing the returned source also closes the file.
func OpenFile(reg *audio.Registry, path string) (audio.Source, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// FileDuration opens path and returns its playing time.
func FileDuration(reg *audio.Registry, path string) (time.Duration, error) {
	src, err := OpenFile(reg, path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	return audio.Duration(src)
}
