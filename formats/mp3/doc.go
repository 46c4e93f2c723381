// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files through github.com/hajimehoshi/go-mp3.
//
// The decoder output is always 16-bit stereo, exposed as float32 samples
// in [-1, 1]:
//
//	f, _ := os.Open("track.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//
// When the input is seekable (an *os.File), the source also reports its
// length through audio.Lengther, so durations are available without
// decoding the whole stream.
package mp3
