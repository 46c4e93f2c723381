// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files through
// github.com/jfreymuth/oggvorbis.
//
//	f, _ := os.Open("clip.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//
// Samples are interleaved float32 in [-1, 1] with the channel count of the
// stream. Seekable input also reports its length via audio.Lengther.
package vorbis
