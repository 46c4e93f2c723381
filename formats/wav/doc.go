// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files.
//
// Decoding goes through github.com/go-audio/wav, so files with extra chunks
// (LIST, fact, ...) and 8, 16, 24 or 32-bit integer PCM are accepted:
//
//	f, _ := os.Open("clip.wav")
//	src, err := wav.Decoder{}.Decode(f)
//
// The returned source also implements audio.Lengther, so its duration is
// known without decoding the samples.
//
// Two writers exist. Encode streams any audio.Source into an
// io.WriteSeeker (typically an *os.File) as 16-bit PCM, preserving the
// channel layout:
//
//	out, _ := os.Create("processed_clip.wav")
//	err := wav.Encode(out, src)
//
// WriteWAV16 writes an in-memory []int16 to any io.Writer.
package wav
