// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files through github.com/go-audio/aiff.
//
//	f, _ := os.Open("clip.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//
// 8, 16, 24 and 32-bit integer PCM are accepted and normalized to float32
// in [-1, 1]. Inputs that cannot seek are read into memory first.
package aiff
