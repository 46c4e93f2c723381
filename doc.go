// SPDX-License-Identifier: EPL-2.0

// Package audset is a toolkit for audio datasets described by a CSV
// annotation.
//
// The root package ties the format decoders together:
//
//	src, err := audset.OpenFile(nil, "/data/clip.mp3")
//	if err != nil {
//	    // ...
//	}
//	defer src.Close()
//
//	d, err := audset.FileDuration(nil, "/data/clip.ogg")
//
// A nil registry means the default one from NewRegistry, which knows WAV,
// MP3, Ogg Vorbis and AIFF by file extension.
//
// # Packages
//
//   - dataset: circular browsing index loaded from an annotation
//   - annotation: CSV tables, duration columns, sorting and filtering
//   - audio: sources, gain, mixing, resampling, duration
//   - formats/...: decoders and the WAV writer
//   - plot: duration curves and before/after waveform plots
//   - process: batch amplitude reduction
//   - player, browser: terminal playback of a dataset
//
// The audset command in cmd/audset wires these into the analyze, process
// and browse subcommands.
package audset
