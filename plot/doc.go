// SPDX-License-Identifier: EPL-2.0

// Package plot renders the PNG charts produced while analysing and
// processing a dataset: the sorted duration curve of an annotation and the
// before/after waveform comparison of a processed file.
package plot
