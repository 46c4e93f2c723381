// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{name: "inside range", input: 0.3, want: 0.3},
		{name: "upper bound", input: 1.0, want: 1.0},
		{name: "lower bound", input: -1.0, want: -1.0},
		{name: "over max", input: 1.7, want: 1.0},
		{name: "under min", input: -3.2, want: -1.0},
		{name: "zero", input: 0, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clamp(tt.input); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768},
	}

	for _, tt := range tests {
		if got := FullScale(tt.bitDepth); got != tt.want {
			t.Errorf("FullScale(%d) = %v, want %v", tt.bitDepth, got, tt.want)
		}
	}
}

func TestIntToFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     float32
	}{
		{name: "16-bit min", v: math.MinInt16, bitDepth: 16, want: -1},
		{name: "16-bit half", v: 16384, bitDepth: 16, want: 0.5},
		{name: "24-bit quarter", v: 2097152, bitDepth: 24, want: 0.25},
		{name: "8-bit zero", v: 0, bitDepth: 8, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IntToFloat32(tt.v, tt.bitDepth); got != tt.want {
				t.Errorf("IntToFloat32(%d, %d) = %v, want %v", tt.v, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16383},
		{name: "half negative", input: -0.5, want: -16383},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			// ±1 for rounding
			diff := math.Abs(float64(int32(got) - int32(tt.want)))
			if diff > 1 {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic at %v: %v < %v", f, curr, prev)
		}
		prev = curr
	}
}

func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
