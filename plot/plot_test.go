// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audset/internal/audiotest"
)

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestDurationCurve(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "curve.png")
	require.NoError(t, DurationCurve([]float64{-1, 1.5, 3, 10.25, -1}, path))

	w, h := decodePNG(t, path)
	assert.Equal(t, 1800, w)
	assert.Equal(t, 900, h)
}

func TestDurationCurveNoData(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curve.png")
	for _, in := range [][]float64{nil, {-1, -1}} {
		assert.ErrorIs(t, DurationCurve(in, path), ErrNoData)
	}
	assert.NoFileExists(t, path)
}

func TestPlotSignal(t *testing.T) {
	t.Parallel()

	src := audiotest.NewChannelSource(8000, 8000, 0.5, -0.1)
	sig, err := PlotSignal(src, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1000, sig.SampleRate)
	assert.InDelta(t, 1.0, sig.Seconds(), 0.01)
	require.NotEmpty(t, sig.Samples)
	assert.InDelta(t, 0.2, sig.Samples[len(sig.Samples)/2], 1e-4)
}

func TestPlotSignalKeepsLowRate(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(500, 1, 250, 0.25)
	sig, err := PlotSignal(src, 1000)
	require.NoError(t, err)
	assert.Equal(t, 500, sig.SampleRate)
	assert.Len(t, sig.Samples, 250)
	assert.InDelta(t, 0.25, sig.Peak(), 1e-6)
}

func TestComparisonSave(t *testing.T) {
	t.Parallel()

	orig := Signal{Samples: []float32{0, 0.8, -0.9, 0.4}, SampleRate: 4}
	proc := Signal{Samples: []float32{0, 0.4, -0.45, 0.2}, SampleRate: 4}

	path := filepath.Join(t.TempDir(), "processed_a.png")
	c := Comparison{Name: "a.wav", Factor: 0.5, Original: orig, Processed: proc}
	require.NoError(t, c.Save(path))

	w, h := decodePNG(t, path)
	assert.Equal(t, 1400, w)
	assert.Equal(t, 600, h)
}

func TestComparisonErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.png")

	err := Comparison{Original: Signal{SampleRate: 0}, Processed: Signal{SampleRate: 1}}.Save(path)
	assert.ErrorIs(t, err, ErrNoSampleRate)

	err = Comparison{Original: Signal{SampleRate: 1}, Processed: Signal{SampleRate: 1}}.Save(path)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSignalPeak(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.9, Signal{Samples: []float32{0.1, -0.9, 0.5}}.Peak(), 1e-6)
	assert.Zero(t, Signal{}.Seconds())
}
