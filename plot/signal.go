// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"image/color"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ik5/audset/audio"
)

// DefaultPlotRate caps the number of points drawn per second of audio.
const DefaultPlotRate = 2000

// Signal is a mono waveform ready to be plotted.
type Signal struct {
	Samples    []float32
	SampleRate int
}

// Seconds returns the length of the signal.
func (s Signal) Seconds() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Peak returns the largest absolute sample value.
func (s Signal) Peak() float64 {
	var peak float64
	for _, v := range s.Samples {
		peak = max(peak, math.Abs(float64(v)))
	}
	return peak
}

func (s Signal) xys() plotter.XYs {
	pts := make(plotter.XYs, len(s.Samples))
	step := 1 / float64(s.SampleRate)
	for i, v := range s.Samples {
		pts[i] = plotter.XY{X: float64(i) * step, Y: float64(v)}
	}
	return pts
}

// PlotSignal reads src to the end, mixing it down to mono and reducing it
// to at most rate samples per second. Peaks survive the reduction only
// approximately; use Signal.Peak on the full resolution data for titles.
func PlotSignal(src audio.Source, rate int) (Signal, error) {
	var s audio.Source = audio.NewMonoMixer(src)
	if rate > 0 && src.SampleRate() > rate {
		s = audio.NewResampler(s, rate)
	}

	samples, err := audio.ReadAll(s, s.BufSize())
	if err != nil {
		return Signal{}, fmt.Errorf("%w", err)
	}

	return Signal{Samples: samples, SampleRate: s.SampleRate()}, nil
}

// Comparison describes the two waveforms of a processed file.
type Comparison struct {
	Name      string
	Factor    float64
	Original  Signal
	Processed Signal

	// Peaks shown in the titles. When zero they are taken from the
	// signals themselves.
	OriginalPeak  float64
	ProcessedPeak float64
}

// Save renders the original waveform above the processed one and writes
// the PNG to path.
func (c Comparison) Save(path string) error {
	if c.Original.SampleRate <= 0 || c.Processed.SampleRate <= 0 {
		return ErrNoSampleRate
	}
	if len(c.Original.Samples) == 0 && len(c.Processed.Samples) == 0 {
		return ErrNoData
	}

	origPeak := c.OriginalPeak
	if origPeak == 0 {
		origPeak = c.Original.Peak()
	}
	procPeak := c.ProcessedPeak
	if procPeak == 0 {
		procPeak = c.Processed.Peak()
	}

	top := newPlot(
		fmt.Sprintf("Original: %s (max |amplitude|: %.4f)", c.Name, origPeak),
		"", "Amplitude",
	)
	bottom := newPlot(
		fmt.Sprintf("Result: amplitude scaled by %gx (max |amplitude|: %.4f)", c.Factor, procPeak),
		"Time (seconds)", "Amplitude",
	)

	if err := addWave(top, c.Original, color.RGBA{B: 255, A: 255}); err != nil {
		return err
	}
	if err := addWave(bottom, c.Processed, color.RGBA{R: 255, A: 255}); err != nil {
		return err
	}

	canvas := ComparisonOptions.canvas()
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}

	plots := [][]*gplot.Plot{{top}, {bottom}}
	canvases := gplot.Align(plots, tiles, draw.New(canvas))
	top.Draw(canvases[0][0])
	bottom.Draw(canvases[1][0])

	return save(canvas, path)
}

func addWave(p *gplot.Plot, s Signal, c color.Color) error {
	if len(s.Samples) == 0 {
		return nil
	}

	line, err := plotter.NewLine(s.xys())
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	line.Color = c
	line.Width = vg.Points(0.5)
	p.Add(line)

	return nil
}
