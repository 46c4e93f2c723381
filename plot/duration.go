// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ik5/audset/annotation"
)

// DurationCurve plots durations against their position in the list and
// saves the chart as PNG at path. Unknown durations are left out; if none
// remain ErrNoData is returned and nothing is written.
func DurationCurve(durations []float64, path string) error {
	pts := make(plotter.XYs, 0, len(durations))
	for _, d := range durations {
		if d == annotation.UnknownDuration || math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(len(pts)), Y: d})
	}

	if len(pts) == 0 {
		return ErrNoData
	}

	p := newPlot(
		"Audio file durations (sorted by duration)",
		"Position in sorted list",
		"Duration (seconds)",
	)

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	blue := color.RGBA{B: 255, A: 180}
	line.Color = blue
	points.Shape = draw.CircleGlyph{}
	points.Color = blue
	points.Radius = vg.Points(1.5)
	p.Add(line, points)

	return save(render(p, CurveOptions), path)
}
