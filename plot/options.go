// SPDX-License-Identifier: EPL-2.0

package plot

import (
	"fmt"
	"os"
	"path/filepath"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls the size of a rendered chart.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

var (
	// CurveOptions is used by DurationCurve.
	CurveOptions = Options{Width: 12 * vg.Inch, Height: 6 * vg.Inch, DPI: 150}
	// ComparisonOptions is used by Comparison.
	ComparisonOptions = Options{Width: 14 * vg.Inch, Height: 6 * vg.Inch, DPI: 100}
)

func (o Options) canvas() *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(o.Width, o.Height), vgimg.UseDPI(o.DPI))
}

func dashedGrid() *plotter.Grid {
	g := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	g.Vertical.Dashes = dashes
	g.Horizontal.Dashes = dashes
	return g
}

func newPlot(title, xLabel, yLabel string) *gplot.Plot {
	p := gplot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(dashedGrid())
	return p
}

// save writes the canvas as PNG, creating the parent directory.
func save(c *vgimg.Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func render(p *gplot.Plot, o Options) *vgimg.Canvas {
	c := o.canvas()
	p.Draw(draw.New(c))
	return c
}
