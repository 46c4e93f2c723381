// SPDX-License-Identifier: EPL-2.0

// Package process reduces the amplitude of every file listed in an
// annotation, writing the result as WAV together with a waveform chart
// comparing it to the source.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audset"
	"github.com/ik5/audset/annotation"
	"github.com/ik5/audset/audio"
	"github.com/ik5/audset/formats/wav"
	"github.com/ik5/audset/internal/logging"
	"github.com/ik5/audset/internal/progress"
	"github.com/ik5/audset/plot"
)

// OutputPrefix is prepended to the name of every written file.
const OutputPrefix = "processed_"

// DefaultFactor is the reduction applied when none is configured.
const DefaultFactor = 0.5

// Options configures a batch run.
type Options struct {
	OutputDir string
	Factor    float64

	// PlotRate caps the points per second drawn in the charts; zero means
	// plot.DefaultPlotRate, negative disables charts.
	PlotRate int

	Logger   logging.Logger
	Progress io.Writer // nil hides the progress bar
	Registry *audio.Registry
}

// Result counts the outcome of a batch.
type Result struct {
	Processed int
	Skipped   int
}

// OutputPath returns the WAV path written for the source file src.
func OutputPath(dir, src string) string {
	name := filepath.Base(src)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(dir, OutputPrefix+stem+".wav")
}

// PlotPath returns the chart path that accompanies output.
func PlotPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".png"
}

// Run processes every row whose absolute_path exists. Files that cannot be
// decoded are logged and skipped; failing to write into OutputDir stops the
// batch. The context is checked between files.
func Run(ctx context.Context, rows []annotation.Row, opts Options) (Result, error) {
	var res Result

	if err := audio.ValidateReduction(opts.Factor); err != nil {
		return res, err
	}
	if opts.OutputDir == "" {
		return res, ErrNoOutputDir
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("%w: %w", ErrOutput, err)
	}

	log := logging.Or(opts.Logger)
	reg := opts.Registry
	if reg == nil {
		reg = audset.NewRegistry()
	}
	plotRate := opts.PlotRate
	if plotRate == 0 {
		plotRate = plot.DefaultPlotRate
	}

	bar := progress.New(opts.Progress, "processing", len(rows))
	defer bar.Done()

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := processRow(row, opts, reg, plotRate, log)
		bar.Increment()

		switch {
		case err == nil:
			res.Processed++
		case errors.Is(err, ErrOutput):
			return res, err
		default:
			res.Skipped++
		}
	}

	log.Infof("processed %d files, skipped %d", res.Processed, res.Skipped)
	return res, nil
}

func processRow(row annotation.Row, opts Options, reg *audio.Registry, plotRate int, log logging.Logger) error {
	path := row[annotation.PathColumn]
	info, err := os.Stat(path)
	if path == "" || err != nil {
		log.Warnf("skipped: file not found or bad path: %q", path)
		return ErrSkipped
	}

	name := filepath.Base(path)
	log.Infof("processing %s", name)

	src, err := audset.OpenFile(reg, path)
	if err != nil {
		log.Errorf("skipped %s: %v", name, err)
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}

	rate, channels := src.SampleRate(), src.Channels()
	samples, err := audio.ReadAll(src, src.BufSize())
	src.Close()
	if err != nil {
		log.Errorf("skipped %s: %v", name, err)
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}
	log.Infof("  file size: %d bytes", info.Size())

	original := audio.NewBufferSource(samples, rate, channels)
	gain, err := audio.NewGain(original, opts.Factor)
	if err != nil {
		return err
	}
	reduced, err := audio.ReadAll(gain, gain.BufSize())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}

	out := OutputPath(opts.OutputDir, path)

	if plotRate > 0 {
		original.Rewind()
		if err := saveComparison(original, audio.NewBufferSource(reduced, rate, channels), name, opts.Factor, plotRate, PlotPath(out)); err != nil {
			log.Warnf("no chart for %s: %v", name, err)
		}
	}

	if err := writeWAV(out, audio.NewBufferSource(reduced, rate, channels)); err != nil {
		return err
	}
	log.Debugf("wrote %s", out)

	return nil
}

func saveComparison(original, reduced *audio.BufferSource, name string, factor float64, rate int, path string) error {
	origPeak := peak(original.Samples())
	procPeak := peak(reduced.Samples())

	o, err := plot.PlotSignal(original, rate)
	if err != nil {
		return err
	}
	p, err := plot.PlotSignal(reduced, rate)
	if err != nil {
		return err
	}

	c := plot.Comparison{
		Name:          name,
		Factor:        factor,
		Original:      o,
		Processed:     p,
		OriginalPeak:  origPeak,
		ProcessedPeak: procPeak,
	}
	return c.Save(path)
}

func writeWAV(path string, src audio.Source) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}

	if err := wav.Encode(f, src); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func peak(samples []float32) float64 {
	var p float32
	for _, v := range samples {
		p = max(p, v, -v)
	}
	return float64(p)
}
