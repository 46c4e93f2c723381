// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/ik5/audset"
	"github.com/ik5/audset/annotation"
	"github.com/ik5/audset/browser"
	"github.com/ik5/audset/internal/progress"
	"github.com/ik5/audset/player"
	"github.com/ik5/audset/plot"
	"github.com/ik5/audset/process"
)

const defaultAnnotation = "annotation.csv"

func analyze(ctx context.Context, stdout, stderr io.Writer, logger *log.Logger, args []string) error {
	fl := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fl.SetOutput(stderr)
	input := fl.String("input-csv", env("AUDSET_INPUT_CSV", defaultAnnotation), "Annotation to analyse")
	output := fl.String("output-csv", "analyzed_audio_data.csv", "Where to save the annotation with durations")
	chart := fl.String("output-plot", "audio_duration_plot.png", "Where to save the duration chart")
	minimum := fl.Float64("min-duration", 10, "Minimum duration in seconds for the filter report")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if fl.NArg() != 0 {
		return usage()
	}

	tbl, err := annotation.Read(*input)
	if err != nil {
		return err
	}
	if err := tbl.Rename(annotation.DefaultRenames); err != nil {
		return err
	}

	reg := audset.NewRegistry()
	bar := progress.New(stderr, "durations", tbl.Len())
	err = tbl.AddDurations(ctx, func(_ context.Context, path string) (float64, error) {
		d, err := audset.FileDuration(reg, path)
		if err != nil {
			logger.Warnf("no duration for %s: %v", path, err)
		}
		return d.Seconds(), err
	}, bar.Increment)
	bar.Done()
	if err != nil {
		return err
	}

	sorted, err := tbl.SortBy(annotation.DurationColumn, true)
	if err != nil {
		return err
	}

	filtered, err := tbl.FilterMin(annotation.DurationColumn, *minimum)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%d of %d files last at least %g seconds\n", filtered.Len(), tbl.Len(), *minimum)

	switch err := plot.DurationCurve(sorted.Floats(annotation.DurationColumn), *chart); {
	case errors.Is(err, plot.ErrNoData):
		logger.Warnf("no valid durations, %s not written", *chart)
	case err != nil:
		return err
	default:
		fmt.Fprintf(stdout, "chart saved: %s\n", *chart)
	}

	if err := tbl.Write(*output); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "annotation saved: %s\n", *output)

	return nil
}

func processCmd(ctx context.Context, stdout, stderr io.Writer, logger *log.Logger, args []string) error {
	fl := flag.NewFlagSet("process", flag.ContinueOnError)
	fl.SetOutput(stderr)
	factor := fl.Float64("f", process.DefaultFactor, "Amplitude reduction factor in (0, 1]")
	fl.Float64Var(factor, "factor", process.DefaultFactor, "Same as -f")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if fl.NArg() != 2 {
		return usage()
	}
	input, outDir := fl.Arg(0), fl.Arg(1)

	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("annotation not found: %s", input)
	}

	tbl, err := annotation.Read(input)
	if err != nil {
		return err
	}
	if err := tbl.Rename(annotation.DefaultRenames); err != nil {
		return err
	}

	res, err := process.Run(ctx, tbl.Rows, process.Options{
		OutputDir: outDir,
		Factor:    *factor,
		Logger:    logger,
		Progress:  stderr,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "processed %d files (%d skipped), output in %s\n", res.Processed, res.Skipped, outDir)
	return nil
}

func browse(ctx context.Context, logger *log.Logger, args []string) error {
	fl := flag.NewFlagSet("browse", flag.ContinueOnError)
	input := fl.String("input-csv", env("AUDSET_INPUT_CSV", defaultAnnotation), "Annotation to open at start")
	if err := fl.Parse(args); err != nil {
		return err
	}

	// log lines would tear the raw mode screen
	if !*verbose {
		logger.SetLevel(log.OFF)
	}

	spk, err := player.NewSpeaker(player.DefaultRate, 100*time.Millisecond)
	if err != nil {
		return err
	}
	defer spk.Close()

	b := browser.New(browser.Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Player: player.New(spk, nil, logger),
		Picker: browser.ZenityPicker,
		Logger: logger,
	})

	if _, err := os.Stat(*input); err == nil {
		_ = b.Open(*input)
	}

	err = browser.RunTerminal(ctx, b)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
