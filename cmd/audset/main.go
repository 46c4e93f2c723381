// SPDX-License-Identifier: EPL-2.0

// Command audset analyses, processes and browses an annotated audio
// dataset.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/labstack/gommon/log"

	"github.com/ik5/audset/internal/logging"
)

var verbose = flag.Bool("v", false, "Print debug information")

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Stderr, flag.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout, stderr io.Writer, args ...string) error {
	logger := newLogger(stderr)

	if len(args) < 1 {
		return usage()
	}

	switch args[0] {
	case "analyze":
		return analyze(ctx, stdout, stderr, logger, args[1:])
	case "process":
		return processCmd(ctx, stdout, stderr, logger, args[1:])
	case "browse":
		return browse(ctx, logger, args[1:])
	default:
		return usage()
	}
}

const help string = `invalid parameters
usage:
  audset [-v] analyze [--input-csv FILE] [--output-csv FILE] [--output-plot FILE] [--min-duration SECONDS]
  audset [-v] process [-f FACTOR] INPUT_ANNOTATION OUTPUT_DIR
  audset [-v] browse [--input-csv FILE]`

func usage() error { return errors.New(help) }

func newLogger(w io.Writer) *log.Logger {
	level := logging.ParseLevel(env("AUDSET_LOG_LEVEL", "info"))
	if *verbose {
		level = log.DEBUG
	}
	return logging.New("audset", w, level)
}

func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}
