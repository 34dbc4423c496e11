// Package pipeline runs one sales computation end to end: load the catalogue,
// load the sales record, total them up and emit the report.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"time"

	"computesales/internal/catalog"
	"computesales/internal/common"
	"computesales/internal/engine"
	"computesales/internal/report"
	"computesales/internal/sales"
	"computesales/internal/source"

	"github.com/rs/zerolog"
)

// ErrFatal marks a failure that aborted the run before a report was made.
// The matching [FATAL] line has already been printed when it is returned.
var ErrFatal = errors.New("fatal")

type Options struct {
	CatalogPath string
	SalesPath   string
	ResultsPath string           // Defaults to report.ResultsFile
	Out         io.Writer        // Report and diagnostics
	Logger      zerolog.Logger   // Operator log, never stdout
	Now         func() time.Time // Defaults to time.Now
}

// Result is what a successful run produced.
type Result struct {
	Total   float64
	Elapsed time.Duration
	Report  string
}

// Run executes the pipeline. Every stage runs sequentially on the calling
// goroutine, and the sales file is not opened until the catalogue is built.
func Run(opts Options) (Result, error) {
	opts = withDefaults(opts)
	logger := opts.Logger

	start := opts.Now()

	catalogDoc, err := source.ReadJSON(opts.CatalogPath)
	if err != nil {
		return Result{}, fatal(opts, "Cannot load price catalogue", err)
	}
	built, err := catalog.BuildWithLog(catalogDoc, opts.Out, logger)
	if err != nil {
		return Result{}, fatal(opts, "Cannot load price catalogue", err)
	}
	logger.Info().
		Str("path", opts.CatalogPath).
		Int("entries", built.Entries).
		Int("skipped", built.Skipped).
		Int("products", built.Prices.Len()).
		Msg("catalogue loaded")
	if evt := logger.Debug(); evt.Enabled() {
		evt.Strs("titles", built.Prices.Titles()).Msg("catalogue titles")
	}
	if evt := logger.Trace(); evt.Enabled() {
		evt.Interface("prices", built.Prices.Map()).Msg("catalogue prices")
	}

	salesDoc, err := source.ReadJSON(opts.SalesPath)
	if err != nil {
		return Result{}, fatal(opts, "Cannot load sales record", err)
	}
	lines, err := sales.ParseWithLog(salesDoc, opts.Out, logger)
	if err != nil {
		return Result{}, fatal(opts, "Cannot load sales record", err)
	}
	logger.Info().
		Str("path", opts.SalesPath).
		Int("lines", len(lines)).
		Msg("sales parsed")

	summary := engine.Calculate(built.Prices, lines, opts.Out)
	elapsed := opts.Now().Sub(start)
	logger.Info().
		Int("matched", summary.Matched).
		Int("missing", summary.Missing).
		Float64("total", summary.Total).
		Dur("elapsed", elapsed).
		Msg("calculation finished")

	text := report.Format(summary.Total, elapsed)
	if err := report.Emit(opts.Out, text, opts.ResultsPath); err != nil {
		return Result{}, err
	}
	logger.Info().
		Str("path", opts.ResultsPath).
		Int("bytes", len(text)).
		Msg("report written")

	return Result{Total: summary.Total, Elapsed: elapsed, Report: text}, nil
}

func withDefaults(opts Options) Options {
	if opts.ResultsPath == "" {
		opts.ResultsPath = report.ResultsFile
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return opts
}

// fatal prints the [FATAL] line for err and wraps it with ErrFatal.
func fatal(opts Options, what string, err error) error {
	common.Diagnose(opts.Out, common.TagFatal, "%s: %v", what, err)
	opts.Logger.Error().Err(err).Msg(what)
	return fmt.Errorf("%w: %s: %w", ErrFatal, what, err)
}
