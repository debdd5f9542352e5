package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jamesainslie/go-textsim/internal/bench"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run executes the sweep (if requested), then every domain comparison.
func run(ctx context.Context, w io.Writer, f *flags, sweep, compare bool) error {
	cfg, err := f.config()
	if err != nil {
		return err
	}

	opts := []bench.Option{bench.WithLogger(newLogger(f.logLevel, f.logFormat))}
	if f.prefixWords >= 0 {
		opts = append(opts, bench.WithPrefixWords(f.prefixWords))
	}
	eval := bench.New(opts...)

	if sweep {
		if err := runSweep(ctx, w, eval, cfg.Sweep); err != nil {
			return err
		}
	}
	if compare {
		for _, d := range cfg.Domains {
			report, err := eval.Compare(ctx, d)
			if err != nil {
				return err
			}
			if _, err := report.WriteTo(w); err != nil {
				return err
			}
		}
	}
	return nil
}

func runSweep(ctx context.Context, w io.Writer, eval *bench.Evaluator, cfg bench.SweepConfig) error {
	results, err := eval.Sweep(ctx, cfg)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	if err := bench.WriteSweepTable(w, cfg.Generator, results); err != nil {
		return err
	}

	paths, err := bench.PlotSweep(results, cfg)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	for _, p := range paths {
		fmt.Fprintf(w, "Wrote %s\n", p)
	}
	return nil
}
