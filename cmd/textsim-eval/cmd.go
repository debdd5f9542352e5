package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-textsim/internal/bench"
)

type flags struct {
	sweepGenerator string
	sweepReference string
	sweepTemplate  string
	temperatures   []float64
	tempRange      []float64
	outDir         string
	domains        []string
	generators     []string
	prefixWords    int
	logLevel       string
	logFormat      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "textsim-eval",
		Short: "Score generated text against reference corpora",
		Long: `textsim-eval scores generator output against reference text with chrF and wordF.

With no subcommand it runs the temperature sweep, writes both charts, then
compares the generators on every domain.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), f, true, true)
		},
	}

	defaults := bench.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&f.sweepGenerator, "sweep-generator", defaults.Sweep.Generator, "Generator label used in sweep chart titles and file names")
	pf.StringVar(&f.sweepReference, "sweep-reference", defaults.Sweep.Reference, "Reference corpus for the sweep")
	pf.StringVar(&f.sweepTemplate, "sweep-template", defaults.Sweep.Template, "Per-setting output path containing "+bench.SettingPlaceholder)
	pf.Float64SliceVar(&f.temperatures, "temperatures", defaults.Sweep.Settings, "Temperatures to sweep")
	pf.Float64SliceVar(&f.tempRange, "temperature-range", nil, "Sweep range as start,stop,step (overrides --temperatures)")
	pf.StringVar(&f.outDir, "out-dir", defaults.Sweep.OutputDir, "Directory for sweep charts")
	pf.StringArrayVar(&f.domains, "domain", nil, "Domain as NAME=REFERENCE,OUTPUT_A,OUTPUT_B (repeatable; replaces the defaults)")
	pf.StringSliceVar(&f.generators, "generators", []string{"GPT-2", "LSTM"}, "Generator names for --domain outputs, in order")
	pf.IntVar(&f.prefixWords, "prefix-words", -1, "Prompt words skipped before scoring (default 5)")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&f.logFormat, "log-format", "console", "Log format: console or json")

	root.AddCommand(
		&cobra.Command{
			Use:   "sweep",
			Short: "Run the temperature sweep and write both charts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), cmd.OutOrStdout(), f, true, false)
			},
		},
		&cobra.Command{
			Use:   "compare",
			Short: "Compare generators on every domain",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), cmd.OutOrStdout(), f, false, true)
			},
		},
	)

	return root
}

// config applies flags over the default configuration.
func (f *flags) config() (bench.Config, error) {
	cfg := bench.DefaultConfig()

	cfg.Sweep.Generator = f.sweepGenerator
	cfg.Sweep.Reference = f.sweepReference
	cfg.Sweep.Template = f.sweepTemplate
	cfg.Sweep.OutputDir = f.outDir
	cfg.Sweep.Settings = f.temperatures
	if len(f.tempRange) > 0 {
		if len(f.tempRange) != 3 {
			return bench.Config{}, fmt.Errorf("--temperature-range needs start,stop,step, got %v", f.tempRange)
		}
		cfg.Sweep.Settings = bench.SettingRange(f.tempRange[0], f.tempRange[1], f.tempRange[2])
	}

	if len(f.domains) > 0 {
		cfg.Domains = nil
		for _, spec := range f.domains {
			d, err := parseDomain(spec, f.generators)
			if err != nil {
				return bench.Config{}, err
			}
			cfg.Domains = append(cfg.Domains, d)
		}
	}

	return cfg, nil
}

// parseDomain parses NAME=REFERENCE,OUTPUT_A,OUTPUT_B.
func parseDomain(spec string, generators []string) (bench.Domain, error) {
	name, paths, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return bench.Domain{}, fmt.Errorf("invalid --domain %q: want NAME=REFERENCE,OUTPUT...", spec)
	}

	parts := strings.Split(paths, ",")
	if len(parts) < 2 {
		return bench.Domain{}, fmt.Errorf("invalid --domain %q: need a reference and at least one output", spec)
	}
	outputs := parts[1:]
	if len(outputs) != len(generators) {
		return bench.Domain{}, fmt.Errorf("invalid --domain %q: %d outputs for %d generators", spec, len(outputs), len(generators))
	}

	d := bench.Domain{Name: name, Reference: parts[0]}
	for i, path := range outputs {
		d.Generators = append(d.Generators, bench.Generator{Name: generators[i], Path: path})
	}
	return d, nil
}
