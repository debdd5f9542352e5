package bench

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	textsim "github.com/jamesainslie/go-textsim"
	"github.com/jamesainslie/go-textsim/corpus"
)

// SettingPlaceholder marks where a setting value goes in a sweep path template.
const SettingPlaceholder = "{setting}"

// SweepResult holds averaged scores for one setting value.
type SweepResult struct {
	Setting float64
	ChrF    float64
	WordF   float64
}

// Score returns the averaged score for the named metric.
func (r SweepResult) Score(metric string) (float64, bool) {
	switch metric {
	case MetricChrF:
		return r.ChrF, true
	case MetricWordF:
		return r.WordF, true
	}
	return 0, false
}

// SettingRange generates setting values from start up to (not including)
// stop with the given step. Values are rounded to six decimals so they
// render the same way they were written in file names.
func SettingRange(start, stop, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var settings []float64
	for i := 0; ; i++ {
		v := math.Round((start+float64(i)*step)*1e6) / 1e6
		if v >= stop-step*1e-9 {
			break
		}
		settings = append(settings, v)
	}
	return settings
}

// FormatSetting renders a setting in its shortest form, always with a
// decimal point: 0.2 -> "0.2", 1 -> "1.0".
func FormatSetting(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// SettingPath fills the setting placeholder of template.
func SettingPath(template string, setting float64) (string, error) {
	if !strings.Contains(template, SettingPlaceholder) {
		return "", fmt.Errorf("%w: %q has no %s", textsim.ErrInvalidTemplate, template, SettingPlaceholder)
	}
	return strings.ReplaceAll(template, SettingPlaceholder, FormatSetting(setting)), nil
}

// Sweep scores the generator output for every setting against one reference
// corpus. Results are returned in setting order. Any failure aborts the whole
// sweep and no partial results are returned.
func (e *Evaluator) Sweep(ctx context.Context, cfg SweepConfig) ([]SweepResult, error) {
	if _, err := SettingPath(cfg.Template, 0); err != nil {
		return nil, err
	}

	ref, err := e.load(cfg.Reference)
	if err != nil {
		return nil, err
	}

	var results []SweepResult
	for _, setting := range cfg.Settings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path, err := SettingPath(cfg.Template, setting)
		if err != nil {
			return nil, err
		}
		gen, err := e.load(path)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", FormatSetting(setting), err)
		}

		result, err := e.sweepSetting(ref, gen, setting)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", FormatSetting(setting), err)
		}

		e.logger.Info().
			Str("generator", cfg.Generator).
			Float64("setting", setting).
			Float64(MetricChrF, result.ChrF).
			Float64(MetricWordF, result.WordF).
			Msg("setting scored")
		results = append(results, result)
	}

	return results, nil
}

func (e *Evaluator) sweepSetting(ref, gen *corpus.Corpus, setting float64) (SweepResult, error) {
	if err := corpus.CheckAligned(ref, gen); err != nil {
		return SweepResult{}, err
	}

	chrF := make(Series, 0, ref.Len())
	wordF := make(Series, 0, ref.Len())
	for i, line := range ref.Lines {
		r, g := textsim.TailWords(e.prefixWords, line, gen.Lines[i])
		s := ScoreLine(r, g)
		chrF = append(chrF, s.ChrF)
		wordF = append(wordF, s.WordF)
	}

	avgChrF, err := chrF.Mean()
	if err != nil {
		return SweepResult{}, err
	}
	avgWordF, err := wordF.Mean()
	if err != nil {
		return SweepResult{}, err
	}

	return SweepResult{
		Setting: setting,
		ChrF:    avgChrF,
		WordF:   avgWordF,
	}, nil
}

// Best returns the result with the highest score for metric.
func Best(results []SweepResult, metric string) (SweepResult, bool) {
	var best SweepResult
	found := false
	for _, r := range results {
		score, ok := r.Score(metric)
		if !ok {
			return SweepResult{}, false
		}
		if bestScore, _ := best.Score(metric); !found || score > bestScore {
			best = r
			found = true
		}
	}
	return best, found
}

// WriteSweepTable prints results as a fixed-width table.
func WriteSweepTable(w io.Writer, generator string, results []SweepResult) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s Temperature Sweep\n", generator)
	sb.WriteString(strings.Repeat("-", 30) + "\n")
	fmt.Fprintf(&sb, "%-8s %-10s %-10s\n", "Temp", MetricChrF, MetricWordF)
	for _, r := range results {
		fmt.Fprintf(&sb, "%-8s %-10.4f %-10.4f\n", FormatSetting(r.Setting), r.ChrF, r.WordF)
	}
	sb.WriteString(strings.Repeat("-", 30) + "\n")
	for _, metric := range []string{MetricChrF, MetricWordF} {
		if best, ok := Best(results, metric); ok {
			score, _ := best.Score(metric)
			fmt.Fprintf(&sb, "Best %s: %s (%.4f)\n", metric, FormatSetting(best.Setting), score)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
