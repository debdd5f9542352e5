package bench

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const chartSize = 4 * vg.Inch

// ChartPath returns where the chart for generator and metric is written.
func ChartPath(dir, generator, metric string) string {
	name := fmt.Sprintf("temperature-vs-%s.png", metric)
	if generator != "" {
		name = generator + "-" + name
	}
	return filepath.Join(dir, name)
}

// PlotSweep renders one temperature-vs-score line chart per metric and
// returns the written paths. Existing files are overwritten.
func PlotSweep(results []SweepResult, cfg SweepConfig) ([]string, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart dir: %w", err)
	}

	var paths []string
	for _, metric := range []string{MetricChrF, MetricWordF} {
		path := ChartPath(dir, cfg.Generator, metric)
		if err := plotMetric(results, cfg.Generator, metric, path); err != nil {
			return nil, fmt.Errorf("plotting %s: %w", metric, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func plotMetric(results []SweepResult, generator, metric, path string) error {
	pts := make(plotter.XYs, len(results))
	for i, r := range results {
		score, ok := r.Score(metric)
		if !ok {
			return fmt.Errorf("unknown metric %q", metric)
		}
		pts[i].X = r.Setting
		pts[i].Y = score
	}

	p := plot.New()
	p.Title.Text = "Temperature vs " + metric
	if generator != "" {
		p.Title.Text = generator + ": " + p.Title.Text
	}
	p.X.Label.Text = "Temperature"
	p.Y.Label.Text = metric + " score"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(chartSize, chartSize, path)
}
