// Package bench evaluates generated text against reference corpora.
package bench

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	textsim "github.com/jamesainslie/go-textsim"
)

// Metric names used in reports and chart titles.
const (
	MetricChrF  = "chrF"
	MetricWordF = "wordF"
)

// LineScore holds both metrics for one aligned line pair.
type LineScore struct {
	ChrF  float64
	WordF float64
}

// ScoreLine scores an already aligned generated line against its reference.
func ScoreLine(reference, generated string) LineScore {
	return LineScore{
		ChrF:  textsim.ChrF(reference, generated),
		WordF: textsim.WordF(reference, generated),
	}
}

// Series is an ordered sequence of per-line scores for one generator and metric.
type Series []float64

// Mean returns the arithmetic mean. At least one sample is required.
func (s Series) Mean() (float64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: mean of empty series", textsim.ErrInsufficientSamples)
	}
	return stat.Mean(s, nil), nil
}

// StdDev returns the sample standard deviation. At least two samples are required.
func (s Series) StdDev() (float64, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: stddev needs at least 2 samples, got %d", textsim.ErrInsufficientSamples, len(s))
	}
	return stat.StdDev(s, nil), nil
}

// Summary holds the statistics reported for one series.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
}

// Summarize computes mean and sample standard deviation.
func (s Series) Summarize() (Summary, error) {
	mean, err := s.Mean()
	if err != nil {
		return Summary{}, err
	}
	sd, err := s.StdDev()
	if err != nil {
		return Summary{}, err
	}
	return Summary{N: len(s), Mean: mean, StdDev: sd}, nil
}
