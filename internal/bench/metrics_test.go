package bench

import (
	"errors"
	"math"
	"testing"

	textsim "github.com/jamesainslie/go-textsim"
)

func TestScoreLine(t *testing.T) {
	got := ScoreLine("the cat sat", "the dog sat")
	if got.WordF != 2 {
		t.Errorf("WordF = %v, want 2", got.WordF)
	}
	if want := 2.0 * (8 * 10) / (8 + 10); math.Abs(got.ChrF-want) > 1e-9 {
		t.Errorf("ChrF = %v, want %v", got.ChrF, want)
	}
}

func TestSeries(t *testing.T) {
	tests := []struct {
		name       string
		series     Series
		wantMean   float64
		wantStdDev float64
		wantErr    bool
	}{
		{
			name:       "four samples",
			series:     Series{1, 2, 3, 4},
			wantMean:   2.5,
			wantStdDev: math.Sqrt(5.0 / 3.0),
		},
		{
			name:       "constant",
			series:     Series{0.5, 0.5},
			wantMean:   0.5,
			wantStdDev: 0,
		},
		{
			name:    "single sample",
			series:  Series{1},
			wantErr: true,
		},
		{
			name:    "empty",
			series:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.series.Summarize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Summarize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, textsim.ErrInsufficientSamples) {
					t.Errorf("Summarize() error = %v, want ErrInsufficientSamples", err)
				}
				return
			}
			if got.N != len(tt.series) {
				t.Errorf("N = %d, want %d", got.N, len(tt.series))
			}
			if math.Abs(got.Mean-tt.wantMean) > 1e-9 {
				t.Errorf("Mean = %v, want %v", got.Mean, tt.wantMean)
			}
			if math.Abs(got.StdDev-tt.wantStdDev) > 1e-9 {
				t.Errorf("StdDev = %v, want %v", got.StdDev, tt.wantStdDev)
			}
		})
	}
}

func TestSeries_MeanSingle(t *testing.T) {
	mean, err := Series{3}.Mean()
	if err != nil {
		t.Fatalf("Mean() error = %v", err)
	}
	if mean != 3 {
		t.Errorf("Mean() = %v, want 3", mean)
	}
}
