package bench

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	textsim "github.com/jamesainslie/go-textsim"
)

func newDomain(t *testing.T, ref, gpt, lstm string) Domain {
	t.Helper()
	dir := t.TempDir()

	d := Domain{
		Name:      "Trump",
		Reference: filepath.Join(dir, "reference"),
		Generators: []Generator{
			{Name: "GPT-2", Path: filepath.Join(dir, "gpt")},
			{Name: "LSTM", Path: filepath.Join(dir, "lstm")},
		},
	}
	writeFile(t, d.Reference, ref)
	writeFile(t, d.Generators[0].Path, gpt)
	writeFile(t, d.Generators[1].Path, lstm)
	return d
}

func TestCompare(t *testing.T) {
	// Windows: " tod"/" yes"/" now" and " fgh"/" fgh"/" xyz".
	d := newDomain(t,
		"the quick brown fox jumps today\na b c d e fghij\n",
		"the quick brown fox jumps yesterday\na b c d e fghij\n",
		"the quick brown fox jumps now\na b c d e xyz\n",
	)

	report, err := New().Compare(context.Background(), d)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if report.Domain != "Trump" || report.Lines != 2 {
		t.Errorf("report = %s/%d lines, want Trump/2", report.Domain, report.Lines)
	}

	want := []GeneratorReport{
		{
			Name:  "GPT-2",
			ChrF:  Summary{N: 2, Mean: 2.5, StdDev: math.Sqrt(4.5)},
			WordF: Summary{N: 2, Mean: 0.5, StdDev: math.Sqrt(0.5)},
		},
		{
			Name:  "LSTM",
			ChrF:  Summary{N: 2, Mean: 1.5, StdDev: math.Sqrt(0.5)},
			WordF: Summary{N: 2, Mean: 0, StdDev: 0},
		},
	}
	if len(report.Generators) != len(want) {
		t.Fatalf("got %d generators, want %d", len(report.Generators), len(want))
	}
	for i, w := range want {
		got := report.Generators[i]
		if got.Name != w.Name {
			t.Errorf("generator[%d] = %q, want %q", i, got.Name, w.Name)
		}
		assertSummary(t, w.Name+" chrF", got.ChrF, w.ChrF)
		assertSummary(t, w.Name+" wordF", got.WordF, w.WordF)
	}
}

func assertSummary(t *testing.T, label string, got, want Summary) {
	t.Helper()
	if got.N != want.N || math.Abs(got.Mean-want.Mean) > 1e-9 || math.Abs(got.StdDev-want.StdDev) > 1e-9 {
		t.Errorf("%s = %+v, want %+v", label, got, want)
	}
}

func TestCompare_SingleLine(t *testing.T) {
	d := newDomain(t,
		"the quick brown fox jumps today\n",
		"the quick brown fox jumps yesterday\n",
		"the quick brown fox jumps now\n",
	)

	_, err := New().Compare(context.Background(), d)
	if !errors.Is(err, textsim.ErrInsufficientSamples) {
		t.Errorf("Compare() error = %v, want ErrInsufficientSamples", err)
	}
}

func TestCompare_LengthMismatch(t *testing.T) {
	d := newDomain(t,
		"first line here\nsecond line here\n",
		"first line here\nsecond line here\n",
		"first line here\n",
	)

	_, err := New().Compare(context.Background(), d)
	var mismatch *textsim.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Compare() error = %v, want *MismatchError", err)
	}
	if mismatch.Path != d.Generators[1].Path || mismatch.Want != 2 || mismatch.Got != 1 {
		t.Errorf("MismatchError = %+v", *mismatch)
	}
}

func TestCompare_NoGenerators(t *testing.T) {
	if _, err := New().Compare(context.Background(), Domain{Name: "Empty"}); err == nil {
		t.Error("Compare() error = nil, want error")
	}
}

func TestDomainReport_WriteTo(t *testing.T) {
	report := &DomainReport{
		Domain: "News",
		Generators: []GeneratorReport{
			{Name: "GPT-2", ChrF: Summary{Mean: 0.5, StdDev: 0.25}, WordF: Summary{Mean: 1, StdDev: 0}},
			{Name: "LSTM", ChrF: Summary{Mean: 2, StdDev: 0.5}, WordF: Summary{Mean: 0.125, StdDev: 1.5}},
		},
	}

	var buf bytes.Buffer
	n, err := report.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	want := "\nNews\n" +
		"GPT-2 chrF score:\t0.5\tstddev: 0.25\n" +
		"GPT-2 wordF score:\t1\tstddev: 0\n" +
		"LSTM chrF score:\t2\tstddev: 0.5\n" +
		"LSTM wordF score:\t0.125\tstddev: 1.5\n"
	if buf.String() != want {
		t.Errorf("WriteTo() =\n%q\nwant\n%q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() n = %d, want %d", n, len(want))
	}
}
