package bench

import (
	"context"
	"fmt"
	"io"
	"strings"

	textsim "github.com/jamesainslie/go-textsim"
	"github.com/jamesainslie/go-textsim/corpus"
)

// GeneratorReport summarizes one generator's scores within a domain.
type GeneratorReport struct {
	Name  string
	ChrF  Summary
	WordF Summary
}

// DomainReport holds the comparison of all generators for one domain.
type DomainReport struct {
	Domain     string
	Lines      int
	Generators []GeneratorReport
}

// Compare scores every generator of d against the domain's reference corpus.
// Each line triple is windowed to the continuation after the prompt and
// truncated to its shortest line before scoring.
func (e *Evaluator) Compare(ctx context.Context, d Domain) (*DomainReport, error) {
	if len(d.Generators) == 0 {
		return nil, fmt.Errorf("domain %s: no generators", d.Name)
	}

	ref, err := e.load(d.Reference)
	if err != nil {
		return nil, fmt.Errorf("domain %s: %w", d.Name, err)
	}

	gens := make([]*corpus.Corpus, len(d.Generators))
	for i, g := range d.Generators {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if gens[i], err = e.load(g.Path); err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}
	}

	if err := corpus.CheckAligned(ref, gens...); err != nil {
		return nil, fmt.Errorf("domain %s: %w", d.Name, err)
	}

	chrF := make([]Series, len(gens))
	wordF := make([]Series, len(gens))
	lines := make([]string, len(gens))
	for i, line := range ref.Lines {
		for j, g := range gens {
			lines[j] = g.Lines[i]
		}
		r, windows := textsim.WindowWords(e.prefixWords, line, lines...)
		for j, w := range windows {
			s := ScoreLine(r, w)
			chrF[j] = append(chrF[j], s.ChrF)
			wordF[j] = append(wordF[j], s.WordF)
		}
	}

	report := &DomainReport{
		Domain: d.Name,
		Lines:  ref.Len(),
	}
	for j, g := range d.Generators {
		gr := GeneratorReport{Name: g.Name}
		if gr.ChrF, err = chrF[j].Summarize(); err != nil {
			return nil, fmt.Errorf("domain %s: %s %s: %w", d.Name, g.Name, MetricChrF, err)
		}
		if gr.WordF, err = wordF[j].Summarize(); err != nil {
			return nil, fmt.Errorf("domain %s: %s %s: %w", d.Name, g.Name, MetricWordF, err)
		}
		report.Generators = append(report.Generators, gr)

		e.logger.Debug().
			Str("domain", d.Name).
			Str("generator", g.Name).
			Float64(MetricChrF, gr.ChrF.Mean).
			Float64(MetricWordF, gr.WordF.Mean).
			Msg("generator scored")
	}

	return report, nil
}

// WriteTo prints the report: a blank line, the domain label, then the chrF
// and wordF summaries of each generator in configured order.
func (r *DomainReport) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	sb.WriteString("\n" + r.Domain + "\n")
	for _, g := range r.Generators {
		writeSummary(&sb, g.Name, MetricChrF, g.ChrF)
		writeSummary(&sb, g.Name, MetricWordF, g.WordF)
	}

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func writeSummary(sb *strings.Builder, generator, metric string, s Summary) {
	fmt.Fprintf(sb, "%s %s score:\t%v\tstddev: %v\n", generator, metric, s.Mean, s.StdDev)
}
