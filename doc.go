// Package textsim scores machine-generated text against reference text.
//
// # Quick Start
//
//	ref, gen := textsim.Tail(referenceLine, generatedLine)
//	fmt.Printf("chrF: %.3f wordF: %.3f\n", textsim.ChrF(ref, gen), textsim.WordF(ref, gen))
//
// # Metrics
//
// ChrF and WordF combine a precision count and a recall count with a
// harmonic mean. The counts are raw membership counts, not fractions, so
// scores are not bounded to [0,1]: ChrF(s, s) equals the rune length of s.
//
// # Alignment
//
// Generated lines were seeded with the first PrefixWords words of the
// reference line. Offset, Tail and Window skip that prompt so only the
// generated continuation is scored. All offsets are rune indexes.
package textsim
