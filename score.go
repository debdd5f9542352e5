package textsim

import (
	"slices"
	"strings"
)

// ChrF returns the character-level F-score of generated against reference.
//
// The precision count is the number of runes in generated that occur
// anywhere in reference; the recall count is the number of runes in
// reference that occur anywhere in generated. Repeated runes are counted
// each time. Returns 0 when both counts are 0.
func ChrF(reference, generated string) float64 {
	refSet := runeSet(reference)
	genSet := runeSet(generated)

	precision := 0
	for _, r := range generated {
		if _, ok := refSet[r]; ok {
			precision++
		}
	}
	recall := 0
	for _, r := range reference {
		if _, ok := genSet[r]; ok {
			recall++
		}
	}

	return harmonic(precision, recall)
}

// WordF returns the word-level F-score of generated against reference.
// Words are whitespace-separated fields; counting follows ChrF.
func WordF(reference, generated string) float64 {
	refWords := strings.Fields(reference)
	genWords := strings.Fields(generated)

	precision := 0
	for _, w := range genWords {
		if slices.Contains(refWords, w) {
			precision++
		}
	}
	recall := 0
	for _, w := range refWords {
		if slices.Contains(genWords, w) {
			recall++
		}
	}

	return harmonic(precision, recall)
}

// harmonic combines raw counts without normalizing them by length.
// TODO: confirm whether the counts should be divided by string length before
// changing this; existing reports depend on the raw form.
func harmonic(precision, recall int) float64 {
	if precision+recall == 0 {
		return 0
	}
	p, r := float64(precision), float64(recall)
	return 2 * (p * r) / (p + r)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}
