package textsim

import (
	"math"
	"testing"
)

func TestChrF(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		generated string
		want      float64
	}{
		{"both empty", "", "", 0},
		{"empty generated", "abc", "", 0},
		{"single rune identical", "a", "a", 1},
		{"identical scales with length", "abc", "abc", 3},
		{"repeated reference rune", "aa", "a", 2.0 * (1 * 2) / (1 + 2)},
		{"disjoint", "abc", "xyz", 0},
		{"multibyte runes", "héllo", "hé", 2},
		{"spaces count", " tod", " yes", 1},
		{"shared space and letter", " tod", " now", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChrF(tt.reference, tt.generated)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ChrF(%q, %q) = %v, want %v", tt.reference, tt.generated, got, tt.want)
			}
		})
	}
}

func TestChrF_ArgumentOrder(t *testing.T) {
	a, b := "aab", "abbbc"
	if got, rev := ChrF(a, b), ChrF(b, a); math.Abs(got-rev) > 1e-9 {
		t.Errorf("ChrF(%q, %q) = %v, ChrF(%q, %q) = %v", a, b, got, b, a, rev)
	}
}

func TestWordF(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		generated string
		want      float64
	}{
		{"both empty", "", "", 0},
		{"whitespace only", "   ", "\t", 0},
		{"two shared words", "the cat sat", "the dog sat", 2},
		{"duplicate reference words", "the the cat", "the", 2.0 * (1 * 2) / (1 + 2)},
		{"no overlap", "tod", "yes", 0},
		{"extra whitespace ignored", "  the   cat ", "the cat", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordF(tt.reference, tt.generated)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WordF(%q, %q) = %v, want %v", tt.reference, tt.generated, got, tt.want)
			}
		})
	}
}
