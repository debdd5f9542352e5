// Package corpus loads line-oriented text corpora for scoring.
package corpus

import (
	"fmt"
	"os"
	"strings"

	textsim "github.com/jamesainslie/go-textsim"
)

// Corpus is an ordered, normalized set of lines read from one file.
type Corpus struct {
	Path  string
	Lines []string
}

// Len returns the number of lines.
func (c *Corpus) Len() int {
	return len(c.Lines)
}

// Parse splits text into lines, drops blank ones and normalizes the rest.
func Parse(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if blank(line) {
			continue
		}
		lines = append(lines, Normalize(line))
	}
	return lines
}

// Load reads and parses a corpus file. The file is closed before parsing.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	return &Corpus{
		Path:  path,
		Lines: Parse(string(data)),
	}, nil
}

// CheckAligned verifies that every corpus has as many lines as ref.
// Returns a *textsim.MismatchError for the first one that does not.
func CheckAligned(ref *Corpus, others ...*Corpus) error {
	for _, c := range others {
		if c.Len() != ref.Len() {
			return &textsim.MismatchError{
				Path: c.Path,
				Want: ref.Len(),
				Got:  c.Len(),
			}
		}
	}
	return nil
}
