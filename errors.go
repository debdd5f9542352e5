package textsim

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrCorpusLengthMismatch indicates corpora that must align line by line
	// have different line counts.
	ErrCorpusLengthMismatch = errors.New("textsim: corpus length mismatch")

	// ErrInsufficientSamples indicates a score series is too short for the
	// requested statistic.
	ErrInsufficientSamples = errors.New("textsim: insufficient samples")

	// ErrInvalidTemplate indicates a per-setting path template has no
	// setting placeholder.
	ErrInvalidTemplate = errors.New("textsim: invalid path template")
)

// MismatchError reports a corpus whose line count differs from its reference.
type MismatchError struct {
	Path string
	Want int
	Got  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %s has %d lines, reference has %d", ErrCorpusLengthMismatch, e.Path, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrCorpusLengthMismatch.
func (e *MismatchError) Unwrap() error {
	return ErrCorpusLengthMismatch
}
