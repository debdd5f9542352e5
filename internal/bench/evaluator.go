package bench

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jamesainslie/go-textsim/corpus"
)

// Evaluator runs sweeps and comparisons. The zero value is not usable; call New.
type Evaluator struct {
	prefixWords int
	logger      zerolog.Logger
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Evaluator{
		prefixWords: o.prefixWords,
		logger:      o.logger,
	}
}

// load reads a corpus and logs its size.
func (e *Evaluator) load(path string) (*corpus.Corpus, error) {
	c, err := corpus.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	e.logger.Debug().Str("path", path).Int("lines", c.Len()).Msg("corpus loaded")
	return c, nil
}
