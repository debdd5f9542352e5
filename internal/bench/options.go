package bench

import (
	"github.com/rs/zerolog"

	textsim "github.com/jamesainslie/go-textsim"
)

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	prefixWords int
	logger      zerolog.Logger
}

func defaultOptions() options {
	return options{
		prefixWords: textsim.PrefixWords,
		logger:      zerolog.Nop(),
	}
}

// WithPrefixWords sets how many leading reference words are treated as the
// prompt and skipped (default: textsim.PrefixWords).
func WithPrefixWords(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.prefixWords = n
		}
	}
}

// WithLogger sets the logger (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
