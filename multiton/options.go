package multiton

import (
	"log/slog"

	"github.com/joshuapare/enumkit/internal/keyfold"
	"github.com/joshuapare/enumkit/internal/logger"
)

// Options control registry behavior.
type Options struct {
	// Normalizer canonicalizes keys on Add and lookup. Key() still returns
	// the declared spelling. If nil, keys are used as-is.
	Normalizer func(string) string

	// Logger receives population events. If nil, the package-level
	// logger is used at the time of population.
	Logger *slog.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithNormalizer sets a custom key normalizer.
func WithNormalizer(fn func(string) string) Option {
	return func(o *Options) { o.Normalizer = fn }
}

// WithCaseFold makes key lookups and duplicate detection case-insensitive
// using Unicode case folding.
func WithCaseFold() Option { return WithNormalizer(keyfold.Fold) }

// WithLogger routes population events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o *Options) normalize(key string) string {
	if o.Normalizer != nil {
		return o.Normalizer(key)
	}
	return key
}

func (o *Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.L
}
