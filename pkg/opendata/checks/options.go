package checks

import "go.uber.org/zap"

// Options configures the content checks.
type Options struct {
	// DateColumnTokens are substrings that mark a column as holding dates
	// when found in its lower-cased name.
	DateColumnTokens []string
	// MaxExamples caps how many offending values a finding quotes.
	MaxExamples int
	// Logger receives debug output about skipped columns. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options used by the published conventions.
func DefaultOptions() Options {
	return Options{
		DateColumnTokens: []string{"fecha"},
		MaxExamples:      5,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) maxExamples() int {
	if o.MaxExamples <= 0 {
		return DefaultOptions().MaxExamples
	}
	return o.MaxExamples
}
