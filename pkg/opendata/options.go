// Package opendata checks tabular files against open-data publication conventions.
package opendata

import (
	"github.com/ukaji3/opendata-check-go/pkg/opendata/checks"
	"go.uber.org/zap"
)

// Options configures validation behavior.
type Options struct {
	// DateColumnTokens marks columns as holding dates when a token appears in
	// the lower-cased column name. If nil, defaults to "fecha".
	DateColumnTokens []string
	// MaxExamples caps how many offending values a data finding quotes.
	// If zero, defaults to 5.
	MaxExamples int
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default validation options.
func DefaultOptions() Options {
	d := checks.DefaultOptions()
	return Options{
		DateColumnTokens: d.DateColumnTokens,
		MaxExamples:      d.MaxExamples,
	}
}

// checkOptions returns the options passed to the content checks.
func (o Options) checkOptions() checks.Options {
	d := checks.DefaultOptions()
	out := checks.Options{
		DateColumnTokens: o.DateColumnTokens,
		MaxExamples:      o.MaxExamples,
		Logger:           o.logger(),
	}
	if out.DateColumnTokens == nil {
		out.DateColumnTokens = d.DateColumnTokens
	}
	if out.MaxExamples <= 0 {
		out.MaxExamples = d.MaxExamples
	}
	return out
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
