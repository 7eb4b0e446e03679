// SPDX-License-Identifier: MIT

package check

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Checker.
type Option func(*Options)

// Options holds Checker settings.
type Options struct {
	// Logger receives per-verdict and summary records.
	Logger *slog.Logger

	// Registry, when non-nil, receives the checker's collectors.
	Registry prometheus.Registerer

	// Workers bounds how many rules or nets are checked at once.
	Workers int

	// DOT renders every diagram into Verdict.DOT.
	DOT bool

	// CacheSize is the number of verdicts kept between runs; 0 disables it.
	CacheSize int
}

// DefaultOptions returns Options with sane defaults:
//   - logging discarded
//   - no metrics
//   - one worker
//   - no DOT output, no cache.
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers: 1,
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry registers the checker's metrics on r.
func WithRegistry(r prometheus.Registerer) Option {
	return func(o *Options) { o.Registry = r }
}

// WithWorkers sets the worker count; values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithDOT turns Graphviz rendering on or off.
func WithDOT(on bool) Option {
	return func(o *Options) { o.DOT = on }
}

// WithCache keeps up to n verdicts across Check calls.
func WithCache(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}
