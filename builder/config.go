// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil                    (pure unless seeded)
//   • relFn = uniform non-empty, non-full arrow drawn from rng

package builder

import (
	"math/rand"

	"github.com/katalvlaran/simplicity/arrow"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Label generator for RandomNetwork.
	relFn func(*rand.Rand) arrow.Arrow
}

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:   nil,
		relFn: informativeArrow,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// informativeArrow draws uniformly from the 30 sets that are neither empty
// nor full, so a random network starts free of contradictions and carries
// information on every label.
func informativeArrow(r *rand.Rand) arrow.Arrow {
	return arrow.Arrow(1 + r.Intn(int(arrow.Full)-1))
}
