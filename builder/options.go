// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/simplicity/arrow"
)

// BuilderOption customizes constructor behaviour by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRelationFn sets the label generator used by RandomNetwork.
// Panics on nil.
func WithRelationFn(fn func(*rand.Rand) arrow.Arrow) BuilderOption {
	if fn == nil {
		panic("builder: WithRelationFn(nil)")
	}
	return func(c *builderConfig) { c.relFn = fn }
}
