// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Constructors never panic; option constructors panic on meaningless input.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied
// (nil constructor, or a Bridge to a node that does not exist yet).
var ErrConstructFailed = errors.New("builder: construction failed")
