// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// api.go - public entry point and constructor type.
//
// Design contract:
//   • One orchestrator: BuildNetwork(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   • Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

// Constructor applies a deterministic mutation to the network using the
// resolved builderConfig.
type Constructor func(g *core.Graph[arrow.Arrow], cfg builderConfig) error

// BuildNetwork creates an empty network, resolves the configuration from
// bopts and applies every constructor in order. The first constructor error
// is wrapped with "BuildNetwork: %w" and returned; no partial cleanup is done.
//
// Complexity: Σ cost of each constructor plus O(len(bopts)).
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph[arrow.Arrow], error) {
	g := core.NewGraph[arrow.Arrow]()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing network, which lets callers
// extend a diagram's graph with fixture structure.
func Apply(g *core.Graph[arrow.Arrow], bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// base returns the first id a constructor may allocate.
func base(g *core.Graph[arrow.Arrow]) core.NodeID {
	return core.NodeID(g.NodeCount())
}
