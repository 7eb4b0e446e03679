// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// impl_chain.go - Chain(n, rel) and Cycle(n, rel).
//
// Contract:
//   • Chain: n ≥ 2; labels v_i → v_{i+1} for i = 0..n-2.
//   • Cycle: n ≥ 3; the chain plus v_{n-1} → v_0.
//   • Node ids are allocated after the existing nodes, in ascending order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

const (
	methodChain   = "Chain"
	methodCycle   = "Cycle"
	minChainNodes = 2
	minCycleNodes = 3
)

// Chain returns a Constructor that builds a path of n nodes, every link
// labelled rel.
func Chain(n int, rel arrow.Arrow) Constructor {
	return func(g *core.Graph[arrow.Arrow], _ builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}
		first := base(g)
		g.Extend(first + core.NodeID(n-1))
		for i := 0; i+1 < n; i++ {
			g.Insert(first+core.NodeID(i), first+core.NodeID(i+1), rel)
		}
		return nil
	}
}

// Cycle returns a Constructor that builds a closed ring of n nodes, every
// link labelled rel.
func Cycle(n int, rel arrow.Arrow) Constructor {
	return func(g *core.Graph[arrow.Arrow], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}
		first := base(g)
		if err := Chain(n, rel)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}
		g.Insert(first+core.NodeID(n-1), first, rel)
		return nil
	}
}
