// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// impl_random.go - RandomNetwork(n, p).
//
// Canonical model:
//   • Each unordered pair {i,j}, i<j, receives a label with probability p.
//   • Labels come from cfg.relFn(cfg.rng).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

const (
	methodRandomNetwork = "RandomNetwork"
	minRandomNodes      = 1
	probMin             = 0.0
	probMax             = 1.0
)

// RandomNetwork returns a Constructor that samples a constraint network over
// n nodes, labelling each pair independently with probability p.
func RandomNetwork(n int, p float64) Constructor {
	return func(g *core.Graph[arrow.Arrow], cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomNetwork, n, minRandomNodes, ErrTooFewNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomNetwork, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomNetwork, ErrNeedRandSource)
		}

		first := base(g)
		g.Extend(first + core.NodeID(n-1))
		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				g.Insert(first+core.NodeID(i), first+core.NodeID(j), cfg.relFn(rng))
			}
		}
		return nil
	}
}
