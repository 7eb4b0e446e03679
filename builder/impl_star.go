// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// impl_star.go - Star(leaves, rel) and Bridge(a, b, rel).

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

const (
	methodStar    = "Star"
	methodBridge  = "Bridge"
	minStarLeaves = 1
)

// Star returns a Constructor that adds a hub and `leaves` leaves, each
// labelled hub→leaf with rel. It mirrors an agent principal fanning out to
// its ports.
func Star(leaves int, rel arrow.Arrow) Constructor {
	return func(g *core.Graph[arrow.Arrow], _ builderConfig) error {
		if leaves < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, leaves, minStarLeaves, ErrTooFewNodes)
		}
		hub := base(g)
		g.Extend(hub + core.NodeID(leaves))
		for i := 1; i <= leaves; i++ {
			g.Insert(hub, hub+core.NodeID(i), rel)
		}
		return nil
	}
}

// Bridge returns a Constructor that labels a→b between nodes that must
// already exist, joining components built by earlier constructors.
func Bridge(a, b core.NodeID, rel arrow.Arrow) Constructor {
	return func(g *core.Graph[arrow.Arrow], _ builderConfig) error {
		if !g.HasNode(a) || !g.HasNode(b) {
			return fmt.Errorf("%s: %d→%d outside %d nodes: %w", methodBridge, a, b, g.NodeCount(), ErrConstructFailed)
		}
		g.Insert(a, b, rel)
		return nil
	}
}
