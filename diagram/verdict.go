// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/bfs"
	"github.com/katalvlaran/simplicity/closure"
	"github.com/katalvlaran/simplicity/core"
)

// join composes labels with the arrow algebra regardless of the nodes.
func join(_ core.NodeID, ab arrow.Arrow, _ core.NodeID, bc arrow.Arrow, _ core.NodeID) (arrow.Arrow, bool) {
	return ab.Join(bc)
}

// Complete saturates the diagram in place. Options are passed to
// closure.Saturate, which is how callers observe narrowing.
func (d *Diagram) Complete(opts ...closure.Option) (closure.Stats, error) {
	st, err := closure.Saturate(d.graph, join, opts...)
	if err != nil {
		return st, fmt.Errorf("diagram: complete: %w", err)
	}
	d.saturated = true
	return st, nil
}

// IsSaturated reports whether Complete ran since the last mutation.
func (d *Diagram) IsSaturated() bool { return d.saturated }

// IsContradictory reports whether any label is empty.
func (d *Diagram) IsContradictory() bool {
	return len(d.Contradictions()) > 0
}

// Contradictions lists the empty labels, sorted by (From, To). Both
// directions of a pair are listed.
func (d *Diagram) Contradictions() []core.Edge[arrow.Arrow] {
	return d.graph.Find(func(e core.Edge[arrow.Arrow]) bool { return e.Rel.IsEmpty() })
}

// Components groups the nodes that stay connected through non-empty labels.
// A saturated simple diagram with any labels at all is one component; a
// contradiction can split it.
func (d *Diagram) Components() [][]core.NodeID {
	// only a nil graph or a cancelled context can fail, and neither applies
	comps, _ := bfs.Components(d.graph, bfs.WithFilter(nonEmpty))
	return comps
}

func nonEmpty(_, _ core.NodeID, rel arrow.Arrow) bool { return !rel.IsEmpty() }

// Simple reports whether the diagram was saturated without contradiction.
func (d *Diagram) Simple() bool {
	return d.saturated && !d.IsContradictory()
}

// IsComplete reports whether no two-step path a→b→c could narrow a→c any
// further. A missing label, or a composition with no information, reads as
// arrow.Full.
//
// Complexity: O(Σ deg(b)²).
func (d *Diagram) IsComplete() bool {
	for _, ab := range d.graph.Edges() {
		next, err := d.graph.Neighbors(ab.To)
		if err != nil {
			return false
		}
		for _, c := range next {
			if c == ab.From {
				continue
			}
			bc, _ := d.graph.Edge(ab.To, c)
			ac, ok := d.graph.Edge(ab.From, c)
			if !ok {
				ac = arrow.Full
			}
			if ac.Merge(ab.Rel.JoinOr(bc, arrow.Full)) != ac {
				return false
			}
		}
	}
	return true
}
