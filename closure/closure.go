// Package closure saturates a core.Graph under a caller-supplied composition,
// narrowing labels until the network is path consistent.
package closure

import (
	"fmt"

	"github.com/katalvlaran/simplicity/core"
)

// pair is an unordered node pair, stored with lo ≤ hi.
type pair struct {
	lo, hi core.NodeID
}

func newPair(a, b core.NodeID) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

// walker encapsulates mutable saturation state.
type walker[E core.Relation[E]] struct {
	graph   *core.Graph[E]
	compose Compose[E]
	opts    Options
	queue   []pair
	queued  map[pair]struct{}
	stats   Stats
}

// Saturate narrows g in place until no composition a→b→c can narrow a→c.
// The labels of g only ever shrink; a contradictory label is left in place
// for the caller to find.
// Returns ErrGraphNil or ErrComposeNil for invalid input.
func Saturate[E core.Relation[E]](g *core.Graph[E], compose Compose[E], opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, ErrGraphNil
	}
	if compose == nil {
		return Stats{}, ErrComposeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[E]{
		graph:   g,
		compose: compose,
		opts:    o,
		queued:  make(map[pair]struct{}),
	}
	w.seed()

	return w.stats, w.loop()
}

// seed marks every labelled pair dirty, in ascending edge order.
func (w *walker[E]) seed() {
	for _, e := range w.graph.Edges() {
		w.mark(e.From, e.To)
	}
}

// mark queues {a,b} unless it is already waiting.
func (w *walker[E]) mark(a, b core.NodeID) {
	p := newPair(a, b)
	if _, ok := w.queued[p]; ok {
		return
	}
	w.queued[p] = struct{}{}
	w.queue = append(w.queue, p)
	if len(w.queue) > w.stats.PeakDirty {
		w.stats.PeakDirty = len(w.queue)
	}
}

// loop drains the worklist.
func (w *walker[E]) loop() error {
	for len(w.queue) > 0 {
		p := w.queue[0]
		w.queue = w.queue[1:]
		delete(w.queued, p)
		w.stats.Dequeued++
		w.opts.OnDequeue(p.lo, p.hi)

		if err := w.propagate(p.lo, p.hi); err != nil {
			return err
		}
		if p.lo != p.hi {
			if err := w.propagate(p.hi, p.lo); err != nil {
				return err
			}
		}
	}
	return nil
}

// propagate composes x→y with every y→c and narrows x→c.
func (w *walker[E]) propagate(x, y core.NodeID) error {
	xy, ok := w.graph.Edge(x, y)
	if !ok {
		return nil
	}
	neighbors, err := w.graph.Neighbors(y)
	if err != nil {
		return fmt.Errorf("closure: neighbours of %d: %w", y, err)
	}
	for _, c := range neighbors {
		if c == x && !w.opts.SelfLoops {
			continue
		}
		// x→y itself changes here only when y carries a self-loop label.
		if xy, ok = w.graph.Edge(x, y); !ok {
			return nil
		}
		yc, ok := w.graph.Edge(y, c)
		if !ok {
			continue
		}
		w.stats.Compositions++
		cand, ok := w.compose(x, xy, y, yc, c)
		if !ok {
			continue
		}
		w.narrow(x, c, cand)
	}
	return nil
}

// narrow merges cand into x→c and queues {x,c} if the label changed.
func (w *walker[E]) narrow(x, c core.NodeID, cand E) {
	before, had := w.graph.Edge(x, c)
	w.graph.Insert(x, c, cand)
	after, _ := w.graph.Edge(x, c)
	if had && after == before {
		return
	}
	w.stats.Narrowed++
	w.opts.OnNarrow(x, c)
	w.mark(x, c)
}
