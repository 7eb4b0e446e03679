package bfs

import (
	"sort"

	"github.com/katalvlaran/simplicity/core"
)

// Components partitions the nodes of g into connected components, following
// the labels accepted by the Filter option. Hooks and MaxDepth are ignored.
//
// Each component is ascending; components are ordered by their smallest
// node. Labels are followed in their stored direction, so a graph built
// only from mirrored inserts yields undirected components.
func Components[E core.Relation[E]](g *core.Graph[E], opts ...Option[E]) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	filter := DefaultOptions[E]()
	filter.Ctx, filter.Filter = o.Ctx, o.Filter

	w := newWalker(g, filter)
	var out [][]core.NodeID
	for _, id := range g.Nodes() {
		if w.visited[id] {
			continue
		}
		from := len(w.res.Order)
		w.enqueue(id, 0, id, false)
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := append([]core.NodeID(nil), w.res.Order[from:]...)
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		out = append(out, comp)
	}

	return out, nil
}
