// File: methods_clone.go
// Role: Deep copy of the arena and every label.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared instance.

package core

// Clone returns a deep copy of g. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph[E]) Clone() *Graph[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[E]{
		nodes:     make([]node[E], len(g.nodes)),
		edgeCount: g.edgeCount,
	}
	for i, n := range g.nodes {
		if n.edges == nil {
			continue
		}
		m := make(map[NodeID]E, len(n.edges))
		for to, rel := range n.edges {
			m[to] = rel
		}
		out.nodes[i].edges = m
	}

	return out
}
