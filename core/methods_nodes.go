// File: methods_nodes.go
// Role: Node lifecycle (AddNode, Extend) and node queries.
// Determinism:
//   - AddNode returns ids in strictly increasing order.
//   - Nodes() is ascending by construction.
// Concurrency:
//   - Mutators take mu for writing; queries take it for reading.

package core

// AddNode appends a fresh node to the arena and returns its id.
//
// Behavior highlights:
//   - Ids are dense: the n-th call on an empty graph returns n-1.
//   - Ids are never reused; there is no RemoveNode.
//
// Complexity:
//   - Time O(1) amortised, Space O(1).
func (g *Graph[E]) AddNode() NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = append(g.nodes, node[E]{})

	return NodeID(len(g.nodes) - 1)
}

// Extend guarantees that id, and every id below it, exists.
//
// Implementation:
//   - Stage 1: Return early when id is already inside the arena.
//   - Stage 2: Grow the arena with empty nodes up to and including id.
//
// Complexity:
//   - Time O(1) if present, otherwise O(id - NodeCount()).
//
// AI-Hints:
//   - Insert calls this implicitly; use Extend to reserve isolated nodes.
func (g *Graph[E]) Extend(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.extend(id)
}

// extend grows the arena; caller holds mu for writing.
func (g *Graph[E]) extend(id NodeID) *node[E] {
	if need := int(id) + 1; need > len(g.nodes) {
		g.nodes = append(g.nodes, make([]node[E], need-len(g.nodes))...)
	}

	return &g.nodes[id]
}

// HasNode reports whether id is inside the arena.
// Complexity: O(1).
func (g *Graph[E]) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return int(id) < len(g.nodes)
}

// NodeCount returns the number of nodes in the arena.
// Complexity: O(1).
func (g *Graph[E]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Nodes returns every node id in ascending order.
// Complexity: O(V).
func (g *Graph[E]) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, len(g.nodes))
	for i := range out {
		out[i] = NodeID(i)
	}

	return out
}
