// File: methods_edges.go
// Role: Edge lifecycle (Insert) and label queries (Edge, HasEdge, Neighbors, Edges, Find).
// Determinism:
//   - Neighbors() ascending by NodeID.
//   - Edges() and Find() ascending by (From, To).
// Concurrency:
//   - Insert holds mu for writing across both halves, so readers never observe
//     a label without its mirrored converse.
// AI-HINT (file):
//   - Insert never widens a label: stored = stored.Merge(new).
//   - Edge(a,b) ok=false means "unconstrained"; callers substitute their algebra's top.

package core

import "sort"

// Insert merges rel into the label on a→b and mirrors its converse onto b→a.
//
// Implementation:
//   - Stage 1: Acquire mu for writing.
//   - Stage 2: Merge rel into a→b, creating the label when absent.
//   - Stage 3: If rel defines a converse, merge it into b→a; otherwise only
//     make sure b exists in the arena.
//
// Behavior highlights:
//   - Monotone: the stored label is the intersection of every inserted value.
//   - Both endpoints exist afterwards, whether or not the converse is defined.
//
// Complexity:
//   - Time O(1) amortised (plus arena growth), Space O(1) per new label.
func (g *Graph[E]) Insert(a, b NodeID, rel E) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.halfInsert(a, b, rel)
	if rev, ok := rel.Converse(); ok {
		g.halfInsert(b, a, rev)
	} else {
		g.extend(b)
	}
}

// halfInsert merges rel into a→b; caller holds mu for writing.
func (g *Graph[E]) halfInsert(a, b NodeID, rel E) {
	n := g.extend(a)
	if n.edges == nil {
		n.edges = make(map[NodeID]E)
	}
	if cur, ok := n.edges[b]; ok {
		n.edges[b] = cur.Merge(rel)
		return
	}
	n.edges[b] = rel
	g.edgeCount++
}

// Edge returns the label on a→b. ok=false means the pair is unconstrained.
// Complexity: O(1).
func (g *Graph[E]) Edge(a, b NodeID) (rel E, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if int(a) >= len(g.nodes) {
		return rel, false
	}
	rel, ok = g.nodes[a].edges[b]

	return rel, ok
}

// HasEdge reports whether a→b carries a label.
// Complexity: O(1).
func (g *Graph[E]) HasEdge(a, b NodeID) bool {
	_, ok := g.Edge(a, b)
	return ok
}

// EdgeCount returns the number of directed labels. A mirrored pair counts twice.
// Complexity: O(1).
func (g *Graph[E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Neighbors returns the destinations of id's outgoing labels, ascending.
//
// Returns:
//   - []NodeID: sorted snapshot; nil when id has no labels.
//   - error: ErrNodeNotFound when id is outside the arena.
//
// Complexity:
//   - Time O(d·log d), Space O(d), where d is id's out-degree.
//
// Notes:
//   - The slice is a copy, so callers may insert while iterating over it.
func (g *Graph[E]) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if int(id) >= len(g.nodes) {
		return nil, ErrNodeNotFound
	}
	edges := g.nodes[id].edges
	if len(edges) == 0 {
		return nil, nil
	}
	out := make([]NodeID, 0, len(edges))
	for to := range edges {
		out = append(out, to)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Edges returns a snapshot of every directed label, sorted by (From, To).
// Complexity: O(E·log E).
func (g *Graph[E]) Edges() []Edge[E] {
	return g.Find(nil)
}

// Find returns the labels accepted by pred, sorted by (From, To).
// A nil pred accepts everything.
//
// Complexity:
//   - Time O(E·log E) for the accepted labels, Space O(E).
//
// AI-Hints:
//   - The verdict evaluator uses Find to list contradictory labels.
func (g *Graph[E]) Find(pred func(Edge[E]) bool) []Edge[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[E]
	for from := range g.nodes {
		for to, rel := range g.nodes[from].edges {
			e := Edge[E]{From: NodeID(from), To: to, Rel: rel}
			if pred == nil || pred(e) {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
