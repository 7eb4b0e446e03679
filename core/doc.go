// Package core provides the generic constraint graph shared by the closure
// solver and the diagram builder.
//
// The Graph G = (V, E) is a directed, edge-labelled graph in which:
//
//   - Vertices are dense NodeID values (0, 1, 2, …) stored in an arena; ids are
//     never reused and the arena grows on first reference.
//   - At most one label is stored per ordered pair (a, b).
//   - Labels are values of any type satisfying Relation: they can be inverted
//     (Converse) and intersected (Merge).
//
// Invariants:
//
//   - Mirroring: inserting R on a→b also inserts Converse(R) on b→a whenever
//     the relation defines a converse.
//   - Monotone narrowing: a second insert on the same pair merges into the
//     stored label, so a label only ever shrinks.
//   - Contradictory labels (the algebra's bottom) are stored like any other
//     value. Spotting them is the caller's concern.
//
// Why use core.Graph?
//
//   - Algebra-agnostic: any finite relation algebra plugs in through Relation,
//     without touching graph or solver code.
//   - Cache-friendly arena instead of pointer-linked nodes; no ownership cycles.
//   - Deterministic iteration: Neighbors, Nodes, Edges and Find return results
//     sorted by NodeID.
//   - Clone support for snapshotting a network before saturation.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() NodeID                 // O(1) amortised
//	Extend(id NodeID)                // O(id) worst case, O(1) when present
//	HasNode(id NodeID) bool          // O(1)
//
//	// Edge lifecycle
//	Insert(a, b NodeID, rel E)       // O(1) amortised, merges on both sides
//	Edge(a, b NodeID) (E, bool)      // O(1)
//	HasEdge(a, b NodeID) bool        // O(1)
//
//	// Query
//	Neighbors(id NodeID) []NodeID    // O(d·log d), sorted
//	Nodes() []NodeID                 // O(V)
//	Edges() []Edge[E]                // O(E·log E), sorted by (From, To)
//	Find(pred) []Edge[E]             // O(E·log E)
//	NodeCount() int / EdgeCount() int
//
//	// Cloning
//	Clone() *Graph[E]                // O(V+E) deep copy
//
// Concurrency:
//
//	All methods take a single sync.RWMutex, so a Graph may be read from several
//	goroutines. The checker still gives every rule and net a private graph;
//	the lock is not a licence to share one network between solvers.
//
// Example:
//
//	g := core.NewGraph[arrow.Arrow]()
//	a, b := g.AddNode(), g.AddNode()
//	g.Insert(a, b, arrow.Before)
//	rel, _ := g.Edge(b, a) // arrow.After
package core
