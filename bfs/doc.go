// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a Result holding:
//   - Order: visit sequence
//   - Depth: node → hops from the start
//   - Parent: node → predecessor in the BFS tree
//   - Hooks run at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilter prunes individual labels, for example empty ones.
//   - MaxDepth limits the search (d>0) or explicitly disables the limit (d==0).
//   - Components partitions every node into its connected components.
//
// Determinism
//
//	core.Graph.Neighbors returns destinations in ascending NodeID order and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//	Components are listed by their smallest member.
//
// Direction
//
//	A label a→b is followed from a only. Every label inserted through
//	core.Graph.Insert with a defined converse is mirrored, so on such graphs
//	reachability is symmetric.
//
// Complexity (V = nodes, E = labels)
//
//   - Time:   O(V + E·log d) (neighbor snapshots are sorted)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilter(func(_, _ core.NodeID, rel arrow.Arrow) bool { return !rel.IsEmpty() }),
//	)
//
//	comps, err := bfs.Components(g)
package bfs
