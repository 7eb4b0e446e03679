// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Relation contract, NodeID, Edge view, Graph storage and constructor.
// Policy:
//   - Storage is an arena: nodes[id].edges[to] = label.
//   - A node's edge map is allocated lazily on its first outgoing label.
// AI-HINT (file):
//   - Relation requires comparable so callers can detect "unchanged after merge" with ==.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node beyond the arena.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Relation is the contract an edge label must satisfy.
//
// Converse returns the label of the reverse edge; ok=false means the algebra
// does not define one for this value, in which case no reverse edge is forced.
// Merge intersects two labels that must both hold.
type Relation[E any] interface {
	comparable
	Converse() (E, bool)
	Merge(other E) E
}

// NodeID is a dense, auto-incrementing node identity.
type NodeID uint32

// Edge is a read-only snapshot of one directed label.
type Edge[E Relation[E]] struct {
	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Rel is the label stored on From→To at the time of the snapshot.
	Rel E
}

// node holds the outgoing labels of one arena slot.
type node[E Relation[E]] struct {
	edges map[NodeID]E
}

// GraphOption configures a Graph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity preallocates the node arena for n nodes.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// Graph is the constraint graph: an arena of nodes, each with a map of
// outgoing labels keyed by destination.
//
// mu guards nodes and edgeCount. edgeCount counts directed labels, so a
// mirrored pair contributes two.
type Graph[E Relation[E]] struct {
	mu sync.RWMutex

	nodes     []node[E]
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph[E Relation[E]](opts ...GraphOption) *Graph[E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[E]{nodes: make([]node[E], 0, cfg.capacity)}
}
