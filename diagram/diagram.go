// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

// Diagram is a constraint network whose nodes carry a Role.
// It is not safe for concurrent mutation; build one per rule or net.
type Diagram struct {
	roles     []Role
	graph     *core.Graph[arrow.Arrow]
	saturated bool
}

// New returns an empty diagram.
func New() *Diagram {
	return &Diagram{graph: core.NewGraph[arrow.Arrow]()}
}

// AddNode appends a node with role r.
func (d *Diagram) AddNode(r Role) core.NodeID {
	id := d.graph.AddNode()
	d.roles = append(d.roles, r)
	d.saturated = false
	return id
}

// Role returns the role of id, or false if id was never added.
func (d *Diagram) Role(id core.NodeID) (Role, bool) {
	if int(id) >= len(d.roles) {
		return 0, false
	}
	return d.roles[id], true
}

func (d *Diagram) mustRole(id core.NodeID) Role {
	r, ok := d.Role(id)
	if !ok {
		panic(fmt.Sprintf("diagram: node %d does not exist", id))
	}
	return r
}

// Insert narrows a→b by rel, mirroring the converse onto b→a.
// Both nodes must exist.
func (d *Diagram) Insert(a, b core.NodeID, rel arrow.Arrow) {
	d.mustRole(a)
	d.mustRole(b)
	d.graph.Insert(a, b, rel)
	d.saturated = false
}

// Link wires a to b with the relation their roles call for.
// It panics if either end is a Partition node.
func (d *Diagram) Link(a, b core.NodeID) {
	ra, rb := d.mustRole(a), d.mustRole(b)
	rel, ok := wire(ra, rb)
	if !ok {
		panic(fmt.Sprintf("diagram: cannot link %s %d to %s %d", ra, a, rb, b))
	}
	d.Insert(a, b, rel)
}

// Agent adds an agent occurrence: a Principal node plus one Partition per
// entry of shape, each holding that many Auxiliary nodes.
func (d *Diagram) Agent(shape []int) (principal core.NodeID, ports [][]core.NodeID) {
	principal = d.AddNode(Principal)
	return principal, d.hang(principal, shape, Auxiliary)
}

// Interface adds a Principal node whose groups hold free ports, which are
// Principal nodes themselves.
func (d *Diagram) Interface(shape []int) (root core.NodeID, ports [][]core.NodeID) {
	root = d.AddNode(Principal)
	return root, d.hang(root, shape, Principal)
}

// hang attaches one partition per group to p and fills it with port nodes.
func (d *Diagram) hang(p core.NodeID, shape []int, port Role) [][]core.NodeID {
	groups := make([][]core.NodeID, len(shape))
	for i, size := range shape {
		q := d.AddNode(Partition)
		d.Insert(p, q, toPartition)
		groups[i] = make([]core.NodeID, size)
		for j := range groups[i] {
			n := d.AddNode(port)
			d.Insert(q, n, toPort)
			groups[i][j] = n
		}
	}
	return groups
}

// Graph exposes the underlying network.
func (d *Diagram) Graph() *core.Graph[arrow.Arrow] { return d.graph }

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.roles) }

// EdgeCount returns the number of labelled pairs; a mirrored pair counts once.
func (d *Diagram) EdgeCount() int { return d.graph.EdgeCount() / 2 }
