// SPDX-License-Identifier: MIT

package diagram

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/simplicity/ast"
	"github.com/katalvlaran/simplicity/core"
)

var (
	// ErrUnknownAgent is returned when a node refers to an undeclared agent.
	ErrUnknownAgent = errors.New("diagram: unknown agent")

	// ErrPortArity is returned when a node binds the wrong number of ports.
	ErrPortArity = errors.New("diagram: port arity mismatch")

	// ErrVariableUse is returned when a variable does not occur exactly twice.
	ErrVariableUse = errors.New("diagram: variable not used exactly twice")
)

// FromRule builds the diagram of a rule: the redex principals linked ≈,
// their auxiliary ports as free ports, then the result agents.
func FromRule(sys *ast.System, r ast.RuleDef) (*Diagram, error) {
	b := &assembly{sys: sys, d: New(), vars: r.Vars, where: "rule " + sys.RuleName(r)}

	shapeA, err := b.shape(r.A, true)
	if err != nil {
		return nil, err
	}
	shapeB, err := b.shape(r.B, true)
	if err != nil {
		return nil, err
	}

	ra := b.d.AddNode(Principal)
	rb := b.d.AddNode(Principal)
	b.d.Link(ra, rb)
	b.bind(r.A.Ports, b.d.hang(ra, shapeA, Principal))
	b.bind(r.B.Ports, b.d.hang(rb, shapeB, Principal))

	if err = b.agents(r.Result); err != nil {
		return nil, err
	}
	if err = b.wire(); err != nil {
		return nil, err
	}
	return b.d, nil
}

// FromNet builds the diagram of a net: an interface node carrying the net's
// external ports, then the body agents.
func FromNet(sys *ast.System, n ast.NetDef) (*Diagram, error) {
	b := &assembly{sys: sys, d: New(), vars: n.Vars, where: "net " + n.Name}

	shape := make([]int, len(n.Ports))
	var free []ast.Var
	for i, g := range n.Ports {
		shape[i] = len(g)
		free = append(free, g...)
	}
	_, groups := b.d.Interface(shape)
	b.bind(free, groups)

	if err := b.agents(n.Nodes); err != nil {
		return nil, err
	}
	if err := b.wire(); err != nil {
		return nil, err
	}
	return b.d, nil
}

// assembly records where each variable occurs while a diagram is built.
type assembly struct {
	sys   *ast.System
	d     *Diagram
	vars  []string
	where string
	order []ast.Var
	occ   map[ast.Var][]core.NodeID
}

// shape resolves n's agent and checks its port count. Root nodes bind
// auxiliary ports only.
func (b *assembly) shape(n ast.Node, root bool) ([]int, error) {
	def, ok := b.sys.Agent(n.Agent)
	if !ok {
		return nil, fmt.Errorf("%s: agent %d: %w", b.where, int(n.Agent), ErrUnknownAgent)
	}
	want := def.Arity()
	if !root {
		want++
	}
	if len(n.Ports) != want {
		return nil, fmt.Errorf("%s: %s binds %d ports, want %d: %w",
			b.where, b.sys.FormatNode(n, b.vars), len(n.Ports), want, ErrPortArity)
	}
	return def.Groups, nil
}

// note records that v occurs at node id.
func (b *assembly) note(v ast.Var, id core.NodeID) {
	if b.occ == nil {
		b.occ = make(map[ast.Var][]core.NodeID)
	}
	if _, seen := b.occ[v]; !seen {
		b.order = append(b.order, v)
	}
	b.occ[v] = append(b.occ[v], id)
}

// bind pairs port variables, in order, with the nodes of groups.
func (b *assembly) bind(vars []ast.Var, groups [][]core.NodeID) {
	i := 0
	for _, g := range groups {
		for _, id := range g {
			b.note(vars[i], id)
			i++
		}
	}
}

// agents adds every node of a result or net body.
func (b *assembly) agents(nodes []ast.Node) error {
	for _, n := range nodes {
		shape, err := b.shape(n, false)
		if err != nil {
			return err
		}
		p, groups := b.d.Agent(shape)
		b.note(n.Ports[0], p)
		b.bind(n.Ports[1:], groups)
	}
	return nil
}

// wire links the two occurrences of every variable, first to second.
func (b *assembly) wire() error {
	for _, v := range b.order {
		at := b.occ[v]
		if len(at) != 2 {
			return fmt.Errorf("%s: variable %q used %d times: %w",
				b.where, ast.VarName(b.vars, v), len(at), ErrVariableUse)
		}
	}
	for _, v := range b.order {
		at := b.occ[v]
		b.d.Link(at[0], at[1])
	}
	return nil
}
