// SPDX-License-Identifier: MIT

package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
	"github.com/katalvlaran/simplicity/diagram"
)

func TestRoles(t *testing.T) {
	d := diagram.New()
	p := d.AddNode(diagram.Principal)
	q := d.AddNode(diagram.Partition)

	r, ok := d.Role(p)
	assert.True(t, ok)
	assert.Equal(t, diagram.Principal, r)
	r, _ = d.Role(q)
	assert.Equal(t, "partition", r.String())
	_, ok = d.Role(9)
	assert.False(t, ok)
	assert.Equal(t, "role(7)", diagram.Role(7).String())
}

func TestLink_ByRole(t *testing.T) {
	cases := []struct {
		a, b diagram.Role
		want arrow.Arrow
	}{
		{diagram.Principal, diagram.Principal, arrow.Same},
		{diagram.Principal, diagram.Auxiliary, arrow.MuchBefore | arrow.Before},
		{diagram.Auxiliary, diagram.Principal, arrow.After | arrow.MuchAfter},
		{diagram.Auxiliary, diagram.Auxiliary, arrow.After | arrow.MuchAfter},
	}
	for _, tc := range cases {
		d := diagram.New()
		a, b := d.AddNode(tc.a), d.AddNode(tc.b)
		d.Link(a, b)
		rel, ok := d.Graph().Edge(a, b)
		require.True(t, ok)
		assert.Equal(t, tc.want, rel, "%s→%s", tc.a, tc.b)
	}
}

func TestLink_PartitionPanics(t *testing.T) {
	d := diagram.New()
	p := d.AddNode(diagram.Principal)
	q := d.AddNode(diagram.Partition)
	assert.Panics(t, func() { d.Link(p, q) })
	assert.Panics(t, func() { d.Link(q, p) })
	assert.Panics(t, func() { d.Insert(p, 5, arrow.Same) }, "node 5 was never added")
}

func TestAgent_Structure(t *testing.T) {
	d := diagram.New()
	p, groups := d.Agent([]int{1, 2})
	require.Len(t, groups, 2)
	assert.Len(t, groups[1], 2)
	assert.Equal(t, 6, d.NodeCount(), "principal, two partitions, three ports")

	q := core.NodeID(1)
	r, _ := d.Role(q)
	assert.Equal(t, diagram.Partition, r)
	rel, _ := d.Graph().Edge(p, q)
	assert.Equal(t, arrow.MuchAfter, rel)
	rel, _ = d.Graph().Edge(q, groups[0][0])
	assert.Equal(t, arrow.After|arrow.MuchAfter, rel)
	r, _ = d.Role(groups[1][1])
	assert.Equal(t, diagram.Auxiliary, r)

	_, free := d.Interface([]int{1})
	r, _ = d.Role(free[0][0])
	assert.Equal(t, diagram.Principal, r, "free ports are principal nodes")
}

// Two agents without auxiliary ports and an empty result.
func TestScenario_ZeroAuxiliary(t *testing.T) {
	d := diagram.New()
	a := d.AddNode(diagram.Principal)
	b := d.AddNode(diagram.Principal)
	d.Link(a, b)

	_, err := d.Complete()
	require.NoError(t, err)
	assert.Equal(t, 2, d.NodeCount())
	assert.Equal(t, 1, d.EdgeCount())
	assert.False(t, d.IsContradictory())
	assert.True(t, d.Simple())
}

// Two principals wired back onto each other.
func TestScenario_SameCycle(t *testing.T) {
	d := diagram.New()
	a := d.AddNode(diagram.Principal)
	b := d.AddNode(diagram.Principal)
	d.Insert(a, b, arrow.Same)
	d.Insert(b, a, arrow.Same)

	st, err := d.Complete()
	require.NoError(t, err)
	assert.Zero(t, st.Narrowed)
	rel, _ := d.Graph().Edge(a, b)
	assert.Equal(t, arrow.Same, rel)
	assert.True(t, d.Simple())
}

// Two partitions pulled into exclusive relations with a common node.
func TestScenario_ForcedContradiction(t *testing.T) {
	d := diagram.New()
	p := d.AddNode(diagram.Principal)
	q1 := d.AddNode(diagram.Partition)
	q2 := d.AddNode(diagram.Partition)
	d.Insert(q1, q2, arrow.MuchAfter)
	d.Insert(q2, p, arrow.MuchAfter)
	d.Insert(q1, p, arrow.MuchBefore)
	require.False(t, d.IsContradictory(), "no inserted label is empty")

	_, err := d.Complete()
	require.NoError(t, err)
	assert.True(t, d.IsContradictory())
	assert.False(t, d.Simple())

	bad := d.Contradictions()
	require.NotEmpty(t, bad)
	assert.Zero(t, len(bad)%2, "empty labels come in mirrored pairs")
	for _, e := range bad {
		back, ok := d.Graph().Edge(e.To, e.From)
		require.True(t, ok)
		assert.Equal(t, arrow.Empty, back)
	}
	assert.True(t, d.IsComplete())
}

// Saturation leaves a fixpoint, and a second pass changes nothing.
func TestScenario_CompleteIsFixpoint(t *testing.T) {
	for _, src := range []string{zeroAux, annihilation, commutation, mainNet} {
		sys := mustParse(t, src)
		var d *diagram.Diagram
		var err error
		if len(sys.Rules) > 0 {
			d, err = diagram.FromRule(sys, sys.Rules[0])
		} else {
			d, err = diagram.FromNet(sys, sys.Nets[0])
		}
		require.NoError(t, err)

		_, err = d.Complete()
		require.NoError(t, err)
		assert.True(t, d.IsComplete())

		before := d.Graph().Edges()
		st, err := d.Complete()
		require.NoError(t, err)
		assert.Zero(t, st.Narrowed)
		assert.Equal(t, before, d.Graph().Edges())
		assert.True(t, d.IsComplete())
	}
}

// The conjunction/disjunction diagram wired by hand.
func TestConjunctionDisjunction(t *testing.T) {
	d := diagram.New()
	gate := func(rel arrow.Arrow) (p, x, y core.NodeID) {
		p = d.AddNode(diagram.Principal)
		x = d.AddNode(diagram.Auxiliary)
		y = d.AddNode(diagram.Auxiliary)
		d.Insert(p, x, rel)
		d.Insert(p, y, rel)
		return p, x, y
	}
	_, r1, r2 := gate(arrow.After | arrow.MuchAfter)
	a0, a1, a2 := gate(arrow.After | arrow.MuchAfter)
	b0, b1, b2 := gate(arrow.MuchAfter)

	d.Link(r1, a0)
	d.Link(r2, b0)
	d.Link(a1, b1)
	d.Link(a2, b2)

	st, err := d.Complete()
	require.NoError(t, err)
	assert.Positive(t, st.Narrowed)
	assert.True(t, d.IsComplete())
	assert.True(t, d.Simple())
}

func TestIsSaturated_ResetByMutation(t *testing.T) {
	d := diagram.New()
	a := d.AddNode(diagram.Principal)
	b := d.AddNode(diagram.Principal)
	d.Link(a, b)
	assert.False(t, d.Simple(), "not saturated yet")

	_, err := d.Complete()
	require.NoError(t, err)
	assert.True(t, d.IsSaturated())

	d.AddNode(diagram.Auxiliary)
	assert.False(t, d.IsSaturated())
	assert.False(t, d.Simple())
}

func TestIsComplete_DetectsUnsaturated(t *testing.T) {
	d := diagram.New()
	a := d.AddNode(diagram.Principal)
	b := d.AddNode(diagram.Principal)
	c := d.AddNode(diagram.Principal)
	d.Insert(a, b, arrow.Before)
	d.Insert(b, c, arrow.Before)
	assert.False(t, d.IsComplete(), "a→c is still unconstrained")

	_, err := d.Complete()
	require.NoError(t, err)
	assert.True(t, d.IsComplete())
}

func TestComponents_SplitAtContradiction(t *testing.T) {
	d := diagram.New()
	a := d.AddNode(diagram.Principal)
	b := d.AddNode(diagram.Principal)
	c := d.AddNode(diagram.Principal)
	d.Link(a, b)
	assert.Equal(t, [][]core.NodeID{{a, b}, {c}}, d.Components())

	d.Insert(b, c, arrow.Empty)
	assert.Equal(t, [][]core.NodeID{{a, b}, {c}}, d.Components(), "empty labels do not connect")

	d.Link(a, c)
	assert.Equal(t, [][]core.NodeID{{a, b, c}}, d.Components())
}
