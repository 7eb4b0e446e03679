// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[arrow.Arrow]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[arrow.Arrow]()
}

func (s *GraphSuite) TestInsertMirrorsConverse() {
	require := require.New(s.T())
	s.g.Insert(0, 1, arrow.MuchBefore|arrow.Before)

	ab, ok := s.g.Edge(0, 1)
	require.True(ok)
	require.Equal(arrow.MuchBefore|arrow.Before, ab)

	ba, ok := s.g.Edge(1, 0)
	require.True(ok, "reverse label must be created")
	require.Equal(arrow.After|arrow.MuchAfter, ba)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestInsertNarrows() {
	require := require.New(s.T())
	s.g.Insert(0, 1, arrow.Full)
	s.g.Insert(0, 1, arrow.Before|arrow.Same)
	s.g.Insert(1, 0, arrow.After|arrow.MuchAfter)

	ab, _ := s.g.Edge(0, 1)
	require.Equal(arrow.Before, ab, "both directions must narrow the same pair")
	ba, _ := s.g.Edge(1, 0)
	require.Equal(arrow.After, ba)
	require.Equal(2, s.g.EdgeCount(), "narrowing never adds labels")
}

func (s *GraphSuite) TestContradictionIsKept() {
	require := require.New(s.T())
	s.g.Insert(0, 1, arrow.Before)
	s.g.Insert(0, 1, arrow.After)

	ab, ok := s.g.Edge(0, 1)
	require.True(ok, "an empty label is stored, not deleted")
	require.Equal(arrow.Empty, ab)
}

// TestInsertMonotone: repeated random inserts never grow a pair's set.
func (s *GraphSuite) TestInsertMonotone() {
	require := require.New(s.T())
	rng := rand.New(rand.NewSource(42))
	const n = 6
	for i := 0; i < 500; i++ {
		a := core.NodeID(rng.Intn(n))
		b := core.NodeID(rng.Intn(n))
		if a == b {
			continue
		}
		before, had := s.g.Edge(a, b)
		s.g.Insert(a, b, arrow.Arrow(rng.Intn(int(arrow.Full)+1)))
		after, _ := s.g.Edge(a, b)
		if had {
			require.LessOrEqual(after.Count(), before.Count())
			require.True(before.Has(after), "%v must contain %v", before, after)
		}
		rev, ok := s.g.Edge(b, a)
		require.True(ok)
		want, _ := after.Converse()
		require.Equal(want, rev, "mirroring invariant broken for %d,%d", a, b)
	}
}

func (s *GraphSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	s.g.Insert(2, 7, arrow.Same)
	s.g.Insert(2, 0, arrow.Same)
	s.g.Insert(2, 4, arrow.Same)

	nbs, err := s.g.Neighbors(2)
	require.NoError(err)
	require.Equal([]core.NodeID{0, 4, 7}, nbs)

	nbs, err = s.g.Neighbors(1)
	require.NoError(err)
	require.Nil(nbs, "isolated node has no neighbours")

	_, err = s.g.Neighbors(99)
	require.True(errors.Is(err, core.ErrNodeNotFound))
}

func (s *GraphSuite) TestEdgesAndFind() {
	require := require.New(s.T())
	s.g.Insert(1, 2, arrow.Before)
	s.g.Insert(0, 1, arrow.MuchAfter)
	s.g.Insert(1, 2, arrow.After) // contradiction on 1↔2

	edges := s.g.Edges()
	require.Len(edges, 4)
	require.Equal(core.Edge[arrow.Arrow]{From: 0, To: 1, Rel: arrow.MuchAfter}, edges[0])
	require.Equal(core.Edge[arrow.Arrow]{From: 1, To: 0, Rel: arrow.MuchBefore}, edges[1])
	require.Equal(core.NodeID(2), edges[2].To)
	require.Equal(core.NodeID(2), edges[3].From)

	empty := s.g.Find(func(e core.Edge[arrow.Arrow]) bool { return e.Rel.IsEmpty() })
	require.Len(empty, 2)
	require.Equal(core.NodeID(1), empty[0].From)
	require.Equal(core.NodeID(2), empty[1].From)
}

func (s *GraphSuite) TestEdgeOutsideArena() {
	_, ok := s.g.Edge(5, 6)
	s.False(ok)
	s.False(s.g.HasEdge(5, 6))
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	s.g.Insert(0, 1, arrow.Full)
	s.g.Extend(4)

	c := s.g.Clone()
	require.Equal(s.g.NodeCount(), c.NodeCount())
	require.Equal(s.g.Edges(), c.Edges())

	c.Insert(0, 1, arrow.Same)
	c.Insert(2, 3, arrow.Same)
	orig, _ := s.g.Edge(0, 1)
	require.Equal(arrow.Full, orig, "clone mutation leaked into source")
	require.False(s.g.HasEdge(2, 3))
	require.Equal(2, s.g.EdgeCount())
	require.Equal(4, c.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestInsert_UndefinedConverse: without a converse no reverse label is
// forced, but the destination still exists.
func TestInsert_UndefinedConverse(t *testing.T) {
	g := core.NewGraph[oneWay]()
	g.Insert(0, 3, 0b11)

	require.True(t, g.HasEdge(0, 3))
	require.False(t, g.HasEdge(3, 0))
	require.True(t, g.HasNode(3))
	require.Equal(t, 1, g.EdgeCount())

	g.Insert(0, 3, 0b10)
	rel, _ := g.Edge(0, 3)
	require.Equal(t, oneWay(0b10), rel)
}

// TestInsert_OtherAlgebra runs the graph over a symmetric toy algebra.
func TestInsert_OtherAlgebra(t *testing.T) {
	g := core.NewGraph[sym]()
	g.Insert(1, 0, 0b101)
	ab, _ := g.Edge(0, 1)
	ba, _ := g.Edge(1, 0)
	require.Equal(t, sym(0b101), ab)
	require.Equal(t, ab, ba)
}
