// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/builder"
	"github.com/katalvlaran/simplicity/core"
)

func TestChain(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Chain(4, arrow.Before))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount(), "three links, mirrored")

	rel, ok := g.Edge(2, 3)
	require.True(t, ok)
	assert.Equal(t, arrow.Before, rel)
	rel, _ = g.Edge(3, 2)
	assert.Equal(t, arrow.After, rel)
	assert.False(t, g.HasEdge(0, 3))
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Cycle(3, arrow.Same))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 0))
}

func TestStarAndBridge(t *testing.T) {
	g, err := builder.BuildNetwork(nil,
		builder.Star(3, arrow.MuchAfter),
		builder.Chain(2, arrow.Before),
		builder.Bridge(1, 4, arrow.Same),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())

	hub, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2, 3}, hub)

	// the chain starts after the star.
	assert.True(t, g.HasEdge(4, 5))
	assert.True(t, g.HasEdge(1, 4))
}

func TestBridge_OutsideArena(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Chain(2, arrow.Before), builder.Bridge(0, 7, arrow.Same))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomNetwork_Deterministic(t *testing.T) {
	build := func(seed int64) []core.Edge[arrow.Arrow] {
		g, err := builder.BuildNetwork(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomNetwork(15, 0.3),
		)
		require.NoError(t, err)
		assert.Equal(t, 15, g.NodeCount())
		return g.Edges()
	}
	assert.Equal(t, build(5), build(5))
	assert.NotEqual(t, build(5), build(6))
}

func TestRandomNetwork_Labels(t *testing.T) {
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(9)))},
		builder.RandomNetwork(20, 1),
	)
	require.NoError(t, err)
	assert.Equal(t, 20*19, g.EdgeCount(), "p=1 labels every pair")
	for _, e := range g.Edges() {
		assert.False(t, e.Rel.IsEmpty())
		assert.False(t, e.Rel.IsFull())
	}
}

func TestRandomNetwork_RelationFn(t *testing.T) {
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{
			builder.WithSeed(1),
			builder.WithRelationFn(func(*rand.Rand) arrow.Arrow { return arrow.Before }),
		},
		builder.RandomNetwork(5, 1),
	)
	require.NoError(t, err)
	rel, _ := g.Edge(1, 3)
	assert.Equal(t, arrow.Before, rel)
}

func TestBuildNetwork_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"chain too short", builder.Chain(1, arrow.Before), nil, builder.ErrTooFewNodes},
		{"cycle too short", builder.Cycle(2, arrow.Before), nil, builder.ErrTooFewNodes},
		{"star without leaves", builder.Star(0, arrow.Before), nil, builder.ErrTooFewNodes},
		{"random empty", builder.RandomNetwork(0, 0.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewNodes},
		{"random probability", builder.RandomNetwork(3, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"random without rng", builder.RandomNetwork(3, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildNetwork(tc.opts, tc.con)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestApply_ExtendsExistingGraph(t *testing.T) {
	g := core.NewGraph[arrow.Arrow]()
	g.AddNode()
	require.NoError(t, builder.Apply(g, nil, builder.Chain(2, arrow.Before)))
	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.HasEdge(1, 2))
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithRelationFn(nil) })
}
