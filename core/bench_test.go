package core_test

import (
	"testing"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/core"
)

// BenchmarkInsert measures mirrored inserts on a growing chain.
func BenchmarkInsert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph[arrow.Arrow](core.WithCapacity(1024))
		for v := core.NodeID(0); v < 1023; v++ {
			g.Insert(v, v+1, arrow.After|arrow.MuchAfter)
		}
	}
}

// BenchmarkNeighbors measures sorted neighbour snapshots on a star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph[arrow.Arrow]()
	for v := core.NodeID(1); v <= 256; v++ {
		g.Insert(0, v, arrow.MuchAfter)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}
