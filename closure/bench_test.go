package closure_test

import (
	"testing"

	"github.com/katalvlaran/simplicity/arrow"
	"github.com/katalvlaran/simplicity/builder"
	"github.com/katalvlaran/simplicity/closure"
)

func benchmarkSaturate(b *testing.B, n int, p float64) {
	g, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomNetwork(n, p),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		work := g.Clone()
		if _, err := closure.Saturate(work, join); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSaturate_Sparse30(b *testing.B) { benchmarkSaturate(b, 30, 0.1) }
func BenchmarkSaturate_Dense30(b *testing.B)  { benchmarkSaturate(b, 30, 0.5) }

func BenchmarkSaturate_Chain100(b *testing.B) {
	g, _ := builder.BuildNetwork(nil, builder.Chain(100, arrow.Before))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := closure.Saturate(g.Clone(), join); err != nil {
			b.Fatal(err)
		}
	}
}
