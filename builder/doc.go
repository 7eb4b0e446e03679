// SPDX-License-Identifier: MIT
// Package: simplicity/builder
//
// Package builder assembles deterministic constraint-network fixtures over the
// arrow algebra: chains, cycles, stars and seeded random networks.
//
// The fixtures feed closure and diagram tests and benchmarks, where the same
// seed and constructor order must reproduce the same network.
//
// Usage:
//
//	g, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Chain(4, arrow.After|arrow.MuchAfter),
//		builder.RandomNetwork(10, 0.3),
//	)
//
// Every constructor appends its nodes after the ones already in the graph, so
// composing constructors yields disjoint components unless a constructor
// explicitly links to existing nodes (Bridge).
package builder
