// Package simplicity checks interaction-net rules and nets for simplicity:
// whether their port-adjacency diagrams can be saturated without a
// contradiction.
//
// 🚀 What is simplicity?
//
//	A small, thread-safe toolkit that brings together:
//		• arrow: the five-atom relation algebra (≪ ≺ ≈ ≻ ≫) with converse and join
//		• core: a generic labelled graph that never widens a label
//		• closure: path-consistency saturation with hooks and statistics
//		• bfs: traversal and connected components over any core.Graph
//		• builder: deterministic and random constraint networks for tests
//		• ast, parser: the agent/rule/net source language
//		• diagram: role-aware diagrams built from rules and nets, plus verdicts
//		• check: concurrent, cached, instrumented checking of whole systems
//
// ✨ Command line
//
//	cmd/simplicity wraps check in a CLI:
//
//	simplicity check combinators.inet         # verdict per rule and net
//	simplicity check --json --dot out/ nets/  # JSON report plus DOT diagrams
//	simplicity check --watch nets/            # re-check on save
//	simplicity algebra -- '--->>' '<----'     # inspect the arrow algebra
//
// Under the hood the packages layer bottom-up:
//
//	arrow/    relation values
//	core/     Graph[E] storage
//	closure/  Saturate, Compose
//	bfs/      BFS, Components
//	diagram/  FromRule, FromNet, Complete, Simple
//	check/    Checker, Report, Verdict
//
// Quick start:
//
//	c, _ := check.New(check.WithWorkers(4))
//	rep, err := c.CheckFile(ctx, "combinators.inet")
//	if err == nil && !rep.Simple() {
//		for _, v := range rep.Verdicts {
//			fmt.Println(v.Kind, v.Name, v.Label())
//		}
//	}
package simplicity
