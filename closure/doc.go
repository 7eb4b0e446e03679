// Package closure saturates a core.Graph under relational composition:
// incremental path consistency driven by a worklist of dirty node pairs.
//
// What
//
//   - Repeatedly composes labels along two-edge paths a→b→c and intersects the
//     result into a→c, until no label can be narrowed further.
//   - Generic over the relation type (core.Relation) and over the composition
//     policy (Compose), so any finite relation algebra can be saturated.
//   - Returns Stats describing the work done.
//
// Algorithm
//
//	dirty ← every pair {a,b} joined by a label
//	while dirty ≠ ∅:
//	    {a,b} ← pop(dirty)
//	    for (x,y) in [(a,b), (b,a)]:
//	        for c in Neighbors(y), c ≠ x:
//	            cand, ok ← compose(x, R(x,y), y, R(y,c), c)
//	            if ok and R(x,c) ∩ cand ≠ R(x,c):
//	                R(x,c) ← R(x,c) ∩ cand   (mirrored onto c→x)
//	                dirty ← dirty ∪ {{x,c}}
//
// The worklist is a FIFO queue plus a membership set, so a pair is queued at
// most once at a time. No recursion is involved, and stack depth does not
// grow with the graph.
//
// Why it terminates
//
//	Every update strictly narrows one label of a finite lattice and nothing
//	ever widens a label. The number of updates is therefore bounded by
//	(node pairs) × (lattice height), and no iteration limit is needed.
//
// Contradictions
//
//	A label narrowed to the algebra's bottom is stored like any other value.
//	Saturate does not look for it and does not stop early; the caller
//	inspects the saturated graph.
//
// Options
//
//   - DefaultOptions(): skip x→y→x paths, no-op hooks.
//   - WithSelfLoops():   hand x→y→x paths to the compose callback too.
//   - WithOnNarrow(fn):  called after every label change a→c.
//   - WithOnDequeue(fn): called for every pair taken off the worklist.
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrComposeNil if the compose callback is nil.
//
// Complexity (V = nodes, d = max degree, h = lattice height)
//
//   - Time:   O(V² · h · d) compositions in the worst case.
//   - Memory: O(V²) for the worklist membership set.
package closure
