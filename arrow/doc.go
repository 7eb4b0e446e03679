// Package arrow implements the port-adjacency relation algebra used to decide
// whether an interaction-net rule or net is simple.
//
// What
//
//   - Arrow is a set of atomic relations over the ordered domain
//     {≪, ≺, ≈, ≻, ≫} ("much-before", "before", "same", "after", "much-after"),
//     stored as a 5-bit mask.
//   - Empty (0) means no relation is possible: a contradiction.
//   - Full (all five bits) means nothing is known.
//   - Three operators close the algebra:
//   - Converse: reverses the direction sense of every atom (bit reversal).
//   - Merge:    intersection of two independently derived constraints.
//   - Join:     relational composition a–R₁–b, b–R₂–c ⇒ a–R–c.
//
// Why
//
//   - Arrow satisfies core.Relation, so core.Graph and closure.Saturate can run
//     path consistency over it without knowing the domain.
//   - Join reports "no new information" instead of returning Full or a value
//     derived from an already contradictory operand, so the solver never
//     inserts maximally uncertain edges and never re-derives a contradiction
//     that is already recorded elsewhere.
//
// Bit layout
//
//	≪ 0b10000   ≺ 0b01000   ≈ 0b00100   ≻ 0b00010   ≫ 0b00001
//
// String renders the five positions from ≪ down to ≫ as "<<*>>", with '-' for
// an absent atom; Symbols renders the set form "{≪,≺}".
//
// Complexity
//
//   - Converse, Merge, Has, Count: O(1).
//   - Join: O(1) table lookup; the 32×32 table is built once at init from the
//     15 canonical atomic compositions.
//
// Usage
//
//	ab := arrow.After | arrow.MuchAfter
//	bc := arrow.Same
//	if ac, ok := ab.Join(bc); ok {
//		fmt.Println(ac) // --*>>
//	}
package arrow
