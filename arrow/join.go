// SPDX-License-Identifier: MIT
// Package: simplicity/arrow
//
// join.go - relational composition over the canonical atomic table.

package arrow

// canonical lists the atomic compositions (α, β → γ). The lifted operator
// tests β through its converse against the right operand, and additionally
// evaluates every row with operands and result conversed and swapped so the
// opposite traversal order is covered.
var canonical = [...]struct{ a, b, c Arrow }{
	{MuchAfter, MuchAfter, Empty},
	{After, MuchAfter, After | MuchAfter},
	{After, After, MuchBefore | Before | After | MuchAfter},
	{Same, MuchAfter, MuchBefore | Before | Same},
	{Same, After, MuchBefore | Before | Same},
	{Same, Same, Full},
	{Before, MuchAfter, Before},
	{Before, After, Before},
	{Before, Same, Same},
	{Before, Before, Full},
	{MuchBefore, MuchAfter, Before},
	{MuchBefore, After, Before},
	{MuchBefore, Same, Same},
	{MuchBefore, Before, Same | After | MuchAfter},
	{MuchBefore, MuchBefore, Same},
}

// joinTable[a][b] holds the unioned composition of every pair of 5-bit sets.
var joinTable = buildJoinTable()

func buildJoinTable() (t [Full + 1][Full + 1]Arrow) {
	for a := Arrow(0); a <= Full; a++ {
		for b := Arrow(0); b <= Full; b++ {
			t[a][b] = compose(a, b)
		}
	}
	return t
}

// compose evaluates the lifted table for one pair of sets.
func compose(x, y Arrow) Arrow {
	var out Arrow
	for _, row := range canonical {
		a, b, c := row.a, row.b.converse(), row.c
		if x&a != 0 && y&b != 0 {
			out |= c
		}
		// conversed and swapped: (b̄̄, ā) → c̄
		a, b = b.converse(), a.converse()
		if x&a != 0 && y&b != 0 {
			out |= c.converse()
		}
	}
	return out
}

// Join composes a with o: given x–a–y and y–o–z it returns the relations x–z
// may hold. ok is false when the composition carries no new information,
// either because an operand is already contradictory or because the result
// is Full.
func (a Arrow) Join(o Arrow) (Arrow, bool) {
	a, o = a&Full, o&Full
	if a == Empty || o == Empty {
		return Empty, false
	}
	r := joinTable[a][o]
	if r == Full {
		return Empty, false
	}
	return r, true
}

// JoinOr composes a with o and substitutes fallback when Join has nothing to
// say. JoinOr(Full) is the total-uncertainty reading used by fixpoint checks.
func (a Arrow) JoinOr(o, fallback Arrow) Arrow {
	if r, ok := a.Join(o); ok {
		return r
	}
	return fallback
}
