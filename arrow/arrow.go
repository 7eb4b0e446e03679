// SPDX-License-Identifier: MIT
// Package: simplicity/arrow
//
// arrow.go - the Arrow relation set and its Boolean operators.

package arrow

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Arrow is a set of atomic port-adjacency relations encoded as a 5-bit mask.
type Arrow uint8

// Atomic relations, from "much-after" up to "much-before".
const (
	MuchAfter  Arrow = 1 << iota // ≫
	After                        // ≻
	Same                         // ≈
	Before                       // ≺
	MuchBefore                   // ≪
)

const (
	// Empty is the contradictory relation: no atom is possible.
	Empty Arrow = 0

	// Full is total uncertainty: every atom is possible.
	Full Arrow = MuchBefore | Before | Same | After | MuchAfter

	// width is the number of atoms in the domain.
	width = 5
)

// ErrBadGlyphs is returned by ParseArrow for malformed input.
var ErrBadGlyphs = errors.New("arrow: malformed glyph string")

// atoms lists the domain in display order (≪ first).
var atoms = [width]Arrow{MuchBefore, Before, Same, After, MuchAfter}

// glyphs are the per-position characters used by String and ParseArrow.
var glyphs = [width]byte{'<', '<', '*', '>', '>'}

// symbols are the Unicode names used by Symbols.
var symbols = [width]string{"≪", "≺", "≈", "≻", "≫"}

// Converse reverses the direction sense of every atom: ≪↔≫, ≺↔≻, ≈ fixed.
// It is total, so the second result is always true; the signature matches
// core.Relation, where other algebras may leave a converse undefined.
func (a Arrow) Converse() (Arrow, bool) {
	return a.converse(), true
}

func (a Arrow) converse() Arrow {
	return Arrow(bits.Reverse8(uint8(a&Full)) >> (8 - width))
}

// Merge intersects a with o. Both constraints must hold afterwards.
func (a Arrow) Merge(o Arrow) Arrow {
	return a & o
}

// Has reports whether every atom of o is contained in a.
func (a Arrow) Has(o Arrow) bool {
	return a&o == o
}

// Count returns the number of atoms in a.
func (a Arrow) Count() int {
	return bits.OnesCount8(uint8(a & Full))
}

// IsEmpty reports whether a is the contradictory relation.
func (a Arrow) IsEmpty() bool { return a&Full == Empty }

// IsFull reports whether a carries no information.
func (a Arrow) IsFull() bool { return a&Full == Full }

// Atoms splits a into its atomic relations, ≪ first.
func (a Arrow) Atoms() []Arrow {
	out := make([]Arrow, 0, a.Count())
	for _, x := range atoms {
		if a&x != 0 {
			out = append(out, x)
		}
	}
	return out
}

// String renders a as five glyphs, ≪ first, e.g. "<<---" for {≪,≺}.
func (a Arrow) String() string {
	var sb strings.Builder
	sb.Grow(width)
	for i, x := range atoms {
		if a&x != 0 {
			sb.WriteByte(glyphs[i])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Symbols renders a in set notation, e.g. "{≪,≺}" or "∅".
func (a Arrow) Symbols() string {
	if a.IsEmpty() {
		return "∅"
	}
	parts := make([]string, 0, width)
	for i, x := range atoms {
		if a&x != 0 {
			parts = append(parts, symbols[i])
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ParseArrow is the inverse of String. It accepts exactly five characters,
// each either the position's glyph or '-'.
func ParseArrow(s string) (Arrow, error) {
	if len(s) != width {
		return Empty, fmt.Errorf("%w: %q has length %d, want %d", ErrBadGlyphs, s, len(s), width)
	}
	var a Arrow
	for i := 0; i < width; i++ {
		switch s[i] {
		case glyphs[i]:
			a |= atoms[i]
		case '-':
		default:
			return Empty, fmt.Errorf("%w: %q position %d: got %q, want %q or '-'",
				ErrBadGlyphs, s, i, s[i], glyphs[i])
		}
	}
	return a, nil
}

// MarshalText encodes a in glyph form, so JSON reports read "--->>".
func (a Arrow) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (a *Arrow) UnmarshalText(b []byte) error {
	v, err := ParseArrow(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
