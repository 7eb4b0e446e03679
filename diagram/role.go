// SPDX-License-Identifier: MIT

package diagram

import (
	"strconv"

	"github.com/katalvlaran/simplicity/arrow"
)

// Role tags a diagram node. It is fixed when the node is created.
type Role uint8

const (
	// Principal is an agent's principal port, or a free port.
	Principal Role = iota
	// Auxiliary is an agent's auxiliary port.
	Auxiliary
	// Partition groups the ports of one auxiliary group.
	Partition
)

func (r Role) String() string {
	switch r {
	case Principal:
		return "principal"
	case Auxiliary:
		return "auxiliary"
	case Partition:
		return "partition"
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// letter is the one-character tag used by String and DOT.
func (r Role) letter() byte {
	switch r {
	case Principal:
		return 'P'
	case Auxiliary:
		return 'A'
	}
	return 'Q'
}

// Structural relations.
const (
	toPartition = arrow.MuchAfter
	toPort      = arrow.After | arrow.MuchAfter
)

// wire returns the relation from the first to the second occurrence of a
// variable. Partition endpoints have no wiring relation.
func wire(a, b Role) (arrow.Arrow, bool) {
	switch {
	case a == Partition || b == Partition:
		return arrow.Empty, false
	case a == Principal && b == Principal:
		return arrow.Same, true
	case a == Principal:
		return arrow.MuchBefore | arrow.Before, true
	default:
		return arrow.After | arrow.MuchAfter, true
	}
}
