// SPDX-License-Identifier: MIT

package diagram

import (
	"fmt"
	"strings"
)

// String lists the nodes with their roles, then one line per labelled pair
// (lower id first) in glyph form.
func (d *Diagram) String() string {
	var sb strings.Builder
	for id, r := range d.roles {
		fmt.Fprintf(&sb, "%d:%c", id, r.letter())
		if id+1 < len(d.roles) {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')
	for _, e := range d.graph.Edges() {
		if e.From > e.To {
			continue
		}
		fmt.Fprintf(&sb, "%d %s %d\n", e.From, e.Rel, e.To)
	}
	return sb.String()
}

// DOT renders the diagram as a Graphviz digraph called name. Principal nodes
// are double circles, partitions are boxes, and empty labels are drawn red.
func (d *Diagram) DOT(name string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph %q {\n", name)
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	for id, r := range d.roles {
		shape := "circle"
		switch r {
		case Principal:
			shape = "doublecircle"
		case Partition:
			shape = "box"
		}
		fmt.Fprintf(&sb, "  n%d [label=\"%d%c\" shape=%s];\n", id, id, r.letter(), shape)
	}
	sb.WriteString("\n")

	for _, e := range d.graph.Edges() {
		if e.From > e.To {
			continue
		}
		attrs := fmt.Sprintf("label=%q", e.Rel.Symbols())
		if e.Rel.IsEmpty() {
			attrs += " color=red fontcolor=red"
		}
		fmt.Fprintf(&sb, "  n%d -> n%d [%s];\n", e.From, e.To, attrs)
	}

	sb.WriteString("}\n")
	return sb.String()
}
