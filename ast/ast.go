// SPDX-License-Identifier: MIT

package ast

import (
	"fmt"
	"strings"
)

// Pos is a 1-based source position. The zero Pos means "unknown".
type Pos struct {
	Line, Col int
}

// IsValid reports whether p carries a position.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// AgentID indexes System.Agents.
type AgentID int

// Var indexes the Vars of the enclosing rule or net.
type Var int

// System is one parsed source file.
type System struct {
	Agents []AgentDef
	Rules  []RuleDef
	Nets   []NetDef
}

// AgentDef declares an agent: one principal port plus auxiliary ports
// grouped into partitions. Groups holds the size of each group.
type AgentDef struct {
	Name   string
	Groups []int
	Pos    Pos
}

// Arity is the number of auxiliary ports.
func (a AgentDef) Arity() int {
	n := 0
	for _, g := range a.Groups {
		n += g
	}
	return n
}

// Node is one agent occurrence with its port bindings.
type Node struct {
	Agent AgentID
	Ports []Var
	Pos   Pos
}

// RuleDef rewrites the redex A B into Result.
type RuleDef struct {
	A, B   Node
	Result []Node
	Vars   []string
	Pos    Pos
}

// NetDef is a named net with external ports grouped into partitions.
type NetDef struct {
	Name  string
	Ports [][]Var
	Nodes []Node
	Vars  []string
	Pos   Pos
}

// Lookup returns the id of the agent called name.
func (s *System) Lookup(name string) (AgentID, bool) {
	for i := range s.Agents {
		if s.Agents[i].Name == name {
			return AgentID(i), true
		}
	}
	return 0, false
}

// Agent returns the declaration behind id, or false when id is out of range.
func (s *System) Agent(id AgentID) (AgentDef, bool) {
	if id < 0 || int(id) >= len(s.Agents) {
		return AgentDef{}, false
	}
	return s.Agents[id], true
}

// AgentName returns the name behind id, or "A<id>" when id is unknown.
func (s *System) AgentName(id AgentID) string {
	if a, ok := s.Agent(id); ok {
		return a.Name
	}
	return fmt.Sprintf("A%d", int(id))
}

// RuleName keys a rule by the pair of agents it rewrites, "A B".
func (s *System) RuleName(r RuleDef) string {
	return s.AgentName(r.A.Agent) + " " + s.AgentName(r.B.Agent)
}

// VarName returns the source name of v in vars, or "v<id>".
func VarName(vars []string, v Var) string {
	if v >= 0 && int(v) < len(vars) {
		return vars[v]
	}
	return fmt.Sprintf("v%d", int(v))
}

// FormatNode renders n as it would be written in source.
func (s *System) FormatNode(n Node, vars []string) string {
	var sb strings.Builder
	sb.WriteString(s.AgentName(n.Agent))
	sb.WriteByte('(')
	for i, v := range n.Ports {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(VarName(vars, v))
	}
	sb.WriteByte(')')
	return sb.String()
}
