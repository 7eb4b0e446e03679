package check

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/simplicity/ast"
)

// ruleKey identifies a rule by its structure: agent names, their shapes and
// the variable ids. Renaming variables keeps the key.
func ruleKey(sys *ast.System, r ast.RuleDef) string {
	var sb strings.Builder
	sb.WriteString("rule")
	writeNode(&sb, sys, r.A)
	writeNode(&sb, sys, r.B)
	sb.WriteString(" {")
	for _, n := range r.Result {
		writeNode(&sb, sys, n)
	}
	sb.WriteString(" }")
	return sb.String()
}

func netKey(sys *ast.System, n ast.NetDef) string {
	var sb strings.Builder
	sb.WriteString("net ")
	sb.WriteString(n.Name)
	for _, g := range n.Ports {
		sb.WriteString(" [")
		writeVars(&sb, g)
		sb.WriteByte(']')
	}
	sb.WriteString(" {")
	for _, x := range n.Nodes {
		writeNode(&sb, sys, x)
	}
	sb.WriteString(" }")
	return sb.String()
}

func writeNode(sb *strings.Builder, sys *ast.System, n ast.Node) {
	def, _ := sys.Agent(n.Agent)
	sb.WriteByte(' ')
	sb.WriteString(def.Name)
	for _, g := range def.Groups {
		sb.WriteByte('/')
		sb.WriteString(strconv.Itoa(g))
	}
	sb.WriteByte('(')
	writeVars(sb, n.Ports)
	sb.WriteByte(')')
}

func writeVars(sb *strings.Builder, vars []ast.Var) {
	for i, v := range vars {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
}
