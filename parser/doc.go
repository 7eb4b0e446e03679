// Package parser reads the agent/rule/net description language into an
// ast.System.
//
// Grammar:
//
//	file      := { agentDef | ruleDef | netDef }
//	agentDef  := "agent" Ident "(" "*" [ "," partition("*") ] ")"
//	ruleDef   := "rule" node node "{" { node } "}"
//	netDef    := "net" Ident "(" [ partition(Ident) ] ")" "{" { node } "}"
//	node      := Ident "(" [ Ident { "," Ident } ] ")"
//	partition := group { "," group }
//	group     := X | "{" X { "," X } "}"
//
// Line comments (//) and block comments (/* */) are skipped.
//
// Besides syntax, Parse enforces what the diagram builder relies on:
//   - agents are declared once, before their first use;
//   - every node binds exactly as many ports as its agent declares
//     (a rule's two root nodes list auxiliary ports only);
//   - every variable of a rule or net is used exactly twice.
//
// All failures are *Error values carrying a position and wrapping one of the
// sentinel errors, so callers can branch with errors.Is.
package parser
