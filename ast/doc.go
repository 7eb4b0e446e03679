// Package ast holds the abstract syntax of the agent/rule/net description
// language.
//
// A System is a flat list of agent declarations, rules and nets. Agents are
// referenced by AgentID (their index in System.Agents); variables are scoped
// per rule or net and referenced by Var (their index in that scope's Vars).
//
// Port conventions:
//   - a rule's two root nodes list auxiliary ports only (the principal ports
//     are the redex itself);
//   - every other node lists its principal port first, then its auxiliary
//     ports in declaration order.
//
// The parser produces a System; the diagram package consumes it. Values can
// also be built by hand, which is how the diagram tests describe rules.
package ast
