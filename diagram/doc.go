// Package diagram turns one rule or net into a constraint network over the
// arrow algebra and decides whether that network is consistent ("simple").
//
// What
//
//   - Every agent occurrence becomes one Principal node. Each auxiliary group
//     of the agent hangs off it as a Partition node (principal→partition ≫),
//     and every auxiliary port becomes a node under its partition
//     (partition→port {≻,≫}).
//   - Free ports (a rule's root auxiliary ports, a net's external ports) are
//     Principal nodes grouped under Partition nodes in the same way.
//   - A rule's two redex principals are linked ≈. A net's external ports
//     hang off one interface Principal node.
//   - Each variable links its two occurrence nodes with a relation chosen by
//     their roles:
//
//	first      second     relation
//	Principal  Principal  ≈
//	Principal  Auxiliary  {≪,≺}
//	Auxiliary  Principal  {≻,≫}
//	Auxiliary  Auxiliary  {≻,≫}
//
// Verdict
//
//	Complete saturates the network with closure.Saturate and arrow.Join.
//	IsContradictory reports an empty label anywhere; Simple is "saturated
//	and not contradictory". IsComplete re-checks every two-step path and
//	is meant for tests.
//
// Errors
//
//   - ErrUnknownAgent: a node refers to an agent the system does not declare.
//   - ErrPortArity:    a node binds the wrong number of ports.
//   - ErrVariableUse:  a variable does not occur exactly twice.
//
// The parser already rejects the last two; FromRule and FromNet check again
// because an ast.System may be built by hand.
//
// Linking a Partition node, or touching a node that AddNode never returned,
// is a programming error and panics.
//
// Usage
//
//	d, err := diagram.FromRule(sys, sys.Rules[0])
//	if err != nil {
//		return err
//	}
//	if _, err = d.Complete(); err != nil {
//		return err
//	}
//	fmt.Println(d.Simple())
package diagram
