// Package check drives the diagram builder over a whole ast.System and
// reports one Verdict per rule and per net.
//
// Rules and nets are independent: each gets its own diagram, saturated and
// inspected once. With WithWorkers(n) they are spread over n goroutines;
// verdicts always come back in source order (agents' rules first, then nets).
//
// A Checker logs through log/slog (one Debug record per verdict, one Info
// summary per run) and, when given a prometheus.Registerer, exports:
//
//	simplicity_checks_total{kind,verdict}  counter
//	simplicity_narrowings_total            counter
//	simplicity_diagram_nodes               histogram
//	simplicity_cache_hits_total            counter
//
// WithCache keeps the last n verdicts keyed by the structure of the rule or
// net, which makes repeated checks of a mostly unchanged file cheap (the CLI
// watch mode relies on this).
package check
