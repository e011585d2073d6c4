// Package dimacs reads and writes the DIMACS "min" minimum-cost-flow
// file format: a problem line, a run of node-supply lines, and a run of
// arc lines.
//
//	p min N M
//	n i b_i
//	a u v l c w
//
// N is the node count, M the arc count; i, u, v are 1-indexed node
// numbers; b_i is node i's supply (omitted lines default to 0); an arc
// line gives its tail u, head v, lower bound l, capacity c (the upper
// bound), and per-unit cost w. This is out-of-core tooling, not part of
// the solver itself (spec.md §6, "the core does not parse"): it exists
// so cmd/mcfsolve can read real instances and round-trip solved ones
// back out.
package dimacs
