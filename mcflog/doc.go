// Package mcflog provides structured solve-progress logging for
// mcf.Solver. Logger implements mcf.Tracer, so attaching one via
// SetTracer turns every ε-phase, relabel, and terminal status into a
// structured log record — pure observability, never consulted by the
// solver's own control flow (spec.md §5).
//
// Grounded on Hola-to-network_logistics_problem/pkg/logger: a
// log/slog.Logger over a configurable writer, with
// gopkg.in/natefinch/lumberjack.v2 providing rotation when logging to a
// file for long-running batch solves.
package mcflog
