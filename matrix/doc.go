// Package matrix provides a dense, integer-valued matrix used (in square
// form) as the distance model for the tsp package. It is a narrowed, integer-only
// descendant of a general linear-algebra Matrix abstraction: TSP instances
// in this repository are defined over non-negative integer edge costs
// (spec §3), so the float64 machinery needed for metric closure, spectral
// analysis, or iterative solvers has no role here and was trimmed away.
//
// What remains is intentionally small:
//
//   - Matrix: the read/write interface (Rows, Cols, At, Set).
//   - Dense: a flat []int64 row-major implementation.
//   - Strict sentinel errors for shape and range violations.
package matrix
