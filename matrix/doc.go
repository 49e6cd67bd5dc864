// Package matrix provides the dense float64 matrix primitives used by the
// Branch-and-Bound TSP engine: construction, bounds-checked element access,
// deep cloning, row/column invalidation, and cost-matrix reduction.
//
// Conventions:
//
//   - Matrices are row-major; Dense stores r*c elements in a flat slice.
//   - +Inf is a first-class value: it marks forbidden cells (self-loops,
//     already-used rows/columns). Reduction and minima computations skip it.
//   - All public entry points return sentinel errors (errors.go) instead of
//     panicking on user input. Panics are reserved for programmer errors.
//
// Reduction:
//
//	ReduceInPlace subtracts each row's finite minimum from the row, then each
//	column's finite minimum from the already row-reduced columns, returning
//	the total amount subtracted. The row-then-column order is load-bearing:
//	the column minima are taken over the row-reduced intermediate, which is
//	what makes the returned total a valid lower-bound contribution for the
//	assignment relaxation used by the solver.
//
// Complexity: all operations are O(r*c) time or better; ReduceInPlace makes
// exactly two passes over the data and allocates nothing.
package matrix
