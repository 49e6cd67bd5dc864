// Package tspbb is an exact Travelling Salesman solver built on
// Branch-and-Bound over reduced cost matrices.
//
// 🚀 What is tspbb?
//
//	A small, deterministic, headless library that brings together:
//		• Dense cost matrices with row/column reduction primitives
//		• Admissible lower bounds via reduced-matrix bound estimation
//		• Best-first Branch-and-Bound with deterministic tie-breaking
//		• Cooperative cancellation and live progress statistics
//
// ✨ Why choose tspbb?
//
//   - Exact – returns the provably optimal tour, not an approximation
//   - Deterministic – identical input yields identical tour, cost and stats
//   - Headless – no UI, no I/O; a progress callback is the only outward edge
//   - Pure computation core – structured logging lives in an opt-in adapter
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/   — dense float64 matrices + cost-matrix reduction
//	tsp/      — cities, distance model, the Branch-and-Bound engine
//	progress/ — zerolog adapter for the solver's progress callback
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	four cities on a unit square; the optimal tour walks the square
//	(cost 4.0), and tsp.NewSolver(...).Solve(ctx) finds exactly that.
//
// Dive into the package docs of tsp/ for the full engine contract:
// admissibility of the bound, pruning rules, and statistics cadence.
//
//	go get github.com/katalvlaran/tspbb
package tspbb
