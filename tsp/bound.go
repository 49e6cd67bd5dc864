// Package tsp - the lower-bound estimator.
//
// Committing to an edge src→dest from a partial tour produces a new cost
// matrix and an admissible bound in one pass:
//
//  1. Clone the parent node's reduced matrix.
//  2. Invalidate row src (the tour never leaves src again).
//  3. Invalidate column dest (the tour never enters dest again).
//  4. Invalidate cell (dest, start) — the premature return to the start city
//     before all cities are visited. This poke is correctness-critical:
//     without it the reduction could count a degenerate short cycle and the
//     bound would lose its admissibility guarantee.
//  5. Reduce the clone (matrix.ReduceInPlace) and collect the reduction cost.
//
// bound = currentCost + parent[src][dest] + reductionCost.
//
// The edge weight is read from the parent matrix BEFORE invalidation, and the
// invalidated-and-reduced clone becomes the child node's private matrix — the
// child performs no second independent reduction. Because reductions only
// ever charge costs that any completion must pay, the bound never
// overestimates the true cost of the cheapest completion committing to
// src→dest; at full depth the accumulated value equals the exact cycle cost,
// the closing edge included, which is why the goal check adds nothing.

package tsp

import (
	"math"

	"github.com/katalvlaran/tspbb/matrix"
)

// lowerBound computes the admissible bound of committing edge src→dest and
// returns it together with the reduced matrix the child node will own.
//
// Contract:
//   - parent is square, n ≥ 2; src, dest, start are in range (guaranteed by
//     the expansion loop, so element access cannot fail).
//   - parent is never mutated.
//
// Complexity: O(n²) time and memory (one clone + one reduction).
func lowerBound(parent *matrix.Dense, currentCost float64, src, dest, start int) (float64, *matrix.Dense) {
	var inf = math.Inf(1)

	// Edge weight from the pre-invalidation matrix.
	edge, _ := parent.At(src, dest) // in range by contract

	// Clone and invalidate: no leaving src, no re-entering dest, no
	// premature return to start.
	child := parent.CloneDense()
	_ = child.FillRow(src, inf)
	_ = child.FillCol(dest, inf)
	_ = child.Set(dest, start, inf)

	// Reduce the clone; the clone is square, so the error path is dead.
	rc, _ := matrix.ReduceInPlace(child)

	return currentCost + edge + rc, child
}
