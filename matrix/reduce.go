// Cost-matrix reduction — the arithmetic core of the Branch-and-Bound bound.
//
// Reducing a cost matrix subtracts each row's minimum from the row and each
// column's minimum from the column, so that every finite row and column ends
// with a zero minimum. The total amount subtracted is a valid lower bound on
// the cost of any assignment that picks one cell per row and column, which is
// exactly how the TSP solver turns a partial tour's matrix into a bound.
//
// Order matters: columns are reduced AFTER rows, over the row-reduced
// intermediate. Reducing both against the original matrix would double-count.
//
// +Inf entries represent forbidden cells. A row or column whose minimum is
// +Inf is fully invalidated (its city is already committed); it is skipped —
// no subtraction, no cost contribution. Subtracting a finite minimum from a
// +Inf entry leaves it +Inf, so invalidated cells survive reduction intact.

package matrix

import "math"

// ReduceInPlace performs row reduction then column reduction on the square
// matrix d, mutating it, and returns the total reduction cost.
//
// Contract:
//   - d must be non-nil and square; entries are finite or +Inf, never NaN.
//   - After return (given no fully-invalid rows/cols), every row and every
//     column of d has a zero minimum.
//   - The returned cost equals the exact sum of all subtracted minima.
//
// Errors: ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n²) time, O(1) extra space.
func ReduceInPlace(d *Dense) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if d.r != d.c {
		return 0, ErrNonSquare
	}

	var (
		n    = d.r
		cost float64
		i, j int
		min  float64
		base int
	)

	// Stage 1: row reduction. Subtract each row's finite positive minimum
	// from every entry of the row (+Inf entries stay +Inf).
	for i = 0; i < n; i++ {
		base = i * n
		min = math.Inf(1)
		for j = 0; j < n; j++ {
			if d.data[base+j] < min {
				min = d.data[base+j]
			}
		}
		if min == 0 || math.IsInf(min, 1) {
			continue // already reduced, or fully invalidated row
		}
		for j = 0; j < n; j++ {
			d.data[base+j] -= min
		}
		cost += min
	}

	// Stage 2: column reduction over the row-reduced intermediate.
	for j = 0; j < n; j++ {
		min = math.Inf(1)
		for i = 0; i < n; i++ {
			if d.data[i*n+j] < min {
				min = d.data[i*n+j]
			}
		}
		if min == 0 || math.IsInf(min, 1) {
			continue
		}
		for i = 0; i < n; i++ {
			d.data[i*n+j] -= min
		}
		cost += min
	}

	return cost, nil
}

// Reduce is the pure variant of ReduceInPlace: it clones d, reduces the
// clone, and returns (reducedClone, reductionCost). The input is untouched.
//
// Complexity: O(n²) time and memory.
func Reduce(d *Dense) (*Dense, float64, error) {
	if d == nil {
		return nil, 0, ErrNilMatrix
	}
	out := d.CloneDense()
	cost, err := ReduceInPlace(out)
	if err != nil {
		return nil, 0, err
	}

	return out, cost, nil
}
