// Package tsp - tour utilities shared by the solver and its tests.
//
// TourLength is deliberately independent of Solver state: it recomputes a
// closed-cycle cost straight from a distance matrix, which makes it the
// natural cross-check for the engine's own bookkeeping (the incumbent cost
// must match the tour length of the incumbent path within float tolerance).
//
// Design:
//   - Strict sentinels from types.go on any invalid input; no panics.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform FP
//     noise without affecting optimality.

package tsp

import (
	"math"
	"strings"

	"github.com/katalvlaran/tspbb/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision. +Inf passes
// through unchanged.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// TourLength sums the closed cycle path[0] → path[1] → … → path[len-1] →
// path[0] over the given distance matrix. The path EXCLUDES the return edge
// (the wrap-around closes it), matching the Solver's output contract, so
// TourLength(dist, result.Path) is directly comparable to result.Cost.
//
// Contract:
//   - dist must be non-nil and square; path needs ≥ 2 entries, all within
//     [0..n-1] (ErrBadPath otherwise).
//   - every traversed cell must be finite (ErrMissingEdge otherwise; note
//     that repeating a city steps on the +Inf diagonal).
//
// Pure function: same inputs, same output, no state.
//
// Complexity: O(len(path)).
func TourLength(dist matrix.Matrix, path []int) (float64, error) {
	if dist == nil || dist.Rows() != dist.Cols() {
		return 0, ErrBadPath
	}
	if len(path) < 2 {
		return 0, ErrBadPath
	}

	var (
		n   = dist.Rows()
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i < len(path); i++ {
		u = path[i]
		v = path[(i+1)%len(path)]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrBadPath
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrBadPath
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrMissingEdge
		}
		sum += w
	}

	return round1e9(sum), nil
}

// PathString renders a path as its city labels joined by " → ",
// e.g. "Berlin → Prague → Wien". Display helper only; the engine never
// depends on labels.
//
// Complexity: O(len(path)).
func PathString(path []int, cities []City) (string, error) {
	var (
		labels = make([]string, len(path))
		i, idx int
	)
	for i, idx = range path {
		if idx < 0 || idx >= len(cities) {
			return "", ErrBadPath
		}
		labels[i] = cities[idx].Label
	}

	return strings.Join(labels, " → "), nil
}
