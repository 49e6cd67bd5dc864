// Package tsp - the distance model.
//
// Pure functions from city coordinates to the dense cost matrix the engine
// searches over. The matrix convention is matrix[i][i] = +Inf (self-loops
// forbidden); off-diagonal entries are Euclidean distances. The engine never
// assumes symmetry even though Euclidean input is symmetric.

package tsp

import (
	"math"

	"github.com/katalvlaran/tspbb/matrix"
)

// Distance returns the Euclidean distance between two cities.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// BuildDistanceMatrix constructs the n×n cost matrix for the given cities:
// diagonal +Inf, off-diagonal Euclidean distances.
//
// Contract:
//   - len(cities) ≥ 2 (ErrTooFewCities otherwise).
//   - Coordinates are assumed finite; NewSolver validates them upfront.
//   - The returned matrix is freshly allocated and owned by the caller.
//
// Complexity: O(n²) time and memory.
func BuildDistanceMatrix(cities []City) (*matrix.Dense, error) {
	var n = len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}

	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		inf  = math.Inf(1)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				_ = d.Set(i, j, inf) // indices are in range by construction
				continue
			}
			_ = d.Set(i, j, Distance(cities[i], cities[j]))
		}
	}

	return d, nil
}
