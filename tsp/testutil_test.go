// Package tsp_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating production functionality — except for
// bruteForce, which is the independent oracle the solver is checked against.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsCost is the tolerance for cost comparisons; production costs are
	// stabilized to 1e-9, so 1e-6 gives comfortable slack.
	epsCost = 1e-6

	// startV is the canonical start vertex used across tests.
	startV = 0
)

// unitSquare returns the four corners of the unit square in walking order;
// the optimal tour visits them in square order with total distance 4.0.
func unitSquare() []tsp.City {
	return []tsp.City{
		{Label: "A", X: 0, Y: 0},
		{Label: "B", X: 0, Y: 1},
		{Label: "C", X: 1, Y: 1},
		{Label: "D", X: 1, Y: 0},
	}
}

// triangle345 returns a right triangle with side lengths 3, 4, 5; every tour
// has cost 12.
func triangle345() []tsp.City {
	return []tsp.City{
		{Label: "P", X: 0, Y: 0},
		{Label: "Q", X: 3, Y: 0},
		{Label: "R", X: 0, Y: 4},
	}
}

// mustMatrix builds the distance matrix for cities or fails the test.
func mustMatrix(t *testing.T, cities []tsp.City) *matrix.Dense {
	t.Helper()
	d, err := tsp.BuildDistanceMatrix(cities)
	if err != nil {
		t.Fatalf("BuildDistanceMatrix failed: %v", err)
	}

	return d
}

// bruteForce enumerates every permutation anchored at start and returns the
// minimum closed-tour cost. Independent of the solver: it only relies on
// Distance. Usable up to n≈9.
func bruteForce(cities []tsp.City, start int) float64 {
	var (
		n    = len(cities)
		rest = make([]int, 0, n-1)
		i    int
	)
	for i = 0; i < n; i++ {
		if i != start {
			rest = append(rest, i)
		}
	}

	best := math.Inf(1)

	var walk func(prev int, remaining []int, acc float64)
	walk = func(prev int, remaining []int, acc float64) {
		if len(remaining) == 0 {
			total := acc + tsp.Distance(cities[prev], cities[start])
			if total < best {
				best = total
			}

			return
		}
		var j int
		for j = range remaining {
			next := remaining[j]
			remaining[j] = remaining[len(remaining)-1]
			walk(next, remaining[:len(remaining)-1], acc+tsp.Distance(cities[prev], cities[next]))
			remaining[j] = next
		}
	}
	walk(start, rest, 0)

	return best
}

// requireOptimal solves cities and asserts the result matches bruteForce and
// that the reported cost equals the tour length of the reported path.
func requireOptimal(t *testing.T, cities []tsp.City, opts ...tsp.Option) tsp.Result {
	t.Helper()
	s, err := tsp.NewSolver(cities, opts...)
	if err != nil {
		t.Fatalf("NewSolver failed: %v", err)
	}
	res := s.Solve(nil)
	if res.Cancelled {
		t.Fatal("uncancelled run reported Cancelled")
	}

	want := bruteForce(cities, res.Path[0])
	if math.Abs(res.Cost-want) > epsCost {
		t.Fatalf("cost mismatch: got=%.9f want=%.9f", res.Cost, want)
	}

	tl, err := tsp.TourLength(mustMatrix(t, cities), res.Path)
	if err != nil {
		t.Fatalf("TourLength failed on returned path %v: %v", res.Path, err)
	}
	if math.Abs(tl-res.Cost) > epsCost {
		t.Fatalf("incumbent bookkeeping drifted: tourLength=%.9f cost=%.9f", tl, res.Cost)
	}

	return res
}

// requireValidPath asserts path is a permutation starting at start.
func requireValidPath(t *testing.T, path []int, n, start int) {
	t.Helper()
	if len(path) != n {
		t.Fatalf("path length %d, want %d", len(path), n)
	}
	if path[0] != start {
		t.Fatalf("path starts at %d, want %d", path[0], start)
	}
	seen := make([]bool, n)
	var v int
	for _, v = range path {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("path %v is not a permutation of 0..%d", path, n-1)
		}
		seen[v] = true
	}
}
