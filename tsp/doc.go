// Package tsp solves the Travelling Salesman Problem exactly with
// Branch-and-Bound over reduced cost matrices.
//
// The solver takes a list of labeled 2D cities, builds a Euclidean distance
// matrix with +Inf self-distances, and runs a best-first search over partial
// tours. Each search node owns a private reduced-cost matrix; committing an
// edge invalidates the source row, the destination column, and the premature
// return to the start city, then re-reduces — the accumulated reduction cost
// is an admissible lower bound on any completion of the partial tour.
//
// Guarantees:
//
//   - Exactness: the returned tour is optimal (equal to brute force on every
//     instance small enough to enumerate).
//   - Admissibility: a node's cost never exceeds the true cost of its
//     cheapest completion, which is what makes pruning safe.
//   - Determinism: the frontier is a min-heap keyed by (cost, push sequence);
//     equal-cost nodes pop in insertion order, so two runs on identical
//     input produce identical tours, costs, and statistics counters.
//
// Concurrency & control:
//
//   - Solve runs synchronously on the calling goroutine; there is no internal
//     parallelism. Wrap it in your own goroutine for responsiveness.
//   - Cancellation is cooperative: the context is checked at the top of each
//     main-loop iteration. A cancelled run returns the best incumbent found
//     so far (flagged Cancelled), never an error.
//   - Progress is reported through an injected callback: every ReportEvery
//     explored nodes (default 100), on every incumbent improvement, and once
//     more at termination. The callback runs on the solving goroutine; the
//     caller owns any marshaling to other contexts.
//
// Complexity: worst case exponential in n (exact search); practical speed
// comes from pruning. Per node: O(n²) for clone + reduction on expansion.
//
// Example usage:
//
//	s, err := tsp.NewSolver(cities, tsp.WithProgress(onStats))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := s.Solve(ctx)
//	fmt.Println(res.Path, res.Cost)
package tsp
