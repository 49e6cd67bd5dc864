// Package tsp - search statistics and progress reporting.
//
// Stats is a plain value snapshot: the engine fills the counters, copies the
// struct, and hands the copy to the callback. The callback never receives a
// pointer into live engine state, so a slow or misbehaving observer cannot
// corrupt the search: the core never blocks on the reporter and never shares
// mutable state with it.

package tsp

import "time"

// Stats is a read-only snapshot of one run's search counters.
// All counters reset at the start of each Solve invocation.
type Stats struct {
	// NodesExplored counts frontier pops (step 1 of the main loop).
	NodesExplored int64

	// BranchesPruned counts both candidates discarded before enqueueing and
	// stale frontier entries discarded after the incumbent improved.
	BranchesPruned int64

	// MaxDepth is the deepest node level popped so far (root = 0, complete
	// tour = n-1).
	MaxDepth int

	// Elapsed is the wall-clock time spent in Solve at snapshot time.
	Elapsed time.Duration

	// BestCost is the incumbent tour cost, +Inf until the first complete
	// tour is found.
	BestCost float64
}

// PruningEfficiency derives the share of pruned branches per explored node,
// in percent: pruned / max(explored, 1) * 100.
func (s Stats) PruningEfficiency() float64 {
	explored := s.NodesExplored
	if explored < 1 {
		explored = 1
	}

	return float64(s.BranchesPruned) / float64(explored) * 100
}

// ProgressFunc observes search statistics. It is invoked on the solving
// goroutine (a) every ReportEvery explored nodes, (b) on every incumbent
// improvement, and (c) once at termination. Implementations that need
// another execution context (UI thread, channel) marshal the value
// themselves.
type ProgressFunc func(Stats)
