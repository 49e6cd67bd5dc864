// Package tsp - the Branch-and-Bound search engine.
//
// Solver is the public entry point: NewSolver validates the instance and
// builds the distance matrix once; Solve runs the priority-ordered best-first
// search to completion (or cooperative cancellation) on the calling
// goroutine. A node popped from the frontier is either pruned (its bound can
// no longer beat the incumbent), finalized as a complete tour, or expanded
// into one child per unvisited city whose bound still beats the incumbent.
//
// Termination is guaranteed: every push increases level by exactly one and
// level is bounded by n-1, so the frontier is finite at every depth.
//
// State ownership: the distance matrix is immutable after construction and
// shared read-only by all nodes (each node clones before mutating); the
// incumbent and the statistics counters are written exclusively by the
// single search goroutine. No locks are needed.

package tsp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tspbb/matrix"
)

// Solver holds one TSP instance plus the state of its most recent run.
// A Solver is NOT safe for concurrent use; run concurrent instances on
// separate Solver values instead.
type Solver struct {
	cities []City        // private copy, immutable after NewSolver
	n      int           // number of cities
	dist   *matrix.Dense // distance matrix, immutable after NewSolver
	opts   Options       // resolved configuration

	// Run state (reset at the start of each Solve).
	best      []int    // incumbent closed tour (len n+1) or nil
	bestCost  float64  // incumbent cost, +Inf until the first complete tour
	frontier  frontier // unexpanded nodes, min-heap by (cost, seq)
	stats     Stats
	startedAt time.Time
	seq       uint64 // frontier push counter for deterministic tie-breaking
}

// NewSolver validates the instance and prepares a Solver.
//
// Validation (all synchronous; the search itself cannot fail):
//   - len(cities) ≥ 2, otherwise ErrTooFewCities.
//   - every coordinate finite, otherwise ErrBadCoordinate (wrapped with the
//     offending index and label).
//   - labels unique, otherwise ErrDuplicateLabel (wrapped with the label).
//   - StartVertex within [0..n-1], otherwise ErrStartOutOfRange.
//
// The cities slice is copied; later mutation by the caller has no effect.
//
// Complexity: O(n²) (distance matrix construction).
func NewSolver(cities []City, opts ...Option) (*Solver, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	var n = len(cities)
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if cfg.StartVertex < 0 || cfg.StartVertex >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		own  = make([]City, n)
		seen = make(map[string]struct{}, n)
		i    int
		c    City
	)
	for i, c = range cities {
		if math.IsNaN(c.X) || math.IsInf(c.X, 0) || math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
			return nil, fmt.Errorf("city %d (%q): %w", i, c.Label, ErrBadCoordinate)
		}
		if _, dup := seen[c.Label]; dup {
			return nil, fmt.Errorf("city %d (%q): %w", i, c.Label, ErrDuplicateLabel)
		}
		seen[c.Label] = struct{}{}
		own[i] = c
	}

	dist, err := BuildDistanceMatrix(own)
	if err != nil {
		return nil, err
	}

	return &Solver{
		cities:   own,
		n:        n,
		dist:     dist,
		opts:     cfg,
		bestCost: math.Inf(1),
	}, nil
}

// SetProgress installs (or clears, with nil) the statistics callback.
// Mirrors WithProgress for callers that configure the observer after
// construction. Must not be called while Solve is running.
func (s *Solver) SetProgress(fn ProgressFunc) {
	s.opts.Progress = fn
}

// Cities returns a copy of the solver's city list in index order.
func (s *Solver) Cities() []City {
	out := make([]City, len(s.cities))
	copy(out, s.cities)

	return out
}

// Statistics returns the read-only snapshot of the most recent run's
// counters (zero-valued with BestCost = +Inf before the first run).
func (s *Solver) Statistics() Stats {
	st := s.stats
	st.BestCost = s.bestCost

	return st
}

// Solve runs the Branch-and-Bound search to completion and returns the
// optimal tour. The context is checked at the top of every main-loop
// iteration: on cancellation (or expiry of WithTimeLimit) the best incumbent
// found so far is returned with Result.Cancelled set — never an error.
//
// If the frontier empties without completing any tour (impossible for a
// Euclidean instance with n ≥ 2, but handled), the result carries an empty
// path and Cost = +Inf.
//
// Incumbent and statistics reset at the start of every invocation, so a
// Solver may be reused for repeated runs on the same instance.
func (s *Solver) Solve(ctx context.Context) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	// Reset run state.
	s.best = nil
	s.bestCost = math.Inf(1)
	s.stats = Stats{BestCost: math.Inf(1)}
	s.startedAt = time.Now()
	s.seq = 0

	// Soft time budget, resolved once.
	var (
		useDeadline bool
		deadline    time.Time
	)
	if s.opts.TimeLimit > 0 {
		useDeadline = true
		deadline = s.startedAt.Add(s.opts.TimeLimit)
	}

	// Root: reduce the full distance matrix once; the reduction cost is the
	// root lower bound.
	rootM, rootCost, _ := matrix.Reduce(s.dist) // dist is square by construction

	var (
		start   = s.opts.StartVertex
		visited = make([]bool, s.n)
	)
	visited[start] = true

	s.frontier = make(frontier, 0, s.n)
	s.frontier.push(&node{
		level:   0,
		path:    []int{start},
		visited: visited,
		reduced: rootM,
		cost:    rootCost,
	}, s.nextSeq())

	var cancelled bool

	for s.frontier.Len() > 0 {
		// Cooperative stop signal, checked once per iteration.
		select {
		case <-ctx.Done():
			cancelled = true
		default:
			if useDeadline && time.Now().After(deadline) {
				cancelled = true
			}
		}
		if cancelled {
			break
		}

		nd := s.frontier.pop()

		// Statistics update.
		s.stats.NodesExplored++
		if nd.level > s.stats.MaxDepth {
			s.stats.MaxDepth = nd.level
		}
		if s.stats.NodesExplored%s.opts.ReportEvery == 0 {
			s.report()
		}

		// Bound check: guards against stale entries left in the frontier
		// after the incumbent improved.
		if nd.cost >= s.bestCost {
			s.stats.BranchesPruned++
			continue
		}

		// Goal check: every city committed. The node's cost already includes
		// the closing return edge through the reduction chain, so it IS the
		// full cycle cost — commit the incumbent and keep draining the
		// frontier.
		if nd.level == s.n-1 {
			s.commit(nd)
			continue
		}

		s.expand(nd)
	}

	s.frontier = nil // release remaining nodes (non-empty after cancellation)
	s.stats.Elapsed = time.Since(s.startedAt)
	s.stats.BestCost = s.bestCost
	s.report()

	return s.result(cancelled)
}

// nextSeq returns the next frontier sequence number.
func (s *Solver) nextSeq() uint64 {
	s.seq++

	return s.seq
}

// commit records a new incumbent from a full-depth node and notifies the
// observer. Callers guarantee nd.cost < s.bestCost.
func (s *Solver) commit(nd *node) {
	closed := make([]int, s.n+1)
	copy(closed, nd.path)
	closed[s.n] = s.opts.StartVertex

	s.best = closed
	s.bestCost = round1e9(nd.cost)
	s.report()
}

// expand generates children for every unvisited city whose bound still beats
// the incumbent; the rest count as pruned branches.
func (s *Solver) expand(nd *node) {
	var (
		src   = nd.last()
		next  int
		bound float64
		child *matrix.Dense
	)
	for next = 0; next < s.n; next++ {
		if nd.visited[next] {
			continue
		}
		bound, child = lowerBound(nd.reduced, nd.cost, src, next, s.opts.StartVertex)
		if bound >= s.bestCost {
			s.stats.BranchesPruned++
			continue
		}
		s.frontier.push(nd.child(next, bound, child), s.nextSeq())
	}
}

// result assembles the public Result from the run state.
func (s *Solver) result(cancelled bool) Result {
	if s.best == nil {
		return Result{Path: nil, Cost: math.Inf(1), Cancelled: cancelled}
	}

	// Drop the trailing return-to-start per the output contract.
	path := make([]int, s.n)
	copy(path, s.best[:s.n])

	return Result{Path: path, Cost: s.bestCost, Cancelled: cancelled}
}

// report hands a snapshot to the observer, if any.
func (s *Solver) report() {
	if s.opts.Progress == nil {
		return
	}
	st := s.stats
	st.Elapsed = time.Since(s.startedAt)
	st.BestCost = s.bestCost
	s.opts.Progress(st)
}
