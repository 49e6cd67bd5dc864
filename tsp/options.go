// Package tsp - solver configuration via functional options.
//
// Options follow the package-wide policy: constructors panic on statically
// invalid arguments (programmer errors), while everything depending on the
// input instance is validated by NewSolver with sentinel errors.

package tsp

import "time"

// DefaultReportEvery is the progress cadence: the callback fires after every
// DefaultReportEvery explored nodes unless overridden by WithReportEvery.
const DefaultReportEvery int64 = 100

// Options configures the behavior of the Branch-and-Bound solver.
//
// StartVertex – index of the city the tour starts (and implicitly ends) at.
// ReportEvery – progress cadence in explored nodes; must be > 0.
// TimeLimit   – optional soft wall-clock budget; 0 means none. Expiry is
//
//	treated exactly like cooperative cancellation: the run stops
//	and returns the best incumbent, flagged Cancelled.
//
// Progress    – optional statistics callback; nil means no reporting.
type Options struct {
	StartVertex int           // tour anchor, default 0
	ReportEvery int64         // progress cadence, default DefaultReportEvery
	TimeLimit   time.Duration // soft budget, default 0 (unlimited)
	Progress    ProgressFunc  // optional observer, default nil
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithStartVertex fixes the city index the tour is anchored at.
// Range validation happens in NewSolver (the city count is not known here);
// out-of-range values surface as ErrStartOutOfRange.
func WithStartVertex(v int) Option {
	return func(o *Options) {
		o.StartVertex = v
	}
}

// WithReportEvery overrides the progress cadence.
// Must pass a positive value; zero or negative panics with ErrBadReportEvery.
// The panic fires at construction, not at application: an invalid cadence is
// a programmer error and must not hide inside an unapplied closure.
func WithReportEvery(n int64) Option {
	if n <= 0 {
		panic(ErrBadReportEvery.Error())
	}

	return func(o *Options) {
		o.ReportEvery = n
	}
}

// WithTimeLimit sets a soft wall-clock budget for Solve.
// Must pass a non-negative duration; negative panics with ErrBadTimeLimit
// at construction. Zero disables the budget (default).
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(ErrBadTimeLimit.Error())
	}

	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithProgress installs the statistics callback. Equivalent to calling
// (*Solver).SetProgress before Solve; the option form keeps configuration in
// one place.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns an Options struct initialized with package defaults.
// Use this as a starting point for further functional-option overrides.
//
// Defaults:
//   - StartVertex: 0 (first supplied city).
//   - ReportEvery: DefaultReportEvery (100 explored nodes).
//   - TimeLimit:   0 (no budget).
//   - Progress:    nil (no reporting).
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		ReportEvery: DefaultReportEvery,
	}
}
