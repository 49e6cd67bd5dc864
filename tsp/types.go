// Package tsp - core types and sentinel errors.
//
// This file defines the city/result data model and the ONLY errors the
// package returns. All validation happens synchronously in constructors and
// utilities; the search loop itself has no failure modes. Tests must check
// sentinels via errors.Is.

package tsp

import "errors"

// Sentinel errors returned by the tsp package.
var (
	// ErrTooFewCities indicates that fewer than 2 cities were supplied.
	// A meaningful tour needs at least 2; callers typically enforce a higher
	// floor (for example 4) at their own layer.
	ErrTooFewCities = errors.New("tsp: need at least 2 cities")

	// ErrDuplicateLabel indicates that two cities share a display label.
	ErrDuplicateLabel = errors.New("tsp: duplicate city label")

	// ErrBadCoordinate indicates a NaN or ±Inf city coordinate.
	ErrBadCoordinate = errors.New("tsp: city coordinate is NaN or Inf")

	// ErrStartOutOfRange indicates that the configured start vertex does not
	// index a supplied city.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrBadPath indicates a tour path that is too short or references a
	// city index outside the distance matrix.
	ErrBadPath = errors.New("tsp: path is empty, too short, or out of range")

	// ErrMissingEdge indicates a non-finite distance along a tour edge
	// (self-loops and invalidated cells are +Inf by convention).
	ErrMissingEdge = errors.New("tsp: no finite distance for tour edge")

	// ErrBadReportEvery indicates a non-positive progress cadence.
	ErrBadReportEvery = errors.New("tsp: report cadence must be positive")

	// ErrBadTimeLimit indicates a negative soft time budget.
	ErrBadTimeLimit = errors.New("tsp: time limit must be non-negative")
)

// City is a labeled point in the plane. Identity is the city's index in the
// slice passed to NewSolver; the label is for display only.
type City struct {
	Label string  // display name, unique within one solver
	X, Y  float64 // planar coordinates
}

// Result holds the outcome of one Solve invocation.
type Result struct {
	// Path is the visiting order of city indices, starting at the configured
	// start vertex and EXCLUDING the closing return edge. Empty when no
	// complete tour was found (Cost is +Inf in that case).
	Path []int

	// Cost is the total distance of the closed cycle, stabilized to 1e-9.
	// +Inf when no complete tour was found.
	Cost float64

	// Cancelled reports that the run was stopped cooperatively (context or
	// time budget) before the frontier was exhausted. The Path/Cost still
	// carry the best incumbent found up to that point.
	Cancelled bool
}
