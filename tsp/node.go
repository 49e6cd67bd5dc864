// Package tsp - search nodes.
//
// A node is a partial tour: mutable at creation, immutable after. Nodes hold
// no back-references — the search tree exists only implicitly through the
// path slices — and each node exclusively owns its reduced-matrix snapshot,
// so no node ever observes another node's mutations.

package tsp

import "github.com/katalvlaran/tspbb/matrix"

// node is one partial tour on the Branch-and-Bound frontier.
type node struct {
	// level is the number of cities committed beyond the start (root = 0).
	level int

	// path is the visiting order so far; path[0] is the start vertex and
	// len(path) == level+1.
	path []int

	// visited marks the cities already committed (visited[path[i]] == true).
	visited []bool

	// reduced is this node's private reduced-cost matrix: rows of committed
	// sources and columns of committed destinations are +Inf.
	reduced *matrix.Dense

	// cost is the admissible lower bound on completing this partial tour;
	// monotonically non-decreasing from parent to child.
	cost float64
}

// last returns the most recently committed city.
func (nd *node) last() int { return nd.path[nd.level] }

// child builds the successor node that commits city next with the given
// bound and reduced matrix (produced by lowerBound). The parent's path and
// visited set are copied, never aliased.
//
// Complexity: O(n) (the matrix was already cloned by lowerBound).
func (nd *node) child(next int, bound float64, reduced *matrix.Dense) *node {
	path := make([]int, nd.level+2)
	copy(path, nd.path)
	path[nd.level+1] = next

	visited := make([]bool, len(nd.visited))
	copy(visited, nd.visited)
	visited[next] = true

	return &node{
		level:   nd.level + 1,
		path:    path,
		visited: visited,
		reduced: reduced,
		cost:    bound,
	}
}
