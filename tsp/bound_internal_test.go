package tsp

import (
	"container/heap"
	"math"
	"testing"

	"github.com/katalvlaran/tspbb/matrix"
)

// reduced4 builds the already-reduced 4×4 matrix used across the bound tests:
//
//	  ∞  0 15  2
//	  0  ∞  8  3
//	 15  8  ∞  0
//	  2  3  0  ∞
//
// Symmetric, zero in every row and column, so its own reduction cost is 0.
func reduced4(t *testing.T) *matrix.Dense {
	t.Helper()

	var (
		inf  = math.Inf(1)
		rows = [][]float64{
			{inf, 0, 15, 2},
			{0, inf, 8, 3},
			{15, 8, inf, 0},
			{2, 3, 0, inf},
		}
		d   *matrix.Dense
		err error
	)
	d, err = matrix.NewSquare(4)
	if err != nil {
		t.Fatalf("NewSquare failed: %v", err)
	}
	for r := range rows {
		for c := range rows[r] {
			if err = d.Set(r, c, rows[r][c]); err != nil {
				t.Fatalf("Set(%d,%d) failed: %v", r, c, err)
			}
		}
	}

	return d
}

func TestLowerBoundZeroEdge(t *testing.T) {
	parent := reduced4(t)

	// Edge 0→1 carries reduced cost 0, but the (1,0) return poke removes
	// row 1's only zero. The residue re-reduces as:
	//   row 1: {∞,∞,8,3} → min 3, leaving {∞,∞,5,0}
	//   rows 2,3 keep their zeros
	//   col 0: {∞,15,2} → min 2
	// Extra reduction cost = 5, so bound = 10 + 0 + 5 = 15.
	bound, child := lowerBound(parent, 10, 0, 1, 0)
	if bound != 15 {
		t.Fatalf("bound over zero edge: got %v, want 15", bound)
	}

	// The child matrix must be fully invalidated along the committed edge.
	var v float64
	for c := 0; c < 4; c++ {
		v, _ = child.At(0, c)
		if !math.IsInf(v, 1) {
			t.Fatalf("row 0 not invalidated at col %d: %v", c, v)
		}
	}
	for r := 0; r < 4; r++ {
		v, _ = child.At(r, 1)
		if !math.IsInf(v, 1) {
			t.Fatalf("col 1 not invalidated at row %d: %v", r, v)
		}
	}
	v, _ = child.At(1, 0)
	if !math.IsInf(v, 1) {
		t.Fatalf("back edge (1,0) not invalidated: %v", v)
	}

	// The parent matrix is untouched.
	v, _ = parent.At(0, 1)
	if v != 0 {
		t.Fatalf("parent mutated: (0,1)=%v", v)
	}
}

func TestLowerBoundChargesEdgeAndResidue(t *testing.T) {
	parent := reduced4(t)

	// Edge 0→2 costs 15. Invalidation leaves rows 1 and 3 and columns 0 and 3
	// holding zeros, but row 2 loses its zero to the (2,0) return poke only
	// when start=2; with start=0 the residue reduces as follows:
	//   live rows 1,2,3 × cols 0,1,3, with (2,0)=∞.
	//   row 1: {0,∞,3}   → min 0
	//   row 2: {∞,8,0}   → min 0
	//   row 3: {2,3,∞}   → min 2, leaving {0,1,∞}
	//   cols 0,1,3 then hold minima 0,1,0 → +1
	// Extra reduction cost = 3, so bound = 5 + 15 + 3 = 23.
	bound, _ := lowerBound(parent, 5, 0, 2, 0)
	if bound != 23 {
		t.Fatalf("bound over edge 0→2: got %v, want 23", bound)
	}
}

func TestFrontierOrdersByCostThenSequence(t *testing.T) {
	var (
		fr  = make(frontier, 0, 4)
		seq uint64
	)
	push := func(cost float64) {
		seq++
		fr.push(&node{cost: cost}, seq)
	}

	push(7) // seq 1
	push(3) // seq 2
	push(7) // seq 3
	push(1) // seq 4

	// Pops ascend by cost; the two cost-7 nodes come out in insertion order.
	want := []struct {
		cost float64
		seq  uint64
	}{{1, 4}, {3, 2}, {7, 1}, {7, 3}}

	for i, w := range want {
		it := heap.Pop(&fr).(*frontierItem)
		if it.nd.cost != w.cost || it.seq != w.seq {
			t.Fatalf("pop %d: got (cost=%v seq=%d), want (cost=%v seq=%d)",
				i, it.nd.cost, it.seq, w.cost, w.seq)
		}
	}
	if fr.Len() != 0 {
		t.Fatalf("frontier not drained: %d left", fr.Len())
	}
}

func TestNodeChildCopiesState(t *testing.T) {
	parent := &node{
		level:   1,
		path:    []int{0, 2},
		visited: []bool{true, false, true, false},
		cost:    9,
	}

	m, err := matrix.NewSquare(4)
	if err != nil {
		t.Fatalf("NewSquare failed: %v", err)
	}
	ch := parent.child(3, 14, m)

	if ch.level != 2 || ch.cost != 14 || ch.last() != 3 {
		t.Fatalf("child header wrong: level=%d cost=%v last=%d", ch.level, ch.cost, ch.last())
	}
	if !ch.visited[3] {
		t.Fatal("child must mark the appended city visited")
	}

	// Mutating the child never leaks into the parent.
	ch.path[0] = 99
	ch.visited[1] = true
	if parent.path[0] != 0 || parent.visited[1] {
		t.Fatal("child shares backing arrays with its parent")
	}
}
