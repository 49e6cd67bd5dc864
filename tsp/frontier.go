// Package tsp - the priority-ordered frontier.
//
// A min-heap of unexpanded nodes keyed by (cost, seq), where seq is a
// monotonically increasing counter assigned at push time. The secondary key
// replaces reliance on pointer identity for tie-breaking: equal-cost nodes
// pop in insertion order (FIFO), which keeps runs on identical input
// bit-for-bit reproducible.

package tsp

import "container/heap"

// frontierItem pairs a node with its push sequence number.
type frontierItem struct {
	nd  *node
	seq uint64 // assigned at push; strictly increasing within one run
}

// frontier is a min-heap of *frontierItem ordered by (nd.cost, seq).
type frontier []*frontierItem

// Len returns the number of queued nodes.
func (f frontier) Len() int { return len(f) }

// Less orders by bound first, insertion sequence second.
func (f frontier) Less(i, j int) bool {
	if f[i].nd.cost == f[j].nd.cost {
		return f[i].seq < f[j].seq
	}

	return f[i].nd.cost < f[j].nd.cost
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the last element (heap.Pop places the minimum
// there before calling).
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the node for GC
	*f = old[:n-1]

	return item
}

// push enqueues nd with the next sequence number.
func (f *frontier) push(nd *node, seq uint64) {
	heap.Push(f, &frontierItem{nd: nd, seq: seq})
}

// pop dequeues the lowest-(cost, seq) node.
func (f *frontier) pop() *node {
	return heap.Pop(f).(*frontierItem).nd
}
