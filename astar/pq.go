package astar

import "github.com/katalvlaran/rangeplanner/features"

// scoredItem pairs a node with its f-score (cost-so-far + heuristic
// estimate) for ordering in scoredPQ. Mirrors the teacher dijkstra
// package's nodeItem.
type scoredItem struct {
	estimate float64
	node     features.NodeData
}

// scoredPQ is a container/heap min-heap over scoredItem.estimate. Search
// uses the teacher's lazy decrease-key idiom: a cheaper route to a node
// already in the heap is pushed as a new entry rather than updating the
// existing one in place, and stale entries are detected and skipped via
// the bestEstimate map instead of being removed from the heap.
type scoredPQ []scoredItem

func (pq scoredPQ) Len() int            { return len(pq) }
func (pq scoredPQ) Less(i, j int) bool  { return pq[i].estimate < pq[j].estimate }
func (pq scoredPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *scoredPQ) Push(x interface{}) { *pq = append(*pq, x.(scoredItem)) }

func (pq *scoredPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
