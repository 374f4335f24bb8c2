package astar

import (
	"container/heap"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/navgraph"
)

// GoalResult reports how Search should treat a node it is about to expand.
type GoalResult int

const (
	// NotGoal means continue the search: the node is neither the goal nor
	// out of bounds.
	NotGoal GoalResult = iota
	// Goal means the search has reached an acceptable destination; Search
	// stops and returns the path to this node.
	Goal
	// Prune means the node must be treated as a dead end (for example, its
	// cost-so-far already exceeds a recharge budget) and not expanded
	// further, without counting as having reached the goal.
	Prune
)

// Result is the outcome of a successful Search: the goal node's total cost
// and the reconstructed start-to-goal path.
type Result struct {
	Cost float64
	Path []Step
}

// Search runs a best-first search over g starting at start, using isGoal to
// classify each node as it is popped from the frontier and h as the
// admissible heuristic estimate to completion. It returns (nil, tracker) if
// the frontier empties without isGoal ever reporting Goal; tracker still
// lets the caller reconstruct a path to any node that was explored.
//
// Ported from original_source/nav_graph/bounded_astar/mod.rs::bounded_astar:
// a min-heap keyed by f-score (cost-so-far + heuristic), lazy decrease-key
// via repeated pushes, and re-expansion suppressed by comparing a node's
// current f-score against the best one recorded for it so far.
// Complexity: O((V+E) log V) when h is admissible and consistent; Prune can
// make this bound loose/tight depending on how aggressively it cuts the
// frontier.
func Search(g *navgraph.Graph, start features.NodeData, isGoal func(n features.NodeData, costSoFar float64) GoalResult, h func(features.NodeData) float64) (*Result, *PathTracker) {
	visitNext := &scoredPQ{}
	heap.Init(visitNext)

	scores := map[features.NodeData]float64{start: 0}
	bestEstimate := make(map[features.NodeData]float64)
	tracker := newPathTracker()

	heap.Push(visitNext, scoredItem{estimate: h(start), node: start})

	for visitNext.Len() > 0 {
		top := heap.Pop(visitNext).(scoredItem)
		node, estimate := top.node, top.estimate
		nodeScore := scores[node]

		switch isGoal(node, nodeScore) {
		case Prune:
			continue
		case Goal:
			return &Result{Cost: nodeScore, Path: tracker.ReconstructTo(node)}, tracker
		}

		if prev, ok := bestEstimate[node]; ok && prev <= estimate {
			continue
		}
		bestEstimate[node] = estimate

		for next, weight := range g.Neighbors(node) {
			nextScore := nodeScore + weight
			if existing, ok := scores[next]; ok && existing <= nextScore {
				continue
			}
			scores[next] = nextScore
			tracker.setPredecessor(next, node, nextScore)
			heap.Push(visitNext, scoredItem{estimate: nextScore + h(next), node: next})
		}
	}

	return nil, tracker
}
