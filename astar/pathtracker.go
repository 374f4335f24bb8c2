package astar

import "github.com/katalvlaran/rangeplanner/features"

// Step is one (node, cumulative cost from the search's start) pair on a
// reconstructed path.
type Step struct {
	Node  features.NodeData
	Score float64
}

type predecessor struct {
	from  features.NodeData
	score float64
}

// PathTracker records, for every node Search relaxed an edge into, which
// node preceded it on the cheapest path found so far and at what cumulative
// cost — not only for the node the search ultimately stopped at, letting a
// caller reconstruct the path to any explored node afterward. Ported from
// bounded_astar/mod.rs::ScoredPathTracker.
type PathTracker struct {
	cameFrom map[features.NodeData]predecessor
}

func newPathTracker() *PathTracker {
	return &PathTracker{cameFrom: make(map[features.NodeData]predecessor)}
}

func (t *PathTracker) setPredecessor(node, from features.NodeData, score float64) {
	t.cameFrom[node] = predecessor{from: from, score: score}
}

// ReconstructTo walks the predecessor chain backwards from last to the
// search's start node (the first node with no recorded predecessor) and
// returns the path in start-to-last order, each step annotated with its
// cumulative cost. The start node's own Score is always 0.
// Complexity: O(path length).
func (t *PathTracker) ReconstructTo(last features.NodeData) []Step {
	var path []Step
	current := last
	for {
		pred, ok := t.cameFrom[current]
		if !ok {
			path = append(path, Step{Node: current, Score: 0})
			break
		}
		path = append(path, Step{Node: current, Score: pred.score})
		current = pred.from
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
