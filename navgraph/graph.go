package navgraph

import (
	"errors"

	"github.com/katalvlaran/rangeplanner/features"
)

// ErrLoopNotAllowed indicates an attempt to connect a node to itself.
var ErrLoopNotAllowed = errors.New("navgraph: self-loops not allowed")

// Graph is an undirected, weighted graph over features.NodeData, with no
// self-loops and no parallel edges: a retained edge between two nodes is
// keyed by the pair alone, and inserting it again just overwrites the
// weight. Adapted from the teacher's core.Graph: same adjacency-list-of-maps
// shape and idempotent AddVertex/UpsertEdge surface, generalized from
// string vertex IDs and int64 weights to features.NodeData keys and
// float64 weights, with the teacher's sync.RWMutex guards dropped since
// this module's core runs single-threaded within a planning session.
type Graph struct {
	adjacency map[features.NodeData]map[features.NodeData]float64
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[features.NodeData]map[features.NodeData]float64)}
}

// AddVertex registers n if not already present. Idempotent.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(n features.NodeData) {
	if _, ok := g.adjacency[n]; !ok {
		g.adjacency[n] = make(map[features.NodeData]float64)
	}
}

// HasVertex reports whether n has been registered.
// Complexity: O(1).
func (g *Graph) HasVertex(n features.NodeData) bool {
	_, ok := g.adjacency[n]
	return ok
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// Vertices returns every registered vertex, in no particular order.
// Complexity: O(V).
func (g *Graph) Vertices() []features.NodeData {
	out := make([]features.NodeData, 0, len(g.adjacency))
	for n := range g.adjacency {
		out = append(out, n)
	}
	return out
}

// UpsertEdge registers an undirected edge between a and b with the given
// weight, adding both endpoints as vertices if necessary. Calling it again
// for the same pair overwrites the weight rather than creating a parallel
// edge.
// Complexity: O(1) amortized.
func (g *Graph) UpsertEdge(a, b features.NodeData, weight float64) error {
	if a == b {
		return ErrLoopNotAllowed
	}
	g.AddVertex(a)
	g.AddVertex(b)
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	return nil
}

// Neighbors returns n's adjacency map (node -> edge weight). The returned
// map must not be mutated by the caller.
// Complexity: O(1).
func (g *Graph) Neighbors(n features.NodeData) map[features.NodeData]float64 {
	return g.adjacency[n]
}
