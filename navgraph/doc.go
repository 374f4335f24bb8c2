// Package navgraph builds and stores the weighted visibility graph that
// astar and planner search: one node per retained feature vertex, one
// undirected edge per mutually-visible pair, weighted by Euclidean
// distance.
//
// Graph is adapted from the teacher's core.Graph (adjacency-list-of-maps
// shape, idempotent AddVertex, UpsertEdge), generalized from string vertex
// IDs and int64 weights to features.NodeData keys and float64 weights, and
// stripped of the teacher's sync.RWMutex guards: this module's core runs
// single-threaded within a planning session (see DESIGN.md).
package navgraph
