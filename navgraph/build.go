package navgraph

import (
	"time"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/visibility"
)

// Build constructs the visibility graph over every feature in fs: nodes
// strictly inside an obstacle are discarded (an obstacle vertex sits on a
// boundary, so it is never discarded by this rule), then every retained
// node is connected to each other retained node it has a direct line of
// sight to, with edge weight equal to their Euclidean distance.
//
// The returned duration is the wall-clock time spent computing visibility
// and inserting the resulting edges; the node filtering and vertex
// registration before it are not included. Ported from
// original_source/nav_graph/create.rs::create_nav_graph.
// Complexity: O(V^2 log V) dominated by calling visibility.Visible once per
// retained node.
func Build(fs *features.FeatureSet, mode visibility.Mode) (*Graph, time.Duration) {
	g := NewGraph()

	all := fs.All()
	retained := make([]features.NodeData, 0, len(all))
	for _, n := range all {
		if geom.ContainsPoint(fs.Obstacles, fs.Coord(n)) {
			continue
		}
		retained = append(retained, n)
		g.AddVertex(n)
	}

	start := time.Now()
	for _, n := range retained {
		visible := visibility.Visible(n, retained, fs, mode)
		for _, w := range visible {
			_ = g.UpsertEdge(n, w, geom.Distance(fs.Coord(n), fs.Coord(w)))
		}
	}
	elapsed := time.Since(start)

	return g, elapsed
}

// AddQueryPoint appends c to fs's arbitrary points, registers it as a node
// in g, and wires it to every node in g it has a direct line of sight to.
// Ported from original_source/nav_graph/create.rs::add_coord_to_nav_graph,
// used to inject a session's start/end coordinates into an already-built
// graph without rebuilding it from scratch.
// Complexity: O(V log V), one visibility.Visible call against every
// existing feature.
func (g *Graph) AddQueryPoint(c geom.Coordinate, fs *features.FeatureSet, mode visibility.Mode) features.NodeData {
	all := fs.All()
	p := fs.AddArbitrary(c)
	g.AddVertex(p)

	visible := visibility.Visible(p, all, fs, mode)
	for _, w := range visible {
		if !g.HasVertex(w) {
			continue
		}
		_ = g.UpsertEdge(p, w, geom.Distance(c, fs.Coord(w)))
	}
	return p
}
