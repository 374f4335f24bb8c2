package visibility

import (
	"sort"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
)

// Mode selects how aggressively Visible prunes its candidate-edge work.
type Mode int

const (
	// Naive checks every candidate against every obstacle edge with no
	// angular sweep bookkeeping. O(V*E); useful as a correctness oracle.
	Naive Mode = iota
	// Sweep performs the de Berg et al. rotational sweep, maintaining an
	// active obstacle-edge set as candidates are processed in angular order.
	Sweep
	// OptimizedSweep additionally restricts an obstacle vertex's candidates
	// to those "in front" of it (within its two ring-neighbors' angular
	// wedge), since anything behind always intersects its own polygon.
	OptimizedSweep
)

// sameLocationDistance is the maximum distance between two points for them
// to be considered coincident and thus trivially visible to each other,
// which also sidesteps undefined angles when an obstacle vertex and a
// water vertex occupy (almost) the same point.
const sameLocationDistance = 0.5

type wPrevInfo struct {
	node    features.NodeData
	visible bool
}

// Visible returns the subset of ws that p has an unobstructed line of sight
// to, given the obstacle polygons in fs. ws may include p itself; Visible
// skips it (navgraph.Build passes its full retained node set, p included).
//
// Complexity: O(|ws| log |ws|) for the Sweep/OptimizedSweep angular sort
// plus O(|ws| * E) worst case for edge-set maintenance, where E is the
// total obstacle edge count; Naive mode is O(|ws| * E) with no sort.
func Visible(p features.NodeData, ws []features.NodeData, fs *features.FeatureSet, mode Mode) []features.NodeData {
	pCoord := fs.Coord(p)

	candidates := make([]features.NodeData, 0, len(ws))
	for _, w := range ws {
		if w == p {
			continue
		}
		candidates = append(candidates, w)
	}

	if mode != Naive {
		sort.SliceStable(candidates, func(i, j int) bool {
			ci, cj := fs.Coord(candidates[i]), fs.Coord(candidates[j])
			pi, pj := geom.Pseudoangle(pCoord, ci), geom.Pseudoangle(pCoord, cj)
			if pi != pj {
				return pi < pj
			}
			return geom.Distance(pCoord, ci) < geom.Distance(pCoord, cj)
		})
	}

	applicable := candidates
	if mode == OptimizedSweep && p.Kind == features.ObstacleVertex {
		applicable = wedgeFilter(p, candidates, fs)
	}

	var sameLocation []features.NodeData
	filtered := make([]features.NodeData, 0, len(applicable))
	for _, w := range applicable {
		if geom.Distance(pCoord, fs.Coord(w)) <= sameLocationDistance {
			sameLocation = append(sameLocation, w)
			continue
		}
		filtered = append(filtered, w)
	}
	applicable = filtered

	if mode != Naive && len(applicable) == 0 {
		return sameLocation
	}

	possibleEdges := initialEdges(mode, pCoord, applicable, fs)

	var visible []features.NodeData
	var wPrev *wPrevInfo
	for _, w := range applicable {
		isVis := isVisibleFrom(p, wPrev, w, possibleEdges, fs, mode)
		wPrev = &wPrevInfo{node: w, visible: isVis}

		if mode != Naive && w.Kind == features.ObstacleVertex {
			updatePossibleObstacleEdges(pCoord, w.MPI, fs.Obstacles, &possibleEdges)
		}

		if isVis {
			visible = append(visible, w)
		}
	}

	visible = append(visible, sameLocation...)
	return visible
}

// wedgeFilter restricts candidates to those angularly between p's right and
// left ring-neighbors (inclusive), cycling through candidates since the
// right neighbor need not be candidates[0], then keeps only same-ring
// members of p's own polygon (cross-ring members of the same polygon can
// never be visible; other polygons and non-obstacle points are unaffected).
// Ported from the take_while/take_until composition in
// original_source/nav_graph/visibility.rs::visible_vertices.
// Complexity: O(len(candidates)).
func wedgeFilter(p features.NodeData, candidates []features.NodeData, fs *features.FeatureSet) []features.NodeData {
	n := len(candidates)
	if n == 0 {
		return nil
	}

	left, right := p.MPI.Neighbors(fs.Obstacles)
	leftNode := features.Obstacle(left)
	rightNode := features.Obstacle(right)

	start := -1
	for i, w := range candidates {
		if w == rightNode {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var wedge []features.NodeData
	for step := 0; step < 2*n; step++ {
		w := candidates[(start+step)%n]
		wedge = append(wedge, w)
		if w == leftNode {
			break
		}
	}

	out := make([]features.NodeData, 0, len(wedge))
	for _, w := range wedge {
		if w.Kind == features.ObstacleVertex && w.MPI.PolygonIndex == p.MPI.PolygonIndex {
			if w.MPI.RingIndex == p.MPI.RingIndex {
				out = append(out, w)
			}
			continue
		}
		out = append(out, w)
	}
	return out
}

// initialEdges seeds the active obstacle-edge set: every edge in Naive
// mode, or only the edges properly crossed by the half-line from p through
// its angularly-first applicable candidate in Sweep/OptimizedSweep mode
// (step 2 of VisibleVertices()).
func initialEdges(mode Mode, pCoord geom.Coordinate, applicable []features.NodeData, fs *features.FeatureSet) []geom.Segment {
	if mode == Naive {
		return allEdges(fs.Obstacles)
	}
	if len(applicable) == 0 {
		return nil
	}

	rayThrough := fs.Coord(applicable[0])
	var out []geom.Segment
	for _, edge := range allEdges(fs.Obstacles) {
		if geom.RayProperIntersect(pCoord, rayThrough, edge) {
			out = append(out, edge)
		}
	}
	return out
}

// isVisibleFrom implements the per-candidate visibility test: local
// obstacle-interior checks at p and w, then either the Naive brute-force
// scan or the active-edge-set scan (with the w_prev shortcut of steps 3 and
// 8-13 of VisibleVertices() when w_prev lies on segment p-w). Ported from
// original_source/nav_graph/visibility.rs::is_visible_from.
func isVisibleFrom(p features.NodeData, wPrev *wPrevInfo, w features.NodeData, possibleEdges []geom.Segment, fs *features.FeatureSet, mode Mode) bool {
	pCoord := fs.Coord(p)
	wCoord := fs.Coord(w)

	if mode != OptimizedSweep && p.Kind == features.ObstacleVertex {
		if intersectsPolygonLocally(p.MPI, wCoord, fs.Obstacles) {
			return false
		}
	}

	if w.Kind == features.ObstacleVertex {
		if intersectsPolygonLocally(w.MPI, pCoord, fs.Obstacles) {
			return false
		}
	}

	pw := geom.Segment{Start: pCoord, End: wCoord}

	if mode == Naive {
		for _, edge := range possibleEdges {
			if edge.Start.Equal(wCoord) || edge.End.Equal(wCoord) {
				continue
			}
			if geom.ProperIntersect(edge, pw) {
				return false
			}
		}
		return true
	}

	if wPrev != nil && geom.PointOnSegment(pw, fs.Coord(wPrev.node)) {
		if !wPrev.visible {
			return false
		}
		wPrevW := geom.Segment{Start: fs.Coord(wPrev.node), End: wCoord}
		for _, edge := range possibleEdges {
			if geom.Intersect(edge, wPrevW) {
				return false
			}
		}
		return true
	}

	for _, edge := range possibleEdges {
		if edge.Start.Equal(wCoord) || edge.End.Equal(wCoord) {
			continue
		}
		if geom.Intersect(edge, pw) {
			return false
		}
	}
	return true
}
