package visibility

import "github.com/katalvlaran/rangeplanner/geom"

// allEdges returns every ring edge of mp as a directed Segment, in
// ring-traversal order (vertex i to vertex i+1). Ordering matters: edge
// equality comparisons in updatePossibleObstacleEdges assume edges are
// always produced with this same orientation.
// Complexity: O(total vertex count).
func allEdges(mp geom.MultiPolygon) []geom.Segment {
	var out []geom.Segment
	for _, poly := range mp {
		for ri := 0; ri < poly.RingCount(); ri++ {
			ring := poly.Ring(ri)
			n := ring.Len()
			for i := 0; i < n; i++ {
				out = append(out, geom.Segment{Start: ring.At(i), End: ring.At(i + 1)})
			}
		}
	}
	return out
}

// intersectsPolygonLocally reports whether the ray from the polygon vertex
// at mpi towards rayTo passes through the interior of the polygon, locally
// at mpi, by checking whether the ray's direction falls within the wedge
// spanned by mpi's two ring neighbors. Ported from
// original_source/mpi/intersection.rs::intersects_polygon_locally.
// Complexity: O(1).
func intersectsPolygonLocally(mpi geom.MultiPolygonIndex, rayTo geom.Coordinate, mp geom.MultiPolygon) bool {
	coord := mp.Coord(mpi)
	left, right := mpi.Neighbors(mp)
	leftAngle := geom.Angle(coord, mp.Coord(left))
	rightAngle := geom.Angle(coord, mp.Coord(right))
	rayAngle := geom.Angle(coord, rayTo)
	return !geom.AngleIsBetween(rayAngle, rightAngle, leftAngle)
}

// updatePossibleObstacleEdges implements steps 6-7 of de Berg et al.'s
// VisibleVertices(): insert w's incident obstacle edges that now lie ccw of
// the half-line p->w, and remove those that now lie cw of it. Ported from
// original_source/nav_graph/visibility.rs::update_possible_obstacle_edges.
// Complexity: O(len(*edges)) for the membership scan per incident edge.
func updatePossibleObstacleEdges(pCoord geom.Coordinate, wMPI geom.MultiPolygonIndex, obstacles geom.MultiPolygon, edges *[]geom.Segment) {
	wCoord := obstacles.Coord(wMPI)
	left, right := wMPI.Neighbors(obstacles)
	wLeftCoord := obstacles.Coord(left)
	wRightCoord := obstacles.Coord(right)

	// These two edges are built with the same endpoint order allEdges()
	// would have produced them in, so Segment.Equal correctly matches them
	// against entries already in *edges.
	leftIncidentEdge := geom.Segment{Start: wCoord, End: wLeftCoord}
	rightIncidentEdge := geom.Segment{Start: wRightCoord, End: wCoord}

	type candidate struct {
		edge     geom.Segment
		neighbor geom.Coordinate
	}
	for _, c := range []candidate{
		{leftIncidentEdge, wLeftCoord},
		{rightIncidentEdge, wRightCoord},
	} {
		orientation := geom.Orient2D(pCoord, wCoord, c.neighbor)

		existingIndex := -1
		for i, e := range *edges {
			if e.Equal(c.edge) {
				existingIndex = i
				break
			}
		}

		if orientation == geom.CounterClockwise {
			if existingIndex == -1 {
				*edges = append(*edges, c.edge)
			}
			continue
		}

		if existingIndex != -1 {
			last := len(*edges) - 1
			(*edges)[existingIndex] = (*edges)[last]
			*edges = (*edges)[:last]
		}
	}
}
