package geom

// ringPointRelation reports whether p lies on ring's boundary and, if not,
// whether it lies in ring's interior, via the standard ray-casting (crossing
// number) algorithm. onBoundary and inside are never both true.
func ringPointRelation(ring Ring, p Coordinate) (onBoundary, inside bool) {
	n := ring.Len()
	for i := 0; i < n; i++ {
		a := ring.At(i)
		b := ring.At(i + 1)
		if PointOnSegment(Segment{Start: a, End: b}, p) {
			return true, false
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xIntersect {
				inside = !inside
			}
		}
	}
	return false, inside
}

// ContainsPoint reports whether p lies strictly within mp's interior: inside
// some polygon's exterior ring and outside all of that polygon's interior
// (hole) rings, with every ring's boundary — exterior or hole — excluded.
//
// This mirrors the "contains" relation navgraph.Build uses (ported from
// original_source/nav_graph/create.rs's use of geo's Contains) to decide
// which candidate nodes sit buried inside solid obstacle material; a vertex
// on a hole's boundary is part of the obstacle's traversable perimeter, not
// its interior, and must be retained rather than discarded.
// Complexity: O(total vertex count).
func ContainsPoint(mp MultiPolygon, p Coordinate) bool {
	for _, poly := range mp {
		onBoundary, inside := ringPointRelation(poly.Exterior, p)
		if onBoundary {
			return false
		}
		if !inside {
			continue
		}
		onHoleBoundary := false
		inHole := false
		for _, hole := range poly.Interiors {
			holeOnBoundary, holeInside := ringPointRelation(hole, p)
			if holeOnBoundary {
				onHoleBoundary = true
				break
			}
			if holeInside {
				inHole = true
				break
			}
		}
		if onHoleBoundary {
			return false
		}
		if !inHole {
			return true
		}
	}
	return false
}
