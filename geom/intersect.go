package geom

import "math"

// Segment is a directed line segment between two coordinates. Direction
// matters for equality: visibility/edges.go relies on comparing segments produced
// from a ring's edge iteration order, matching original_source's reliance
// on Line equality from geo::Line (see visibility.rs's comment on edge
// orientation).
type Segment struct {
	Start, End Coordinate
}

// Equal reports whether s and o share the same directed endpoints.
func (s Segment) Equal(o Segment) bool {
	return s.Start.Equal(o.Start) && s.End.Equal(o.End)
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the bounding box of segment a-b.
func onSegment(a, b, p Coordinate) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// ProperIntersect reports whether segments s1 and s2 cross at a single
// point that is an interior point of both segments (touching at a shared
// endpoint does not count). Used by the Naive visibility mode, which spec
// §4.2.3/§9 documents as requiring proper (not any) intersection.
// Complexity: O(1).
func ProperIntersect(s1, s2 Segment) bool {
	o1 := Orient2D(s1.Start, s1.End, s2.Start)
	o2 := Orient2D(s1.Start, s1.End, s2.End)
	o3 := Orient2D(s2.Start, s2.End, s1.Start)
	o4 := Orient2D(s2.Start, s2.End, s1.End)

	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return false
	}

	return o1 != o2 && o3 != o4
}

// Intersect reports whether segments s1 and s2 share any point, including a
// shared endpoint or overlapping collinear segments. Used by the Sweep and
// OptimizedSweep visibility modes, which spec §4.2.3/§9 documents as using
// any (not strictly proper) intersection.
// Complexity: O(1).
func Intersect(s1, s2 Segment) bool {
	o1 := Orient2D(s1.Start, s1.End, s2.Start)
	o2 := Orient2D(s1.Start, s1.End, s2.End)
	o3 := Orient2D(s2.Start, s2.End, s1.Start)
	o4 := Orient2D(s2.Start, s2.End, s1.End)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && onSegment(s1.Start, s1.End, s2.Start) {
		return true
	}
	if o2 == Collinear && onSegment(s1.Start, s1.End, s2.End) {
		return true
	}
	if o3 == Collinear && onSegment(s2.Start, s2.End, s1.Start) {
		return true
	}
	if o4 == Collinear && onSegment(s2.Start, s2.End, s1.End) {
		return true
	}

	return false
}

// RayProperIntersect reports whether the half-line starting at rayFrom and
// passing through rayThrough (and beyond, unboundedly) properly intersects
// segment s: used when seeding the active obstacle-edge set T with the edges
// crossed by the initial sweep ray (spec §4.2.2). rayThrough only fixes the
// ray's direction; an edge crossing far past rayThrough still counts.
// Complexity: O(1).
func RayProperIntersect(rayFrom, rayThrough Coordinate, s Segment) bool {
	o1 := Orient2D(rayFrom, rayThrough, s.Start)
	o2 := Orient2D(rayFrom, rayThrough, s.End)
	if o1 == Collinear || o2 == Collinear || o1 == o2 {
		return false
	}

	// s crosses the infinite line through rayFrom/rayThrough at a single
	// point P = rayFrom + t*(rayThrough-rayFrom); the intersection is on the
	// forward ray iff t > 0. t's sign is the sign of
	// cross(s.Start-rayFrom, s.End-rayFrom) divided by the sign of
	// cross(rayThrough-rayFrom, s.End-s.Start) — both expressed as
	// orientations so they share the same adaptive-precision fallback as
	// every other predicate in this file.
	numerator := Orient2D(rayFrom, s.Start, s.End)
	denomPoint := Coordinate{
		X: rayFrom.X + (s.End.X - s.Start.X),
		Y: rayFrom.Y + (s.End.Y - s.Start.Y),
	}
	denominator := Orient2D(rayFrom, rayThrough, denomPoint)

	return numerator != Collinear && numerator == denominator
}

// PointOnSegment reports whether p lies on the closed segment s (including
// its endpoints), used by the visibility predicate's w_prev-on-p-w check
// (spec §4.2.1 step 4).
// Complexity: O(1).
func PointOnSegment(s Segment, p Coordinate) bool {
	if Orient2D(s.Start, s.End, p) != Collinear {
		return false
	}
	return onSegment(s.Start, s.End, p)
}
