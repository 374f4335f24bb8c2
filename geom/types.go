package geom

import "errors"

// Sentinel errors for geom construction and validation.
var (
	// ErrRingTooShort indicates a ring with fewer than 3 addressable vertices
	// (coordinates excluding the closing one).
	ErrRingTooShort = errors.New("geom: ring must have at least 3 vertices")

	// ErrRingNotClosed indicates a ring whose first and last coordinates differ.
	ErrRingNotClosed = errors.New("geom: ring is not closed")
)

// Coordinate is a point (x, y) in a planar metric CRS.
//
// Coordinate is comparable and carries a total order on (X, Y) so it can be
// used as a map key or sorted deterministically; Equal/Less exist as named
// methods for readability at call sites instead of inlined field compares.
type Coordinate struct {
	X, Y float64
}

// Equal reports whether c and o denote the exact same point.
// Complexity: O(1).
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Less defines a total order on coordinates: by X, then by Y.
// Complexity: O(1).
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Sub returns the vector from o to c (c - o).
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// Ring is an ordered, closed sequence of coordinates (OGC-SFA: the last
// coordinate equals the first). Exterior rings wind counter-clockwise,
// interior rings clockwise; NormalizeWinding enforces this on ingest.
type Ring []Coordinate

// Len returns the number of addressable vertices in the ring, i.e. the
// ring's coordinate count minus the duplicated closing vertex.
// Complexity: O(1).
func (r Ring) Len() int {
	if len(r) == 0 {
		return 0
	}
	return len(r) - 1
}

// At returns the i-th addressable vertex, wrapping with Go's native modulo
// since i is always produced from a non-negative computation in this
// package (ring neighbor indices are pre-reduced to [0, Len())).
// Complexity: O(1).
func (r Ring) At(i int) Coordinate {
	return r[i%r.Len()]
}

// Closed reports whether the first and last stored coordinates coincide.
func (r Ring) Closed() bool {
	if len(r) == 0 {
		return false
	}
	return r[0].Equal(r[len(r)-1])
}

// ValidateRing checks the boundary-behavior invariants of spec §8: at least
// 3 addressable vertices, and OGC-SFA closure. Whether those vertices are
// distinct is not checked.
func ValidateRing(r Ring) error {
	if r.Len() < 3 {
		return ErrRingTooShort
	}
	if !r.Closed() {
		return ErrRingNotClosed
	}
	return nil
}

// Polygon is one exterior ring plus zero or more interior rings (holes).
type Polygon struct {
	Exterior  Ring
	Interiors []Ring
}

// Ring returns the ring addressed by ringIndex: 0 is the exterior ring,
// k >= 1 is the (k-1)-th interior ring.
// Complexity: O(1).
func (p Polygon) Ring(ringIndex int) Ring {
	if ringIndex == 0 {
		return p.Exterior
	}
	return p.Interiors[ringIndex-1]
}

// RingCount returns 1 + len(Interiors).
func (p Polygon) RingCount() int {
	return 1 + len(p.Interiors)
}

// MultiPolygon is an ordered sequence of polygons.
type MultiPolygon []Polygon

// Coord resolves a MultiPolygonIndex to its coordinate. Panics if the index
// is out of bounds; callers that build indices via All or Neighbors never
// produce an out-of-bounds index on a well-formed MultiPolygon.
func (mp MultiPolygon) Coord(mpi MultiPolygonIndex) Coordinate {
	ring := mp[mpi.PolygonIndex].Ring(mpi.RingIndex)
	return ring[mpi.VertexIndex]
}
