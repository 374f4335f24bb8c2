package geom

// MultiPolygonIndex (MPI) stably references a vertex on a ring of a
// multi-polygon by (polygon, ring, vertex) triple rather than by coordinate,
// so it survives float re-projection and lets callers ask for a vertex's
// ring neighbors cheaply.
//
// RingIndex == 0 denotes the exterior ring; k >= 1 denotes the (k-1)-th
// interior ring. VertexIndex ranges over [0, ring.Len()), i.e. the
// duplicated closing coordinate is never addressable.
type MultiPolygonIndex struct {
	PolygonIndex int
	RingIndex    int
	VertexIndex  int
}

// modulo is Python-style signed modulo: unlike Go's %, it always returns a
// value in [0, n). Ported from original_source/modulo.rs's ModuloSignedExt,
// kept as a named helper (rather than inlined) for the same reason the
// original gave it a name: every ring-neighbor computation needs it, and
// spelling it out inline at each call site invites an off-by-sign bug.
func modulo(a, n int) int {
	return (a%n + n) % n
}

// Neighbors returns the left (ring index +1) and right (ring index -1)
// ring-neighbors of mpi within mp, wrapping around the ring.
//
// Per OGC-SFA winding (exterior CCW, interior CW), the left neighbor always
// has the larger coordinate index and the right neighbor the smaller one,
// for both exterior and interior rings alike.
// Complexity: O(1).
func (mpi MultiPolygonIndex) Neighbors(mp MultiPolygon) (left, right MultiPolygonIndex) {
	ring := mp[mpi.PolygonIndex].Ring(mpi.RingIndex)
	n := ring.Len()

	left = mpi
	left.VertexIndex = modulo(mpi.VertexIndex+1, n)
	right = mpi
	right.VertexIndex = modulo(mpi.VertexIndex-1, n)

	return left, right
}

// All enumerates every addressable MultiPolygonIndex of mp in
// (polygon, ring, vertex) order, skipping each ring's duplicated closing
// coordinate. Ported from original_source/mpi/iter.rs's MpiIter.
// Complexity: O(total vertex count).
func All(mp MultiPolygon) []MultiPolygonIndex {
	var out []MultiPolygonIndex
	for pi, poly := range mp {
		for ri := 0; ri < poly.RingCount(); ri++ {
			ring := poly.Ring(ri)
			for vi := 0; vi < ring.Len(); vi++ {
				out = append(out, MultiPolygonIndex{PolygonIndex: pi, RingIndex: ri, VertexIndex: vi})
			}
		}
	}
	return out
}
