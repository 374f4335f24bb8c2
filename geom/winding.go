package geom

// signedArea returns twice the signed area enclosed by ring, positive for
// counter-clockwise winding and negative for clockwise, using the shoelace
// formula. Ported from original_source/winding.rs's use of geo's
// signed_area, reimplemented directly here since signedArea is a two-line
// sum no retrieved package exposes standalone.
// Complexity: O(ring length).
func signedArea(r Ring) float64 {
	n := r.Len()
	var sum float64
	for i := 0; i < n; i++ {
		a := r.At(i)
		b := r.At(i + 1)
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// reverseRing returns a new ring with vertex order reversed, preserving
// closure (first == last).
func reverseRing(r Ring) Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// NormalizeWinding returns a copy of mp with every ring's winding forced to
// the OGC Simple Feature Access convention: exterior rings counter-clockwise,
// interior rings clockwise. Input data from arbitrary GeoPackage/GeoJSON
// sources makes no such guarantee, so geoio.LoadMultiPolygon calls this on
// ingest before any ring is addressed by an MPI (spec §3 GLOSSARY "OGC-SFA
// winding"; ported from original_source/winding.rs's ensure_sfa_winding).
// Complexity: O(total vertex count).
func NormalizeWinding(mp MultiPolygon) MultiPolygon {
	out := make(MultiPolygon, len(mp))
	for pi, poly := range mp {
		np := Polygon{
			Exterior:  poly.Exterior,
			Interiors: make([]Ring, len(poly.Interiors)),
		}
		if signedArea(np.Exterior) < 0 {
			np.Exterior = reverseRing(np.Exterior)
		}
		for ri, interior := range poly.Interiors {
			if signedArea(interior) > 0 {
				interior = reverseRing(interior)
			}
			np.Interiors[ri] = interior
		}
		out[pi] = np
	}
	return out
}
