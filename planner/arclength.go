package planner

import "github.com/katalvlaran/rangeplanner/geom"

// PointAtArcLength walks the polyline defined by path, accumulating
// segment lengths, and returns the point at arc-length length along it,
// linearly interpolating within whichever segment contains that length.
// Returns false if length exceeds the polyline's total length (or path has
// fewer than 2 points). Ported from
// original_source/line_string_ratio.rs::line_string_point_at_length.
// Complexity: O(len(path)).
func PointAtArcLength(path []geom.Coordinate, length float64) (geom.Coordinate, bool) {
	var accumulated float64
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		segLen := geom.Distance(a, b)
		lengthToSegEnd := accumulated + segLen

		if lengthToSegEnd >= length {
			if segLen == 0 {
				return a, true
			}
			distanceAlongSeg := length - accumulated
			ratio := distanceAlongSeg / segLen
			return geom.Coordinate{
				X: (1-ratio)*a.X + ratio*b.X,
				Y: (1-ratio)*a.Y + ratio*b.Y,
			}, true
		}
		accumulated = lengthToSegEnd
	}
	return geom.Coordinate{}, false
}
