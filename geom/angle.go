package geom

import "math"

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Coordinate) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Hypot(dx, dy)
}

// Angle returns the angle of the vector from -> to, measured
// counter-clockwise from the positive x-axis, normalized to [0, 2*Pi).
// Complexity: O(1).
func Angle(from, to Coordinate) float64 {
	a := math.Atan2(to.Y-from.Y, to.X-from.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Pseudoangle returns a value in [-2, 2] that is strictly monotone in the
// atan2 angle of from -> to (range (-Pi, Pi]) and, like atan2, jumps along
// the negative x-axis (from 2 just above it to -2 just below it), without an
// atan2 call. Angle's [0, 2*Pi) range wraps at the positive x-axis instead,
// so the two orderings differ for directions below the x-axis.
// Useful wherever only the relative ordering of directions matters, such as
// sorting visibility candidates by azimuth.
//
// Adapted from original_source/coord_ext.rs's pseudoangle_to (itself from
// https://stackoverflow.com/a/16561333).
// Complexity: O(1).
func Pseudoangle(from, to Coordinate) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y
	p := 1.0 - dx/(math.Abs(dx)+math.Abs(dy))
	return math.Copysign(p, dy)
}

// AngleIsBetween reports whether the counter-clockwise arc from low to high
// contains angle, handling wraparound when low > high. All three angles
// must already be normalized to [0, 2*Pi).
// Complexity: O(1).
func AngleIsBetween(angle, low, high float64) bool {
	if low < high {
		return low <= angle && angle <= high
	}
	return low <= angle || angle <= high
}
