package geom

import "math/big"

// Orientation classifies the turn from a to b to c.
type Orientation int

const (
	// Collinear indicates a, b, c lie on a single line.
	Collinear Orientation = iota
	// Clockwise indicates a->b->c turns clockwise.
	Clockwise
	// CounterClockwise indicates a->b->c turns counter-clockwise.
	CounterClockwise
)

// orientationEpsilon bounds how close the fast floating-point determinant
// must be to zero, relative to the magnitude of its inputs, before the
// adaptive-precision fallback is consulted. This mirrors the "adaptive
// orientation predicate" spec §4.1/§9 calls for without pulling in a
// third-party robust-geometry package absent from the retrieved pack.
const orientationEpsilon = 1e-9

// Orient2D classifies the orientation of the ordered triple (a, b, c) using
// the sign of the cross product (b-a) x (c-a).
//
// A single float64 determinant is accurate except very close to
// collinearity, where catastrophic cancellation can flip the sign. When the
// fast determinant falls within orientationEpsilon (relative to the
// operands' magnitude) of zero, Orient2D recomputes the same determinant
// using arbitrary-precision big.Float arithmetic and trusts that result
// instead — an adaptive-precision predicate equivalent to the exact
// predicates spec §4.1 requires, without a dedicated robust-geometry
// dependency.
// Complexity: O(1) in the common case, O(1) with a larger constant when the
// adaptive fallback fires.
func Orient2D(a, b, c Coordinate) Orientation {
	abx := b.X - a.X
	aby := b.Y - a.Y
	acx := c.X - a.X
	acy := c.Y - a.Y

	det := abx*acy - aby*acx

	magnitude := absF(abx)*absF(acy) + absF(aby)*absF(acx)
	if magnitude > 0 && absF(det) <= orientationEpsilon*magnitude {
		det = orient2DExact(a, b, c)
	}

	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	default:
		return Collinear
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// orient2DExact recomputes the Orient2D determinant with big.Float
// arithmetic at a fixed high precision, used only when the fast
// floating-point result is too close to zero to trust.
func orient2DExact(a, b, c Coordinate) float64 {
	const prec = 200

	ax := big.NewFloat(a.X).SetPrec(prec)
	ay := big.NewFloat(a.Y).SetPrec(prec)
	bx := big.NewFloat(b.X).SetPrec(prec)
	by := big.NewFloat(b.Y).SetPrec(prec)
	cx := big.NewFloat(c.X).SetPrec(prec)
	cy := big.NewFloat(c.Y).SetPrec(prec)

	abx := new(big.Float).SetPrec(prec).Sub(bx, ax)
	aby := new(big.Float).SetPrec(prec).Sub(by, ay)
	acx := new(big.Float).SetPrec(prec).Sub(cx, ax)
	acy := new(big.Float).SetPrec(prec).Sub(cy, ay)

	left := new(big.Float).SetPrec(prec).Mul(abx, acy)
	right := new(big.Float).SetPrec(prec).Mul(aby, acx)
	det := new(big.Float).SetPrec(prec).Sub(left, right)

	f, _ := det.Float64()
	return f
}
