package geoio

import "math"

// GRS80 ellipsoid parameters and the EPSG:3035 (ETRS89-extended / LAEA
// Europe) projection parameters, matching original_source/crs.rs's
// ETRS_CRS = "EPSG:3035" and WSG_CRS = "EPSG:4326" definitions. The original
// delegated the actual transform to the PROJ C library via the proj crate;
// no PROJ binding exists in any retrieved example, so this reimplements the
// forward and inverse ellipsoidal Lambert Azimuthal Equal-Area formulas
// directly, per Snyder, "Map Projections: A Working Manual" (USGS PP 1395,
// 1987), equations 3-10 through 3-16 (forward) and 3-24 through 3-29
// (inverse).
const (
	grs80SemiMajorAxis  = 6378137.0
	grs80Flattening     = 1.0 / 298.257222101
	laeaOriginLatDeg    = 52.0
	laeaOriginLonDeg    = 10.0
	laeaFalseEasting    = 4321000.0
	laeaFalseNorthing   = 3210000.0
)

var laeaParams = newLaeaParams(grs80SemiMajorAxis, grs80Flattening, laeaOriginLatDeg, laeaOriginLonDeg)

// laeaParams caches the origin-dependent constants of the ellipsoidal LAEA
// transform so Project doesn't recompute them (and their trig calls) on
// every point.
type laeaParamsT struct {
	a, e, e2   float64
	lat0, lon0 float64
	qp, rq     float64
	beta0      float64
	d          float64
}

func newLaeaParams(a, flattening, originLatDeg, originLonDeg float64) laeaParamsT {
	e2 := flattening * (2 - flattening)
	e := math.Sqrt(e2)
	lat0 := originLatDeg * math.Pi / 180
	lon0 := originLonDeg * math.Pi / 180

	qp := authalicQ(math.Pi/2, e)
	q0 := authalicQ(lat0, e)
	rq := a * math.Sqrt(qp/2)
	beta0 := math.Asin(clampUnit(q0 / qp))

	sinLat0 := math.Sin(lat0)
	m0 := math.Cos(lat0) / math.Sqrt(1-e2*sinLat0*sinLat0)
	d := a * m0 / (rq * math.Cos(beta0))

	return laeaParamsT{a: a, e: e, e2: e2, lat0: lat0, lon0: lon0, qp: qp, rq: rq, beta0: beta0, d: d}
}

// authalicQ is Snyder's q(lat) (eq. 3-12), used to derive the authalic
// latitude substitute beta for the ellipsoidal LAEA forward transform.
func authalicQ(lat, e float64) float64 {
	sinLat := math.Sin(lat)
	return (1 - e*e) * (sinLat/(1-e*e*sinLat*sinLat) - (1/(2*e))*math.Log((1-e*sinLat)/(1+e*sinLat)))
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Project transforms c between this module's internal planar CRS
// (ETRS89-LAEA, EPSG:3035, the metric CRS all geom/visibility/astar/planner
// arithmetic assumes) and the façade's WGS84 (EPSG:4326) lon/lat CRS.
//
// forward=true projects WGS84 (c.X=lon, c.Y=lat, degrees) to LAEA meters;
// forward=false is the inverse. Mirrors the role of
// original_source/crs.rs's create_to_int_proj/create_to_ext_proj, without
// PROJ.
// Complexity: O(1).
func Project(c Coordinate, forward bool) Coordinate {
	if forward {
		return laeaParams.forward(c)
	}
	return laeaParams.inverse(c)
}

// Coordinate mirrors geom.Coordinate's shape so geoio callers can convert a
// WGS84 lon/lat pair without importing geom just for this function's
// argument type; ToCoord/FromCoord at the package boundary (geojson.go)
// convert to/from geom.Coordinate.
type Coordinate struct {
	X, Y float64
}

func (p laeaParamsT) forward(c Coordinate) Coordinate {
	lon := c.X * math.Pi / 180
	lat := c.Y * math.Pi / 180

	q := authalicQ(lat, p.e)
	beta := math.Asin(clampUnit(q / p.qp))

	dLon := lon - p.lon0
	sinBeta, cosBeta := math.Sin(beta), math.Cos(beta)
	sinBeta0, cosBeta0 := math.Sin(p.beta0), math.Cos(p.beta0)

	b := p.rq * math.Sqrt(2/(1+sinBeta0*sinBeta+cosBeta0*cosBeta*math.Cos(dLon)))

	easting := laeaFalseEasting + (b*p.d)*cosBeta*math.Sin(dLon)
	northing := laeaFalseNorthing + (b/p.d)*(cosBeta0*sinBeta-sinBeta0*cosBeta*math.Cos(dLon))

	return Coordinate{X: easting, Y: northing}
}

// authalic-to-geodetic series coefficients (Snyder eq. 3-18), good to
// sub-millimeter accuracy for e2 as small as GRS80's.
func authalicToGeodeticLat(beta, e2 float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2

	c1 := e2/3 + 31*e4/180 + 517*e6/5040
	c2 := 23*e4/360 + 251*e6/3780
	c3 := 761 * e6 / 45360

	return beta + c1*math.Sin(2*beta) + c2*math.Sin(4*beta) + c3*math.Sin(6*beta)
}

func (p laeaParamsT) inverse(c Coordinate) Coordinate {
	dx := c.X - laeaFalseEasting
	dy := c.Y - laeaFalseNorthing

	rho := math.Hypot(dx/p.d, p.d*dy)
	if rho < 1e-9 {
		return Coordinate{X: p.lon0 * 180 / math.Pi, Y: p.lat0 * 180 / math.Pi}
	}

	cAngle := 2 * math.Asin(clampUnit(rho/(2*p.rq)))
	sinC, cosC := math.Sin(cAngle), math.Cos(cAngle)
	sinBeta0, cosBeta0 := math.Sin(p.beta0), math.Cos(p.beta0)

	beta := math.Asin(clampUnit(cosC*sinBeta0 + (p.d*dy*sinC*cosBeta0)/rho))
	lat := authalicToGeodeticLat(beta, p.e2)

	lon := p.lon0 + math.Atan2(dx*sinC, p.d*rho*cosBeta0*cosC-p.d*p.d*dy*sinBeta0*sinC)

	return Coordinate{X: lon * 180 / math.Pi, Y: lat * 180 / math.Pi}
}
