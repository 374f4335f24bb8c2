package geoio_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeplanner/geoio"
	"github.com/katalvlaran/rangeplanner/geom"
)

func TestProjectRoundTripsThroughLAEA(t *testing.T) {
	// Amsterdam, roughly: well inside the ETRS89-LAEA Europe extent.
	original := geoio.Coordinate{X: 4.895, Y: 52.370}

	projected := geoio.Project(original, true)
	// Sanity: projected meters should be in the millions, not still
	// degrees-shaped, confirming forward() actually ran the LAEA math.
	assert.Greater(t, projected.X, 100000.0)
	assert.Greater(t, projected.Y, 100000.0)

	roundTripped := geoio.Project(projected, false)
	assert.InDelta(t, original.X, roundTripped.X, 1e-6)
	assert.InDelta(t, original.Y, roundTripped.Y, 1e-6)
}

func TestProjectOriginMapsToFalseOriginCoordinates(t *testing.T) {
	// The projection's own (lat0, lon0) must land exactly on
	// (falseEasting, falseNorthing) by construction.
	origin := geoio.Coordinate{X: 10.0, Y: 52.0}
	projected := geoio.Project(origin, true)

	assert.InDelta(t, 4321000.0, projected.X, 1e-3)
	assert.InDelta(t, 3210000.0, projected.Y, 1e-3)
}

func TestToCoordFromCoordRoundTrip(t *testing.T) {
	lonLat := geoio.Coordinate{X: -3.7, Y: 40.4}
	internal := geoio.ToCoord(lonLat)
	back := geoio.FromCoord(internal)

	assert.InDelta(t, lonLat.X, back.X, 1e-6)
	assert.InDelta(t, lonLat.Y, back.Y, 1e-6)
}

func TestToFeatureCollectionClosesEveryRingAndTagsKind(t *testing.T) {
	mp := geom.MultiPolygon{{Exterior: geom.Ring{
		{X: 4321000, Y: 3210000},
		{X: 4321100, Y: 3210000},
		{X: 4321100, Y: 3210100},
		{X: 4321000, Y: 3210100},
		{X: 4321000, Y: 3210000},
	}}}

	fc := geoio.ToFeatureCollection(mp, "obstacle")
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "obstacle", fc.Features[0].Properties["kind"])

	poly, ok := fc.Features[0].Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	ring := poly[0]
	assert.Equal(t, ring[0], ring[len(ring)-1], "ring must be OGC-SFA closed")
}

func TestToFeatureCarriesProperties(t *testing.T) {
	f := geoio.ToFeature(geom.Coordinate{X: 4321000, Y: 3210000}, map[string]interface{}{"role": "start"})
	assert.Equal(t, "start", f.Properties["role"])
}
