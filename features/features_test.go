package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
)

func square(x0, y0, side float64) geom.Ring {
	return geom.Ring{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
		{X: x0, Y: y0},
	}
}

func TestFeatureSetCoordResolvesEachKind(t *testing.T) {
	obstacles := geom.MultiPolygon{{Exterior: square(0, 0, 1)}}
	waters := geom.MultiPolygon{{Exterior: square(10, 10, 1)}}
	fs := features.NewFeatureSet(obstacles, waters)

	q := fs.AddArbitrary(geom.Coordinate{X: 5, Y: 5})
	assert.Equal(t, geom.Coordinate{X: 5, Y: 5}, fs.Coord(q))

	obstacleMPI := geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 0}
	assert.Equal(t, geom.Coordinate{X: 0, Y: 0}, fs.Coord(features.Obstacle(obstacleMPI)))

	waterMPI := geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 1}
	assert.Equal(t, geom.Coordinate{X: 11, Y: 10}, fs.Coord(features.Water(waterMPI)))
}

func TestFeatureSetAllCountsEveryVertex(t *testing.T) {
	obstacles := geom.MultiPolygon{{Exterior: square(0, 0, 1)}}
	waters := geom.MultiPolygon{{Exterior: square(10, 10, 1)}}
	fs := features.NewFeatureSet(obstacles, waters)
	fs.AddArbitrary(geom.Coordinate{X: 1, Y: 1})
	fs.AddArbitrary(geom.Coordinate{X: 2, Y: 2})

	all := fs.All()
	require.Len(t, all, 4+4+2)

	var obstacleCount, waterCount, arbitraryCount int
	for _, n := range all {
		switch n.Kind {
		case features.ObstacleVertex:
			obstacleCount++
		case features.WaterVertex:
			waterCount++
		case features.Arbitrary:
			arbitraryCount++
		}
	}
	assert.Equal(t, 4, obstacleCount)
	assert.Equal(t, 4, waterCount)
	assert.Equal(t, 2, arbitraryCount)
}

func TestNodeDataIsComparable(t *testing.T) {
	m := map[features.NodeData]int{}
	a := features.Obstacle(geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 2})
	b := features.Obstacle(geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 2})
	m[a] = 1
	m[b] = 2
	assert.Len(t, m, 1, "two NodeData values built from the same MPI must compare equal as map keys")
}
