package navgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/navgraph"
	"github.com/katalvlaran/rangeplanner/visibility"
)

func TestGraphUpsertEdgeRejectsLoop(t *testing.T) {
	g := navgraph.NewGraph()
	n := features.Query(0)
	err := g.UpsertEdge(n, n, 1)
	assert.ErrorIs(t, err, navgraph.ErrLoopNotAllowed)
}

func TestGraphUpsertEdgeIsUndirected(t *testing.T) {
	g := navgraph.NewGraph()
	a, b := features.Query(0), features.Query(1)
	require.NoError(t, g.UpsertEdge(a, b, 5))

	assert.Equal(t, 5.0, g.Neighbors(a)[b])
	assert.Equal(t, 5.0, g.Neighbors(b)[a])
}

func square(x0, y0, side float64) geom.Ring {
	return geom.Ring{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
		{X: x0, Y: y0},
	}
}

func TestBuildDiscardsPointsStrictlyInsideObstacle(t *testing.T) {
	fs := features.NewFeatureSet(geom.MultiPolygon{{Exterior: square(0, 0, 10)}}, nil)
	inside := fs.AddArbitrary(geom.Coordinate{X: 5, Y: 5})
	outside := fs.AddArbitrary(geom.Coordinate{X: 20, Y: 20})

	g, elapsed := navgraph.Build(fs, visibility.Sweep)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))

	assert.False(t, g.HasVertex(inside), "a point strictly inside an obstacle must not become a graph node")
	assert.True(t, g.HasVertex(outside))
}

func TestBuildConnectsObstacleVerticesToEachOther(t *testing.T) {
	fs := features.NewFeatureSet(geom.MultiPolygon{{Exterior: square(0, 0, 10)}}, nil)
	g, _ := navgraph.Build(fs, visibility.Sweep)

	assert.Equal(t, 4, g.VertexCount())
	for _, n := range fs.All() {
		assert.NotEmpty(t, g.Neighbors(n), "every obstacle vertex should see at least one other vertex")
	}
}

func TestAddQueryPointWiresIntoExistingGraph(t *testing.T) {
	fs := features.NewFeatureSet(geom.MultiPolygon{{Exterior: square(0, 0, 10)}}, nil)
	g, _ := navgraph.Build(fs, visibility.Sweep)
	before := g.VertexCount()

	p := g.AddQueryPoint(geom.Coordinate{X: 5, Y: 20}, fs, visibility.Sweep)

	assert.Equal(t, before+1, g.VertexCount())
	assert.NotEmpty(t, g.Neighbors(p))
}
