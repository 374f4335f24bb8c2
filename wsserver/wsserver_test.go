package wsserver

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/navgraph"
	"github.com/katalvlaran/rangeplanner/visibility"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(testDiscard{}, nil))
}

type testDiscard struct{}

func (testDiscard) Write(p []byte) (int, error) { return len(p), nil }

func TestParseVisibilityModeRecognizesAllThree(t *testing.T) {
	m, err := parseVisibilityMode("naive")
	require.NoError(t, err)
	assert.Equal(t, visibility.Naive, m)

	m, err = parseVisibilityMode("sweep")
	require.NoError(t, err)
	assert.Equal(t, visibility.Sweep, m)

	m, err = parseVisibilityMode("optimized-sweep")
	require.NoError(t, err)
	assert.Equal(t, visibility.OptimizedSweep, m)
}

func TestParseVisibilityModeRejectsUnknown(t *testing.T) {
	_, err := parseVisibilityMode("turbo")
	assert.Error(t, err)
}

func TestClientEnvelopeDecodesCalcPath(t *testing.T) {
	raw := []byte(`{"type":"calc-path","data":{"start":{"lat":1,"lng":2},"end":{"lat":3,"lng":4},"visibilityOptimizationMode":"sweep"}}`)

	var env clientEnvelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, msgCalcPath, env.Type)

	var data calcPathData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1.0, data.Start.Lat)
	assert.Equal(t, 4.0, data.End.Lng)
	assert.Equal(t, "sweep", data.VisibilityOptimizationMode)
}

func TestServerEnvelopeMarshalsKebabType(t *testing.T) {
	env := serverEnvelope{Type: msgShortestPathCalculated, Data: nil}
	out, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"shortest-path-calculated","data":null}`, string(out))
}

// drainToSlice runs drainQueue against a freshly created out channel and
// returns everything forwarded, once s's queue is closed.
func drainToSlice(s *Session) []serverEnvelope {
	out := make(chan serverEnvelope, 32)
	done := make(chan struct{})
	go func() {
		s.drainQueue(out)
		close(done)
	}()
	s.close()
	<-done
	close(out)

	var got []serverEnvelope
	for env := range out {
		got = append(got, env)
	}
	return got
}

func TestSessionHandleVisibilityGraphRequiresObstaclesFirst(t *testing.T) {
	s := newSession(Dataset{}, discardLogger())
	s.handleVisibilityGraph(visibilityGraphData{VisibilityOptimizationMode: "naive"})

	got := drainToSlice(s)
	require.Len(t, got, 1)
	assert.Equal(t, msgError, got[0].Type)
}

func TestSessionHandleCalcPathFindsDirectPath(t *testing.T) {
	// With no obstacles loaded, AddQueryPoint's visibility check connects
	// every query point to every other node unobstructed, so start and end
	// end up directly wired to each other.
	s := newSession(Dataset{}, discardLogger())
	s.fs = features.NewFeatureSet(nil, nil)
	s.graph = navgraph.NewGraph()

	s.handleCalcPath(calcPathData{
		Start:                      latLng{Lat: 50.0, Lng: 4.0},
		End:                        latLng{Lat: 50.1, Lng: 4.2},
		VisibilityOptimizationMode: "naive",
	})

	got := drainToSlice(s)
	require.Len(t, got, 1)
	assert.Equal(t, msgShortestPathCalculated, got[0].Type)

	data, ok := got[0].Data.(shortestPathData)
	require.True(t, ok)
	assert.Greater(t, data.Distance, 0.0)
}

func TestDebugGeometriesPrecedeFinalMessage(t *testing.T) {
	s := newSession(Dataset{}, discardLogger())

	s.emitDebugPoint(geom.Coordinate{X: 0, Y: 0})
	s.emitDebugPoint(geom.Coordinate{X: 1, Y: 1})
	s.emitFinal(serverEnvelope{Type: msgPlannerPathCalculated, Data: "done"})

	got := drainToSlice(s)
	require.Len(t, got, 3)
	assert.Equal(t, msgDebugGeometries, got[0].Type)
	assert.Equal(t, msgDebugGeometries, got[1].Type)
	assert.Equal(t, msgPlannerPathCalculated, got[2].Type)
}

func TestEdgeKeyCanonicalizesRegardlessOfArgumentOrder(t *testing.T) {
	a := features.Obstacle(geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 1})
	b := features.Obstacle(geom.MultiPolygonIndex{PolygonIndex: 0, RingIndex: 0, VertexIndex: 2})

	assert.Equal(t, edgeKey(a, b), edgeKey(b, a))
}
