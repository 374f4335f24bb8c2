package wsserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/rangeplanner/astar"
	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geoio"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/navgraph"
	"github.com/katalvlaran/rangeplanner/planner"
	"github.com/katalvlaran/rangeplanner/visibility"
)

// Dataset names the GeoPackage files and table names map-ready,
// load-waters and load-restricted-airspace load from — operator-controlled
// configuration, not client input (see geoio.LoadMultiPolygon's
// "trusted input" constraint). Replaces the hardcoded, commented-out
// dataset paths original_source/server/handle.rs switched between by hand.
type Dataset struct {
	ObstaclesPath, ObstaclesTable                   string
	WatersPath, WatersTable                         string
	RestrictedAirspacePath, RestrictedAirspaceTable string
}

// requestItem is either a debug geometry or a request's final server
// message, queued on the same channel so a single reader goroutine forwards
// both to the connection's outbound writer in submission order — the
// mechanism that gives debug-geometries messages their guaranteed ordering
// ahead of the final result, without a separate synchronization barrier.
type requestItem struct {
	debugGeometry orb.Geometry
	final         *serverEnvelope
}

// Session is the per-WebSocket-connection state: the last-loaded
// obstacle/water/restricted-airspace polygons, the feature set and
// visibility graph built from them, and the outbound message queue. A
// Session is only ever touched by its own connection's goroutines, so it
// carries no mutex — matching spec §5's "no locks are required because
// each session owns its graph."
type Session struct {
	dataset Dataset
	logger  *slog.Logger

	obstacles          *geom.MultiPolygon
	waters             *geom.MultiPolygon
	restrictedAirspace *geom.MultiPolygon

	fs    *features.FeatureSet
	graph *navgraph.Graph

	queue chan requestItem
}

// newSession constructs a Session with its outbound request queue; callers
// must run (*Session).drainQueue in its own goroutine before use.
func newSession(dataset Dataset, logger *slog.Logger) *Session {
	return &Session{
		dataset: dataset,
		logger:  logger,
		queue:   make(chan requestItem, 16),
	}
}

// drainQueue forwards queued debug geometries (wrapped as debug-geometries
// messages) and final request results to out, in submission order, until
// the session's queue is closed. Plays the role of
// original_source/dgc.rs::create_dgc's spawned forwarding task, generalized
// to also carry the final message so ordering is structural rather than
// timing-dependent.
func (s *Session) drainQueue(out chan<- serverEnvelope) {
	for item := range s.queue {
		if item.final != nil {
			out <- *item.final
			continue
		}
		f := geoio.ToFeature(orbGeometryFirstPoint(item.debugGeometry), nil)
		out <- serverEnvelope{Type: msgDebugGeometries, Data: f}
	}
}

// orbGeometryFirstPoint extracts a representative point from a debug
// geometry for display; the façade only ever emits Point debug geometries
// (see emitDebugPoint), so this simply recovers that point.
func orbGeometryFirstPoint(g orb.Geometry) geom.Coordinate {
	if p, ok := g.(orb.Point); ok {
		return geom.Coordinate{X: p[0], Y: p[1]}
	}
	return geom.Coordinate{}
}

func (s *Session) emitDebugPoint(c geom.Coordinate) {
	s.queue <- requestItem{debugGeometry: orb.Point{c.X, c.Y}}
}

func (s *Session) emitFinal(env serverEnvelope) {
	s.queue <- requestItem{final: &env}
}

func (s *Session) close() {
	close(s.queue)
}

func (s *Session) handleMapReady(ctx context.Context) {
	if s.obstacles == nil {
		mp, err := geoio.LoadMultiPolygon(ctx, s.dataset.ObstaclesPath, s.dataset.ObstaclesTable)
		if err != nil {
			s.emitError(fmt.Errorf("wsserver: loading obstacles: %w", err))
			return
		}
		s.obstacles = &mp
	}
	s.emitFinal(serverEnvelope{Type: msgObstacles, Data: geoio.ToFeatureCollection(*s.obstacles, "obstacle")})
}

func (s *Session) handleLoadWaters(ctx context.Context) {
	if s.waters == nil {
		mp, err := geoio.LoadMultiPolygon(ctx, s.dataset.WatersPath, s.dataset.WatersTable)
		if err != nil {
			s.emitError(fmt.Errorf("wsserver: loading waters: %w", err))
			return
		}
		s.waters = &mp
	}
	s.emitFinal(serverEnvelope{Type: msgWaters, Data: geoio.ToFeatureCollection(*s.waters, "water")})
}

func (s *Session) handleLoadRestrictedAirspace(ctx context.Context) {
	if s.restrictedAirspace == nil {
		mp, err := geoio.LoadMultiPolygon(ctx, s.dataset.RestrictedAirspacePath, s.dataset.RestrictedAirspaceTable)
		if err != nil {
			s.emitError(fmt.Errorf("wsserver: loading restricted airspace: %w", err))
			return
		}
		s.restrictedAirspace = &mp
	}
	s.emitFinal(serverEnvelope{Type: msgRestrictedAirspace, Data: geoio.ToFeatureCollection(*s.restrictedAirspace, "restricted-airspace")})
}

func (s *Session) handleVisibilityGraph(data visibilityGraphData) {
	mode, err := parseVisibilityMode(data.VisibilityOptimizationMode)
	if err != nil {
		s.emitError(err)
		return
	}
	if s.obstacles == nil {
		s.emitError(fmt.Errorf("wsserver: obstacles not loaded yet; send map-ready first"))
		return
	}

	waters := geom.MultiPolygon{}
	if s.waters != nil {
		waters = *s.waters
	}
	s.fs = features.NewFeatureSet(*s.obstacles, waters)

	graph, elapsed := navgraph.Build(s.fs, mode)
	s.graph = graph

	s.emitFinal(serverEnvelope{
		Type: msgNavGraph,
		Data: navGraphData{Graph: graphToFeatureCollection(s.graph, s.fs), DurationMs: elapsed.Milliseconds()},
	})
}

func (s *Session) handleCalcPath(data calcPathData) {
	mode, err := parseVisibilityMode(data.VisibilityOptimizationMode)
	if err != nil {
		s.emitError(err)
		return
	}
	if s.graph == nil || s.fs == nil {
		s.emitError(fmt.Errorf("wsserver: nav graph not loaded yet; send visibility-graph first"))
		return
	}

	startNode := s.graph.AddQueryPoint(data.Start.toCoord(), s.fs, mode)
	endNode := s.graph.AddQueryPoint(data.End.toCoord(), s.fs, mode)
	endCoord := s.fs.Coord(endNode)

	isGoal := func(n features.NodeData, _ float64) astar.GoalResult {
		if n == endNode {
			return astar.Goal
		}
		return astar.NotGoal
	}
	h := func(n features.NodeData) float64 { return geom.Distance(s.fs.Coord(n), endCoord) }

	result, _ := astar.Search(s.graph, startNode, isGoal, h)
	if result == nil {
		s.emitFinal(serverEnvelope{Type: msgShortestPathCalculated, Data: nil})
		return
	}

	pathCoords := make([]geom.Coordinate, len(result.Path))
	for i, step := range result.Path {
		pathCoords[i] = s.fs.Coord(step.Node)
	}
	s.emitFinal(serverEnvelope{
		Type: msgShortestPathCalculated,
		Data: shortestPathData{
			Path:     geoio.ToLineStringFeature(pathCoords, nil),
			Distance: result.Cost,
		},
	})
}

func (s *Session) handlePlan(data planData) {
	mode, err := parseVisibilityMode(data.VisibilityOptimizationMode)
	if err != nil {
		s.emitError(err)
		return
	}
	if s.graph == nil || s.fs == nil {
		s.emitError(fmt.Errorf("wsserver: nav graph not loaded yet; send visibility-graph first"))
		return
	}

	startNode := s.graph.AddQueryPoint(data.Start.toCoord(), s.fs, mode)
	endNode := s.graph.AddQueryPoint(data.End.toCoord(), s.fs, mode)

	legs, err := planner.PlanWithRecharge(s.graph, s.fs, data.MaxDistanceInitially, data.MaxDistanceAfterCharge, startNode, endNode)
	if err != nil {
		s.emitError(fmt.Errorf("wsserver: planning path: %w", err))
		return
	}

	legData := make([]plannerLegData, len(legs))
	for i, leg := range legs {
		pathCoords := make([]geom.Coordinate, len(leg.Path))
		for j, step := range leg.Path {
			pathCoords[j] = s.fs.Coord(step.Node)
		}
		s.emitDebugPoint(leg.End)
		legData[i] = plannerLegData{
			ReachablePoint: geoio.ToFeature(leg.End, nil),
			LegPath:        geoio.ToLineStringFeature(pathCoords, nil),
		}
	}

	s.emitFinal(serverEnvelope{Type: msgPlannerPathCalculated, Data: legData})
}

func (s *Session) emitError(err error) {
	s.logger.Error("request failed", "error", err)
	s.emitFinal(serverEnvelope{Type: msgError, Data: err.Error()})
}

// graphToFeatureCollection renders g's edges as a GeoJSON FeatureCollection
// of two-point LineStrings, one per undirected edge (each edge visited
// once), for the nav-graph debug/visualization message. Ported from the
// role of original_source/nav_graph/create.rs::nav_graph_to_feature_collection.
func graphToFeatureCollection(g *navgraph.Graph, fs *features.FeatureSet) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	seen := make(map[[2]features.NodeData]bool)
	for _, n := range g.Vertices() {
		for neighbor := range g.Neighbors(n) {
			key := edgeKey(n, neighbor)
			if seen[key] {
				continue
			}
			seen[key] = true
			line := []geom.Coordinate{fs.Coord(n), fs.Coord(neighbor)}
			fc.Append(geoio.ToLineStringFeature(line, nil))
		}
	}
	return fc
}

// edgeKey canonicalizes an undirected edge's endpoints into a stable pair
// order so each edge is only rendered once by graphToFeatureCollection.
func edgeKey(a, b features.NodeData) [2]features.NodeData {
	if nodeLess(b, a) {
		a, b = b, a
	}
	return [2]features.NodeData{a, b}
}

func nodeLess(a, b features.NodeData) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.MPI != b.MPI {
		if a.MPI.PolygonIndex != b.MPI.PolygonIndex {
			return a.MPI.PolygonIndex < b.MPI.PolygonIndex
		}
		if a.MPI.RingIndex != b.MPI.RingIndex {
			return a.MPI.RingIndex < b.MPI.RingIndex
		}
		return a.MPI.VertexIndex < b.MPI.VertexIndex
	}
	return a.Index < b.Index
}
