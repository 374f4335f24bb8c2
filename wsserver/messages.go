package wsserver

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rangeplanner/geoio"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/visibility"
)

// clientEnvelope is the wire shape of every inbound message: a kebab-case
// discriminant plus an opaque data payload decoded per-kind once the type
// is known. Mirrors original_source/client_msg.rs's
// #[serde(tag = "type", content = "data")].
type clientEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Client message kinds, spec §6.
const (
	msgMapReady              = "map-ready"
	msgLoadWaters             = "load-waters"
	msgLoadRestrictedAirspace = "load-restricted-airspace"
	msgVisibilityGraph        = "visibility-graph"
	msgCalcPath               = "calc-path"
	msgPlan                   = "plan"
)

// Server message kinds, spec §6.
const (
	msgObstacles               = "obstacles"
	msgWaters                  = "waters"
	msgRestrictedAirspace      = "restricted-airspace"
	msgNavGraph                = "nav-graph"
	msgDebugGeometries         = "debug-geometries"
	msgShortestPathCalculated  = "shortest-path-calculated"
	msgPlannerPathCalculated   = "planner-path-calculated"
	msgError                   = "error"
)

// serverEnvelope is the wire shape of every outbound message, mirroring
// original_source/server_msg.rs's ServerMessage enum serialization.
type serverEnvelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// latLng is the façade's WGS84 wire coordinate, mirroring
// original_source/common.rs::LatLng; its Into<Coordinate<f64>> becomes
// toCoord here, which additionally applies the forward LAEA projection
// original_source/server/handle.rs performed separately via
// crs::create_to_int_proj before handing the coordinate to the nav graph.
type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (ll latLng) toCoord() geom.Coordinate {
	return geoio.ToCoord(geoio.Coordinate{X: ll.Lng, Y: ll.Lat})
}

type visibilityGraphData struct {
	VisibilityOptimizationMode string `json:"visibilityOptimizationMode"`
}

type calcPathData struct {
	Start                      latLng `json:"start"`
	End                        latLng `json:"end"`
	VisibilityOptimizationMode string `json:"visibilityOptimizationMode"`
}

type planData struct {
	Start                      latLng  `json:"start"`
	End                        latLng  `json:"end"`
	MaxDistanceInitially       float64 `json:"maxDistanceInitially"`
	MaxDistanceAfterCharge     float64 `json:"maxDistanceAfterCharge"`
	VisibilityOptimizationMode string  `json:"visibilityOptimizationMode"`
}

// navGraphData is the nav-graph message's data payload: the visibility
// graph rendered as a GeoJSON feature collection of edge LineStrings, plus
// how long Build spent computing visibility.
type navGraphData struct {
	Graph      interface{} `json:"graph"`
	DurationMs int64       `json:"durationMs"`
}

// shortestPathData is shortest-path-calculated's payload, or nil if no path
// was found — mirrored from original_source/server_msg.rs::ShortestPath.
type shortestPathData struct {
	Path     interface{} `json:"path"`
	Distance float64     `json:"distance"`
}

// plannerLegData is one element of planner-path-calculated's array: the
// arc-length-truncated point the leg actually reaches, paired with the
// graph path flown to get there (or to its recharge stop).
type plannerLegData struct {
	ReachablePoint interface{} `json:"reachablePoint"`
	LegPath        interface{} `json:"legPath"`
}

func parseVisibilityMode(s string) (visibility.Mode, error) {
	switch s {
	case "naive":
		return visibility.Naive, nil
	case "sweep":
		return visibility.Sweep, nil
	case "optimized-sweep":
		return visibility.OptimizedSweep, nil
	default:
		return 0, fmt.Errorf("wsserver: unknown visibilityOptimizationMode %q", s)
	}
}
