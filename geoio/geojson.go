package geoio

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/rangeplanner/geom"
)

// ToCoord converts a WGS84 lon/lat pair into this module's internal,
// projected geom.Coordinate.
func ToCoord(lonLat Coordinate) geom.Coordinate {
	p := Project(lonLat, true)
	return geom.Coordinate{X: p.X, Y: p.Y}
}

// FromCoord converts an internal, projected geom.Coordinate back to its
// WGS84 lon/lat representation.
func FromCoord(c geom.Coordinate) Coordinate {
	return Project(Coordinate{X: c.X, Y: c.Y}, false)
}

// ToFeature wraps a single internal-CRS coordinate as a WGS84 GeoJSON Point
// feature, projecting it back to lon/lat first. Ported from
// original_source/geo_geojson.rs::feature_from_points (single-point case),
// used by the façade for query-point and recharge-stop echoes.
func ToFeature(c geom.Coordinate, properties map[string]interface{}) *geojson.Feature {
	lonLat := FromCoord(c)
	f := geojson.NewFeature(orb.Point{lonLat.X, lonLat.Y})
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}

// ToLineStringFeature wraps an ordered sequence of internal-CRS coordinates
// (e.g. a planner.Leg's flown path) as a WGS84 GeoJSON LineString feature.
func ToLineStringFeature(path []geom.Coordinate, properties map[string]interface{}) *geojson.Feature {
	line := make(orb.LineString, len(path))
	for i, c := range path {
		lonLat := FromCoord(c)
		line[i] = orb.Point{lonLat.X, lonLat.Y}
	}
	f := geojson.NewFeature(line)
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}

// ToFeatureCollection wraps mp (obstacles or waters, internal CRS) as a
// WGS84 GeoJSON FeatureCollection, one Polygon feature per polygon. Ported
// from original_source/geo_geojson.rs::multi_polygon_to_feature, generalized
// from a single Feature to a FeatureCollection so obstacles and waters can
// each carry independent per-polygon properties (spec §6's "obstacles"/
// "waters" server messages are feature collections, not single geometries).
func ToFeatureCollection(mp geom.MultiPolygon, kind string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, poly := range mp {
		rings := make(orb.Polygon, poly.RingCount())
		for ri := 0; ri < poly.RingCount(); ri++ {
			ring := poly.Ring(ri)
			orbRing := make(orb.Ring, len(ring)+1)
			for vi := 0; vi < ring.Len(); vi++ {
				lonLat := FromCoord(ring.At(vi))
				orbRing[vi] = orb.Point{lonLat.X, lonLat.Y}
			}
			orbRing[ring.Len()] = orbRing[0] // OGC-SFA closure
			rings[ri] = orbRing
		}
		f := geojson.NewFeature(rings)
		f.Properties["kind"] = kind
		fc.Append(f)
	}
	return fc
}
