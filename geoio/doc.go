// Package geoio bridges this module's planar geom types to the outside
// world: loading obstacle/water multi-polygons from a GeoPackage, the
// ETRS89-LAEA (EPSG:3035) <-> WGS84 (EPSG:4326) coordinate transform the
// core's metric geometry requires at its boundary, and GeoJSON encoding of
// results for the façade.
//
// Ported from original_source's geo_io.rs, crs.rs and geo_geojson.rs — the
// GeoPackage/GeoJSON plumbing uses modernc.org/sqlite and
// github.com/paulmach/orb, the same way the original used sqlx and geo/
// geojson; the CRS transform reimplements the *role* of crs.rs's
// PROJ-backed create_to_int_proj/create_to_ext_proj directly in closed
// form, since no PROJ binding surfaced anywhere in the retrieved examples
// (see DESIGN.md).
package geoio
