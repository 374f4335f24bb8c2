// Package geom provides the 2D planar primitives the rest of this module
// builds on: coordinates, closed rings, polygons, multi-polygons, a stable
// per-vertex index into a multi-polygon (MultiPolygonIndex), and the
// angle/orientation/intersection predicates the visibility engine depends
// on.
//
// All computation assumes a planar metric CRS (metres); geoio handles
// projection to and from geodetic coordinates at the façade boundary.
//
// Winding follows the OGC Simple Feature Access convention: exterior rings
// counter-clockwise, interior rings clockwise. NormalizeWinding enforces
// this on ingest.
package geom
