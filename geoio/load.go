package geoio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/rangeplanner/geom"
)

// LoadMultiPolygon opens the GeoPackage at dbPath and decodes the geom BLOB
// column of tableName's single row into a geom.MultiPolygon, normalizing
// ring winding to OGC-SFA on the way out.
//
// tableName is interpolated directly into the query. Per spec §6, GeoPackage
// layer names (obstacles/waters/restricted-airspace) are operator-supplied
// configuration, the same role the façade's table name played in
// original_source/geo_io.rs::load_gpkg_multi_polygon (which carries the same
// constraint against sqlx) — not attacker-controlled input, so this is a
// documented constraint, not a bug to paper over with parameter binding
// (which SQL engines do not support for identifiers in any case).
// Complexity: O(blob size) to decode, dominated by the WKB parse.
func LoadMultiPolygon(ctx context.Context, dbPath, tableName string) (geom.MultiPolygon, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("geoio: open %s: %w", dbPath, err)
	}
	defer db.Close()

	query := fmt.Sprintf(`SELECT geom FROM "%s" LIMIT 1`, tableName)
	row := db.QueryRowContext(ctx, query)

	var blob []byte
	if err := row.Scan(&blob); err != nil {
		return nil, fmt.Errorf("geoio: scan %s.geom: %w", tableName, err)
	}

	payload, err := stripGeoPackageHeader(blob)
	if err != nil {
		return nil, fmt.Errorf("geoio: %s: %w", tableName, err)
	}

	geometry, err := wkb.Unmarshal(payload)
	if err != nil {
		return nil, fmt.Errorf("geoio: decode WKB for %s: %w", tableName, err)
	}

	orbMP, err := asMultiPolygon(geometry)
	if err != nil {
		return nil, fmt.Errorf("geoio: %s: %w", tableName, err)
	}

	return geom.NormalizeWinding(fromOrb(orbMP)), nil
}

// asMultiPolygon accepts either a MultiPolygon or a bare Polygon row, since
// GeoPackage layers holding a single obstacle are commonly stored as a
// Polygon geometry type rather than a singleton MultiPolygon.
func asMultiPolygon(geometry orb.Geometry) (orb.MultiPolygon, error) {
	switch g := geometry.(type) {
	case orb.MultiPolygon:
		return g, nil
	case orb.Polygon:
		return orb.MultiPolygon{g}, nil
	default:
		return nil, fmt.Errorf("unsupported geometry type %T, expected Polygon or MultiPolygon", geometry)
	}
}

// errHeaderTooShort and friends: stripGeoPackageHeader parses the GeoPackage
// binary (GPB) envelope that modernc.org/sqlite hands back verbatim as the
// BLOB's raw bytes; orb/encoding/wkb only understands the WKB payload past
// that envelope, and no dependency in the retrieved examples parses it, so
// this is hand-written against the OGC GeoPackage spec's fixed 8-byte header
// layout (magic "GP", version, flags, SRS id) plus its flags-selected,
// fixed-size envelope.
var errHeaderTooShort = errors.New("geom BLOB shorter than its declared GeoPackage header")

func stripGeoPackageHeader(blob []byte) ([]byte, error) {
	const baseHeaderLen = 8
	if len(blob) < baseHeaderLen || blob[0] != 'G' || blob[1] != 'P' {
		return nil, errors.New("geom BLOB missing GeoPackage binary header magic")
	}

	flags := blob[3]
	envelopeCode := (flags >> 1) & 0x07

	var envelopeLen int
	switch envelopeCode {
	case 0:
		envelopeLen = 0
	case 1:
		envelopeLen = 32 // minimum bounding box: minx, maxx, miny, maxy
	case 2, 3:
		envelopeLen = 48 // + z range
	case 4:
		envelopeLen = 64 // + z and m ranges
	default:
		return nil, fmt.Errorf("unrecognized GeoPackage envelope code %d", envelopeCode)
	}

	offset := baseHeaderLen + envelopeLen
	if len(blob) < offset {
		return nil, errHeaderTooShort
	}
	return blob[offset:], nil
}

func fromOrb(mp orb.MultiPolygon) geom.MultiPolygon {
	out := make(geom.MultiPolygon, len(mp))
	for pi, poly := range mp {
		out[pi] = geom.Polygon{
			Exterior:  fromOrbRing(poly[0]),
			Interiors: make([]geom.Ring, 0, len(poly)-1),
		}
		for ri := 1; ri < len(poly); ri++ {
			out[pi].Interiors = append(out[pi].Interiors, fromOrbRing(poly[ri]))
		}
	}
	return out
}

func fromOrbRing(r orb.Ring) geom.Ring {
	out := make(geom.Ring, len(r))
	for i, pt := range r {
		out[i] = geom.Coordinate{X: pt[0], Y: pt[1]}
	}
	return out
}

func toOrb(mp geom.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(mp))
	for pi, poly := range mp {
		rings := make(orb.Polygon, 1+len(poly.Interiors))
		rings[0] = toOrbRing(poly.Exterior)
		for ri, interior := range poly.Interiors {
			rings[ri+1] = toOrbRing(interior)
		}
		out[pi] = rings
	}
	return out
}

func toOrbRing(r geom.Ring) orb.Ring {
	out := make(orb.Ring, len(r))
	for i, c := range r {
		out[i] = orb.Point{c.X, c.Y}
	}
	return out
}
