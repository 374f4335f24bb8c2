package features

import "github.com/katalvlaran/rangeplanner/geom"

// FeatureSet owns every geometric feature a navigation graph is built
// over: obstacle polygons that block line-of-sight, recharge-water
// polygons whose vertices are valid recharge stops, and an append-only
// list of arbitrary query points (start/end coordinates, or points
// injected mid-flight by AddQueryPoint).
//
// A FeatureSet has no mutex: per spec §5 this module's core is
// single-threaded within a planning session, and a session never shares a
// FeatureSet across goroutines.
type FeatureSet struct {
	Obstacles geom.MultiPolygon
	Waters    geom.MultiPolygon
	Arbitrary []geom.Coordinate
}

// NewFeatureSet returns a FeatureSet over the given obstacle and water
// multi-polygons, both of which must already be OGC-SFA wound (see
// geom.NormalizeWinding).
func NewFeatureSet(obstacles, waters geom.MultiPolygon) *FeatureSet {
	return &FeatureSet{Obstacles: obstacles, Waters: waters}
}

// AddArbitrary appends c to the set's arbitrary points and returns the
// NodeData addressing it.
// Complexity: amortized O(1).
func (fs *FeatureSet) AddArbitrary(c geom.Coordinate) NodeData {
	fs.Arbitrary = append(fs.Arbitrary, c)
	return Query(len(fs.Arbitrary) - 1)
}

// Coord resolves a NodeData to its coordinate. Panics on a malformed
// NodeData (out-of-range MPI or Index); every NodeData this package or
// navgraph hands back is constructed against the same FeatureSet, so this
// never occurs in practice.
// Complexity: O(1).
func (fs *FeatureSet) Coord(n NodeData) geom.Coordinate {
	switch n.Kind {
	case ObstacleVertex:
		return fs.Obstacles.Coord(n.MPI)
	case WaterVertex:
		return fs.Waters.Coord(n.MPI)
	default:
		return fs.Arbitrary[n.Index]
	}
}

// All enumerates every NodeData in the set: every obstacle vertex, every
// water vertex, then every arbitrary point, in that order.
// Complexity: O(total vertex count).
func (fs *FeatureSet) All() []NodeData {
	var out []NodeData
	for _, mpi := range geom.All(fs.Obstacles) {
		out = append(out, Obstacle(mpi))
	}
	for _, mpi := range geom.All(fs.Waters) {
		out = append(out, Water(mpi))
	}
	for i := range fs.Arbitrary {
		out = append(out, Query(i))
	}
	return out
}
