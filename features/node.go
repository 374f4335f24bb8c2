package features

import "github.com/katalvlaran/rangeplanner/geom"

// Kind discriminates which payload a NodeData carries.
type Kind int

const (
	// ObstacleVertex identifies a vertex of an obstacle polygon, addressed
	// by MPI.
	ObstacleVertex Kind = iota
	// WaterVertex identifies a vertex of a recharge-water polygon, addressed
	// by MPI.
	WaterVertex
	// Arbitrary identifies a query point appended to the feature set's
	// Arbitrary slice, addressed by Index.
	Arbitrary
)

// NodeData is the identity of a navigation-graph node: a small, comparable
// value — never a coordinate — so it survives re-projection and can be used
// directly as a map key.
//
// This generalizes the teacher's string Vertex.ID identity (core.Vertex) to
// a typed union: ObstacleVertex and WaterVertex carry an MPI into the
// owning FeatureSet's polygon data, Arbitrary carries a slice index into
// the FeatureSet's Arbitrary points. NodeData values are always compared
// and copied by value, never by pointer.
type NodeData struct {
	Kind  Kind
	MPI   geom.MultiPolygonIndex
	Index int
}

// Obstacle constructs a NodeData referencing an obstacle polygon vertex.
func Obstacle(mpi geom.MultiPolygonIndex) NodeData {
	return NodeData{Kind: ObstacleVertex, MPI: mpi}
}

// Water constructs a NodeData referencing a water polygon vertex.
func Water(mpi geom.MultiPolygonIndex) NodeData {
	return NodeData{Kind: WaterVertex, MPI: mpi}
}

// Query constructs a NodeData referencing the idx-th arbitrary point.
func Query(idx int) NodeData {
	return NodeData{Kind: Arbitrary, Index: idx}
}
