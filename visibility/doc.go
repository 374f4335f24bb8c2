// Package visibility computes, for a point p and a candidate set of other
// points, which of those points p has an unobstructed line of sight to.
//
// The algorithm follows de Berg, M. et al. (2008) Computational Geometry:
// Algorithms and Applications, §15.3, and is ported from this module's
// Rust predecessor's nav_graph/visibility.rs: candidates are sorted by
// pseudoangle (then distance) around p, an active set of "possibly
// blocking" obstacle edges is swept as candidates are processed in angular
// order, and a vertex is visible iff no active edge properly blocks the
// segment to it.
package visibility
