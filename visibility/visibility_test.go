package visibility_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/visibility"
)

// square returns a CCW-wound side x side square obstacle with its corner at
// (x0, y0).
func square(x0, y0, side float64) geom.Ring {
	return geom.Ring{
		{X: x0, Y: y0},
		{X: x0 + side, Y: y0},
		{X: x0 + side, Y: y0 + side},
		{X: x0, Y: y0 + side},
		{X: x0, Y: y0},
	}
}

func singleSquareObstacle() *features.FeatureSet {
	return features.NewFeatureSet(geom.MultiPolygon{{Exterior: square(0, 0, 10)}}, nil)
}

func TestVisibleBlockedBehindObstacle(t *testing.T) {
	for _, mode := range []visibility.Mode{visibility.Naive, visibility.Sweep, visibility.OptimizedSweep} {
		fs := singleSquareObstacle()
		left := fs.AddArbitrary(geom.Coordinate{X: -5, Y: 5})
		right := fs.AddArbitrary(geom.Coordinate{X: 15, Y: 5})

		got := visibility.Visible(left, []features.NodeData{right}, fs, mode)
		assert.Empty(t, got, "mode %v: square obstacle should block the direct line of sight", mode)
	}
}

func TestVisibleAroundObstacleFromAbove(t *testing.T) {
	for _, mode := range []visibility.Mode{visibility.Naive, visibility.Sweep, visibility.OptimizedSweep} {
		fs := singleSquareObstacle()
		above := fs.AddArbitrary(geom.Coordinate{X: 5, Y: 20})
		left := fs.AddArbitrary(geom.Coordinate{X: -5, Y: 5})
		right := fs.AddArbitrary(geom.Coordinate{X: 15, Y: 5})

		got := visibility.Visible(above, []features.NodeData{left, right}, fs, mode)
		assert.ElementsMatch(t, []features.NodeData{left, right}, got, "mode %v", mode)
	}
}

func TestVisibleExcludesSelf(t *testing.T) {
	fs := features.NewFeatureSet(nil, nil)
	p := fs.AddArbitrary(geom.Coordinate{X: 0, Y: 0})
	got := visibility.Visible(p, []features.NodeData{p}, fs, visibility.Sweep)
	assert.Empty(t, got)
}

func TestVisibleSymmetricForArbitraryPoints(t *testing.T) {
	pts := []geom.Coordinate{
		{X: -5, Y: 5}, {X: 15, Y: 5}, {X: 5, Y: 20}, {X: 5, Y: -20}, {X: -20, Y: -20},
	}
	for _, mode := range []visibility.Mode{visibility.Naive, visibility.Sweep} {
		for i := range pts {
			for j := range pts {
				if i == j {
					continue
				}
				fs := singleSquareObstacle()
				a := fs.AddArbitrary(pts[i])
				b := fs.AddArbitrary(pts[j])

				abVisible := len(visibility.Visible(a, []features.NodeData{b}, fs, mode)) == 1

				fs2 := singleSquareObstacle()
				a2 := fs2.AddArbitrary(pts[i])
				b2 := fs2.AddArbitrary(pts[j])
				baVisible := len(visibility.Visible(b2, []features.NodeData{a2}, fs2, mode)) == 1

				assert.Equal(t, abVisible, baVisible, "mode %v: visibility between %v and %v must be symmetric", mode, pts[i], pts[j])
			}
		}
	}
}

func TestVisibleAdjacentObstacleVerticesSeeEachOther(t *testing.T) {
	fs := singleSquareObstacle()
	all := fs.All()
	require := assert.New(t)
	require.Len(all, 4)

	a := all[0] // (0,0)
	b := all[1] // (10,0), a's ring-left neighbor

	got := visibility.Visible(a, all, fs, visibility.Sweep)
	var sawB bool
	for _, w := range got {
		if w == b {
			sawB = true
		}
	}
	require.True(sawB, "adjacent obstacle vertices must see each other along their shared edge")
}

func TestVisibleSameLocationShortcut(t *testing.T) {
	fs := singleSquareObstacle()
	a := fs.AddArbitrary(geom.Coordinate{X: 5, Y: 20})
	b := fs.AddArbitrary(geom.Coordinate{X: 5.1, Y: 20.2}) // within 0.5 units of a

	got := visibility.Visible(a, []features.NodeData{b}, fs, visibility.Sweep)
	assert.Contains(t, got, b)
}

// randomStarShapedRing returns a simple (non-self-intersecting) CCW ring
// with n vertices placed at monotonically increasing angles around
// (cx, cy), each at a randomly jittered radius. Angle monotonicity alone
// guarantees simplicity regardless of the radius jitter.
func randomStarShapedRing(rng *rand.Rand, n int, cx, cy, baseRadius float64) geom.Ring {
	step := 2 * math.Pi / float64(n)
	pts := make([]geom.Coordinate, n)
	for i := 0; i < n; i++ {
		angle := step*float64(i) + rng.Float64()*step*0.3
		radius := baseRadius * (0.6 + 0.4*rng.Float64())
		pts[i] = geom.Coordinate{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
	}
	ring := make(geom.Ring, 0, n+1)
	ring = append(ring, pts...)
	ring = append(ring, pts[0])
	return ring
}

// randomRingPoint returns a point at a random angle around (cx, cy) at a
// radius comfortably clear of baseRadius, so it always lies outside any
// ring randomStarShapedRing produces from the same baseRadius.
func randomRingPoint(rng *rand.Rand, cx, cy, baseRadius float64) geom.Coordinate {
	angle := rng.Float64() * 2 * math.Pi
	radius := baseRadius * (1.8 + 1.2*rng.Float64())
	return geom.Coordinate{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
}

// nodeLess gives features.NodeData a total order so an unordered pair of
// nodes can be canonicalized into a consistent map key.
func nodeLess(a, b features.NodeData) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.MPI.PolygonIndex != b.MPI.PolygonIndex {
		return a.MPI.PolygonIndex < b.MPI.PolygonIndex
	}
	if a.MPI.RingIndex != b.MPI.RingIndex {
		return a.MPI.RingIndex < b.MPI.RingIndex
	}
	if a.MPI.VertexIndex != b.MPI.VertexIndex {
		return a.MPI.VertexIndex < b.MPI.VertexIndex
	}
	return a.Index < b.Index
}

// visibilityEdgeSet computes the full visibility edge set over all, as the
// set of canonicalized (unordered) node pairs, so two modes' results can be
// compared regardless of which endpoint each happened to report the other
// from.
func visibilityEdgeSet(fs *features.FeatureSet, all []features.NodeData, mode visibility.Mode) map[[2]features.NodeData]bool {
	set := make(map[[2]features.NodeData]bool)
	for _, n := range all {
		for _, w := range visibility.Visible(n, all, fs, mode) {
			a, b := n, w
			if nodeLess(b, a) {
				a, b = b, a
			}
			set[[2]features.NodeData{a, b}] = true
		}
	}
	return set
}

// TestVisibleNaiveAndSweepAgreeOnRandomPolygons is spec §8 scenario 5: Naive
// and Sweep must compute the identical edge set on the same input, across a
// battery of randomly generated simple polygons and query points.
func TestVisibleNaiveAndSweepAgreeOnRandomPolygons(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(4)
		ring := randomStarShapedRing(rng, n, 0, 0, 10)
		fs := features.NewFeatureSet(geom.MultiPolygon{{Exterior: ring}}, nil)

		all := fs.All()
		for i := 0; i < 6; i++ {
			all = append(all, fs.AddArbitrary(randomRingPoint(rng, 0, 0, 10)))
		}

		naive := visibilityEdgeSet(fs, all, visibility.Naive)
		sweep := visibilityEdgeSet(fs, all, visibility.Sweep)
		optimized := visibilityEdgeSet(fs, all, visibility.OptimizedSweep)

		assert.Equal(t, naive, sweep, "trial %d: Naive and Sweep must agree on polygon with %d vertices", trial, n)
		assert.Equal(t, naive, optimized, "trial %d: Naive and OptimizedSweep must agree on polygon with %d vertices", trial, n)
	}
}
