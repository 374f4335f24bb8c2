package planner

import (
	"errors"
	"sort"

	"github.com/katalvlaran/rangeplanner/astar"
	"github.com/katalvlaran/rangeplanner/features"
	"github.com/katalvlaran/rangeplanner/geom"
	"github.com/katalvlaran/rangeplanner/navgraph"
)

// Sentinel errors returned by PlanWithRecharge (spec §7).
var (
	// ErrNoPathToEnd indicates the graph is disconnected between start and
	// end, with no reachable recharge detour changing that.
	ErrNoPathToEnd = errors.New("planner: no path to end")

	// ErrNoPathToWater indicates no water polygon is reachable within the
	// current leg's budget from the current leg start.
	ErrNoPathToWater = errors.New("planner: no reachable recharge water within budget")

	// ErrLoopDetected indicates the planner selected the same recharge
	// vertex twice consecutively, which would otherwise loop forever.
	ErrLoopDetected = errors.New("planner: selected the same recharge vertex twice consecutively")
)

// Leg is one contiguous flight segment, ending either at the destination or
// at the arc-length-truncated point where the aircraft must divert to
// recharge, together with the graph path actually flown to reach a
// recharge candidate (End itself is not necessarily a graph node for an
// intermediate leg).
type Leg struct {
	End  geom.Coordinate
	Path []astar.Step
}

// PlanWithRecharge finds a start-to-end route across g, budget d0 for the
// first leg and d1 for every leg after a recharge, inserting a recharge
// stop at a water vertex whenever a leg's distance to end would otherwise
// exceed its budget.
//
// Ported from original_source/nav_graph/planning.rs::plan_path_or_recharge:
// each iteration runs an unbounded search to end; if that exceeds the leg's
// budget, it truncates the path at the budget's arc length, pre-filters
// water vertices within straight-line range of the leg start, sorts them by
// distance to the truncated point, and searches (budget-pruned against d0,
// per spec's documented quirk — not the current leg's budget) for the
// first one actually reachable.
// Complexity: O(legs * V log V) bounded-A* searches, dominated by the
// recharge-candidate search loop in the worst case.
func PlanWithRecharge(g *navgraph.Graph, fs *features.FeatureSet, d0, d1 float64, start, end features.NodeData) ([]Leg, error) {
	endCoord := fs.Coord(end)

	legBudget := d0
	legStart := start
	prevLegStart := legStart
	var legs []Leg

	for {
		toEnd, _ := astar.Search(g, legStart, goalIs(end), distanceTo(fs, endCoord))
		if toEnd == nil {
			return nil, ErrNoPathToEnd
		}

		if toEnd.Cost <= legBudget {
			legs = append(legs, Leg{End: endCoord, Path: toEnd.Path})
			return legs, nil
		}

		pathCoords := make([]geom.Coordinate, len(toEnd.Path))
		for i, step := range toEnd.Path {
			pathCoords[i] = fs.Coord(step.Node)
		}
		reachablePoint, ok := PointAtArcLength(pathCoords, legBudget)
		if !ok {
			return nil, ErrNoPathToEnd
		}

		candidates := reachableWaterCandidates(fs, fs.Coord(legStart), legBudget)
		sort.SliceStable(candidates, func(i, j int) bool {
			return geom.Distance(fs.Coord(candidates[i]), reachablePoint) < geom.Distance(fs.Coord(candidates[j]), reachablePoint)
		})

		chosen, chosenPath, found := searchFirstReachableCandidate(g, fs, legStart, candidates, d0)
		if !found {
			return nil, ErrNoPathToWater
		}

		legs = append(legs, Leg{End: reachablePoint, Path: chosenPath})

		prevLegStart = legStart
		legStart = chosen
		if legStart == prevLegStart {
			return nil, ErrLoopDetected
		}
		legBudget = d1
	}
}

func goalIs(target features.NodeData) func(features.NodeData, float64) astar.GoalResult {
	return func(n features.NodeData, _ float64) astar.GoalResult {
		if n == target {
			return astar.Goal
		}
		return astar.NotGoal
	}
}

func distanceTo(fs *features.FeatureSet, target geom.Coordinate) func(features.NodeData) float64 {
	return func(n features.NodeData) float64 {
		return geom.Distance(fs.Coord(n), target)
	}
}

// reachableWaterCandidates pre-filters water vertices whose straight-line
// distance from legStartCoord is within budget, cheaply excluding
// candidates no path could possibly reach within that many hops of slack.
func reachableWaterCandidates(fs *features.FeatureSet, legStartCoord geom.Coordinate, budget float64) []features.NodeData {
	var out []features.NodeData
	for _, mpi := range geom.All(fs.Waters) {
		c := features.Water(mpi)
		if geom.Distance(legStartCoord, fs.Coord(c)) <= budget {
			out = append(out, c)
		}
	}
	return out
}

// searchFirstReachableCandidate tries each candidate water vertex in order,
// running a budget-pruned search from legStart whose goal predicate accepts
// any vertex of the candidate's own polygon (not just the exact vertex),
// and for the first candidate a path is actually found for, returns the
// water vertex that path ends at (which may be a different vertex of the
// same polygon than the candidate itself).
func searchFirstReachableCandidate(g *navgraph.Graph, fs *features.FeatureSet, legStart features.NodeData, candidates []features.NodeData, pruneBudget float64) (features.NodeData, []astar.Step, bool) {
	for _, c := range candidates {
		cCoord := fs.Coord(c)
		isGoal := func(n features.NodeData, costSoFar float64) astar.GoalResult {
			if costSoFar > pruneBudget {
				return astar.Prune
			}
			if n.Kind == features.WaterVertex && n.MPI.PolygonIndex == c.MPI.PolygonIndex {
				return astar.Goal
			}
			return astar.NotGoal
		}
		result, _ := astar.Search(g, legStart, isGoal, distanceTo(fs, cCoord))
		if result != nil {
			return result.Path[len(result.Path)-1].Node, result.Path, true
		}
	}
	return features.NodeData{}, nil, false
}
