// Package planner implements the greedy, multi-leg recharge planner: given
// a visibility graph, an initial and post-recharge distance budget, and a
// start/end node, it finds a sequence of flight legs from start to end,
// inserting a recharge stop at a reachable water polygon whenever a leg
// would otherwise exceed its budget.
//
// Ported from original_source/nav_graph/planning.rs::plan_path_or_recharge;
// the algorithm is not globally optimal — each recharge choice minimizes
// distance from the current leg's farthest reachable point to a candidate
// water vertex, not the resulting total path length.
package planner
