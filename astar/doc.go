// Package astar implements a bounded best-first search over a navgraph.Graph,
// parameterized by a three-outcome goal predicate (NotGoal / Goal / Prune)
// instead of a plain boolean, so a caller can prune a branch as a dead end
// (for example, once its cost exceeds a recharge budget) without treating
// it as having reached the goal.
//
// Ported from original_source/nav_graph/bounded_astar/mod.rs::bounded_astar,
// itself a modified petgraph::algo::astar; the min-heap and lazy
// decrease-key/re-expansion-suppression idiom mirrors the teacher's
// dijkstra package (container/heap over a score-ordered priority queue,
// stale entries simply skipped rather than removed).
package astar
