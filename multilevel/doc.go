// Package multilevel stands in for the coarsening, initial-partitioning,
// and refinement pipeline that produces a 2-way bisection of a
// hypergraph — deliberately out of scope for the core per the
// specification, and represented here only by its interface (Bisector)
// plus one deterministic, dependency-free implementation (GreedyBisector)
// good enough to drive the recursive-bipartitioning tests end to end.
//
// Grounded on builder's Constructor stub idiom (a minimal, obviously
// correct generator standing in for a family of real algorithms) and on
// prim_kruskal's sorted-greedy-walk style.
package multilevel
