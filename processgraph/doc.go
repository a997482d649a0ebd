// Package processgraph implements ProcessGraph, the Steiner-tree oracle
// behind the process_mapping objective: a small weighted graph G_P on k
// blocks, its all-pairs shortest paths, a budget-bounded table of exact
// Steiner-tree weights for small connectivity sets, and a 2-approximate
// fallback (MST on the metric completion) for everything past that budget.
//
// APSP is grounded on matrix/impl_floydwarshall.go's fixed k→i→j loop order
// and in-place +Inf-for-no-path convention, generalized from a *matrix.Dense
// buffer to the k×k process-graph distance table. The 2-approximation is
// grounded on prim_kruskal's MST implementations — prim_kruskal/doc.go
// itself names Steiner trees and graph partitioning as motivating MST use
// cases.
package processgraph
