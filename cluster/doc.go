// Package cluster implements Clustering, the auxiliary NodeId→BlockId
// sequence used by initial partitioning and coarsening feedback: singleton
// assignment (AssignSingleton) and dense relabeling (Compactify).
//
// Grounded on the teacher's index-remapping helpers in
// matrix/impl_builder.go, reusing internal/parallelfor for the same
// data-parallel for_each used by package partition.
package cluster
