// Package rb implements the recursive-bipartitioning driver: given a
// Hypergraph and a pctx.Context, it produces a k-way PartitionedHypergraph
// by repeatedly asking an external bisector (package multilevel) for a
// 2-way split, applying it, and forking two sub-problems on the resulting
// halves until every subtree covers exactly one block.
//
// The fork-join shape is grounded on perf-analysis's
// internal/parser/hprof/parallel.go, the only complete-repo use of
// golang.org/x/sync/errgroup for structured concurrency — the teacher
// repo itself has no recursive fork-join of its own to generalize.
package rb
