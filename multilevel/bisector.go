package multilevel

import (
	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/partition"
	"github.com/katalvlaran/hyperpart/pctx"
)

// Bisector produces a committed 2-block PartitionedHypergraph over hg,
// driven by ctx's balance targets. Coarsening, initial partitioning, and
// refinement (FM, label propagation, flow, rebalancing) are external
// collaborators; only their interface is modeled here.
type Bisector interface {
	Partition(hg *hgraph.Hypergraph, ctx *pctx.Context) (*partition.PartitionedHypergraph, error)
}

// DefaultBisector is used by the package-level Partition helper.
var DefaultBisector Bisector = GreedyBisector{}

// Partition runs DefaultBisector.Partition. It is the entry point the
// recursive-bipartitioning driver calls at every recursion step.
func Partition(hg *hgraph.Hypergraph, ctx *pctx.Context) (*partition.PartitionedHypergraph, error) {
	return DefaultBisector.Partition(hg, ctx)
}
