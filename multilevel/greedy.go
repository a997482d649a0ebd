package multilevel

import (
	"sort"

	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/partition"
	"github.com/katalvlaran/hyperpart/pctx"
)

// GreedyBisector assigns nodes to one of two blocks by largest-weight-
// first greedy balancing (a longest-processing-time bin-packing
// heuristic): nodes are visited in descending weight order and each goes
// to whichever block currently carries less weight. It makes no attempt
// to minimize any cut objective — that is the refinement engines' job —
// but it is deterministic and keeps partWeight within a small constant
// factor of perfectly balanced, which is all the driver's own tests
// require of a "compliant bisector stub".
type GreedyBisector struct{}

// Partition implements Bisector.
func (GreedyBisector) Partition(hg *hgraph.Hypergraph, ctx *pctx.Context) (*partition.PartitionedHypergraph, error) {
	phg := partition.New(hg, 2)

	order := make([]hgraph.NodeId, hg.NumNodes())
	for v := range order {
		order[v] = hgraph.NodeId(v)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return hg.NodeWeight(order[i]) > hg.NodeWeight(order[j])
	})

	var running [2]hgraph.Weight
	for _, v := range order {
		b := hgraph.BlockId(0)
		if running[1] < running[0] {
			b = 1
		}
		if err := phg.SetOnlyNodePart(v, b); err != nil {
			return nil, err
		}
		running[b] += hg.NodeWeight(v)
	}

	if err := phg.InitializePartition(); err != nil {
		return nil, err
	}
	_ = ctx // the stub ignores balance targets; refinement would honor them
	return phg, nil
}
