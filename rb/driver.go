package rb

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/internal/obslog"
	"github.com/katalvlaran/hyperpart/multilevel"
	"github.com/katalvlaran/hyperpart/partition"
	"github.com/katalvlaran/hyperpart/pctx"
)

// Logger is used for the driver's own progress messages; it defaults to
// a discarding NullLogger so tests stay quiet. Callers wanting visibility
// should set it once, before calling Partition concurrently.
var Logger obslog.Logger = obslog.NullLogger{}

// Partition builds a fresh PartitionedHypergraph over hg with ctx.K
// blocks and fully partitions it in place.
func Partition(hg *hgraph.Hypergraph, ctx *pctx.Context) (*partition.PartitionedHypergraph, error) {
	phg := partition.New(hg, ctx.K)
	if err := PartitionInto(phg, ctx); err != nil {
		return nil, err
	}
	return phg, nil
}

// PartitionInto fully partitions an existing PartitionedHypergraph in
// place, recursively bisecting until every subtree maps to a single
// block. phg.K() must equal ctx.K.
func PartitionInto(phg *partition.PartitionedHypergraph, ctx *pctx.Context) error {
	if phg.K() != ctx.K {
		return ErrHypergraphContextMismatch
	}
	info := rootInfo{
		originalWeight: int64(phg.Hypergraph().TotalWeight()),
		originalK:      ctx.K,
		originalEps:    ctx.Eps,
	}
	return recurse(phg, ctx, info)
}

// recurse produces phg.K() blocks in phg: a single 2-way bisection,
// applied directly, followed by a structured fork-join of the two
// resulting halves' own recursive sub-problems.
func recurse(phg *partition.PartitionedHypergraph, ctx *pctx.Context, info rootInfo) error {
	k := phg.K()
	if k < 2 {
		return nil
	}

	bCtx, err := setupBisectionCtx(phg.Hypergraph(), ctx, info, k)
	if err != nil {
		return err
	}

	bip, err := multilevel.Partition(phg.Hypergraph(), bCtx)
	if err != nil {
		return err
	}

	kSide0 := ceilDivInt(k, 2)
	kSide1 := k / 2
	b1 := hgraph.BlockId(kSide0)

	phg.DoParallelForAllNodes(func(v hgraph.NodeId) {
		target := hgraph.BlockId(0)
		if bip.PartID(v) == 1 {
			target = b1
		}
		_ = phg.SetOnlyNodePart(v, target)
	})
	if err := phg.InitializePartition(); err != nil {
		return err
	}

	Logger.Debug("bisected block into %d/%d sub-blocks", kSide0, kSide1)

	switch {
	case kSide0 >= 2 && kSide1 >= 2:
		g := new(errgroup.Group)
		g.Go(func() error {
			return recurseBlock(phg, ctx, 0, 0, kSide0, info, 0.5)
		})
		g.Go(func() error {
			return recurseBlock(phg, ctx, b1, kSide0, kSide0+kSide1, info, 0.5)
		})
		return g.Wait()
	case kSide0 >= 2:
		return recurseBlock(phg, ctx, 0, 0, kSide0, info, 1.0)
	default:
		return nil
	}
}

// recurseBlock subdivides the single coarse block `block` of phg into
// the k1-k0 fine blocks [k0,k1), by extracting its sub-hypergraph,
// fully partitioning a fresh sub-PartitionedHypergraph over it, and
// copying the result back into phg with an additive offset of `block`.
func recurseBlock(phg *partition.PartitionedHypergraph, ctx *pctx.Context, block hgraph.BlockId, k0, k1 int, info rootInfo, parallelism float64) error {
	if k1-k0 < 2 {
		return nil // termination: the block is already itself
	}

	rbCtx, err := buildSubContext(ctx, k0, k1, parallelism)
	if err != nil {
		return err
	}

	subHg, mapping, err := phg.Extract(block, ctx.Objective.CutNetSplitting(), true)
	if err != nil {
		return err
	}
	if subHg == nil {
		return nil // block currently holds no nodes
	}

	subPhg := partition.New(subHg, rbCtx.K)
	if err := recurse(subPhg, rbCtx, info); err != nil {
		return err
	}

	for v := 0; v < len(mapping); v++ {
		sv := mapping[v]
		if sv == partition.ExtractMappingSentinel {
			continue
		}
		target := block + hgraph.BlockId(subPhg.PartID(sv))
		if target != block {
			phg.ChangeNodePart(hgraph.NodeId(v), block, target)
		}
	}
	return nil
}

// setupBisectionCtx builds the Context handed to the external bisector
// for a single 2-way split of a sub-problem currently at target size k.
func setupBisectionCtx(hg *hgraph.Hypergraph, ctx *pctx.Context, info rootInfo, k int) (*pctx.Context, error) {
	w := int64(hg.TotalWeight())
	kSide0 := ceilDivInt(k, 2)
	kSide1 := k / 2

	var perfect0, perfect1, max0, max1 int64
	if ctx.UseIndividualPartWeights {
		perfect0, perfect1, max0, max1 = individualBisectionWeights(ctx.MaxPartWeights, w, k, kSide0)
	} else {
		perfect0, perfect1, max0, max1 = bisectionWeights(info, w, k, kSide0, kSide1)
	}

	return pctx.New(
		pctx.WithK(2),
		pctx.WithObjective(ctx.Objective),
		pctx.WithMode(ctx.Mode),
		pctx.WithType(pctx.TypeInitialPartitioning),
		pctx.WithThreads(ctx.Threads),
		pctx.WithDegreeOfParallelism(ctx.DegreeOfParallelism),
		pctx.WithIndividualPartWeights([]int64{perfect0, perfect1}, []int64{max0, max1}),
	)
}

// buildSubContext builds the rb_ctx for a recurseBlock sub-problem: its
// own K, a slice of the parent's per-block targets for [k0,k1) when
// individual weights are in play, and degree_of_parallelism scaled by
// the fork factor.
func buildSubContext(ctx *pctx.Context, k0, k1 int, parallelism float64) (*pctx.Context, error) {
	opts := []pctx.Option{
		pctx.WithK(k1 - k0),
		pctx.WithEpsilon(ctx.Eps),
		pctx.WithObjective(ctx.Objective),
		pctx.WithMode(ctx.Mode),
		pctx.WithType(ctx.Type),
		pctx.WithThreads(ctx.Threads),
		pctx.WithDegreeOfParallelism(ctx.DegreeOfParallelism * parallelism),
		pctx.WithRefinement(ctx.Refinement),
	}
	if ctx.UseIndividualPartWeights {
		opts = append(opts, pctx.WithIndividualPartWeights(
			append([]int64(nil), ctx.PerfectBalancePartWeights[k0:k1]...),
			append([]int64(nil), ctx.MaxPartWeights[k0:k1]...),
		))
	}
	return pctx.New(opts...)
}

func ceilDivInt(a, b int) int {
	return (a + b - 1) / b
}
