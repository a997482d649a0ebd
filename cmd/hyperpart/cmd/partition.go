package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/pctx"
	"github.com/katalvlaran/hyperpart/rb"
)

var (
	flagNodes       int
	flagEdges       int
	flagPinsPerEdge int
	flagSeed        int64

	flagK         int
	flagEpsilon   float64
	flagObjective string
	flagMode      string
)

var partitionCmd = &cobra.Command{
	Use:   "partition",
	Short: "Partition a synthetic hypergraph and print per-block statistics",
	RunE:  runPartition,
}

func init() {
	rootCmd.AddCommand(partitionCmd)

	partitionCmd.Flags().IntVar(&flagNodes, "nodes", 100, "number of synthetic nodes")
	partitionCmd.Flags().IntVar(&flagEdges, "edges", 30, "number of synthetic hyperedges")
	partitionCmd.Flags().IntVar(&flagPinsPerEdge, "pins-per-edge", 3, "pins sampled per synthetic hyperedge")
	partitionCmd.Flags().Int64Var(&flagSeed, "seed", 1, "synthetic-generator RNG seed")

	partitionCmd.Flags().IntVar(&flagK, "k", 4, "target number of blocks")
	partitionCmd.Flags().Float64Var(&flagEpsilon, "epsilon", 0.03, "balance tolerance")
	partitionCmd.Flags().StringVar(&flagObjective, "objective", "cut", "objective: cut, km1, soed, process_mapping")
	partitionCmd.Flags().StringVar(&flagMode, "mode", "rb", "driver mode: rb, direct, deep")
}

func runPartition(cmd *cobra.Command, args []string) error {
	ctx, err := buildContext()
	if err != nil {
		return fmt.Errorf("building context: %w", err)
	}

	hg, err := hgraph.RandomSparse(flagNodes, flagEdges,
		hgraph.WithSeed(flagSeed),
		hgraph.WithPinsPerEdge(flagPinsPerEdge),
	)
	if err != nil {
		return fmt.Errorf("generating synthetic hypergraph: %w", err)
	}

	log := GetLogger()
	log.Info("partitioning %d nodes / %d edges into %d blocks (objective=%s, mode=%s)",
		hg.NumNodes(), hg.NumEdges(), ctx.K, ctx.Objective, ctx.Mode)

	phg, err := rb.Partition(hg, ctx)
	if err != nil {
		return fmt.Errorf("partitioning: %w", err)
	}

	for b := 0; b < ctx.K; b++ {
		bid := hgraph.BlockId(b)
		fmt.Printf("block %2d: weight=%d size=%d\n", b, phg.PartWeight(bid), phg.PartSize(bid))
	}
	return nil
}

func buildContext() (*pctx.Context, error) {
	if configFile != "" {
		return pctx.LoadViper(configFile)
	}

	mode, err := pctx.ParseMode(flagMode)
	if err != nil {
		return nil, err
	}
	objective, err := pctx.ParseObjective(flagObjective)
	if err != nil {
		return nil, err
	}
	return pctx.New(
		pctx.WithK(flagK),
		pctx.WithEpsilon(flagEpsilon),
		pctx.WithObjective(objective),
		pctx.WithMode(mode),
	)
}
