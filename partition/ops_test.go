package partition_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/partition"
	"github.com/stretchr/testify/require"
)

// buildS1 builds the 7-node hypergraph from spec scenario S1.
func buildS1(t *testing.T) *hgraph.Hypergraph {
	t.Helper()
	nw := []hgraph.Weight{1, 1, 1, 1, 1, 1, 1}
	edges := [][]hgraph.NodeId{
		{0, 2},
		{0, 1, 3, 4},
		{3, 4, 6},
		{2, 5, 6},
	}
	hg, err := hgraph.NewHypergraph(nw, edges, nil)
	require.NoError(t, err)
	return hg
}

// initS1 returns a PartitionedHypergraph initialized with part =
// [0,0,0,1,1,2,2], k=3, per spec scenario S1.
func initS1(t *testing.T) *partition.PartitionedHypergraph {
	t.Helper()
	hg := buildS1(t)
	phg := partition.New(hg, 3)
	assign := []hgraph.BlockId{0, 0, 0, 1, 1, 2, 2}
	for v, b := range assign {
		require.NoError(t, phg.SetOnlyNodePart(hgraph.NodeId(v), b))
	}
	require.NoError(t, phg.InitializePartition())
	return phg
}

func TestS1_DerivedState(t *testing.T) {
	phg := initS1(t)

	require.EqualValues(t, 3, phg.PartWeight(0))
	require.EqualValues(t, 2, phg.PartWeight(1))
	require.EqualValues(t, 2, phg.PartWeight(2))

	require.Equal(t, 3, phg.PartSize(0))
	require.Equal(t, 2, phg.PartSize(1))
	require.Equal(t, 2, phg.PartSize(2))

	// Edge 1 = {0,1,3,4}: block0 has {0,1}, block1 has {3,4}, block2 none.
	require.Equal(t, 2, phg.PinCountInPart(1, 0))
	require.Equal(t, 2, phg.PinCountInPart(1, 1))
	require.Equal(t, 0, phg.PinCountInPart(1, 2))
}

func TestP1_P2_GlobalSums(t *testing.T) {
	phg := initS1(t)
	hg := phg.Hypergraph()

	var sumW hgraph.Weight
	var sumSz int
	for b := 0; b < phg.K(); b++ {
		sumW += phg.PartWeight(hgraph.BlockId(b))
		sumSz += phg.PartSize(hgraph.BlockId(b))
	}
	require.Equal(t, hg.TotalWeight(), sumW)
	require.Equal(t, hg.NumNodes(), sumSz)

	for e := 0; e < hg.NumEdges(); e++ {
		eid := hgraph.HyperedgeId(e)
		for b := 0; b < phg.K(); b++ {
			want := 0
			for _, v := range hg.Pins(eid) {
				if phg.PartID(v) == hgraph.BlockId(b) {
					want++
				}
			}
			require.Equal(t, want, phg.PinCountInPart(eid, hgraph.BlockId(b)))
		}
	}
}

func TestS2_ConcurrentMovesOnDistinctNodes(t *testing.T) {
	phg := initS1(t)

	var wg sync.WaitGroup
	var ok1, ok2 bool
	wg.Add(2)
	go func() { defer wg.Done(); ok1 = phg.ChangeNodePart(3, 1, 2) }()
	go func() { defer wg.Done(); ok2 = phg.ChangeNodePart(6, 2, 0) }()
	wg.Wait()

	require.True(t, ok1)
	require.True(t, ok2)

	// Edge 2 = {3,4,6}: after the moves, 3 is in block2, 4 stays in block1,
	// 6 moved to block0: one pin per block.
	require.Equal(t, 1, phg.PinCountInPart(2, 0))
	require.Equal(t, 1, phg.PinCountInPart(2, 1))
	require.Equal(t, 1, phg.PinCountInPart(2, 2))
}

func TestS3_ConcurrentMovesOnSameNode(t *testing.T) {
	phg := initS1(t)

	var wg sync.WaitGroup
	var ok1, ok2 bool
	wg.Add(2)
	go func() { defer wg.Done(); ok1 = phg.ChangeNodePart(0, 0, 1) }()
	go func() { defer wg.Done(); ok2 = phg.ChangeNodePart(0, 0, 2) }()
	wg.Wait()

	require.True(t, ok1 != ok2, "exactly one of the two racing moves must succeed")

	var total hgraph.Weight
	for b := 0; b < phg.K(); b++ {
		total += phg.PartWeight(hgraph.BlockId(b))
	}
	require.EqualValues(t, 7, total)

	winner := hgraph.BlockId(1)
	if ok2 {
		winner = 2
	}
	require.Equal(t, winner, phg.PartID(0))
}

func TestR1_RoundTripRestoresState(t *testing.T) {
	phg := initS1(t)
	before := snapshot(phg)

	require.True(t, phg.ChangeNodePart(0, 0, 1))
	require.True(t, phg.ChangeNodePart(0, 1, 0))

	require.Equal(t, before, snapshot(phg))
}

func TestR2_InitializePartitionIdempotent(t *testing.T) {
	phg := initS1(t)
	before := snapshot(phg)
	require.NoError(t, phg.InitializePartition())
	require.Equal(t, before, snapshot(phg))
}

type stateSnapshot struct {
	weights []hgraph.Weight
	sizes   []int
	pins    [][]int
}

func snapshot(phg *partition.PartitionedHypergraph) stateSnapshot {
	s := stateSnapshot{}
	for b := 0; b < phg.K(); b++ {
		s.weights = append(s.weights, phg.PartWeight(hgraph.BlockId(b)))
		s.sizes = append(s.sizes, phg.PartSize(hgraph.BlockId(b)))
	}
	for e := 0; e < phg.Hypergraph().NumEdges(); e++ {
		var row []int
		for b := 0; b < phg.K(); b++ {
			row = append(row, phg.PinCountInPart(hgraph.HyperedgeId(e), hgraph.BlockId(b)))
		}
		s.pins = append(s.pins, row)
	}
	return s
}

func TestChangeNodePart_FailsOnWrongFrom(t *testing.T) {
	phg := initS1(t)
	require.False(t, phg.ChangeNodePart(0, 1, 2)) // node 0 is actually in block 0
}

func TestSetOnlyNodePart_RejectsDoubleAssignment(t *testing.T) {
	hg := buildS1(t)
	phg := partition.New(hg, 3)
	require.NoError(t, phg.SetOnlyNodePart(0, 0))
	require.ErrorIs(t, phg.SetOnlyNodePart(0, 1), partition.ErrAlreadyAssigned)
}

func TestInitializePartition_RejectsUnassignedNode(t *testing.T) {
	hg := buildS1(t)
	phg := partition.New(hg, 3)
	require.NoError(t, phg.SetOnlyNodePart(0, 0))
	require.ErrorIs(t, phg.InitializePartition(), partition.ErrUnassignedNode)
}

func TestDoParallelForAllNodes_VisitsEveryNode(t *testing.T) {
	phg := initS1(t)
	var mu sync.Mutex
	seen := make(map[hgraph.NodeId]bool)
	phg.DoParallelForAllNodes(func(v hgraph.NodeId) {
		mu.Lock()
		seen[v] = true
		mu.Unlock()
	})
	require.Len(t, seen, phg.Hypergraph().NumNodes())
}
