package hgraph_test

import (
	"testing"

	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/stretchr/testify/require"
)

// buildS1 constructs the 7-node hypergraph used throughout spec scenario S1:
// edges {0,2}, {0,1,3,4}, {3,4,6}, {2,5,6}, unit node weights.
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

func TestNewHypergraph_S1Shape(t *testing.T) {
	hg := buildS1(t)
	require.Equal(t, 7, hg.NumNodes())
	require.Equal(t, 4, hg.NumEdges())
	require.EqualValues(t, 7, hg.TotalWeight())
	require.ElementsMatch(t, []hgraph.NodeId{0, 1, 3, 4}, hg.Pins(1))
	require.ElementsMatch(t, []hgraph.HyperedgeId{0, 1}, hg.Incident(0))
}

func TestNewHypergraph_RejectsDegenerateEdge(t *testing.T) {
	_, err := hgraph.NewHypergraph(
		[]hgraph.Weight{1, 1},
		[][]hgraph.NodeId{{0}},
		nil,
	)
	require.ErrorIs(t, err, hgraph.ErrDegeneratePin)
}

func TestNewHypergraph_RejectsOutOfRangePin(t *testing.T) {
	_, err := hgraph.NewHypergraph(
		[]hgraph.Weight{1, 1},
		[][]hgraph.NodeId{{0, 5}},
		nil,
	)
	require.ErrorIs(t, err, hgraph.ErrNodeOutOfRange)
}

func TestNewHypergraph_RejectsZeroNodes(t *testing.T) {
	_, err := hgraph.NewHypergraph(nil, nil, nil)
	require.ErrorIs(t, err, hgraph.ErrNoNodes)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := hgraph.RandomSparse(20, 10, hgraph.WithSeed(42))
	require.NoError(t, err)
	b, err := hgraph.RandomSparse(20, 10, hgraph.WithSeed(42))
	require.NoError(t, err)
	for e := 0; e < a.NumEdges(); e++ {
		require.Equal(t, a.Pins(hgraph.HyperedgeId(e)), b.Pins(hgraph.HyperedgeId(e)))
	}
}
