package processgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperpart/processgraph"
)

// buildS5 returns the path graph 0-1-2-3 with unit edge weights used by
// the spec's Steiner-tree walkthrough.
func buildS5(t *testing.T) *processgraph.ProcessGraph {
	t.Helper()
	const unreach = 0
	adj := [][]int64{
		{0, 1, unreach, unreach},
		{1, 0, 1, unreach},
		{unreach, 1, 0, 1},
		{unreach, unreach, 1, 0},
	}
	pg, err := processgraph.New(adj)
	require.NoError(t, err)
	return pg
}

func TestS5_PairDistanceMatchesPathMetric(t *testing.T) {
	pg := buildS5(t)
	require.Equal(t, int64(3), pg.PairDistance(0, 3))
	require.Equal(t, int64(2), pg.PairDistance(0, 2))
	require.Equal(t, int64(1), pg.PairDistance(1, 2))
}

func TestS5_DistanceSingletonIsZero(t *testing.T) {
	pg := buildS5(t)
	d, err := pg.Distance([]int{2})
	require.NoError(t, err)
	require.Equal(t, int64(0), d)
}

func TestS5_DistancePairIsShortestPath(t *testing.T) {
	pg := buildS5(t)
	d, err := pg.Distance([]int{0, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), d)
}

func TestS5_DistanceTripleExactSteinerWeight(t *testing.T) {
	pg := buildS5(t)
	// Terminals {0,1,3}: optimal Steiner tree is the path 0-1-2-3, weight 3.
	d, err := pg.Distance([]int{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), d)
}

func TestP5_PrecomputedSetsAreExact(t *testing.T) {
	pg := buildS5(t)
	pg.PrecomputeDistances(3)
	require.Equal(t, 3, pg.MaxPrecomputedConnectivity())

	d, err := pg.Distance([]int{0, 1, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), d)
}

func TestP5_FallbackApproximationNeverUndercuts(t *testing.T) {
	pg := buildS5(t)
	// Full connectivity set {0,1,2,3} is above any small precomputed size;
	// the MST-on-metric-completion fallback must still return the exact
	// weight 3 on a path graph, since the path itself is the MST of its
	// own metric completion.
	d, err := pg.Distance([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, int64(3), d)
}

func TestDistance_RejectsEmptySet(t *testing.T) {
	pg := buildS5(t)
	_, err := pg.Distance(nil)
	require.ErrorIs(t, err, processgraph.ErrEmptyConnectivitySet)
}

func TestDistance_RejectsOutOfRangeBlock(t *testing.T) {
	pg := buildS5(t)
	_, err := pg.Distance([]int{0, 9})
	require.ErrorIs(t, err, processgraph.ErrBlockOutOfRange)
}

func TestNew_RejectsNonSquareMatrix(t *testing.T) {
	_, err := processgraph.New([][]int64{{0, 1}, {1, 0, 0}})
	require.ErrorIs(t, err, processgraph.ErrNonSquare)
}

func TestNew_RejectsEmptyMatrix(t *testing.T) {
	_, err := processgraph.New(nil)
	require.ErrorIs(t, err, processgraph.ErrTooFewBlocks)
}
