package cluster_test

import (
	"testing"

	"github.com/katalvlaran/hyperpart/cluster"
	"github.com/stretchr/testify/require"
)

func buildS6() *cluster.Clustering {
	c := cluster.New(7)
	for i, v := range []int32{5, 5, 7, 9, 5, 7, 9} {
		c.Set(i, v)
	}
	return c
}

func TestS6_CompactifySequential(t *testing.T) {
	c := buildS6()
	count, err := c.Compactify(9, false)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	want := []int32{0, 0, 1, 2, 0, 1, 2}
	for i, w := range want {
		require.Equal(t, w, c.Get(i))
	}
}

func TestS6_CompactifyParallel(t *testing.T) {
	c := buildS6()
	count, err := c.Compactify(9, true)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	want := []int32{0, 0, 1, 2, 0, 1, 2}
	for i, w := range want {
		require.Equal(t, w, c.Get(i))
	}
}

func TestP4_SequentialAndParallelAgree(t *testing.T) {
	seq := buildS6()
	par := buildS6()

	countSeq, err := seq.Compactify(9, false)
	require.NoError(t, err)
	countPar, err := par.Compactify(9, true)
	require.NoError(t, err)

	require.Equal(t, countSeq, countPar)
	for i := 0; i < seq.Len(); i++ {
		require.Equal(t, seq.Get(i), par.Get(i))
	}
}

func TestAssignSingleton(t *testing.T) {
	c := cluster.New(5)
	c.AssignSingleton()
	for i := 0; i < 5; i++ {
		require.EqualValues(t, i, c.Get(i))
	}
}

func TestCompactify_RejectsOutOfRange(t *testing.T) {
	c := cluster.New(1)
	c.Set(0, 10)
	_, err := c.Compactify(5, false)
	require.ErrorIs(t, err, cluster.ErrValueOutOfRange)
}
