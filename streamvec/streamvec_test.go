package streamvec_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/hyperpart/streamvec"
	"github.com/stretchr/testify/require"
)

func TestStream_CopySequential(t *testing.T) {
	sv := streamvec.New[int]()
	var wg sync.WaitGroup
	const n = 500
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(v int) {
			defer wg.Done()
			sv.Stream(v)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, sv.Len())
	out := sv.CopySequential()
	require.Len(t, out, n)
	sort.Ints(out)
	for i, v := range out {
		require.Equal(t, i, v)
	}
}

func TestCopyParallel_MatchesSequential(t *testing.T) {
	sv := streamvec.New[int]()
	for i := 0; i < 1000; i++ {
		sv.Stream(i)
	}

	seq := append([]int(nil), sv.CopySequential()...)
	par := append([]int(nil), sv.CopyParallel()...)

	sort.Ints(seq)
	sort.Ints(par)
	require.Equal(t, seq, par)
}

func TestClear(t *testing.T) {
	sv := streamvec.New[int]()
	for i := 0; i < 10; i++ {
		sv.Stream(i)
	}
	require.Equal(t, 10, sv.Len())
	sv.ClearSequential()
	require.Equal(t, 0, sv.Len())

	for i := 0; i < 10; i++ {
		sv.Stream(i)
	}
	sv.ClearParallel()
	require.Equal(t, 0, sv.Len())
}
