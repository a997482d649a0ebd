package processgraph

import "sync"

// mstScratch holds the two O(k) working arrays Prim's algorithm needs:
// the current best-known key (distance) into the growing tree for each
// vertex, and a visited flag. Pooled per goroutine so repeated Distance
// calls on the same ProcessGraph don't allocate on every query.
type mstScratch struct {
	key    []int64
	inTree []bool
}

func newMstScratch(k int) *mstScratch {
	return &mstScratch{
		key:    make([]int64, k),
		inTree: make([]bool, k),
	}
}

func (s *mstScratch) reset(k int) {
	if len(s.key) < k {
		s.key = make([]int64, k)
		s.inTree = make([]bool, k)
	}
	s.key = s.key[:k]
	s.inTree = s.inTree[:k]
	for i := 0; i < k; i++ {
		s.key[i] = unreachable
		s.inTree[i] = false
	}
}

var mstScratchPool = sync.Pool{
	New: func() interface{} { return newMstScratch(0) },
}

// mstApprox returns the weight of a minimum spanning tree over the
// complete graph induced on sorted by apsp's shortest-path distances —
// the standard 2-approximation to the Steiner tree connecting sorted in
// the process graph (the optimal Steiner tree's doubled-and-shortcut
// walk is itself a spanning walk of this metric completion, so its MST
// can only be cheaper).
//
// Grounded on prim_kruskal/prim.go's grow-from-a-root shape, replacing
// the container/heap priority queue with a plain O(n^2) array scan: the
// vertex set here is the connectivity set itself, almost always under a
// few dozen members, where a heap buys nothing over a linear min-scan.
// Scratch arrays are thread-local via sync.Pool to avoid per-query
// allocation under concurrent refinement.
func mstApprox(sorted []int, apsp [][]int64) int64 {
	n := len(sorted)
	if n <= 1 {
		return 0
	}

	raw := mstScratchPool.Get()
	scratch := raw.(*mstScratch)
	defer mstScratchPool.Put(scratch)
	scratch.reset(n)

	key := scratch.key
	inTree := scratch.inTree

	key[0] = 0
	var total int64
	for iter := 0; iter < n; iter++ {
		u := -1
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if u == -1 || key[v] < key[u] {
				u = v
			}
		}
		inTree[u] = true
		total += key[u]

		du := sorted[u]
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w := apsp[du][sorted[v]]; w < key[v] {
				key[v] = w
			}
		}
	}
	return total
}
