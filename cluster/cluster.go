package cluster

import "github.com/katalvlaran/hyperpart/internal/parallelfor"

// Clustering is a mutable NodeId→BlockId array (represented here as plain
// int32 ids to stay agnostic of which dense id space it is relabeling —
// node ids during coarsening feedback, cluster ids during initial
// partitioning).
type Clustering struct {
	ids []int32
}

// New returns a Clustering of size n, all zero.
func New(n int) *Clustering {
	return &Clustering{ids: make([]int32, n)}
}

// Len returns the number of entries.
func (c *Clustering) Len() int { return len(c.ids) }

// Get returns the value at index i.
func (c *Clustering) Get(i int) int32 { return c.ids[i] }

// Set overwrites the value at index i.
func (c *Clustering) Set(i int, v int32) { c.ids[i] = v }

// AssignSingleton sets cluster[i] = i for every i, in parallel.
func (c *Clustering) AssignSingleton() {
	parallelfor.Range(len(c.ids), func(i int) {
		c.ids[i] = int32(i)
	})
}

// Compactify relabels every value to the dense range [0, count), where
// count is the number of distinct values present and a value's new id
// equals the number of distinct present values strictly smaller than it
// (i.e. relabeling preserves ascending order of the original values).
//
// The sequential and parallel paths share the same bitmap/prefix-sum
// construction (cheap, O(upperBound)) and differ only in how the O(n)
// write-back loop is driven — this is what guarantees P4: they always
// agree on prefix, hence always agree on output.
func (c *Clustering) Compactify(upperBound int, parallel bool) (int, error) {
	present := make([]bool, upperBound+1)
	for _, v := range c.ids {
		if int(v) < 0 || int(v) > upperBound {
			return 0, ErrValueOutOfRange
		}
		present[v] = true
	}

	prefix := make([]int32, upperBound+1)
	running := int32(0)
	for v := 0; v <= upperBound; v++ {
		prefix[v] = running
		if present[v] {
			running++
		}
	}

	if parallel {
		parallelfor.Range(len(c.ids), func(i int) {
			c.ids[i] = prefix[c.ids[i]]
		})
	} else {
		for i := range c.ids {
			c.ids[i] = prefix[c.ids[i]]
		}
	}

	return int(running), nil
}
