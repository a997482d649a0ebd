package processgraph

import "math"

// unreachable stands in for +Inf in the integer distance domain; large
// enough that two unreachable legs never overflow int64 when summed.
const unreachable = int64(math.MaxInt64 / 4)

// ProcessGraph is an undirected weighted graph on k nodes (blocks), with
// its all-pairs shortest paths precomputed at construction and an optional
// table of exact Steiner-tree weights for small connectivity sets.
type ProcessGraph struct {
	k    int
	apsp [][]int64 // k x k, unreachable means "no path"

	maxPrecomputed int
	budget         int
	steinerCache   map[uint64]int64
}

// New builds a ProcessGraph from a k×k symmetric adjacency matrix; adj[i][j]
// == 0 (for i != j) means "no direct edge". Runs all-pairs shortest paths
// immediately.
//
// Complexity: O(k^3).
func New(adj [][]int64) (*ProcessGraph, error) {
	k := len(adj)
	if k < 1 {
		return nil, ErrTooFewBlocks
	}
	for _, row := range adj {
		if len(row) != k {
			return nil, ErrNonSquare
		}
	}

	pg := &ProcessGraph{
		k:            k,
		apsp:         make([][]int64, k),
		steinerCache: make(map[uint64]int64),
	}
	for i := range pg.apsp {
		pg.apsp[i] = make([]int64, k)
		for j := range pg.apsp[i] {
			switch {
			case i == j:
				pg.apsp[i][j] = 0
			case adj[i][j] == 0:
				pg.apsp[i][j] = unreachable
			default:
				pg.apsp[i][j] = adj[i][j]
			}
		}
	}

	floydWarshallInPlace(pg.apsp)
	return pg, nil
}

// floydWarshallInPlace runs APSP closure on a k×k int64 distance matrix
// in-place. Loop order is fixed (k -> i -> j) for deterministic
// accumulation, mirroring matrix/impl_floydwarshall.go's convention.
// Time: O(k^3); extra space O(1).
func floydWarshallInPlace(d [][]int64) {
	n := len(d)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := d[i][k]
			if dik >= unreachable {
				continue
			}
			row := d[k]
			for j := 0; j < n; j++ {
				if cand := dik + row[j]; cand < d[i][j] {
					d[i][j] = cand
				}
			}
		}
	}
}

// NumBlocks returns k.
func (pg *ProcessGraph) NumBlocks() int { return pg.k }

// PairDistance returns the shortest-path distance between blocks i and j.
func (pg *ProcessGraph) PairDistance(i, j int) int64 {
	return pg.apsp[i][j]
}

// MaxPrecomputedConnectivity returns the largest connectivity-set size for
// which PrecomputeDistances actually finished precomputing exact weights
// (it may be smaller than the requested max if the memory budget was hit
// first).
func (pg *ProcessGraph) MaxPrecomputedConnectivity() int {
	return pg.maxPrecomputed
}
