package partition

import (
	"sync/atomic"

	"github.com/katalvlaran/hyperpart/hgraph"
)

// Move records a single node relocation and the gain attributed to it.
type Move struct {
	Node hgraph.NodeId
	From hgraph.BlockId
	To   hgraph.BlockId
	Gain hgraph.Gain
}

// MoveSequence is an ordered list of Moves with their aggregate gain.
type MoveSequence struct {
	Moves []Move
	Gain  hgraph.Gain
}

// Append records m and folds its gain into the sequence total.
func (s *MoveSequence) Append(m Move) {
	s.Moves = append(s.Moves, m)
	s.Gain += m.Gain
}

// PartitionedHypergraph wraps a hgraph.Hypergraph with mutable partitioning
// state: node→block assignment and the state derived from it (partWeight,
// partSize, pinCount). See doc.go for the invariants it maintains.
//
// Zero value is not usable; construct with New.
type PartitionedHypergraph struct {
	hg *hgraph.Hypergraph
	k  int

	part       []atomic.Int32 // len n; holds hgraph.BlockId, INVALID until initialized
	partWeight []atomic.Int64 // len k
	partSize   []atomic.Int64 // len k
	pinCount   []atomic.Int64 // len m*k, flat: pinCount[e*k+b]

	initialized atomic.Bool
}

// New returns a PartitionedHypergraph over hg with k blocks, every node
// unassigned (part[v] = hgraph.INVALID) and all derived state zero.
// Complexity: O(n + m*k).
func New(hg *hgraph.Hypergraph, k int) *PartitionedHypergraph {
	n := hg.NumNodes()
	m := hg.NumEdges()

	phg := &PartitionedHypergraph{
		hg:         hg,
		k:          k,
		part:       make([]atomic.Int32, n),
		partWeight: make([]atomic.Int64, k),
		partSize:   make([]atomic.Int64, k),
		pinCount:   make([]atomic.Int64, m*k),
	}
	for i := range phg.part {
		phg.part[i].Store(int32(hgraph.INVALID))
	}
	return phg
}

// Hypergraph returns the underlying immutable hypergraph.
func (phg *PartitionedHypergraph) Hypergraph() *hgraph.Hypergraph { return phg.hg }

// K returns the number of blocks.
func (phg *PartitionedHypergraph) K() int { return phg.k }

func (phg *PartitionedHypergraph) pinIdx(e hgraph.HyperedgeId, b hgraph.BlockId) int {
	return int(e)*phg.k + int(b)
}
