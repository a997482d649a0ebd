package partition

import (
	"github.com/katalvlaran/hyperpart/hgraph"
	"github.com/katalvlaran/hyperpart/internal/parallelfor"
)

// SetOnlyNodePart performs the unchecked initial assignment part[v] = b. It
// does NOT update derived state — callers must invoke InitializePartition
// exactly once after the last SetOnlyNodePart call. Returns
// ErrAlreadyAssigned if v already holds a block (a contract violation: this
// method is for the one-time bulk-fill phase only).
func (phg *PartitionedHypergraph) SetOnlyNodePart(v hgraph.NodeId, b hgraph.BlockId) error {
	if !phg.part[v].CompareAndSwap(int32(hgraph.INVALID), int32(b)) {
		return ErrAlreadyAssigned
	}
	return nil
}

// InitializePartition recomputes partWeight, partSize and pinCount from
// scratch, in parallel, from the current part array. After this call,
// invariants I2–I4 hold and ChangeNodePart becomes legal. Returns
// ErrUnassignedNode if any node still holds hgraph.INVALID.
//
// Idempotent: calling it again with an unchanged part array reproduces the
// same derived state (R2).
func (phg *PartitionedHypergraph) InitializePartition() error {
	n := phg.hg.NumNodes()
	for v := 0; v < n; v++ {
		if hgraph.BlockId(phg.part[v].Load()) == hgraph.INVALID {
			return ErrUnassignedNode
		}
	}

	for b := range phg.partWeight {
		phg.partWeight[b].Store(0)
		phg.partSize[b].Store(0)
	}
	for i := range phg.pinCount {
		phg.pinCount[i].Store(0)
	}

	parallelfor.Range(n, func(v int) {
		b := hgraph.BlockId(phg.part[v].Load())
		phg.partWeight[b].Add(int64(phg.hg.NodeWeight(hgraph.NodeId(v))))
		phg.partSize[b].Add(1)
	})

	m := phg.hg.NumEdges()
	parallelfor.Range(m, func(ei int) {
		e := hgraph.HyperedgeId(ei)
		for _, v := range phg.hg.Pins(e) {
			b := hgraph.BlockId(phg.part[v].Load())
			phg.pinCount[phg.pinIdx(e, b)].Add(1)
		}
	})

	phg.initialized.Store(true)
	return nil
}

// PartID returns the block currently assigned to v. Wait-free.
func (phg *PartitionedHypergraph) PartID(v hgraph.NodeId) hgraph.BlockId {
	return hgraph.BlockId(phg.part[v].Load())
}

// PartWeight returns the current weight of block b. Wait-free; may observe
// a value from just before or just after an in-flight ChangeNodePart.
func (phg *PartitionedHypergraph) PartWeight(b hgraph.BlockId) hgraph.Weight {
	return hgraph.Weight(phg.partWeight[b].Load())
}

// PartSize returns the current node count of block b. Wait-free.
func (phg *PartitionedHypergraph) PartSize(b hgraph.BlockId) int {
	return int(phg.partSize[b].Load())
}

// PinCountInPart returns the number of pins of e currently assigned to
// block b. Wait-free.
func (phg *PartitionedHypergraph) PinCountInPart(e hgraph.HyperedgeId, b hgraph.BlockId) int {
	return int(phg.pinCount[phg.pinIdx(e, b)].Load())
}

// ChangeNodePart atomically moves v from block `from` to block `to`.
//
// Step 1: CAS part[v] from `from` to `to`; on failure (lost race, v was not
// in `from` anymore) returns false with no other side effect.
// Step 2: on success, publish partWeight/partSize deltas for `from`/`to`.
// Step 3: for every hyperedge incident to v, atomically decrement
// pinCount[e,from] and increment pinCount[e,to].
//
// The whole move is not one critical section — per-edge pinCount updates
// are independently atomic — but for any single edge e, the sequence of
// pinCount[e,·] states settles to some serial interleaving of all
// successful moves touching e (I5, R3, R4).
func (phg *PartitionedHypergraph) ChangeNodePart(v hgraph.NodeId, from, to hgraph.BlockId) bool {
	if !phg.part[v].CompareAndSwap(int32(from), int32(to)) {
		return false
	}

	w := int64(phg.hg.NodeWeight(v))
	phg.partWeight[from].Add(-w)
	phg.partWeight[to].Add(w)
	phg.partSize[from].Add(-1)
	phg.partSize[to].Add(1)

	for _, e := range phg.hg.Incident(v) {
		phg.pinCount[phg.pinIdx(e, from)].Add(-1)
		phg.pinCount[phg.pinIdx(e, to)].Add(1)
	}

	return true
}

// DoParallelForAllNodes applies f(v) to every node under the module's
// data-parallel scheduler (see internal/parallelfor). Blocks until all
// nodes have been visited.
func (phg *PartitionedHypergraph) DoParallelForAllNodes(f func(v hgraph.NodeId)) {
	parallelfor.Range(phg.hg.NumNodes(), func(i int) {
		f(hgraph.NodeId(i))
	})
}
