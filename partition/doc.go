// Package partition implements PartitionedHypergraph: the mutable
// node→block assignment shared by every mover in a parallel
// (hyper)graph partitioner, plus the derived per-block weight/size and
// per-hyperedge pin-count-per-block state that must stay consistent with it.
//
// Invariants (hold between every pair of public calls):
//
//	I1. part[v] ∈ [0,k) after InitializePartition.
//	I2. partWeight[b] = Σ_{part[v]=b} w(v) and partSize[b] = |{v : part[v]=b}|.
//	I3. pinCount[e,b] = |{v ∈ pins(e) : part[v]=b}| for every hyperedge e, block b.
//	I4. Σ_b partWeight[b] = W; Σ_b partSize[b] = n.
//	I5. ChangeNodePart(v, from, to) preserves I1–I4 once it returns. The
//	    move is not one critical section, so a concurrent reader may see
//	    some of its counter updates before others; for every hyperedge e,
//	    the sequence of pinCount[e,·] states is equivalent to some serial
//	    interleaving of all successful moves that touched e.
//	I6. INVALID blocks are permitted only before InitializePartition.
//
// Writes to part[v] are serialized by a CAS on that node's cell; writes to
// partWeight, partSize and pinCount[e,b] are per-cell atomic additions.
// There is no lock anywhere in this package — readers never block.
package partition
