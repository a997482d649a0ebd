package partition

import "errors"

// Sentinel errors for PartitionedHypergraph contract violations. These are
// never returned for a lost CAS race (ChangeNodePart returns false for
// that, by design — see spec.md §7); they are returned only when the
// caller violates the documented call order or precondition.
var (
	// ErrAlreadyAssigned indicates SetOnlyNodePart was called twice for the
	// same node without an intervening fresh PartitionedHypergraph.
	ErrAlreadyAssigned = errors.New("partition: node already assigned")

	// ErrUnassignedNode indicates InitializePartition was called while some
	// node still holds hgraph.INVALID.
	ErrUnassignedNode = errors.New("partition: node has no block assigned")

	// ErrBlockOutOfRange indicates a BlockId outside [0, k).
	ErrBlockOutOfRange = errors.New("partition: block id out of range")

	// ErrNotInitialized indicates Extract was called before
	// InitializePartition. The other accessors and ChangeNodePart do not
	// check initialization.
	ErrNotInitialized = errors.New("partition: partition not yet initialized")
)
