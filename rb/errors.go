package rb

import "errors"

// ErrHypergraphContextMismatch indicates PartitionInto was called with a
// PartitionedHypergraph whose K doesn't match ctx.K.
var ErrHypergraphContextMismatch = errors.New("rb: partitioned hypergraph K does not match context K")
