// Package streamvec implements StreamingVector[T], a per-shard append-only
// buffer for phases that generate large lists without knowing the final
// size up front. Stream appends to one shard; CopySequential and
// CopyParallel produce one contiguous slice via a local prefix sum over
// shard lengths followed by per-shard copies.
//
// Grounded on the worker-owned-scratch idiom in
// SnellerInc/sneller/sorting/thread_pool.go. Shard selection is a
// round-robin atomic counter rather than sched_getcpu (which Go does not
// expose), each shard independently mutex-guarded since more than one
// goroutine can land on the same shard. Consecutive values streamed by one
// goroutine land on different shards, so the merged output does not keep
// the order in which any single goroutine streamed its values.
package streamvec
