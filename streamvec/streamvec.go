package streamvec

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/hyperpart/internal/parallelfor"
)

// StreamingVector is a per-shard append-only buffer of T. The zero value is
// not usable; construct with New.
type StreamingVector[T any] struct {
	next   atomic.Uint64 // round-robin shard selector
	shards []shard[T]
}

type shard[T any] struct {
	mu  sync.Mutex
	buf []T
}

// New returns an empty StreamingVector sharded across
// internal/parallelfor.NumShards() buffers.
func New[T any]() *StreamingVector[T] {
	return &StreamingVector[T]{
		shards: make([]shard[T], parallelfor.NumShards()),
	}
}

// Stream appends value to one shard, chosen round-robin. Safe for
// concurrent use by any number of goroutines.
func (s *StreamingVector[T]) Stream(value T) {
	idx := s.next.Add(1) % uint64(len(s.shards))
	sh := &s.shards[idx]
	sh.mu.Lock()
	sh.buf = append(sh.buf, value)
	sh.mu.Unlock()
}

// Len returns the total number of streamed elements across all shards.
func (s *StreamingVector[T]) Len() int {
	total := 0
	for i := range s.shards {
		total += len(s.shards[i].buf)
	}
	return total
}

// offsets returns, for each shard, its starting offset in the merged
// output, and the total length.
func (s *StreamingVector[T]) offsets() ([]int, int) {
	offs := make([]int, len(s.shards))
	total := 0
	for i := range s.shards {
		offs[i] = total
		total += len(s.shards[i].buf)
	}
	return offs, total
}

// CopySequential produces one contiguous slice by copying shards in order,
// single-threaded.
func (s *StreamingVector[T]) CopySequential() []T {
	offs, total := s.offsets()
	out := make([]T, total)
	for i := range s.shards {
		copy(out[offs[i]:], s.shards[i].buf)
	}
	return out
}

// CopyParallel produces one contiguous slice identical to CopySequential's,
// but performs the per-shard copies concurrently after a local prefix sum
// over shard lengths.
func (s *StreamingVector[T]) CopyParallel() []T {
	offs, total := s.offsets()
	out := make([]T, total)
	parallelfor.Range(len(s.shards), func(i int) {
		copy(out[offs[i]:], s.shards[i].buf)
	})
	return out
}

// ClearSequential resets every shard to empty, single-threaded.
func (s *StreamingVector[T]) ClearSequential() {
	for i := range s.shards {
		s.shards[i].buf = s.shards[i].buf[:0]
	}
}

// ClearParallel resets every shard to empty, one goroutine per shard.
func (s *StreamingVector[T]) ClearParallel() {
	parallelfor.Range(len(s.shards), func(i int) {
		s.shards[i].buf = s.shards[i].buf[:0]
	})
}
