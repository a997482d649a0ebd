package hgraph

import "errors"

// Sentinel errors for hypergraph construction. Callers should use errors.Is
// to branch on these; they are never wrapped with formatted strings at the
// definition site.
var (
	// ErrNoNodes indicates a hypergraph was built with zero nodes.
	ErrNoNodes = errors.New("hgraph: zero nodes")

	// ErrDegeneratePin indicates a hyperedge with fewer than two pins.
	ErrDegeneratePin = errors.New("hgraph: hyperedge has fewer than two pins")

	// ErrNodeOutOfRange indicates a pin or weight index outside [0, n).
	ErrNodeOutOfRange = errors.New("hgraph: node id out of range")

	// ErrWeightLengthMismatch indicates a weight slice whose length does not
	// match the node or edge count it is supposed to describe.
	ErrWeightLengthMismatch = errors.New("hgraph: weight slice length mismatch")
)
