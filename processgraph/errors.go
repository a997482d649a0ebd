package processgraph

import "errors"

var (
	// ErrNonSquare indicates the adjacency matrix passed to New was not k×k.
	ErrNonSquare = errors.New("processgraph: adjacency matrix is not square")

	// ErrTooFewBlocks indicates k < 1.
	ErrTooFewBlocks = errors.New("processgraph: fewer than one block")

	// ErrEmptyConnectivitySet indicates Distance was called with no blocks.
	ErrEmptyConnectivitySet = errors.New("processgraph: empty connectivity set")

	// ErrBlockOutOfRange indicates a block index outside [0, k).
	ErrBlockOutOfRange = errors.New("processgraph: block index out of range")
)
