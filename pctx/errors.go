package pctx

import "errors"

var (
	// ErrUnknownMode indicates a mode string outside {"rb", "direct", "deep"}.
	ErrUnknownMode = errors.New("pctx: unknown mode string")

	// ErrUnknownObjective indicates an objective string outside
	// {"cut", "km1", "soed", "process_mapping"}.
	ErrUnknownObjective = errors.New("pctx: unknown objective string")

	// ErrTooFewBlocks indicates k < 2.
	ErrTooFewBlocks = errors.New("pctx: k must be at least 2")

	// ErrEpsilonOutOfRange indicates ε outside [0, 1).
	ErrEpsilonOutOfRange = errors.New("pctx: epsilon out of range")

	// ErrPartWeightsLengthMismatch indicates a per-block weight slice whose
	// length does not equal k.
	ErrPartWeightsLengthMismatch = errors.New("pctx: part-weight slice length does not match k")
)
