package hgraph

import "math/rand"

// SynthOption configures RandomSparse, following the teacher's
// functional-options idiom (see builder.BuilderOption in the teacher repo).
type SynthOption func(cfg *synthConfig)

type synthConfig struct {
	rng         *rand.Rand
	pinsPerEdge int
}

func newSynthConfig(opts ...SynthOption) *synthConfig {
	cfg := &synthConfig{
		rng:         rand.New(rand.NewSource(1)),
		pinsPerEdge: 3,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed freezes the RNG used by RandomSparse for determinism.
func WithSeed(seed int64) SynthOption {
	return func(cfg *synthConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithPinsPerEdge sets how many distinct nodes each generated hyperedge
// spans. Values below 2 are ignored (the previous setting, default 3, is
// kept); at generation time the count is capped at n.
func WithPinsPerEdge(p int) SynthOption {
	return func(cfg *synthConfig) {
		if p >= 2 {
			cfg.pinsPerEdge = p
		}
	}
}

// RandomSparse builds a deterministic synthetic hypergraph on n unit-weight
// nodes with m random hyperedges, for tests and the demonstration CLI.
// Complexity: O(n + m*pinsPerEdge).
func RandomSparse(n, m int, opts ...SynthOption) (*Hypergraph, error) {
	cfg := newSynthConfig(opts...)
	nodeWeight := make([]Weight, n)
	for i := range nodeWeight {
		nodeWeight[i] = 1
	}

	pins := cfg.pinsPerEdge
	if pins > n {
		pins = n
	}
	edges := make([][]NodeId, m)
	for e := range edges {
		perm := cfg.rng.Perm(n)[:pins]
		set := make([]NodeId, pins)
		for i, v := range perm {
			set[i] = NodeId(v)
		}
		edges[e] = set
	}

	return NewHypergraph(nodeWeight, edges, nil)
}
