package hgraph

import "sort"

// NewHypergraph builds an immutable Hypergraph from per-node weights and a
// list of hyperedges, each given as a pin set over node indices in
// [0, len(nodeWeight)). edgeWeight must have the same length as edges, or be
// nil (all edges default to weight 1).
//
// Complexity: O(n + Σ|pins(e)|).
func NewHypergraph(nodeWeight []Weight, edges [][]NodeId, edgeWeight []Weight) (*Hypergraph, error) {
	n := len(nodeWeight)
	if n == 0 {
		return nil, ErrNoNodes
	}
	if edgeWeight != nil && len(edgeWeight) != len(edges) {
		return nil, ErrWeightLengthMismatch
	}

	hg := &Hypergraph{
		nodeWeight: append([]Weight(nil), nodeWeight...),
		edgeWeight: make([]Weight, len(edges)),
		pins:       make([][]NodeId, len(edges)),
		incident:   make([][]HyperedgeId, n),
	}
	for _, w := range hg.nodeWeight {
		hg.totalWeight += w
	}

	for e, raw := range edges {
		pins := dedupSorted(raw)
		if len(pins) < 2 {
			return nil, ErrDegeneratePin
		}
		for _, v := range pins {
			if int(v) < 0 || int(v) >= n {
				return nil, ErrNodeOutOfRange
			}
		}
		hg.pins[e] = pins
		if edgeWeight != nil {
			hg.edgeWeight[e] = edgeWeight[e]
		} else {
			hg.edgeWeight[e] = 1
		}
		for _, v := range pins {
			hg.incident[v] = append(hg.incident[v], HyperedgeId(e))
		}
	}

	return hg, nil
}

// dedupSorted returns a sorted copy of ns with duplicates removed.
func dedupSorted(ns []NodeId) []NodeId {
	out := append([]NodeId(nil), ns...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	deduped := out[:0]
	var prev NodeId = -1
	first := true
	for _, v := range out {
		if first || v != prev {
			deduped = append(deduped, v)
			prev = v
			first = false
		}
	}
	return deduped
}
