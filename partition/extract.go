package partition

import (
	"github.com/katalvlaran/hyperpart/hgraph"
)

// ExtractMappingSentinel is the mapping value for a parent node that was not
// part of the extracted block.
const ExtractMappingSentinel = hgraph.NodeId(-1)

// Extract builds the sub-hypergraph containing only the nodes currently
// assigned to block. When cutNetSplitting is true (the driver passes true
// only for the km1 objective), each hyperedge is replaced by the
// restriction of its pin set to block, and empty or singleton restrictions
// are dropped. When false (cut, soed, process mapping), any hyperedge with
// a pin outside block is dropped entirely.
//
// stable requests a deterministic incident-edge order in the sub-hypergraph
// identical across calls with the same parent state; this implementation's
// single compaction pass is already order-preserving in parent node/edge id
// order regardless of stable, so the flag only documents the contract —
// there is no separate unordered fast path here.
//
// Returns the sub-hypergraph and mapping, where mapping[v] is the sub-node
// id for parent node v, or ExtractMappingSentinel if part[v] != block.
// Requires InitializePartition to have run.
func (phg *PartitionedHypergraph) Extract(block hgraph.BlockId, cutNetSplitting, stable bool) (*hgraph.Hypergraph, []hgraph.NodeId, error) {
	_ = stable
	if !phg.initialized.Load() {
		return nil, nil, ErrNotInitialized
	}

	n := phg.hg.NumNodes()
	mapping := make([]hgraph.NodeId, n)
	for i := range mapping {
		mapping[i] = ExtractMappingSentinel
	}

	var subNodeWeight []hgraph.Weight
	for v := 0; v < n; v++ {
		if phg.PartID(hgraph.NodeId(v)) == block {
			mapping[v] = hgraph.NodeId(len(subNodeWeight))
			subNodeWeight = append(subNodeWeight, phg.hg.NodeWeight(hgraph.NodeId(v)))
		}
	}
	if len(subNodeWeight) == 0 {
		return nil, mapping, nil
	}

	var subEdges [][]hgraph.NodeId
	var subEdgeWeight []hgraph.Weight
	for e := 0; e < phg.hg.NumEdges(); e++ {
		eid := hgraph.HyperedgeId(e)
		pins := phg.hg.Pins(eid)

		if cutNetSplitting {
			var restricted []hgraph.NodeId
			for _, v := range pins {
				if mapping[v] != ExtractMappingSentinel {
					restricted = append(restricted, mapping[v])
				}
			}
			if len(restricted) < 2 {
				continue
			}
			subEdges = append(subEdges, restricted)
			subEdgeWeight = append(subEdgeWeight, phg.hg.EdgeWeight(eid))
			continue
		}

		allInside := true
		mapped := make([]hgraph.NodeId, 0, len(pins))
		for _, v := range pins {
			if mapping[v] == ExtractMappingSentinel {
				allInside = false
				break
			}
			mapped = append(mapped, mapping[v])
		}
		if !allInside {
			continue
		}
		subEdges = append(subEdges, mapped)
		subEdgeWeight = append(subEdgeWeight, phg.hg.EdgeWeight(eid))
	}

	sub, err := hgraph.NewHypergraph(subNodeWeight, subEdges, subEdgeWeight)
	if err != nil {
		return nil, nil, err
	}
	return sub, mapping, nil
}
