package hgraph

// NodeId is a dense node identifier in [0, n).
type NodeId int32

// HyperedgeId is a dense hyperedge identifier in [0, m).
type HyperedgeId int32

// BlockId is a block identifier in [0, k]. INVALID denotes "unassigned".
type BlockId int32

// INVALID is the sentinel BlockId meaning "no block assigned yet".
const INVALID BlockId = -1

// Weight is a node or hyperedge weight.
type Weight int64

// Gain is the weight delta a move would/did attribute to the objective.
type Gain int64

// Hypergraph is an immutable undirected hypergraph: n nodes, m hyperedges,
// a node weight function, a hyperedge weight function, and the pins/incident
// incidence structure. Built once via NewHypergraph; never mutated after.
type Hypergraph struct {
	nodeWeight  []Weight        // len n
	edgeWeight  []Weight        // len m
	pins        [][]NodeId      // len m, pins[e] = sorted distinct nodes of e
	incident    [][]HyperedgeId // len n, incident[v] = hyperedges containing v
	totalWeight Weight
}

// NumNodes returns n.
func (hg *Hypergraph) NumNodes() int { return len(hg.nodeWeight) }

// NumEdges returns m.
func (hg *Hypergraph) NumEdges() int { return len(hg.edgeWeight) }

// TotalWeight returns W = Σ w(v).
func (hg *Hypergraph) TotalWeight() Weight { return hg.totalWeight }

// NodeWeight returns w(v).
func (hg *Hypergraph) NodeWeight(v NodeId) Weight { return hg.nodeWeight[v] }

// EdgeWeight returns ω(e).
func (hg *Hypergraph) EdgeWeight(e HyperedgeId) Weight { return hg.edgeWeight[e] }

// Pins returns the pin set of e. The returned slice must not be mutated by
// the caller; it is shared, read-only state.
func (hg *Hypergraph) Pins(e HyperedgeId) []NodeId { return hg.pins[e] }

// Incident returns the hyperedges containing v. The returned slice must not
// be mutated by the caller.
func (hg *Hypergraph) Incident(v NodeId) []HyperedgeId { return hg.incident[v] }
