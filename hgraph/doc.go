// Package hgraph defines the immutable hypergraph: dense node and hyperedge
// ids, per-node and per-edge weights, and the pins/incident adjacency that
// every other package in this module reads but never mutates.
//
// A Hypergraph is built once (NewHypergraph) and shared by read-only
// reference afterward; there is no lock because there is nothing to
// protect — construction fully happens before the first reader sees the
// value. Mutable partitioning state lives one layer up, in package
// partition.
package hgraph
