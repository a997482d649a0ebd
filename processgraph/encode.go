package processgraph

import "sort"

// encodeConnectivity maps a connectivity set (sorted ascending, distinct
// block indices) to a dense integer key: the base-k mixed-radix number
// Σ cᵢ·k^i over the sorted members, plus a trailing term — the last member
// scaled by the next free radix position (k^len(sorted)) — so that sets of
// different size sharing a digit prefix never collide and sets smaller
// than max_connectivity still map to distinct slots.
//
// Per spec.md §9 this is a design decision, not a requirement: any
// bijection from sorted connectivity sets to dense keys is conformant.
func encodeConnectivity(sorted []int, k int) uint64 {
	var key uint64
	radix := uint64(1)
	for _, c := range sorted {
		key += uint64(c) * radix
		radix *= uint64(k)
	}
	key += uint64(sorted[len(sorted)-1]) * radix
	return key
}

// sortedCopy returns a sorted ascending copy of set.
func sortedCopy(set []int) []int {
	out := append([]int(nil), set...)
	sort.Ints(out)
	return out
}
