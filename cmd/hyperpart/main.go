// Command hyperpart is a demonstration CLI driving the recursive
// bipartitioning driver end to end over a synthetic hypergraph.
package main

import "github.com/katalvlaran/hyperpart/cmd/hyperpart/cmd"

func main() {
	cmd.Execute()
}
