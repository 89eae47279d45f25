// Package crucible is the module root of a run-constrained shortest-path
// solver for weighted grids.
//
// 🚀 What is it?
//
//	A crucible crosses a rectangular map of digits. Entering a cell costs
//	its digit. The crucible moves in straight runs whose length must lie in
//	[minRun, maxRun] and may only turn 90° between runs. The solver finds
//	the cheapest route from one corner to the other.
//
// Under the hood the module is organized as:
//
//	gridgraph/      Grid, Cell, Direction, text parser, unconstrained Dijkstra
//	crucible/       the constrained search engine (bulk-jump Dijkstra)
//	config/         YAML solve profiles
//	metrics/        Prometheus collector for search outcomes
//	cmd/crucible/   the command-line tool
//
// Quick ASCII example (runs of 1..3, cost 4):
//
//	    S───1───1
//	    9   9   │
//	    9   9   G
//
// Library use:
//
//	g, _ := gridgraph.ParseString(input)
//	res, err := crucible.Search(ctx, g, crucible.Ultra(), crucible.WithReturnPath())
//
// Command line:
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
//	crucible solve input.txt
package crucible
