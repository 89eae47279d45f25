// Package gridgraph models a rectangular grid of non-negative entry costs
// as a graph over four-directional moves.
//
// What:
//
//   - Grid wraps a rectangular [][]int of costs; it is immutable after
//     construction and safe for concurrent readers.
//   - Direction enumerates Up, Right, Down, Left (plus the None sentinel for
//     "has not moved yet") with Opposite and Delta queries.
//   - Step and RunCost answer "where do I land after k cells, and what did
//     entering every cell on the way cost?" with full bounds checking.
//   - Parse reads the classic digit-per-character text format.
//   - ShortestPath is an unconstrained four-directional Dijkstra, the
//     baseline the run-constrained engine in package crucible reduces to
//     when its run bounds stop binding.
//
// Why:
//
//   - Puzzle and game maps: heat-loss, terrain and risk grids.
//   - Robot and vehicle planning where each cell has a traversal price.
//
// Complexity:
//
//   - NewGrid, Parse:  O(R×C) time and memory.
//   - CostAt, Step:    O(1).
//   - RunCost:         O(k) for a run of k cells.
//   - ShortestPath:    O(R×C·log(R×C)), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost:   a cell cost is below zero.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//   - ErrInvalidDigit:   textual input contains a non-digit.
//   - ErrNoPath:         ShortestPath could not reach the goal.
package gridgraph
