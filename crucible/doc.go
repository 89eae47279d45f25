// Package crucible provides a precise implementation of a run-constrained
// shortest-path search over a weighted grid: Dijkstra's algorithm on an
// augmented state space where the path must move in straight runs whose
// length is bounded below and above.
//
// Overview:
//
//   - A path starts on the Start cell and ends on the Goal cell of a
//     gridgraph.Grid. Entering a cell costs its value; the start is free.
//   - Movement happens in runs. A run is at least MinRun and at most MaxRun
//     cells long. A path may turn left or right, or stop, only at the end
//     of a run, and it never reverses.
//   - The first run may take any of the configured initial directions and
//     obeys MinRun like every other run.
//   - The result is the exact minimum total cost, or an explicit
//     StatusUnreachable when no path satisfies the constraints.
//
// When to use:
//
//   - Vehicles with a turning radius or momentum (the "crucible" that cannot
//     turn on the spot and cannot go straight forever).
//   - Any grid routing where segment lengths are bounded.
//   - With MinRun = 1 and MaxRun ≥ max(rows, cols) it reduces to plain
//     four-directional Dijkstra (gridgraph.Grid.ShortestPath).
//
// Key features:
//
//   - Bulk-jump expansion: a state is (cell, direction that entered it), not
//     (cell, direction, run length). Every expansion turns and jumps to all
//     stopping points MinRun..MaxRun at once. State space: R×C×5.
//   - Functional options: WithRunBounds, Tight, Ultra, WithStart, WithGoal,
//     WithInitialDirections, WithMaxExpansions, WithReturnPath, WithOnPop.
//   - Step budget and context cancellation guard against pathological inputs.
//   - Each Search owns its frontier, cost table and predecessor table, so
//     concurrent searches over one shared Grid are independent.
//
// Performance and complexity:
//
//   - Time:  O(S·M·log S), S = R×C×5 states, M = MaxRun.
//   - Space: O(S).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:
//     Returned if you pass a nil *gridgraph.Grid to Search.
//   - ErrInvalidConfiguration:
//     Returned before any search work for MinRun < 1, MaxRun < MinRun,
//     negative MaxExpansions, empty/duplicate/None initial directions, or a
//     Start or Goal outside the grid (also matches gridgraph.ErrOutOfBounds).
//   - ErrUnreachable:
//     Returned by MinCost only; Search reports StatusUnreachable instead.
//
// API reference:
//
//	func Search(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error)
//	func MinCost(ctx context.Context, g *gridgraph.Grid, minRun, maxRun int) (int64, error)
//	func PathCost(g *gridgraph.Grid, path []gridgraph.Cell) (int64, error)
//	func Runs(path []gridgraph.Cell) ([]Run, error)
//
// Example usage:
//
//	g, _ := gridgraph.ParseString(input)
//	res, err := crucible.Search(ctx, g, crucible.Ultra(), crucible.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Println(res.Cost, len(res.Path))
//	}
package crucible
