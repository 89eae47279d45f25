package crucible_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/crucible/gridgraph"
)

// referenceMinCost solves the same problem with an independent model: the
// state carries an explicit run counter, moves are single cells, and costs
// are relaxed Bellman-Ford style until nothing changes. It is slow and only
// meant for small grids.
//
// Moves from (cell, dir, run):
//   - continue straight if run < maxRun → (cell+dir, dir, run+1)
//   - turn left/right  if run ≥ minRun → (cell+dir', dir', 1)
//
// The goal counts only at the end of a run (run ≥ minRun).
func referenceMinCost(g *gridgraph.Grid, minRun, maxRun int, start, goal gridgraph.Cell, initial []gridgraph.Direction) (int64, bool) {
	if start == goal {
		return 0, true
	}
	rows, cols := g.Dimensions()
	const inf = int64(math.MaxInt64)
	idx := func(c gridgraph.Cell, d gridgraph.Direction, run int) int {
		return ((c.Row*cols+c.Col)*4+int(d))*(maxRun+1) + run
	}
	dist := make([]int64, rows*cols*4*(maxRun+1))
	for i := range dist {
		dist[i] = inf
	}
	cost := func(c gridgraph.Cell) int64 {
		v, _ := g.CostAt(c.Row, c.Col)
		return int64(v)
	}

	for _, d := range initial {
		next := start.Move(d, 1)
		if g.Contains(next) {
			dist[idx(next, d, 1)] = cost(next)
		}
	}

	for changed := true; changed; {
		changed = false
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := gridgraph.Cell{Row: r, Col: c}
				for _, d := range gridgraph.Directions {
					for run := 1; run <= maxRun; run++ {
						cur := dist[idx(cell, d, run)]
						if cur == inf {
							continue
						}
						relax := func(nd gridgraph.Direction, nrun int) {
							next := cell.Move(nd, 1)
							if !g.Contains(next) {
								return
							}
							k := idx(next, nd, nrun)
							if cand := cur + cost(next); cand < dist[k] {
								dist[k] = cand
								changed = true
							}
						}
						if run < maxRun {
							relax(d, run+1)
						}
						if run >= minRun {
							for _, nd := range gridgraph.Directions {
								if nd != d && nd != d.Opposite() {
									relax(nd, 1)
								}
							}
						}
					}
				}
			}
		}
	}

	best := inf
	for _, d := range gridgraph.Directions {
		for run := minRun; run <= maxRun; run++ {
			if v := dist[idx(goal, d, run)]; v < best {
				best = v
			}
		}
	}
	if best == inf {
		return 0, false
	}
	return best, true
}

// randomGrid builds a rows×cols grid with costs in [0, maxCost].
func randomGrid(rng *rand.Rand, rows, cols, maxCost int) *gridgraph.Grid {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			values[r][c] = rng.Intn(maxCost + 1)
		}
	}
	return gridgraph.MustGrid(values)
}

// randomCell picks a uniformly random cell of g.
func randomCell(rng *rand.Rand, g *gridgraph.Grid) gridgraph.Cell {
	return gridgraph.Cell{Row: rng.Intn(g.Rows()), Col: rng.Intn(g.Cols())}
}

// randomDirections returns a non-empty random subset of the four directions.
func randomDirections(rng *rand.Rand) []gridgraph.Direction {
	mask := 1 + rng.Intn(15)
	var out []gridgraph.Direction
	for i, d := range gridgraph.Directions {
		if mask&(1<<i) != 0 {
			out = append(out, d)
		}
	}
	return out
}
