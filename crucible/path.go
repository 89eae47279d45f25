package crucible

import (
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// path rebuilds the full cell sequence ending at goalKey by following
// predecessor links back to the start and walking each run cell by cell.
func (r *runner) path(goalKey int) []gridgraph.Cell {
	// 1) Collect the turning points, goal first.
	var states []State
	for k := goalKey; k >= 0; k = r.prev[k] {
		states = append(states, r.state(k))
	}
	// 2) Reverse to start → goal.
	for i, j := 0, len(states)-1; i < j; i, j = i+1, j-1 {
		states[i], states[j] = states[j], states[i]
	}

	// 3) Expand every run into the cells it enters.
	cells := []gridgraph.Cell{states[0].Cell}
	for i := 1; i < len(states); i++ {
		cur, to := states[i-1].Cell, states[i].Cell
		for cur != to {
			cur = cur.Move(states[i].Dir, 1)
			cells = append(cells, cur)
		}
	}

	return cells
}

// PathCost sums the entry cost of every cell of path after the first.
// It is the cost Search reports for a path it returned.
func PathCost(g *gridgraph.Grid, path []gridgraph.Cell) (int64, error) {
	var sum int64
	for i := 1; i < len(path); i++ {
		v, err := g.CostAt(path[i].Row, path[i].Col)
		if err != nil {
			return 0, err
		}
		sum += int64(v)
	}
	return sum, nil
}

// Runs splits a cell path into its straight runs, returning the direction
// and length of each. It fails if two consecutive cells are not neighbours.
func Runs(path []gridgraph.Cell) ([]Run, error) {
	var runs []Run
	for i := 1; i < len(path); i++ {
		d, ok := stepDirection(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("crucible: cells %v and %v are not adjacent", path[i-1], path[i])
		}
		if n := len(runs); n > 0 && runs[n-1].Dir == d {
			runs[n-1].Length++
			continue
		}
		runs = append(runs, Run{Dir: d, Length: 1})
	}
	return runs, nil
}

// Run is a maximal straight segment of a path.
type Run struct {
	Dir    gridgraph.Direction
	Length int
}

// stepDirection returns the direction leading from a to an adjacent cell b.
func stepDirection(a, b gridgraph.Cell) (gridgraph.Direction, bool) {
	for _, d := range gridgraph.Directions {
		if a.Move(d, 1) == b {
			return d, true
		}
	}
	return gridgraph.None, false
}
