package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCost is the largest accepted cell cost. Any route enters at most
// rows×cols×5×maxRun cells, so with costs capped here the int64 path sums
// used by the searches cannot overflow for any grid that fits in memory.
const MaxCost = math.MaxInt32

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrNegativeCost or ErrCostTooLarge (wrapped with the offending coordinate)
// for costs outside [0, MaxCost].
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	// Deep copy into a flat row-major slice to prevent external mutation.
	costs := make([]int, 0, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, r, c, v)
			}
			if v > MaxCost {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrCostTooLarge, r, c, v)
			}
			costs = append(costs, v)
		}
	}

	return &Grid{rows: rows, cols: cols, costs: costs}, nil
}

// MustGrid is like NewGrid but panics on error. Intended for tests and
// package-level fixtures.
func MustGrid(values [][]int) *Grid {
	g, err := NewGrid(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Cell) bool { return g.InBounds(c.Row, c.Col) }

// CostAt returns the entry cost of (row,col), or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CostAt(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return g.costs[row*g.cols+col], nil
}

// cost is the unchecked variant of CostAt used on hot paths.
func (g *Grid) cost(c Cell) int {
	return g.costs[c.Row*g.cols+c.Col]
}

// Step returns the cell reached by moving distance cells in dir from 'from'.
// The second result is false if distance < 1, dir is not a movement
// direction, or any traversed cell leaves the grid. On a straight line the
// destination being in bounds implies every intermediate cell is too.
func (g *Grid) Step(from Cell, dir Direction, distance int) (Cell, bool) {
	if distance < 1 || !dir.Valid() || !g.Contains(from) {
		return Cell{}, false
	}
	to := from.Move(dir, distance)
	if !g.Contains(to) {
		return Cell{}, false
	}
	return to, true
}

// RunCost is Step plus the summed entry cost of every cell traversed,
// excluding 'from' and including the destination.
// Complexity: O(distance).
func (g *Grid) RunCost(from Cell, dir Direction, distance int) (int64, Cell, bool) {
	to, ok := g.Step(from, dir, distance)
	if !ok {
		return 0, Cell{}, false
	}
	var sum int64
	cur := from
	for k := 0; k < distance; k++ {
		cur = cur.Move(dir, 1)
		sum += int64(g.cost(cur))
	}
	return sum, to, true
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Rotate180 returns a new grid rotated by 180 degrees: cell (r,c) of the
// result holds the cost of cell (rows-1-r, cols-1-c) of g.
func (g *Grid) Rotate180() *Grid {
	n := len(g.costs)
	costs := make([]int, n)
	for i, v := range g.costs {
		costs[n-1-i] = v
	}
	return &Grid{rows: g.rows, cols: g.cols, costs: costs}
}

// Mirror maps a cell of g to the matching cell of g.Rotate180().
func (g *Grid) Mirror(c Cell) Cell {
	return Cell{Row: g.rows - 1 - c.Row, Col: g.cols - 1 - c.Col}
}

// Values returns a deep copy of the costs as a 2D slice.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		copy(out[r], g.costs[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// String renders the grid one row per line. Grids whose costs are all
// single digits print without separators, matching the textual input
// format; otherwise cells are separated by a space.
func (g *Grid) String() string {
	sep := ""
	for _, v := range g.costs {
		if v > 9 {
			sep = " "
			break
		}
	}
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(strconv.Itoa(g.costs[r*g.cols+c]))
		}
		if r < g.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
