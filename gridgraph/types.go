// Package gridgraph defines the core types (Direction, Cell, Grid)
// for the gridgraph subpackage of github.com/katalvlaran/crucible.
package gridgraph

import (
	"fmt"
	"strings"
)

// Direction is one of the four axis-aligned directions of travel.
// The zero value is Up; None marks "no previous direction" and is never
// a legal direction of movement.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
	// None is the direction of a state that has not moved yet.
	None
)

// NumStates is the number of distinct Direction values including None.
// The search engine sizes its per-cell state tables with it.
const NumStates = int(None) + 1

// Directions lists the four movement directions in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// deltas holds (dRow, dCol) per movement direction.
var deltas = [4][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

var directionNames = [NumStates]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
	None:  "none",
}

// Valid reports whether d is a movement direction (not None).
func (d Direction) Valid() bool { return d < None }

// Opposite returns the direction that reverses d. None is its own opposite.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return None
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets of a single step in d.
// None has a zero delta.
func (d Direction) Delta() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if int(d) < NumStates {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a name ("up", "R", "down", ...) into a Direction.
// Matching is case-insensitive and accepts the first letter as a shorthand.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "north", "n":
		return Up, nil
	case "right", "r", "east", "e":
		return Right, nil
	case "down", "d", "south", "s":
		return Down, nil
	case "left", "l", "west", "w":
		return Left, nil
	}
	return None, fmt.Errorf("gridgraph: unknown direction %q", s)
}

// Cell is a grid coordinate addressed by row then column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Move returns the cell distance steps away in direction d, without bounds checks.
func (c Cell) Move(d Direction, distance int) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr*distance, Col: c.Col + dc*distance}
}

// Grid is an immutable rectangular matrix of non-negative entry costs.
// Entering cell (r,c) costs costs[r*cols+c]; the cell a path starts on is
// never charged. A Grid is safe for concurrent readers.
type Grid struct {
	rows, cols int
	costs      []int // row-major
}
