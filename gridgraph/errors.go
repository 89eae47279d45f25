package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativeCost indicates a cell holds a negative entry cost.
	ErrNegativeCost = errors.New("gridgraph: cell costs must be non-negative")
	// ErrCostTooLarge indicates a cell cost above MaxCost.
	ErrCostTooLarge = errors.New("gridgraph: cell cost exceeds MaxCost")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrInvalidDigit indicates a non-digit character in textual grid input.
	ErrInvalidDigit = errors.New("gridgraph: grid text must contain only decimal digits")
	// ErrNoPath indicates the goal cannot be reached from the start.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
