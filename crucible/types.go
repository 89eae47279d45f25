// Package crucible defines core types and configuration options
// for the run-constrained shortest-path search over a gridgraph.Grid.
//
// A path starts on one cell and travels in straight runs. Every run is at
// least MinRun and at most MaxRun cells long, the path never reverses, and
// it may only turn or stop at the end of a run. Entering a cell costs that
// cell's value.
//
// Options:
//
//	– RunBounds:          MinRun ≥ 1 and MaxRun ≥ MinRun (default 1..3).
//	– Start, Goal:        cells of the grid (default top-left, bottom-right).
//	– InitialDirections:  directions the first run may take (default all four).
//	– MaxExpansions:      optional budget on popped states; 0 means unlimited.
//	– ReturnPath:         if true, reconstruct the full cell path.
//	– OnPop:              hook invoked for each state taken off the frontier.
//
// Errors (sentinel):
//
//	– ErrNilGrid               if the provided grid pointer is nil.
//	– ErrInvalidConfiguration  for bad run bounds, directions, budget, or a
//	                           start/goal outside the grid (the latter also
//	                           matches gridgraph.ErrOutOfBounds).
//	– ErrUnreachable           from MinCost when no feasible path exists.
package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// Sentinel errors returned by the crucible search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrInvalidConfiguration indicates that the options cannot describe a
	// search on the given grid. It is reported before any search work begins.
	ErrInvalidConfiguration = errors.New("crucible: invalid configuration")

	// ErrUnreachable indicates that the goal cannot be reached under the
	// configured run bounds. Search reports this as StatusUnreachable;
	// only MinCost turns it into an error.
	ErrUnreachable = errors.New("crucible: goal unreachable")
)

// Default run bounds of the two classic crucible profiles.
const (
	TightMinRun = 1
	TightMaxRun = 3
	UltraMinRun = 4
	UltraMaxRun = 10
)

// Status classifies how a search ended.
type Status int

const (
	// StatusFound means the goal was popped; Result.Cost is the minimum.
	StatusFound Status = iota
	// StatusUnreachable means the frontier emptied without reaching the goal.
	StatusUnreachable
	// StatusBudgetExceeded means MaxExpansions states were popped first.
	StatusBudgetExceeded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	case StatusBudgetExceeded:
		return "budget exceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is a node of the augmented search space: the occupied cell and the
// direction of the run that entered it (gridgraph.None for the start).
// Run length is deliberately absent; see Search.
type State struct {
	Cell gridgraph.Cell
	Dir  gridgraph.Direction
}

// String renders the state as "(row,col)/dir".
func (s State) String() string {
	return s.Cell.String() + "/" + s.Dir.String()
}

// Result is the outcome of a Search.
type Result struct {
	// Status tells whether the goal was reached.
	Status Status
	// Cost is the minimum total entry cost; meaningful only when Status == StatusFound.
	Cost int64
	// Expanded counts the states popped from the frontier (stale entries excluded).
	Expanded int
	// Path lists every cell from start to goal inclusive, when WithReturnPath
	// was given and the goal was found.
	Path []gridgraph.Cell
}

// Found reports whether the goal was reached.
func (r Result) Found() bool { return r.Status == StatusFound }

// Options configures the behavior of Search.
type Options struct {
	MinRun            int                   // minimum cells per run
	MaxRun            int                   // maximum cells per run
	Start             gridgraph.Cell        // start cell; its cost is never charged
	Goal              gridgraph.Cell        // goal cell
	InitialDirections []gridgraph.Direction // directions the first run may take
	MaxExpansions     int                   // 0 = unlimited
	ReturnPath        bool                  // reconstruct Result.Path
	OnPop             func(s State, cost int64)

	goalSet bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with the tight
// crucible profile: runs of 1..3 cells from the top-left corner, all four
// initial directions, no budget and no path reconstruction. The goal
// defaults to the bottom-right corner of whichever grid is searched.
func DefaultOptions() Options {
	return Options{
		MinRun:            TightMinRun,
		MaxRun:            TightMaxRun,
		InitialDirections: append([]gridgraph.Direction(nil), gridgraph.Directions[:]...),
		OnPop:             func(State, int64) {},
	}
}

// WithRunBounds sets the minimum and maximum run length.
// Bounds are validated in Search: minRun ≥ 1 and maxRun ≥ minRun.
func WithRunBounds(minRun, maxRun int) Option {
	return func(o *Options) {
		o.MinRun = minRun
		o.MaxRun = maxRun
	}
}

// Tight selects the 1..3 run profile.
func Tight() Option { return WithRunBounds(TightMinRun, TightMaxRun) }

// Ultra selects the 4..10 run profile.
func Ultra() Option { return WithRunBounds(UltraMinRun, UltraMaxRun) }

// WithStart sets the start cell.
func WithStart(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithGoal sets the goal cell.
func WithGoal(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Goal = c
		o.goalSet = true
	}
}

// WithInitialDirections restricts the directions the first run may take.
// Useful to skip symmetric duplicate work, e.g. Right and Down when the
// start is the top-left corner. The slice is copied.
func WithInitialDirections(dirs ...gridgraph.Direction) Option {
	return func(o *Options) {
		o.InitialDirections = append([]gridgraph.Direction(nil), dirs...)
	}
}

// WithMaxExpansions caps the number of states popped from the frontier.
// When the cap is hit Search returns StatusBudgetExceeded.
// n == 0 disables the cap; n < 0 is a configuration error.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithReturnPath enables reconstruction of the full cell path in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnPop registers a callback invoked for every state popped from the
// frontier, before the goal test, with the state's final cost.
func WithOnPop(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// validate resolves grid-dependent defaults and checks every option
// against g. Called once by Search before any search work.
func (o *Options) validate(g *gridgraph.Grid) error {
	if o.MinRun < 1 {
		return fmt.Errorf("%w: min run must be at least 1 (got %d)", ErrInvalidConfiguration, o.MinRun)
	}
	if o.MaxRun < o.MinRun {
		return fmt.Errorf("%w: max run %d is below min run %d", ErrInvalidConfiguration, o.MaxRun, o.MinRun)
	}
	if o.MaxExpansions < 0 {
		return fmt.Errorf("%w: max expansions cannot be negative (%d)", ErrInvalidConfiguration, o.MaxExpansions)
	}
	if len(o.InitialDirections) == 0 {
		return fmt.Errorf("%w: at least one initial direction is required", ErrInvalidConfiguration)
	}
	var seen [gridgraph.NumStates]bool
	for _, d := range o.InitialDirections {
		if !d.Valid() {
			return fmt.Errorf("%w: %v is not a movement direction", ErrInvalidConfiguration, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate initial direction %v", ErrInvalidConfiguration, d)
		}
		seen[d] = true
	}

	if !o.goalSet {
		o.Goal = gridgraph.Cell{Row: g.Rows() - 1, Col: g.Cols() - 1}
	}
	if !g.Contains(o.Start) {
		return fmt.Errorf("%w: start %v: %w", ErrInvalidConfiguration, o.Start, gridgraph.ErrOutOfBounds)
	}
	if !g.Contains(o.Goal) {
		return fmt.Errorf("%w: goal %v: %w", ErrInvalidConfiguration, o.Goal, gridgraph.ErrOutOfBounds)
	}

	return nil
}
