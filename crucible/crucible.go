// Package crucible implements a direction-constrained variant of Dijkstra's
// shortest-path algorithm over a weighted grid.
//
// The search runs over states (cell, direction that entered it). Instead of
// storing the current run length in the state and moving one cell at a
// time, each expansion turns onto a perpendicular direction and jumps
// straight to every legal stopping distance MinRun..MaxRun at once,
// summing the entry cost of every cell on the way. That keeps the state
// space at R×C×5 independent of MaxRun.
//
// Complexity:
//
//   - Time:  O(S·M·log S) with S = R×C×5 states and M = MaxRun.
//   - Each state is finalised at most once; each expansion tries two
//     perpendicular directions (four from the start) times M distances.
//   - Space: O(S) for the cost and predecessor tables plus the heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - The cost table is a dense slice owned by one Search call, so concurrent searches never share state.
//   - Context cancellation is checked once per pop.
package crucible

import (
	"container/heap"
	"context"
	"math"

	"github.com/katalvlaran/crucible/gridgraph"
)

// unknown marks a state with no recorded cost yet.
const unknown = math.MaxInt64

// Search computes the minimum total entry cost from Options.Start to
// Options.Goal of g under the run constraints, accepting functional options
// to customise bounds, endpoints, budget and hooks.
//
// Returns:
//
//   - Result with StatusFound and the exact minimum Cost, or
//     StatusUnreachable when the frontier empties, or StatusBudgetExceeded
//     when MaxExpansions states were popped without reaching the goal.
//   - err: ErrNilGrid, ErrInvalidConfiguration (before any work), or
//     ctx.Err() if ctx is cancelled mid-search.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. MinRun ≥ 1, MaxRun ≥ MinRun, MaxExpansions ≥ 0, initial directions
//     valid and distinct (ErrInvalidConfiguration).
//  3. Start and Goal inside g (ErrInvalidConfiguration wrapping
//     gridgraph.ErrOutOfBounds).
//
// Search is synchronous. It only reads g, so any number of searches may
// share one grid concurrently.
func Search(ctx context.Context, g *gridgraph.Grid, opts ...Option) (Result, error) {
	// 1) Validate grid is non-nil
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(g); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Prepare per-search tables sized to the full state space.
	n := g.Rows() * g.Cols() * gridgraph.NumStates
	r := &runner{
		ctx:  ctx,
		g:    g,
		opts: cfg,
		best: make([]int64, n),
		pq:   make(statePQ, 0, g.Rows()*g.Cols()),
	}
	for i := range r.best {
		r.best[i] = unknown
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	// 4) Seed and run.
	r.init()
	return r.process()
}

// MinCost is a convenience wrapper around Search for the common case:
// top-left to bottom-right with the given run bounds.
// It returns ErrUnreachable when no feasible path exists.
func MinCost(ctx context.Context, g *gridgraph.Grid, minRun, maxRun int) (int64, error) {
	res, err := Search(ctx, g, WithRunBounds(minRun, maxRun))
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, ErrUnreachable
	}
	return res.Cost, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	ctx      context.Context
	g        *gridgraph.Grid // read-only
	opts     Options
	best     []int64 // state key → best known cost
	prev     []int   // state key → predecessor key, -1 at the start; nil unless ReturnPath
	pq       statePQ
	expanded int
}

// key maps a state to its dense index: cell index × NumStates + direction.
func (r *runner) key(s State) int {
	return r.g.Index(s.Cell)*gridgraph.NumStates + int(s.Dir)
}

// state is the inverse of key.
func (r *runner) state(k int) State {
	return State{
		Cell: r.g.Coordinate(k / gridgraph.NumStates),
		Dir:  gridgraph.Direction(k % gridgraph.NumStates),
	}
}

// init pushes the direction-less start state at cost 0.
func (r *runner) init() {
	start := State{Cell: r.opts.Start, Dir: gridgraph.None}
	k := r.key(start)
	r.best[k] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{key: k, cost: 0})
}

// process is the main loop: pop the cheapest state, finish on the goal,
// otherwise expand it.
func (r *runner) process() (Result, error) {
	goal := r.opts.Goal
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// 1) Skip stale entries superseded by a cheaper push.
		if item.cost > r.best[item.key] {
			continue
		}

		// 2) Cancellation check (once per pop).
		select {
		case <-r.ctx.Done():
			return Result{Status: StatusUnreachable, Expanded: r.expanded}, r.ctx.Err()
		default:
		}

		// 3) Budget.
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Result{Status: StatusBudgetExceeded, Expanded: r.expanded}, nil
		}
		r.expanded++

		s := r.state(item.key)
		r.opts.OnPop(s, item.cost)

		// 4) First pop of the goal is optimal.
		if s.Cell == goal {
			res := Result{Status: StatusFound, Cost: item.cost, Expanded: r.expanded}
			if r.prev != nil {
				res.Path = r.path(item.key)
			}
			return res, nil
		}

		// 5) Bulk-jump expansion.
		r.expand(s, item.key, item.cost)
	}

	return Result{Status: StatusUnreachable, Expanded: r.expanded}, nil
}

// expand turns onto every permitted direction and registers each stopping
// point MinRun..MaxRun cells away. Continuing straight is never a separate
// move: a longer run is already one of the jumps of the previous expansion.
func (r *runner) expand(s State, from int, cost int64) {
	for _, d := range r.turns(s.Dir) {
		var acc int64
		cur := s.Cell
		for k := 1; k <= r.opts.MaxRun; k++ {
			next, ok := r.g.Step(cur, d, 1)
			if !ok {
				break // every longer run leaves the grid too
			}
			cur = next
			c, _ := r.g.CostAt(cur.Row, cur.Col)
			acc += int64(c)
			if k < r.opts.MinRun {
				continue // too short to stop or turn
			}
			r.relax(State{Cell: cur, Dir: d}, from, cost+acc)
		}
	}
}

// turns lists the directions a run may take after a run in dir:
// the configured initial directions for the start state, otherwise the
// two perpendicular directions.
func (r *runner) turns(dir gridgraph.Direction) []gridgraph.Direction {
	if dir == gridgraph.None {
		return r.opts.InitialDirections
	}
	return perpendicular[dir][:]
}

var perpendicular = [4][2]gridgraph.Direction{
	gridgraph.Up:    {gridgraph.Right, gridgraph.Left},
	gridgraph.Right: {gridgraph.Up, gridgraph.Down},
	gridgraph.Down:  {gridgraph.Right, gridgraph.Left},
	gridgraph.Left:  {gridgraph.Up, gridgraph.Down},
}

// relax records cost for s if it improves on the known cost and pushes it.
// Uses "<" rather than "≤" so equal-cost rediscoveries are dropped.
func (r *runner) relax(s State, from int, cost int64) {
	k := r.key(s)
	if cost >= r.best[k] {
		return
	}
	r.best[k] = cost
	if r.prev != nil {
		r.prev[k] = from
	}
	heap.Push(&r.pq, &stateItem{key: k, cost: cost})
}

// stateItem is a frontier entry: a state key and its accumulated cost.
type stateItem struct {
	key  int
	cost int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Ties are broken arbitrarily; the returned minimum does not depend on it.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
