package gridgraph

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath finds the minimum total entry cost of any four-directional
// path from start to goal, with no constraint on how long a path may run
// straight. The cost of start itself is never charged.
//
// Behavior:
//  1. Validate start and goal (ErrOutOfBounds).
//  2. Dijkstra from start with a lazy-decrease-key min-heap over cell indices.
//  3. Stop when goal is popped.
//
// Complexity: O(R×C · log(R×C)) time, O(R×C) memory.
func (g *Grid) ShortestPath(start, goal Cell) (int64, error) {
	if !g.Contains(start) {
		return 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.Contains(goal) {
		return 0, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	n := g.rows * g.cols
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = math.MaxInt64
	}

	src := g.Index(start)
	dst := g.Index(goal)
	dist[src] = 0
	pq := cellPQ{{idx: src, dist: 0}}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(cellItem)
		if item.dist > dist[item.idx] {
			continue // stale entry
		}
		if item.idx == dst {
			return item.dist, nil
		}
		u := g.Coordinate(item.idx)
		for _, d := range Directions {
			v := u.Move(d, 1)
			if !g.Contains(v) {
				continue
			}
			vi := g.Index(v)
			nd := item.dist + int64(g.costs[vi])
			if nd < dist[vi] {
				dist[vi] = nd
				heap.Push(&pq, cellItem{idx: vi, dist: nd})
			}
		}
	}

	return 0, ErrNoPath
}

// cellItem is a heap entry: a row-major cell index and its tentative distance.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist.
type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
