package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/crucible/gridgraph"
)

// TestShortestPath_DetourBeatsDirect checks that a cheap detour around an
// expensive wall is preferred.
//
//	1 9 1
//	1 9 1
//	1 1 1
//
// Direct routes through the 9s cost at least 9; the U-shaped route costs 6.
func TestShortestPath_DetourBeatsDirect(t *testing.T) {
	g := gridgraph.MustGrid([][]int{
		{1, 9, 1},
		{1, 9, 1},
		{1, 1, 1},
	})
	got, err := g.ShortestPath(gridgraph.Cell{}, gridgraph.Cell{Row: 0, Col: 2})
	if err != nil {
		t.Fatalf("ShortestPath error: %v", err)
	}
	if got != 6 {
		t.Errorf("ShortestPath = %d; want 6", got)
	}
}

// TestShortestPath_StartNotCharged verifies the start cell's own cost is excluded.
func TestShortestPath_StartNotCharged(t *testing.T) {
	g := gridgraph.MustGrid([][]int{{9, 2}})
	got, err := g.ShortestPath(gridgraph.Cell{}, gridgraph.Cell{Row: 0, Col: 1})
	if err != nil || got != 2 {
		t.Errorf("ShortestPath = %d, %v; want 2, nil", got, err)
	}
	same, err := g.ShortestPath(gridgraph.Cell{}, gridgraph.Cell{})
	if err != nil || same != 0 {
		t.Errorf("ShortestPath(start==goal) = %d, %v; want 0, nil", same, err)
	}
}

func TestShortestPath_OutOfBounds(t *testing.T) {
	g := gridgraph.MustGrid([][]int{{1, 1}})
	if _, err := g.ShortestPath(gridgraph.Cell{Row: 1}, gridgraph.Cell{}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("bad start: got %v; want ErrOutOfBounds", err)
	}
	if _, err := g.ShortestPath(gridgraph.Cell{}, gridgraph.Cell{Col: 2}); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("bad goal: got %v; want ErrOutOfBounds", err)
	}
}
