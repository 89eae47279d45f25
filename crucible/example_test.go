// Package crucible_test provides examples demonstrating how to use the run-constrained search.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package crucible_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// heatLossMap is the canonical 13×13 worked example.
const heatLossMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// ExampleMinCost_profiles runs the two classic profiles on the worked example.
// Complexity: O(S·M·log S) per profile, S = 13·13·5.
func ExampleMinCost_profiles() {
	// 1) Parse the digit grid.
	g, err := gridgraph.ParseString(heatLossMap)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Tight profile: runs of 1..3 cells.
	tight, _ := crucible.MinCost(context.Background(), g, crucible.TightMinRun, crucible.TightMaxRun)
	// 3) Ultra profile: runs of 4..10 cells.
	ultra, _ := crucible.MinCost(context.Background(), g, crucible.UltraMinRun, crucible.UltraMaxRun)

	fmt.Println("tight:", tight)
	fmt.Println("ultra:", ultra)
	// Output:
	// tight: 102
	// ultra: 94
}

// ExampleSearch_path requests the full path. The only route of cost 4
// follows the ones along the top row and the right column.
func ExampleSearch_path() {
	g := gridgraph.MustGrid([][]int{
		{1, 1, 1},
		{9, 9, 1},
		{9, 9, 1},
	})
	res, err := crucible.Search(context.Background(), g, crucible.Tight(), crucible.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Cost)
	fmt.Println(res.Path)

	runs, _ := crucible.Runs(res.Path)
	parts := make([]string, 0, len(runs))
	for _, run := range runs {
		parts = append(parts, fmt.Sprintf("%s×%d", run.Dir, run.Length))
	}
	fmt.Println(strings.Join(parts, " "))
	// Output:
	// found 4
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
	// right×2 down×2
}

// ExampleSearch_unreachable shows that an infeasible configuration is a
// normal result, not an error: a 3×3 grid has no room for a 4-cell run.
func ExampleSearch_unreachable() {
	g := gridgraph.MustGrid([][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	res, err := crucible.Search(context.Background(), g, crucible.Ultra())
	fmt.Println(res.Status, err)

	_, err = crucible.MinCost(context.Background(), g, crucible.UltraMinRun, crucible.UltraMaxRun)
	fmt.Println(err)
	// Output:
	// unreachable <nil>
	// crucible: goal unreachable
}
