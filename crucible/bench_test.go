package crucible_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/gridgraph"
)

// benchGrid builds a deterministic n×n grid with costs in [1,9], the size
// and value range of real puzzle inputs.
func benchGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := range values {
		values[r] = make([]int, n)
		for c := range values[r] {
			values[r][c] = 1 + rng.Intn(9)
		}
	}
	g, err := gridgraph.NewGrid(values)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkSearch_Tight measures the 1..3 profile on a 141×141 grid.
func BenchmarkSearch_Tight(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Search(context.Background(), g, crucible.Tight())
	}
}

// BenchmarkSearch_Ultra measures the 4..10 profile on a 141×141 grid.
func BenchmarkSearch_Ultra(b *testing.B) {
	g := benchGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.Search(context.Background(), g, crucible.Ultra())
	}
}
