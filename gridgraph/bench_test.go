package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shipfire/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 500×500 mask with roughly 60% passable cells.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
		for c := range grid[r] {
			if rng.Float64() < 0.6 {
				grid[r][c] = 1
			}
		}
	}
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkExpandIsland measures ExpandIsland between two single-cell
// islands at opposite corners of an otherwise blocked 500×500 grid.
func BenchmarkExpandIsland(b *testing.B) {
	const n = 500
	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
	}
	grid[0][0] = 1
	grid[n-1][n-1] = 1
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ExpandIsland(0, 1)
	}
}
