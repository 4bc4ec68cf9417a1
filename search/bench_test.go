// File: search/bench_test.go
package search_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// benchmarkSolve measures one full solve over a 201×201 maze.
// Complexity: O(N·d) for BFS/DFS, O(N·d·log N) for Dijkstra/AStar.
func benchmarkSolve(b *testing.B, topo grid.Topology, alg search.Algorithm) {
	m, err := maze.Generate(201, 201, topo, maze.WithSeed(42), maze.WithLoopChance(0.2))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Solve(ctx, m, alg); err != nil {
			b.Fatalf("Solve: %v", err)
		}
	}
}

func BenchmarkSolve_BFS(b *testing.B)      { benchmarkSolve(b, grid.Rect4, search.BFS) }
func BenchmarkSolve_DFS(b *testing.B)      { benchmarkSolve(b, grid.Rect4, search.DFS) }
func BenchmarkSolve_Dijkstra(b *testing.B) { benchmarkSolve(b, grid.Rect4, search.Dijkstra) }
func BenchmarkSolve_AStar(b *testing.B)    { benchmarkSolve(b, grid.Rect4, search.AStar) }
func BenchmarkSolve_AStarHex(b *testing.B) { benchmarkSolve(b, grid.Hex6, search.AStar) }
