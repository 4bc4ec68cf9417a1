// File: maze/bench_test.go
package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// BenchmarkGenerate_Rect measures a 201×201 rectangular maze.
// Complexity: O(N).
func BenchmarkGenerate_Rect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(201, 201, grid.Rect4, maze.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}

// BenchmarkGenerate_Hex measures a 201×201 hexagonal maze.
func BenchmarkGenerate_Hex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := maze.Generate(201, 201, grid.Hex6, maze.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}

// BenchmarkReachable floods a generated 201×201 maze from its start.
func BenchmarkReachable(b *testing.B) {
	m, err := maze.Generate(201, 201, grid.Rect4)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Reachable(m.Start())
	}
}
