// File: maze/maze_test.go
package maze_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/terrain"
)

const (
	W = terrain.Wall
	G = terrain.Grass
	M = terrain.Mud
	A = terrain.Water
)

var topologies = []grid.Topology{grid.Rect4, grid.Hex6}

// TestGenerate_Errors checks parameter validation happens before any work.
func TestGenerate_Errors(t *testing.T) {
	_, err := maze.Generate(2, 10, grid.Rect4)
	assert.ErrorIs(t, err, maze.ErrTooSmall)
	_, err = maze.Generate(10, 0, grid.Hex6)
	assert.ErrorIs(t, err, maze.ErrTooSmall)
	_, err = maze.Generate(10, 10, grid.Topology(9))
	assert.ErrorIs(t, err, maze.ErrUnknownTopology)
}

// TestGenerate_Invariants runs many seeds over both topologies and odd/even
// dimensions: outer ring is Wall, endpoints are Grass, end is reachable.
func TestGenerate_Invariants(t *testing.T) {
	dims := [][2]int{{3, 3}, {5, 5}, {6, 6}, {7, 12}, {21, 21}, {10, 15}}
	for _, topo := range topologies {
		for _, d := range dims {
			for seed := int64(0); seed < 40; seed++ {
				m, err := maze.Generate(d[0], d[1], topo, maze.WithSeed(seed))
				require.NoError(t, err)

				b := m.Bounds()
				require.Equal(t, grid.Cell{Row: 1, Col: 1}, m.Start())
				require.Equal(t, grid.Cell{Row: d[0] - 2, Col: d[1] - 2}, m.End())
				assert.Equal(t, terrain.Grass, m.Kind(m.Start()))
				assert.Equal(t, terrain.Grass, m.Kind(m.End()))
				for r := 0; r < b.Rows; r++ {
					for c := 0; c < b.Cols; c++ {
						cell := grid.Cell{Row: r, Col: c}
						if !b.Interior(cell) && m.Passable(cell) {
							t.Fatalf("%v %dx%d seed=%d: border cell %v is open", topo, d[0], d[1], seed, cell)
						}
					}
				}
				if !m.Connected() {
					t.Fatalf("%v %dx%d seed=%d: end unreachable\n%s", topo, d[0], d[1], seed, m)
				}
			}
		}
	}
}

// TestGenerate_Deterministic verifies the same seed reproduces the same grid.
func TestGenerate_Deterministic(t *testing.T) {
	for _, topo := range topologies {
		a, err := maze.Generate(15, 21, topo, maze.WithSeed(42))
		require.NoError(t, err)
		b, err := maze.Generate(15, 21, topo, maze.WithSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), b.Rows())
		assert.Equal(t, int64(42), a.Seed())

		c, err := maze.Generate(15, 21, topo, maze.WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		assert.Equal(t, a.Rows(), c.Rows(), "WithRand on the same source must match WithSeed")
		assert.Zero(t, c.Seed())
	}
}

// TestGenerate_DefaultSeed checks no options means seed 1.
func TestGenerate_DefaultSeed(t *testing.T) {
	a, err := maze.Generate(11, 11, grid.Rect4)
	require.NoError(t, err)
	b, err := maze.Generate(11, 11, grid.Rect4, maze.WithSeed(maze.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
	assert.Equal(t, maze.DefaultSeed, a.Seed())
}

// TestGenerate_LoopsAddCells: with the same seed the carve phase is identical,
// so loop injection can only add open cells.
func TestGenerate_LoopsAddCells(t *testing.T) {
	tree, err := maze.Generate(31, 31, grid.Rect4, maze.WithSeed(5), maze.WithLoopChance(0))
	require.NoError(t, err)
	loopy, err := maze.Generate(31, 31, grid.Rect4, maze.WithSeed(5), maze.WithLoopChance(1))
	require.NoError(t, err)
	assert.Greater(t, loopy.OpenCells(), tree.OpenCells())
}

// cycles returns the cycle rank E - V + C of the open-cell graph:
// zero for a forest, positive once loops exist.
func cycles(m *maze.Maze) int {
	b := m.Bounds()
	edges, vertices, components := 0, 0, 0
	seen := map[grid.Cell]bool{}
	for i := 0; i < b.Size(); i++ {
		c := b.CellAt(i)
		if !m.Passable(c) {
			continue
		}
		vertices++
		for _, n := range m.Neighbors(c) {
			if b.Index(n) > i {
				edges++
			}
		}
		if !seen[c] {
			components++
			m.Reachable(c).Each(func(x grid.Cell) { seen[x] = true })
		}
	}
	return edges - vertices + components
}

// TestGenerate_LoopsCreateCycles: loop injection adds cycles on both
// topologies; without it a Rect4 maze stays a tree.
func TestGenerate_LoopsCreateCycles(t *testing.T) {
	for _, topo := range topologies {
		for seed := int64(1); seed <= 10; seed++ {
			m, err := maze.Generate(21, 21, topo, maze.WithSeed(seed), maze.WithLoopChance(1))
			require.NoError(t, err)
			assert.Positive(t, cycles(m), "%v seed=%d", topo, seed)
		}
	}
	for seed := int64(1); seed <= 10; seed++ {
		m, err := maze.Generate(21, 21, grid.Rect4, maze.WithSeed(seed), maze.WithLoopChance(0))
		require.NoError(t, err)
		assert.Zero(t, cycles(m), "seed=%d", seed)
	}
}

// TestGenerate_TerrainMix: carved cells use every passable kind.
func TestGenerate_TerrainMix(t *testing.T) {
	m, err := maze.Generate(41, 41, grid.Hex6, maze.WithSeed(9))
	require.NoError(t, err)
	seen := map[terrain.Kind]int{}
	for _, row := range m.Rows() {
		for _, k := range row {
			seen[k]++
		}
	}
	for _, k := range []terrain.Kind{W, G, M, A} {
		assert.Positive(t, seen[k], "kind %v missing", k)
	}
	assert.Greater(t, seen[G], seen[M])
	assert.Greater(t, seen[M], seen[A])
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
	assert.Panics(t, func() { maze.WithLoopChance(-0.1) })
	assert.Panics(t, func() { maze.WithLoopChance(1.5) })
	assert.Panics(t, func() { maze.WithDistribution(terrain.Distribution{Grass: 0.9, Mud: 0.5}) })
}

// TestFromKinds_Errors covers every validation branch.
func TestFromKinds_Errors(t *testing.T) {
	ok := [][]terrain.Kind{{G, G}, {W, G}}
	s, e := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}

	cases := []struct {
		name  string
		kinds [][]terrain.Kind
		topo  grid.Topology
		s, e  grid.Cell
		want  error
	}{
		{"empty", nil, grid.Rect4, s, e, maze.ErrEmpty},
		{"emptyRow", [][]terrain.Kind{{}}, grid.Rect4, s, e, maze.ErrEmpty},
		{"ragged", [][]terrain.Kind{{G, G}, {G}}, grid.Rect4, s, e, maze.ErrNonRectangular},
		{"topology", ok, grid.Topology(7), s, e, maze.ErrUnknownTopology},
		{"kind", [][]terrain.Kind{{G, 9}, {G, G}}, grid.Rect4, s, e, terrain.ErrUnknownKind},
		{"startOut", ok, grid.Rect4, grid.Cell{Row: -1, Col: 0}, e, maze.ErrOutOfBounds},
		{"endOut", ok, grid.Rect4, s, grid.Cell{Row: 2, Col: 0}, maze.ErrOutOfBounds},
		{"endWall", ok, grid.Rect4, s, grid.Cell{Row: 1, Col: 0}, maze.ErrEndpointWall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.FromKinds(tc.kinds, tc.topo, tc.s, tc.e)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestFromKinds_CopiesInput ensures later mutation of the input has no effect.
func TestFromKinds_CopiesInput(t *testing.T) {
	kinds := [][]terrain.Kind{{G, M}, {A, G}}
	m, err := maze.FromKinds(kinds, grid.Rect4, grid.Cell{}, grid.Cell{Row: 1, Col: 1})
	require.NoError(t, err)
	kinds[0][1] = W
	assert.Equal(t, terrain.Mud, m.Kind(grid.Cell{Row: 0, Col: 1}))
}

func TestCostAndNeighbors(t *testing.T) {
	m, err := maze.FromKinds([][]terrain.Kind{
		{G, M, W},
		{A, G, G},
	}, grid.Rect4, grid.Cell{}, grid.Cell{Row: 1, Col: 2})
	require.NoError(t, err)

	c, err := m.Cost(grid.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, terrain.CostMud, c)
	c, err = m.Cost(grid.Cell{Row: 1, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, terrain.CostWater, c)

	_, err = m.Cost(grid.Cell{Row: 0, Col: 2})
	assert.ErrorIs(t, err, terrain.ErrWallCost)
	_, err = m.Cost(grid.Cell{Row: 5, Col: 5})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
	assert.Equal(t, terrain.Wall, m.Kind(grid.Cell{Row: -1, Col: 0}))

	// (0,1) neighbours in order up, down, left, right; (0,2) is a wall.
	assert.Equal(t, []grid.Cell{{Row: 1, Col: 1}, {Row: 0, Col: 0}}, m.Neighbors(grid.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 5, m.OpenCells())
}

// TestMarkPath covers the overlay: all-or-nothing, terrain untouched, reset.
func TestMarkPath(t *testing.T) {
	m, err := maze.FromKinds([][]terrain.Kind{
		{G, M, W},
		{W, A, G},
	}, grid.Rect4, grid.Cell{}, grid.Cell{Row: 1, Col: 2})
	require.NoError(t, err)

	err = m.MarkPath([]grid.Cell{{Row: 0, Col: 1}, {Row: 0, Col: 2}})
	assert.ErrorIs(t, err, maze.ErrMarkWall)
	assert.Empty(t, m.MarkedCells(), "failed MarkPath must not mark anything")

	path := []grid.Cell{{Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}
	require.NoError(t, m.MarkPath(path))
	assert.True(t, m.Marked(grid.Cell{Row: 0, Col: 1}))
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}, m.MarkedCells())
	assert.Equal(t, terrain.Mud, m.Kind(grid.Cell{Row: 0, Col: 1}), "marking keeps terrain")

	cp := m.Clone()
	m.ResetMarks()
	assert.Empty(t, m.MarkedCells())
	assert.Len(t, cp.MarkedCells(), 3, "clone keeps its own overlay")
}

func TestReachable(t *testing.T) {
	m, err := maze.FromKinds([][]terrain.Kind{
		{G, G, W, G},
		{W, G, W, G},
		{G, W, W, G},
	}, grid.Rect4, grid.Cell{}, grid.Cell{Row: 2, Col: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Reachable(m.Start()).Size())
	assert.False(t, m.Connected())
	assert.Zero(t, m.Reachable(grid.Cell{Row: 0, Col: 2}).Size(), "wall origin")

	// Hex6: even row 0 reaches (1,0); odd row 1 would need (2,1) or (2,2).
	h, err := maze.FromKinds([][]terrain.Kind{
		{G, W, W},
		{G, W, W},
		{W, W, G},
	}, grid.Hex6, grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Reachable(h.Start()).Size())
	assert.False(t, h.Connected())
}

func TestString(t *testing.T) {
	m, err := maze.FromKinds([][]terrain.Kind{
		{W, W, W, W},
		{W, G, M, W},
		{W, A, G, W},
		{W, W, W, W},
	}, grid.Rect4, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 2, Col: 2})
	require.NoError(t, err)
	require.NoError(t, m.MarkPath([]grid.Cell{{Row: 1, Col: 2}}))

	want := "####\n" +
		"#S*#\n" +
		"#wE#\n" +
		"####\n"
	assert.Equal(t, want, m.String())
}
