// SPDX-License-Identifier: MIT
//
// maze.go — the Maze type: terrain grid, endpoints and solution overlay.

package maze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/terrain"
)

// Maze is a terrain grid with fixed start and end cells.
//
// Terrain is written only while the maze is built (Generate, FromKinds).
// The solution overlay (MarkPath/ResetMarks) is layered on top and never
// alters terrain, so Kind and Cost always report pre-marking values.
//
// A Maze is not safe for concurrent mutation; concurrent readers of terrain are fine.
type Maze struct {
	bounds grid.Bounds
	topo   grid.Topology
	cells  []terrain.Kind // row-major, len = bounds.Size()
	start  grid.Cell
	end    grid.Cell
	marks  mapset.Set[grid.Cell]
	seed   int64
}

// newWalled allocates a maze whose every cell is Wall.
func newWalled(b grid.Bounds, topo grid.Topology) *Maze {
	return &Maze{
		bounds: b,
		topo:   topo,
		cells:  make([]terrain.Kind, b.Size()), // terrain.Wall is the zero value
		marks:  mapset.New[grid.Cell](),
	}
}

// FromKinds builds a maze from a rectangular terrain matrix kinds[row][col].
// The input is deep-copied.
//
// Returns ErrEmpty, ErrNonRectangular, ErrUnknownTopology, ErrOutOfBounds
// (endpoint outside the matrix) or ErrEndpointWall.
// Complexity: O(rows×cols).
func FromKinds(kinds [][]terrain.Kind, topo grid.Topology, start, end grid.Cell) (*Maze, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmpty
	}
	if !topo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(topo))
	}
	rows, cols := len(kinds), len(kinds[0])
	for r, row := range kinds {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	m := newWalled(grid.Bounds{Rows: rows, Cols: cols}, topo)
	for r, row := range kinds {
		for c, k := range row {
			if k != terrain.Wall && !k.Passable() {
				return nil, fmt.Errorf("maze: cell %d,%d: %w", r, c, terrain.ErrUnknownKind)
			}
			m.cells[r*cols+c] = k
		}
	}
	for _, p := range []grid.Cell{start, end} {
		if !m.bounds.Contains(p) {
			return nil, fmt.Errorf("%w: endpoint %v in %dx%d", ErrOutOfBounds, p, rows, cols)
		}
		if !m.Passable(p) {
			return nil, fmt.Errorf("%w: %v", ErrEndpointWall, p)
		}
	}
	m.start, m.end = start, end

	return m, nil
}

// Bounds returns the maze dimensions.
func (m *Maze) Bounds() grid.Bounds { return m.bounds }

// Topology returns the adjacency rule of the maze.
func (m *Maze) Topology() grid.Topology { return m.topo }

// Start returns the fixed start cell.
func (m *Maze) Start() grid.Cell { return m.start }

// End returns the fixed end cell.
func (m *Maze) End() grid.Cell { return m.end }

// Seed returns the seed the maze was generated with, or 0 when it was built
// from an external RNG or from FromKinds.
func (m *Maze) Seed() int64 { return m.seed }

// Kind returns the terrain of c. Out-of-bounds cells read as Wall.
func (m *Maze) Kind(c grid.Cell) terrain.Kind {
	if !m.bounds.Contains(c) {
		return terrain.Wall
	}
	return m.cells[m.bounds.Index(c)]
}

// Passable reports whether c is in bounds and not a Wall.
func (m *Maze) Passable(c grid.Cell) bool {
	return m.Kind(c).Passable()
}

// Cost returns the traversal cost of entering c.
// Returns ErrOutOfBounds or terrain.ErrWallCost for impassable cells.
func (m *Maze) Cost(c grid.Cell) (int, error) {
	if !m.bounds.Contains(c) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	cost, err := terrain.Cost(m.cells[m.bounds.Index(c)])
	if err != nil {
		return 0, fmt.Errorf("maze: cost of %v: %w", c, err)
	}
	return cost, nil
}

// Neighbors returns the passable topology neighbours of c.
// Complexity: O(d).
func (m *Maze) Neighbors(c grid.Cell) []grid.Cell {
	all := grid.Neighbors(c, m.bounds, m.topo)
	out := all[:0]
	for _, n := range all {
		if m.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenCells returns the number of passable cells.
func (m *Maze) OpenCells() int {
	n := 0
	for _, k := range m.cells {
		if k.Passable() {
			n++
		}
	}
	return n
}

// Rows returns the terrain as a fresh matrix kinds[row][col].
func (m *Maze) Rows() [][]terrain.Kind {
	out := make([][]terrain.Kind, m.bounds.Rows)
	for r := range out {
		out[r] = make([]terrain.Kind, m.bounds.Cols)
		copy(out[r], m.cells[r*m.bounds.Cols:(r+1)*m.bounds.Cols])
	}
	return out
}

// Clone returns a deep copy, including the solution overlay.
func (m *Maze) Clone() *Maze {
	cp := newWalled(m.bounds, m.topo)
	copy(cp.cells, m.cells)
	cp.start, cp.end, cp.seed = m.start, m.end, m.seed
	m.marks.Each(func(c grid.Cell) { cp.marks.Put(c) })
	return cp
}

// MarkPath annotates cells as lying on the solution path.
// Terrain is untouched. Every cell must be passable; on error no cell is marked.
func (m *Maze) MarkPath(cells []grid.Cell) error {
	for _, c := range cells {
		if !m.Passable(c) {
			return fmt.Errorf("%w: %v", ErrMarkWall, c)
		}
	}
	for _, c := range cells {
		m.marks.Put(c)
	}
	return nil
}

// Marked reports whether c carries the solution-path annotation.
func (m *Maze) Marked(c grid.Cell) bool {
	return m.marks.Has(c)
}

// MarkedCells returns the annotated cells in row-major order.
func (m *Maze) MarkedCells() []grid.Cell {
	out := make([]grid.Cell, 0, m.marks.Size())
	m.marks.Each(func(c grid.Cell) { out = append(out, c) })
	sort.Slice(out, func(i, j int) bool { return m.bounds.Index(out[i]) < m.bounds.Index(out[j]) })
	return out
}

// ResetMarks removes every solution-path annotation.
func (m *Maze) ResetMarks() {
	m.marks = mapset.New[grid.Cell]()
}

// String renders one line per row: '#' wall, '.' grass, '~' mud, 'w' water,
// '*' marked, 'S' start, 'E' end.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.bounds.Size() + m.bounds.Rows)
	for r := 0; r < m.bounds.Rows; r++ {
		for c := 0; c < m.bounds.Cols; c++ {
			sb.WriteRune(m.symbol(grid.Cell{Row: r, Col: c}))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Maze) symbol(c grid.Cell) rune {
	switch {
	case c == m.start:
		return 'S'
	case c == m.end:
		return 'E'
	case m.marks.Has(c):
		return '*'
	default:
		return m.Kind(c).Rune()
	}
}

// setKind writes terrain during construction.
func (m *Maze) setKind(c grid.Cell, k terrain.Kind) {
	m.cells[m.bounds.Index(c)] = k
}
