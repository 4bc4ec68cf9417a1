// SPDX-License-Identifier: MIT
//
// generate.go — randomized-Prim carving, terrain weighting and loop injection.
//
// Contract:
//   • rows ≥ MinDim and cols ≥ MinDim (else ErrTooSmall).
//   • Carving is confined to interior cells; the outer ring stays Wall.
//   • start = (1,1), end = (rows-2, cols-2), both non-Wall on return.
//   • Terminates: every candidate enters the frontier at most once.
//
// Determinism:
//   • Candidates are exposed in topology offset order and picked by
//     rng.Intn over the frontier, so a fixed seed fixes the whole maze.

package maze

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/terrain"
)

// rectCarveStep is the candidate distance of the Rect4 carve lattice.
const rectCarveStep = 2

// Generate builds a new maze of rows×cols cells over topology topo.
func Generate(rows, cols int, topo grid.Topology, opts ...Option) (*Maze, error) {
	// 1) Validate parameters early; no partial work.
	if rows < MinDim || cols < MinDim {
		return nil, fmt.Errorf("%w: rows=%d, cols=%d (each must be ≥ %d)", ErrTooSmall, rows, cols, MinDim)
	}
	if !topo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(topo))
	}
	cfg := newGenConfig(opts...)

	// 2) Wall-filled grid with fixed endpoints.
	b := grid.Bounds{Rows: rows, Cols: cols}
	m := newWalled(b, topo)
	m.start = grid.Cell{Row: 1, Col: 1}
	m.end = grid.Cell{Row: rows - 2, Col: cols - 2}
	if cfg.seeded {
		m.seed = cfg.seed
	}

	// 3) Spanning carve, cycles, then endpoint repair.
	g := &carver{m: m, rng: cfg.rng, dist: cfg.dist, queued: mapset.New[grid.Cell]()}
	g.carve()
	g.injectLoops(cfg.loopChance)
	g.repair()

	return m, nil
}

// carver holds the mutable state of one Generate call.
type carver struct {
	m        *Maze
	rng      *rand.Rand
	dist     terrain.Distribution
	frontier []grid.Cell
	queued   mapset.Set[grid.Cell] // cells that ever entered the frontier
}

// carve runs randomized Prim from the start cell until the frontier is empty.
func (g *carver) carve() {
	start := g.m.start
	g.m.setKind(start, terrain.Grass)
	g.expose(start)

	var (
		i      int
		last   int
		cand   grid.Cell
		carved []grid.Cell
	)
	for len(g.frontier) > 0 {
		// Uniform pick; swap-remove keeps the pop O(1).
		i = g.rng.Intn(len(g.frontier))
		last = len(g.frontier) - 1
		cand = g.frontier[i]
		g.frontier[i] = g.frontier[last]
		g.frontier = g.frontier[:last]

		if g.m.Passable(cand) {
			continue
		}
		// Carve only with exactly one carved neighbour: no premature loops.
		carved = g.carvedNeighbors(cand)
		if len(carved) != 1 {
			continue
		}
		k := g.randomKind()
		g.m.setKind(cand, k)
		if g.m.topo == grid.Rect4 {
			// Open the wall between cand and its carved neighbour.
			mid := grid.Cell{Row: (cand.Row + carved[0].Row) / 2, Col: (cand.Col + carved[0].Col) / 2}
			g.m.setKind(mid, k)
		}
		g.expose(cand)
	}
}

// candidates returns the interior cells at carve distance from c:
// the Rect4 lattice cells two steps away, or the direct Hex6 neighbours.
func (g *carver) candidates(c grid.Cell) []grid.Cell {
	b := g.m.bounds
	if g.m.topo == grid.Hex6 {
		out := grid.Neighbors(c, b, grid.Hex6)
		n := 0
		for _, x := range out {
			if b.Interior(x) {
				out[n] = x
				n++
			}
		}
		return out[:n]
	}

	out := make([]grid.Cell, 0, 4)
	var x grid.Cell
	for _, d := range g.m.topo.Offsets(c.Row) {
		x = c.Offset(d[0]*rectCarveStep, d[1]*rectCarveStep)
		if b.Interior(x) {
			out = append(out, x)
		}
	}
	return out
}

// expose pushes the wall candidates around c that were never queued before.
func (g *carver) expose(c grid.Cell) {
	for _, x := range g.candidates(c) {
		if g.m.Passable(x) || g.queued.Has(x) {
			continue
		}
		g.queued.Put(x)
		g.frontier = append(g.frontier, x)
	}
}

// carvedNeighbors returns the already-carved cells at carve distance from c.
func (g *carver) carvedNeighbors(c grid.Cell) []grid.Cell {
	var out []grid.Cell
	for _, x := range g.candidates(c) {
		if g.m.Passable(x) {
			out = append(out, x)
		}
	}
	return out
}

func (g *carver) randomKind() terrain.Kind {
	return terrain.Random(g.rng, g.dist)
}

// injectLoops scans interior walls in row-major order and opens each qualifying
// wall with probability chance. The RNG is consumed only for qualifying walls.
//
// Rect4: a lattice cell the carve rejected qualifies when at least two lattice
// neighbours are carved; it opens together with the walls towards the first
// two of them. Any other wall qualifies with carved cells on two opposite sides.
// Hex6: a wall qualifies with at least two carved neighbours.
func (g *carver) injectLoops(chance float64) {
	if chance <= 0 {
		return
	}
	b := g.m.bounds
	var (
		c      grid.Cell
		k      terrain.Kind
		carved []grid.Cell
	)
	for r := 1; r < b.Rows-1; r++ {
		for col := 1; col < b.Cols-1; col++ {
			c = grid.Cell{Row: r, Col: col}
			if g.m.Passable(c) {
				continue
			}
			if g.m.topo == grid.Rect4 && onLattice(c) {
				carved = g.carvedNeighbors(c)
				if len(carved) < 2 || g.rng.Float64() >= chance {
					continue
				}
				k = g.randomKind()
				g.m.setKind(c, k)
				for _, n := range carved[:2] {
					g.m.setKind(grid.Cell{Row: (c.Row + n.Row) / 2, Col: (c.Col + n.Col) / 2}, k)
				}
				continue
			}
			if !g.bridges(c) {
				continue
			}
			if g.rng.Float64() < chance {
				g.m.setKind(c, g.randomKind())
			}
		}
	}
}

// onLattice reports whether c is a Rect4 carve cell: odd row and odd column,
// the parity of the start cell (1,1).
func onLattice(c grid.Cell) bool {
	return c.Row%2 == 1 && c.Col%2 == 1
}

// bridges reports whether opening wall c would join carved cells.
func (g *carver) bridges(c grid.Cell) bool {
	m := g.m
	if m.topo == grid.Hex6 {
		open := 0
		for _, n := range grid.Neighbors(c, m.bounds, grid.Hex6) {
			if m.Passable(n) {
				open++
			}
		}
		return open >= 2
	}

	vertical := m.Passable(c.Offset(-1, 0)) && m.Passable(c.Offset(1, 0))
	horizontal := m.Passable(c.Offset(0, -1)) && m.Passable(c.Offset(0, 1))
	return vertical || horizontal
}
