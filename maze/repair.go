// SPDX-License-Identifier: MIT
//
// repair.go — endpoint connectivity repair after carving.
//
// Contract:
//   • start and end become Grass.
//   • An endpoint without passable neighbours gets exactly one opened
//     interior neighbour (Grass).
//   • If end is still unreachable from start, the minimal number of interior
//     walls is converted to Grass along one corridor (0–1 BFS). Afterwards end
//     is always reachable from start.

package maze

import (
	"container/list"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/terrain"
)

func (g *carver) repair() {
	m := g.m
	for _, p := range []grid.Cell{m.start, m.end} {
		m.setKind(p, terrain.Grass)
		m.openIsolated(p)
	}
	if !m.Reachable(m.start).Has(m.end) {
		m.carveCorridor(m.start, m.end)
	}
}

// openIsolated opens one interior neighbour of p when p has no passable
// neighbour. Neighbours that already touch the carved region win; otherwise
// the first interior neighbour in offset order is taken.
func (m *Maze) openIsolated(p grid.Cell) {
	if len(m.Neighbors(p)) > 0 {
		return
	}
	var (
		fallback grid.Cell
		found    bool
	)
	for _, n := range grid.Neighbors(p, m.bounds, m.topo) {
		if !m.bounds.Interior(n) {
			continue
		}
		if !found {
			fallback, found = n, true
		}
		if len(m.Neighbors(n)) > 0 {
			m.setKind(n, terrain.Grass)
			return
		}
	}
	if found {
		m.setKind(fallback, terrain.Grass)
	}
}

// carveCorridor converts the fewest interior walls needed to connect the
// region reachable from src with dst. Moving into a passable cell costs 0,
// into a wall 1; the deque keeps zero-cost moves in front.
func (m *Maze) carveCorridor(src, dst grid.Cell) {
	n := m.bounds.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	m.Reachable(src).Each(func(c grid.Cell) {
		i := m.bounds.Index(c)
		dist[i] = 0
		dq.PushFront(i)
	})

	target := m.bounds.Index(dst)
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == target {
			break
		}
		for _, vc := range grid.Neighbors(m.bounds.CellAt(u), m.bounds, m.topo) {
			if !m.bounds.Interior(vc) {
				continue
			}
			v := m.bounds.Index(vc)
			step := 0
			if !m.Passable(vc) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// dst is interior and the interior is connected, so prev reaches a source.
	for at := target; at >= 0; at = prev[at] {
		c := m.bounds.CellAt(at)
		if !m.Passable(c) {
			m.setKind(c, terrain.Grass)
		}
	}
}
