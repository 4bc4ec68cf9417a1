// SPDX-License-Identifier: MIT

package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
)

// Reachable returns every passable cell connected to from, from included.
// A wall or out-of-bounds origin yields an empty set.
//
// Time:   O(N·d), where d = 4 or 6.
// Memory: O(N) for the set and queue.
func (m *Maze) Reachable(from grid.Cell) mapset.Set[grid.Cell] {
	seen := mapset.New[grid.Cell]()
	if !m.Passable(from) {
		return seen
	}
	queue := []grid.Cell{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range m.Neighbors(queue[qi]) {
			if !seen.Has(v) {
				seen.Put(v)
				queue = append(queue, v)
			}
		}
	}
	return seen
}

// Connected reports whether end is reachable from start.
func (m *Maze) Connected() bool {
	return m.Reachable(m.start).Has(m.end)
}
