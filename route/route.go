package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors.
var (
	// ErrInconsistentParents indicates a parent chain that never reaches start.
	ErrInconsistentParents = errors.New("route: parent chain does not reach start")
	// ErrNilCost indicates Reconstruct was called without a cost function.
	ErrNilCost = errors.New("route: nil cost function")
	// ErrEndpoints indicates a route that does not run from start to end.
	ErrEndpoints = errors.New("route: wrong endpoints")
	// ErrNotAdjacent indicates two consecutive cells that are not neighbours.
	ErrNotAdjacent = errors.New("route: consecutive cells are not adjacent")
	// ErrBlocked indicates a route through a wall or off the grid.
	ErrBlocked = errors.New("route: cell is not passable")
)

// CostFunc returns the cost of entering a cell.
type CostFunc func(c grid.Cell) (int, error)

// Grid is the read-only view Validate checks a route against.
type Grid interface {
	Bounds() grid.Bounds
	Topology() grid.Topology
	Start() grid.Cell
	End() grid.Cell
	Passable(c grid.Cell) bool
}

// Route is an ordered start→end cell sequence.
// Cost is the sum of entry costs of every cell except start.
type Route struct {
	Cells []grid.Cell
	Cost  int
}

// Len returns the number of cells, endpoints included.
func (r Route) Len() int { return len(r.Cells) }

// Hops returns the number of moves, Len()-1 for a non-empty route.
func (r Route) Hops() int {
	if len(r.Cells) == 0 {
		return 0
	}
	return len(r.Cells) - 1
}

// Reconstruct rebuilds the path ending at end from its predecessor map.
// start needs no entry in parents; start == end yields a one-cell route.
func Reconstruct(parents map[grid.Cell]grid.Cell, start, end grid.Cell, cost CostFunc) (Route, error) {
	if cost == nil {
		return Route{}, ErrNilCost
	}

	// Walk end→start; more steps than entries means a cycle.
	cells := []grid.Cell{end}
	for at := end; at != start; {
		p, ok := parents[at]
		if !ok {
			return Route{}, fmt.Errorf("%w: no parent for %v", ErrInconsistentParents, at)
		}
		if len(cells) > len(parents) {
			return Route{}, fmt.Errorf("%w: cycle through %v", ErrInconsistentParents, at)
		}
		cells = append(cells, p)
		at = p
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	total := 0
	for _, c := range cells[1:] {
		w, err := cost(c)
		if err != nil {
			return Route{}, fmt.Errorf("route: cost of %v: %w", c, err)
		}
		total += w
	}

	return Route{Cells: cells, Cost: total}, nil
}

// Validate checks endpoints, adjacency under g's topology and passability.
func (r Route) Validate(g Grid) error {
	if len(r.Cells) == 0 {
		return fmt.Errorf("%w: empty route", ErrEndpoints)
	}
	first, last := r.Cells[0], r.Cells[len(r.Cells)-1]
	if first != g.Start() || last != g.End() {
		return fmt.Errorf("%w: %v→%v, want %v→%v", ErrEndpoints, first, last, g.Start(), g.End())
	}
	for i, c := range r.Cells {
		if !g.Passable(c) {
			return fmt.Errorf("%w: %v", ErrBlocked, c)
		}
		if i > 0 && !grid.Adjacent(r.Cells[i-1], c, g.Topology()) {
			return fmt.Errorf("%w: %v→%v", ErrNotAdjacent, r.Cells[i-1], c)
		}
	}
	return nil
}
