package grid

// Neighbour offset tables as (dRow, dCol) pairs. The order is part of the
// contract: Neighbors emits cells in exactly this order.
var (
	rect4Offsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	// Odd-r layout: odd rows sit half a cell to the right, so an even row
	// reaches diagonally to the left and an odd row to the right.
	hexEvenOffsets = [][2]int{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}
	hexOddOffsets  = [][2]int{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}
)

// Offsets returns the neighbour offset table of t for a cell in the given row.
// Rect4 ignores the row; Hex6 selects the table by row parity.
// The returned slice is shared and must not be modified.
// Complexity: O(1).
func (t Topology) Offsets(row int) [][2]int {
	if t == Hex6 {
		if row%2 == 0 {
			return hexEvenOffsets
		}
		return hexOddOffsets
	}

	return rect4Offsets
}

// Degree returns the maximal number of neighbours of a cell: 4 or 6.
func (t Topology) Degree() int {
	if t == Hex6 {
		return len(hexEvenOffsets)
	}
	return len(rect4Offsets)
}

// Neighbors returns the in-bounds neighbours of c under topology t.
// The result is deterministic, duplicate-free and never contains
// out-of-bounds cells; c itself needs not be in bounds.
// Complexity: O(d) time and memory.
func Neighbors(c Cell, b Bounds, t Topology) []Cell {
	offsets := t.Offsets(c.Row)
	out := make([]Cell, 0, len(offsets))
	var n Cell
	for _, d := range offsets {
		n = c.Offset(d[0], d[1])
		if b.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// Adjacent reports whether a and b are direct neighbours under t.
// Bounds are not consulted.
func Adjacent(a, b Cell, t Topology) bool {
	for _, d := range t.Offsets(a.Row) {
		if a.Offset(d[0], d[1]) == b {
			return true
		}
	}
	return false
}

// Distance returns the number of single steps between a and b on an
// obstacle-free grid of topology t.
//
//   - Rect4: Manhattan distance |dr| + |dc|.
//   - Hex6:  hex distance, computed by converting odd-r offsets to axial
//     (q, r) coordinates: q = col - (row - row&1)/2.
//
// Complexity: O(1).
func (t Topology) Distance(a, b Cell) int {
	if t == Hex6 {
		aq, ar := toAxial(a)
		bq, br := toAxial(b)
		dq, dr := aq-bq, ar-br

		return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
	}

	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Heuristic estimates the remaining cost from a to b as Distance(a,b)*minCost.
// Every move costs at least minCost and covers at most one unit of Distance,
// so the estimate never exceeds the true cost and is consistent.
func (t Topology) Heuristic(a, b Cell, minCost int) int {
	return t.Distance(a, b) * minCost
}

// toAxial converts an odd-r offset cell into axial hex coordinates.
func toAxial(c Cell) (q, r int) {
	return c.Col - (c.Row-(c.Row&1))/2, c.Row
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
