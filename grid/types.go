// Package grid defines core types, topology selectors, and sentinel errors
// for grid addressing.
package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrBadBounds indicates a grid with no rows or no columns was requested.
	ErrBadBounds = errors.New("grid: rows and cols must be positive")
	// ErrUnknownTopology indicates an unsupported topology name or value.
	ErrUnknownTopology = errors.New("grid: unknown topology")
)

// Cell is a single addressable grid position.
type Cell struct {
	Row, Col int
}

// String renders the cell as "r,c", the same scheme used for vertex IDs.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Offset returns the cell displaced by (dr, dc). The result may lie out of bounds.
func (c Cell) Offset(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Bounds describes an R×C rectangle of cells: valid cells are [0,Rows)×[0,Cols).
type Bounds struct {
	Rows, Cols int
}

// NewBounds validates and returns a Bounds. Returns ErrBadBounds if either
// dimension is non-positive.
func NewBounds(rows, cols int) (Bounds, error) {
	if rows <= 0 || cols <= 0 {
		return Bounds{}, fmt.Errorf("%w: rows=%d, cols=%d", ErrBadBounds, rows, cols)
	}

	return Bounds{Rows: rows, Cols: cols}, nil
}

// Contains reports whether c lies within the bounds.
// Complexity: O(1).
func (b Bounds) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Interior reports whether c lies inside the bounds and off the outer ring.
func (b Bounds) Interior(c Cell) bool {
	return c.Row > 0 && c.Row < b.Rows-1 && c.Col > 0 && c.Col < b.Cols-1
}

// Size returns the number of cells, Rows×Cols.
func (b Bounds) Size() int {
	return b.Rows * b.Cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure Contains(c).
// Complexity: O(1).
func (b Bounds) Index(c Cell) int {
	return c.Row*b.Cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (b Bounds) CellAt(idx int) Cell {
	return Cell{Row: idx / b.Cols, Col: idx % b.Cols}
}

// Topology selects the adjacency rule of the grid.
type Topology int

const (
	// Rect4 uses 4-directional connectivity: N, S, W, E.
	Rect4 Topology = iota
	// Hex6 uses 6-directional offset-hex connectivity with row-parity offsets.
	Hex6
)

// String returns "rect" or "hex".
func (t Topology) String() string {
	switch t {
	case Rect4:
		return "rect"
	case Hex6:
		return "hex"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Valid reports whether t is one of the supported topologies.
func (t Topology) Valid() bool {
	return t == Rect4 || t == Hex6
}

// ParseTopology accepts "rect", "rect4", "square", "hex" or "hex6" (case-insensitive).
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rect4", "square":
		return Rect4, nil
	case "hex", "hex6":
		return Hex6, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	parsed, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
