// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the maze package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package maze

import "errors"

// ErrTooSmall indicates rows or cols below MinDim; a maze needs an outer wall
// ring around at least one interior cell.
var ErrTooSmall = errors.New("maze: dimensions too small")

// ErrEmpty indicates a terrain matrix without rows or columns.
var ErrEmpty = errors.New("maze: terrain matrix is empty")

// ErrNonRectangular indicates terrain rows of differing lengths.
var ErrNonRectangular = errors.New("maze: all terrain rows must have the same length")

// ErrOutOfBounds indicates a cell outside the maze bounds.
var ErrOutOfBounds = errors.New("maze: cell out of bounds")

// ErrEndpointWall indicates a start or end cell that is a Wall.
var ErrEndpointWall = errors.New("maze: endpoint is a wall")

// ErrMarkWall indicates an attempt to mark a wall or out-of-bounds cell
// as part of a solution path.
var ErrMarkWall = errors.New("maze: cannot mark a wall as solution path")

// ErrUnknownTopology indicates a topology value outside grid.Rect4/grid.Hex6.
var ErrUnknownTopology = errors.New("maze: unknown topology")
