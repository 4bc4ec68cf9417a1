// Package grid defines cell addressing and adjacency for the two maze
// topologies supported by lvmaze.
//
// What:
//
//   - Cell is a (Row, Col) address; Bounds is the R×C rectangle cells live in.
//   - Topology selects the adjacency rule:
//   - Rect4: the 4 orthogonal neighbours N, S, W, E.
//   - Hex6:  6 neighbours of an "odd-r" offset hex layout (odd rows shifted
//     right), whose offsets depend on row parity.
//   - Neighbors returns the in-bounds neighbour set of a cell, deterministically.
//   - Distance/Heuristic give the obstacle-free hop distance between two cells,
//     scaled by a minimal step cost for use as an admissible A* estimate.
//
// Why:
//
//   - The maze generator and every search algorithm share one adjacency
//     definition, so rectangular and hexagonal mazes run through the same code.
//
// Determinism:
//
//	Neighbors emits cells in the fixed order of the topology's offset table.
//	Out-of-bounds candidates are filtered silently, never reported.
//
// Complexity:
//
//   - Neighbors: O(d) time and memory, d = 4 or 6.
//   - Distance:  O(1).
//
// Errors:
//
//   - ErrBadBounds:       NewBounds received a non-positive dimension.
//   - ErrUnknownTopology: ParseTopology received an unsupported name.
package grid
