// SPDX-License-Identifier: MIT
//
// Package maze generates weighted mazes and owns their terrain grid.
//
// What:
//
//   - Generate(rows, cols, topology, opts...) carves a maze with randomized
//     Prim over a wall-filled grid, assigns random terrain to carved cells,
//     punches extra openings to create cycles and repairs connectivity of the
//     fixed endpoints start=(1,1), end=(rows-2, cols-2).
//   - FromKinds builds a Maze from a hand-written terrain matrix.
//   - Maze exposes read access to terrain and costs, topology-aware passable
//     neighbours, reachability, and a reversible solution-path overlay.
//
// Algorithm (Generate):
//
//  1. Fill with Wall; carve start.
//  2. Keep a frontier of wall candidates next to the carved region: two cells
//     away for Rect4 (with the midpoint carved along), one step away for Hex6.
//  3. Pop a uniformly random candidate; carve it only if exactly one
//     candidate-distance neighbour is carved; expose its wall neighbours.
//  4. Loop injection: every interior wall with two opposite carved neighbours
//     (Rect4) or at least two carved neighbours (Hex6) opens with LoopChance.
//  5. Connectivity repair: start and end become Grass, an isolated endpoint
//     gets one opened neighbour, and if end is still unreachable a minimal
//     wall-conversion corridor is carved (0–1 BFS over wall count).
//
// Determinism:
//
//	A fixed seed (WithSeed) yields a bit-identical grid on every run.
//	Without options the default seed 1 is used.
//
// Complexity (N = rows×cols):
//
//   - Generate: O(N) frontier operations, O(N) memory.
//   - Reachable: O(N·d), d = 4 or 6.
//
// Errors:
//
//   - ErrTooSmall:       rows or cols below MinDim.
//   - ErrEmpty, ErrNonRectangular, ErrOutOfBounds, ErrEndpointWall: FromKinds input.
//   - ErrMarkWall:       MarkPath received a wall or out-of-bounds cell.
package maze
