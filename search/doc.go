// SPDX-License-Identifier: MIT
//
// Package search is a steppable shortest-path engine over maze grids.
//
// What:
//
//	One generalized relaxation loop with four frontier disciplines:
//	  - BFS:      FIFO queue; first-writer parents (fewest hops).
//	  - DFS:      LIFO stack; neighbour order shuffled per expansion by a
//	              seeded RNG; first-writer parents (any path).
//	  - Dijkstra: min-heap keyed by g (accumulated cost); strict relaxation.
//	  - AStar:    min-heap keyed by g+h, h = topology distance × cheapest cost.
//
// Why:
//
//	The Engine performs exactly one frontier pop per Step, so an external
//	driver (a ticker, a websocket loop, a test) can observe the frontier
//	evolving and resume later. Run and Solve drive it to completion.
//
// States:
//
//	Ready → Expanding → PathFound | Exhausted
//
//	Popping end stops the search immediately. An empty frontier without
//	reaching end is Exhausted, a normal outcome and not an error.
//
// Determinism:
//
//	Heap ties break by insertion order, so BFS, Dijkstra and AStar produce
//	identical traces on every run. DFS is reproducible under a fixed seed
//	(WithSeed, default 1).
//
// Complexity (N cells, d = 4 or 6):
//
//   - BFS, DFS:        O(N·d) time, O(N) memory.
//   - Dijkstra, AStar: O(N·d·log N) time, O(N·d) heap entries under lazy
//     deletion.
//
// Errors:
//
//   - ErrNilGraph:         New received a nil Graph.
//   - ErrUnknownAlgorithm: Algorithm outside the enumeration.
//   - ErrEndpointWall:     start or end is not passable.
//   - ErrOptionViolation:  an Option was given an invalid value.
//   - ErrStepLimit:        WithMaxSteps exhausted before a terminal result.
//
// An error returned by an OnExpand hook or a Cost lookup is latched: every
// later Step returns it until Reset.
package search
