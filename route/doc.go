// Package route turns parent pointers into a concrete start→end path.
//
// What:
//
//   - Reconstruct walks parents from end back to start, reverses the chain
//     and totals the traversal cost of every cell after start.
//   - Route.Validate checks a path against a grid: correct endpoints,
//     topology adjacency between consecutive cells, no walls.
//
// Why:
//
//   - Every search algorithm records predecessors the same way; the walk and
//     its consistency checks live in one place.
//
// Complexity:
//
//   - Reconstruct: O(L) for a path of L cells.
//   - Validate:    O(L).
//
// Errors:
//
//   - ErrInconsistentParents: the chain ends anywhere but start, or cycles.
//   - ErrNilCost:             Reconstruct without a CostFunc.
//   - ErrEndpoints, ErrNotAdjacent, ErrBlocked: Validate failures.
package route
