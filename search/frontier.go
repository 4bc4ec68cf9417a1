// SPDX-License-Identifier: MIT
//
// frontier.go — the three frontier disciplines behind one interface.

package search

import (
	"container/heap"

	"github.com/katalvlaran/lvmaze/grid"
)

// entry is one frontier element. prio orders the heap (g for Dijkstra,
// g+h for AStar); seq breaks ties in insertion order.
type entry struct {
	cell grid.Cell
	g    int
	prio int
	seq  uint64
}

// frontier is a container of discovered-but-unsettled cells.
type frontier interface {
	push(e entry)
	pop() entry
	len() int
}

func newFrontier(alg Algorithm) frontier {
	switch alg {
	case BFS:
		return &fifo{}
	case DFS:
		return &lifo{}
	default:
		pq := make(entryPQ, 0, 64)
		return &pq
	}
}

// fifo is a slice queue with a moving head; the backing array is compacted
// once the consumed prefix dominates.
type fifo struct {
	items []entry
	head  int
}

func (q *fifo) push(e entry) { q.items = append(q.items, e) }

func (q *fifo) pop() entry {
	e := q.items[q.head]
	q.head++
	if q.head > 32 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return e
}

func (q *fifo) len() int { return len(q.items) - q.head }

// lifo is a slice stack.
type lifo struct {
	items []entry
}

func (s *lifo) push(e entry) { s.items = append(s.items, e) }

func (s *lifo) pop() entry {
	n := len(s.items) - 1
	e := s.items[n]
	s.items = s.items[:n]
	return e
}

func (s *lifo) len() int { return len(s.items) }

// entryPQ is a min-heap of entries under lazy decrease-key: improved cells
// are pushed again and stale entries are skipped on pop.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less orders by prio, then by insertion sequence.
func (pq entryPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an entry.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop is called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func (pq *entryPQ) push(e entry) { heap.Push(pq, e) }
func (pq *entryPQ) pop() entry   { return heap.Pop(pq).(entry) }
func (pq *entryPQ) len() int     { return pq.Len() }
