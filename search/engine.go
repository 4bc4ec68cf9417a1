// SPDX-License-Identifier: MIT
//
// engine.go — the steppable relaxation loop.
//
// Contract:
//   • Step performs exactly one frontier pop (or reports Exhausted).
//   • BFS/DFS: the first discovery of a cell fixes its parent and cost.
//   • Dijkstra/AStar: candidate = g(u) + Cost(v); strictly-less updates only;
//     improved cells are re-pushed and stale pops are Skipped.
//   • Popping end ends the search at once; the frontier is not drained.
//   • A hook, cost or reconstruction error is latched: every later Step
//     returns it until Reset.
//   • Engine state is owned by the engine; it is not safe for concurrent use.

package search

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/route"
	"github.com/katalvlaran/lvmaze/terrain"
)

// Engine runs one algorithm over one Graph, one pop at a time.
type Engine struct {
	g    Graph
	alg  Algorithm
	opts Options
	rng  *rand.Rand

	state   State
	front   frontier
	seq     uint64
	steps   int
	dist    map[grid.Cell]int
	parent  map[grid.Cell]grid.Cell
	settled mapset.Set[grid.Cell]
	visited []grid.Cell
	trace   []Expansion
	last    StepResult
	failed  error // latched Step error
}

// New prepares an Engine in state Ready.
//
// Preconditions (in order):
//  1. g non-nil (ErrNilGraph).
//  2. alg known (ErrUnknownAlgorithm).
//  3. options valid (ErrOptionViolation).
//  4. start and end passable (ErrEndpointWall).
func New(g Graph, alg Algorithm, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	for _, p := range []grid.Cell{g.Start(), g.End()} {
		if !g.Passable(p) {
			return nil, fmt.Errorf("%w: %v", ErrEndpointWall, p)
		}
	}

	e := &Engine{g: g, alg: alg, opts: cfg, rng: cfg.rng}
	e.Reset()

	return e, nil
}

// Reset rewinds the engine to Ready over the same graph and algorithm.
// A seeded engine also rewinds its RNG, so a DFS replays identically.
func (e *Engine) Reset() {
	if e.opts.seeded || e.rng == nil {
		e.rng = rand.New(rand.NewSource(e.opts.seed))
	}
	n := e.g.Bounds().Size()
	e.state = Ready
	e.front = newFrontier(e.alg)
	e.seq = 0
	e.steps = 0
	e.dist = make(map[grid.Cell]int, n)
	e.parent = make(map[grid.Cell]grid.Cell, n)
	e.settled = mapset.New[grid.Cell]()
	e.visited = nil
	e.trace = nil
	e.last = StepResult{}
	e.failed = nil

	start := e.g.Start()
	e.dist[start] = 0
	e.push(start, 0)
}

// Step performs one expansion step.
//
// Returns the terminal result again once the engine is PathFound or
// Exhausted. Returns ErrStepLimit when MaxSteps pops were spent, or the
// error of an OnExpand hook or a Cost lookup; the latter stay latched.
func (e *Engine) Step() (StepResult, error) {
	if e.failed != nil {
		return StepResult{}, e.failed
	}
	if e.state.Terminal() {
		return e.last, nil // idempotent
	}
	if e.front.len() == 0 {
		e.state = Exhausted
		e.last = StepResult{Kind: StepExhausted}
		return e.last, nil
	}
	if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps {
		return StepResult{}, fmt.Errorf("%w: %d pops", ErrStepLimit, e.steps)
	}

	e.state = Expanding
	it := e.front.pop()
	e.steps++

	// Lazy deletion: settled cells and superseded costs are skipped.
	if e.settled.Has(it.cell) || it.g > e.dist[it.cell] {
		return StepResult{Kind: StepSkipped, Cell: it.cell, Cost: it.g}, nil
	}
	e.settled.Put(it.cell)
	e.visited = append(e.visited, it.cell)

	exp := Expansion{Step: e.steps, Cell: it.cell, Parent: it.cell, Cost: it.g}
	if p, ok := e.parent[it.cell]; ok {
		exp.Parent = p
	}
	e.trace = append(e.trace, exp)
	if err := e.opts.OnExpand(exp); err != nil {
		return e.fail(err)
	}

	// Terminal check on pop.
	if it.cell == e.g.End() {
		r, err := route.Reconstruct(e.parent, e.g.Start(), it.cell, e.g.Cost)
		if err != nil {
			return e.fail(err)
		}
		e.state = PathFound
		e.last = StepResult{Kind: StepPathFound, Cell: it.cell, Cost: it.g, Route: r}
		return e.last, nil
	}

	if err := e.expand(it); err != nil {
		return e.fail(err)
	}
	return StepResult{Kind: StepExpanded, Cell: it.cell, Cost: it.g}, nil
}

// fail latches err; the cell just popped is settled but was never expanded.
func (e *Engine) fail(err error) (StepResult, error) {
	e.failed = err
	return StepResult{}, err
}

// expand relaxes the passable, unsettled neighbours of it.cell.
func (e *Engine) expand(it entry) error {
	nbrs := grid.Neighbors(it.cell, e.g.Bounds(), e.g.Topology())
	if e.alg == DFS {
		e.rng.Shuffle(len(nbrs), func(i, j int) { nbrs[i], nbrs[j] = nbrs[j], nbrs[i] })
	}

	var (
		v    grid.Cell
		w    int
		cand int
		err  error
	)
	for _, v = range nbrs {
		if !e.g.Passable(v) || e.settled.Has(v) {
			continue
		}
		old, seen := e.dist[v]
		if seen && (e.alg == BFS || e.alg == DFS) {
			continue // first writer wins
		}
		if w, err = e.g.Cost(v); err != nil {
			return fmt.Errorf("search: cost of %v: %w", v, err)
		}
		cand = it.g + w
		if !seen {
			old = Unreached
		}
		if cand >= old {
			continue
		}
		e.opts.OnRelax(v, old, cand)
		e.dist[v] = cand
		e.parent[v] = it.cell
		e.push(v, cand)
	}
	return nil
}

func (e *Engine) push(c grid.Cell, g int) {
	prio := g
	if e.alg == AStar {
		prio += e.g.Topology().Heuristic(c, e.g.End(), terrain.MinCost())
	}
	e.front.push(entry{cell: c, g: g, prio: prio, seq: e.seq})
	e.seq++
}

// Run steps until a terminal result, an error, or ctx cancellation.
func (e *Engine) Run(ctx context.Context) (StepResult, error) {
	for {
		select {
		case <-ctx.Done():
			return StepResult{}, ctx.Err()
		default:
		}
		res, err := e.Step()
		if err != nil {
			return StepResult{}, err
		}
		if res.Terminal() {
			return res, nil
		}
	}
}

// Algorithm returns the frontier discipline of the engine.
func (e *Engine) Algorithm() Algorithm { return e.alg }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Steps returns the number of frontier pops so far.
func (e *Engine) Steps() int { return e.steps }

// FrontierLen returns the number of pending frontier entries, stale ones included.
func (e *Engine) FrontierLen() int { return e.front.len() }

// Distance returns the best known cost of c. ok is false for unreached cells.
func (e *Engine) Distance(c grid.Cell) (cost int, ok bool) {
	cost, ok = e.dist[c]
	return cost, ok
}

// Parents returns a copy of the predecessor map.
func (e *Engine) Parents() map[grid.Cell]grid.Cell {
	out := make(map[grid.Cell]grid.Cell, len(e.parent))
	for k, v := range e.parent {
		out[k] = v
	}
	return out
}

// Settled reports whether c has been expanded.
func (e *Engine) Settled(c grid.Cell) bool { return e.settled.Has(c) }

// Visited returns the settled cells in visitation order.
func (e *Engine) Visited() []grid.Cell {
	return append([]grid.Cell(nil), e.visited...)
}

// Trace returns one Expansion per settled cell in visitation order.
func (e *Engine) Trace() []Expansion {
	return append([]Expansion(nil), e.trace...)
}

// Solve builds an Engine and runs it to completion.
func Solve(ctx context.Context, g Graph, alg Algorithm, opts ...Option) (*Result, error) {
	e, err := New(g, alg, opts...)
	if err != nil {
		return nil, err
	}
	res, err := e.Run(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Algorithm: alg,
		Found:     res.Kind == StepPathFound,
		Route:     res.Route,
		Visited:   e.Visited(),
		Trace:     e.Trace(),
		Steps:     e.Steps(),
	}, nil
}
