// SPDX-License-Identifier: MIT
//
// types.go — algorithm selector, engine states, step results, options and
// sentinel errors.

package search

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/route"
)

// Sentinel errors.
var (
	// ErrNilGraph is returned when New receives a nil Graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the enumeration.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrEndpointWall is returned when start or end is not passable.
	ErrEndpointWall = errors.New("search: endpoint is not passable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned by Step once WithMaxSteps pops were spent
	// without reaching a terminal result.
	ErrStepLimit = errors.New("search: step limit reached")
)

// Unreached is the distance of a cell no path has reached yet.
const Unreached = math.MaxInt

// DefaultSeed seeds the DFS neighbour shuffle when no RNG option is given.
const DefaultSeed int64 = 1

// Graph is the read-only grid view the engine searches. *maze.Maze satisfies it.
type Graph interface {
	Bounds() grid.Bounds
	Topology() grid.Topology
	Start() grid.Cell
	End() grid.Cell
	Passable(c grid.Cell) bool
	Cost(c grid.Cell) (int, error)
}

// Algorithm selects the frontier discipline.
type Algorithm uint8

const (
	// BFS expands in discovery order.
	BFS Algorithm = iota
	// DFS expands the most recently discovered cell first.
	DFS
	// Dijkstra expands the cheapest known cell first.
	Dijkstra
	// AStar expands by cost plus an admissible distance estimate.
	AStar
)

// Algorithms lists every supported algorithm in declaration order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra, AStar}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return a <= AStar }

// ParseAlgorithm accepts the canonical names, case-insensitively, plus
// "a*" and "a-star" for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// State is the engine lifecycle position.
type State uint8

const (
	// Ready: constructed or reset, nothing popped yet.
	Ready State = iota
	// Expanding: at least one pop done, frontier not yet decided.
	Expanding
	// PathFound: end was popped; the route is available.
	PathFound
	// Exhausted: the frontier emptied without reaching end.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Expanding:
		return "expanding"
	case PathFound:
		return "path_found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Terminal reports whether no further Step changes the engine.
func (s State) Terminal() bool { return s == PathFound || s == Exhausted }

// StepKind classifies the outcome of one Step.
type StepKind uint8

const (
	// StepExpanded: a cell was settled and its neighbours relaxed.
	StepExpanded StepKind = iota
	// StepSkipped: a stale entry was popped (lazy deletion); nothing changed.
	StepSkipped
	// StepPathFound: end was popped; Route is set.
	StepPathFound
	// StepExhausted: the frontier is empty.
	StepExhausted
)

func (k StepKind) String() string {
	switch k {
	case StepExpanded:
		return "expanded"
	case StepSkipped:
		return "skipped"
	case StepPathFound:
		return "path_found"
	case StepExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("step(%d)", uint8(k))
	}
}

// StepResult is the outcome of one Step.
//   - Cell, Cost: the popped cell and its accumulated cost (Expanded,
//     Skipped, PathFound).
//   - Route: the start→end path (PathFound only).
type StepResult struct {
	Kind  StepKind
	Cell  grid.Cell
	Cost  int
	Route route.Route
}

// Terminal reports whether the result ends the search.
func (r StepResult) Terminal() bool {
	return r.Kind == StepPathFound || r.Kind == StepExhausted
}

// Expansion records one settled cell in visitation order.
type Expansion struct {
	Step   int       // 1-based pop count at which the cell settled
	Cell   grid.Cell // settled cell
	Parent grid.Cell // predecessor; equals Cell for start
	Cost   int       // accumulated cost g(Cell)
}

// Result is the outcome of Solve.
type Result struct {
	Algorithm Algorithm
	Found     bool
	Route     route.Route
	Visited   []grid.Cell
	Trace     []Expansion
	Steps     int
}

// Option configures an Engine via functional arguments.
// Invalid values are recorded and surfaced by New as ErrOptionViolation.
type Option func(*Options)

// Options holds engine parameters and hooks.
type Options struct {
	// OnExpand is called for every settled cell, end included. An error aborts
	// the Step and is returned unchanged.
	OnExpand func(e Expansion) error

	// OnRelax is called whenever a cell's best known cost improves.
	// old is Unreached on first discovery.
	OnRelax func(c grid.Cell, old, new int)

	// MaxSteps, if > 0, bounds the number of pops; 0 means unlimited.
	MaxSteps int

	rng    *rand.Rand
	seed   int64
	seeded bool // seed describes rng; Reset can rewind it

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns no-op hooks, no step limit and seed DefaultSeed.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(Expansion) error { return nil },
		OnRelax:  func(grid.Cell, int, int) {},
		seed:     DefaultSeed,
		seeded:   true,
	}
}

// WithSeed seeds the DFS neighbour shuffle.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
		o.rng = nil
	}
}

// WithRand supplies an external RNG for the DFS neighbour shuffle.
// Reset keeps drawing from it rather than rewinding.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.rng = r
		o.seeded = false
	}
}

// WithOnExpand registers a callback run for every settled cell.
func WithOnExpand(fn func(e Expansion) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run on every cost improvement.
func WithOnRelax(fn func(c grid.Cell, old, new int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithMaxSteps caps the number of pops.
//
//	n > 0:  at most n pops
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
