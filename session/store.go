// Package session keeps generated mazes and their in-progress solves behind
// UUID handles, so remote drivers can generate, solve, step and reset.
//
// Concurrency: a sync.RWMutex guards the handle maps. Each maze carries its
// own mutex for its solution overlay and current-solve pointer, and each
// solve carries a mutex serialising Step and Reset on its engine. The store
// lock or a solve lock may be held while taking a maze lock, never the reverse.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

const (
	defaultMaxMazes = 64
	defaultMaxCells = 10000
)

var (
	// ErrNotFound is returned for unknown, evicted or superseded handles.
	ErrNotFound = errors.New("session: handle not found")
	// ErrTooLarge is returned when rows*cols exceeds the configured cap.
	ErrTooLarge = errors.New("session: maze too large")
	// ErrBadParams is returned for out-of-range generation parameters.
	ErrBadParams = errors.New("session: invalid parameters")
)

// Config holds the dependencies and limits of a Store.
type Config struct {
	MaxMazes int         // Stored mazes before the oldest is evicted
	MaxCells int         // Upper bound on rows*cols
	Logger   *log.Logger // Defaults to log.Default()
	Now      func() time.Time
}

// GenerateParams describes one Generate call. Nil pointers take defaults:
// a time-derived seed and maze.DefaultLoopChance.
type GenerateParams struct {
	Rows       int
	Cols       int
	Topology   grid.Topology
	Seed       *int64
	LoopChance *float64
}

// MazeSnapshot is a point-in-time copy of a stored maze.
type MazeSnapshot struct {
	ID      uuid.UUID
	Maze    *maze.Maze // deep copy, overlay included
	SolveID uuid.UUID  // current solve, uuid.Nil if none
}

// SolveInfo describes a new solve handle.
type SolveInfo struct {
	ID        uuid.UUID
	MazeID    uuid.UUID
	Algorithm search.Algorithm
}

// StepInfo is the outcome of one Step call.
type StepInfo struct {
	SolveID uuid.UUID
	Result  search.StepResult
	State   search.State
	Steps   int
}

type mazeEntry struct {
	id    uuid.UUID
	maze  *maze.Maze
	mu    sync.Mutex // guards maze overlay and solve
	solve uuid.UUID
}

type solveEntry struct {
	id     uuid.UUID
	owner  *mazeEntry
	mu     sync.Mutex // serialises engine access
	engine *search.Engine
}

// Store is the handle registry. Safe for concurrent use.
type Store struct {
	mazes    map[uuid.UUID]*mazeEntry
	order    []uuid.UUID // maze ids, oldest first
	solves   map[uuid.UUID]*solveEntry
	maxMazes int
	maxCells int
	logger   *log.Logger
	now      func() time.Time
	mu       sync.RWMutex // guards mazes, order and solves
}

// NewStore creates an empty Store. Zero limits take the package defaults.
func NewStore(c Config) *Store {
	s := &Store{
		mazes:    make(map[uuid.UUID]*mazeEntry),
		solves:   make(map[uuid.UUID]*solveEntry),
		maxMazes: c.MaxMazes,
		maxCells: c.MaxCells,
		logger:   c.Logger,
		now:      c.Now,
	}
	if s.maxMazes <= 0 {
		s.maxMazes = defaultMaxMazes
	}
	if s.maxCells <= 0 {
		s.maxCells = defaultMaxCells
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Generate builds a maze, stores it and returns its snapshot. The oldest maze
// and its solve are evicted once MaxMazes is exceeded.
func (s *Store) Generate(p GenerateParams) (MazeSnapshot, error) {
	// Divide rather than multiply: rows*cols can overflow int.
	if p.Rows > 0 && p.Cols > 0 && p.Rows > s.maxCells/p.Cols {
		return MazeSnapshot{}, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, p.Rows, p.Cols, s.maxCells)
	}
	seed := s.now().UnixNano()
	if p.Seed != nil {
		seed = *p.Seed
	}
	opts := []maze.Option{maze.WithSeed(seed)}
	if p.LoopChance != nil {
		if *p.LoopChance < 0 || *p.LoopChance > 1 {
			return MazeSnapshot{}, fmt.Errorf("%w: loop chance %v outside [0,1]", ErrBadParams, *p.LoopChance)
		}
		opts = append(opts, maze.WithLoopChance(*p.LoopChance))
	}

	m, err := maze.Generate(p.Rows, p.Cols, p.Topology, opts...)
	if err != nil {
		return MazeSnapshot{}, err
	}

	e := &mazeEntry{id: uuid.New(), maze: m}
	s.mu.Lock()
	s.mazes[e.id] = e
	s.order = append(s.order, e.id)
	for len(s.order) > s.maxMazes {
		s.evictLocked(s.order[0])
	}
	s.mu.Unlock()

	s.logger.Printf("%s[INFO]%s [SESSION] generated %s maze %s (%dx%d, seed %d)",
		config.LogInfoColor, config.LogColorReset, p.Topology, e.id, p.Rows, p.Cols, seed)
	return MazeSnapshot{ID: e.id, Maze: m.Clone()}, nil
}

// evictLocked drops a maze and its solves. The caller holds the write lock.
func (s *Store) evictLocked(id uuid.UUID) {
	delete(s.mazes, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for sid, se := range s.solves {
		if se.owner.id == id {
			delete(s.solves, sid)
		}
	}
	s.logger.Printf("%s[INFO]%s [SESSION] evicted maze %s", config.LogInfoColor, config.LogColorReset, id)
}

// Maze returns a snapshot of a stored maze.
func (s *Store) Maze(id uuid.UUID) (MazeSnapshot, error) {
	e, err := s.mazeEntry(id)
	if err != nil {
		return MazeSnapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return MazeSnapshot{ID: e.id, Maze: e.maze.Clone(), SolveID: e.solve}, nil
}

// Solve starts a new search on a stored maze. Any previous solve of the same
// maze is invalidated and its solution overlay cleared.
func (s *Store) Solve(mazeID uuid.UUID, alg search.Algorithm, seed *int64) (SolveInfo, error) {
	e, err := s.mazeEntry(mazeID)
	if err != nil {
		return SolveInfo{}, err
	}

	var opts []search.Option
	if seed != nil {
		opts = append(opts, search.WithSeed(*seed))
	}
	eng, err := search.New(e.maze, alg, opts...)
	if err != nil {
		return SolveInfo{}, err
	}
	se := &solveEntry{id: uuid.New(), owner: e, engine: eng}

	// Swap the current solve and the registry in one critical section so that
	// exactly one of several concurrent Solves on a maze stays registered.
	s.mu.Lock()
	if _, ok := s.mazes[mazeID]; !ok {
		s.mu.Unlock()
		return SolveInfo{}, fmt.Errorf("%w: maze %s", ErrNotFound, mazeID)
	}
	e.mu.Lock()
	prev := e.solve
	e.solve = se.id
	e.maze.ResetMarks()
	e.mu.Unlock()
	delete(s.solves, prev)
	s.solves[se.id] = se
	s.mu.Unlock()

	s.logger.Printf("%s[INFO]%s [SESSION] solve %s started on maze %s with %s",
		config.LogInfoColor, config.LogColorReset, se.id, mazeID, alg)
	return SolveInfo{ID: se.id, MazeID: mazeID, Algorithm: alg}, nil
}

// Step advances a solve by one frontier pop. On PathFound the route is
// marked on the maze overlay.
func (s *Store) Step(solveID uuid.UUID) (StepInfo, error) {
	se, err := s.solveEntry(solveID)
	if err != nil {
		return StepInfo{}, err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	res, err := se.engine.Step()
	if err != nil {
		return StepInfo{}, err
	}

	if res.Kind == search.StepPathFound {
		o := se.owner
		o.mu.Lock()
		current := o.solve == se.id
		if current {
			err = o.maze.MarkPath(res.Route.Cells)
		}
		o.mu.Unlock()
		if !current {
			return StepInfo{}, fmt.Errorf("%w: solve %s superseded", ErrNotFound, solveID)
		}
		if err != nil {
			s.logger.Printf("%s[ERROR]%s [SESSION] marking route of %s: %v",
				config.LogErrorColor, config.LogColorReset, solveID, err)
			return StepInfo{}, err
		}
	}

	return StepInfo{SolveID: se.id, Result: res, State: se.engine.State(), Steps: se.engine.Steps()}, nil
}

// Reset rewinds a solve to Ready and clears the maze's solution overlay,
// keeping the terrain.
func (s *Store) Reset(solveID uuid.UUID) error {
	se, err := s.solveEntry(solveID)
	if err != nil {
		return err
	}

	se.mu.Lock()
	defer se.mu.Unlock()
	se.engine.Reset()

	o := se.owner
	o.mu.Lock()
	if o.solve == se.id {
		o.maze.ResetMarks()
	}
	o.mu.Unlock()

	s.logger.Printf("%s[INFO]%s [SESSION] solve %s reset", config.LogInfoColor, config.LogColorReset, solveID)
	return nil
}

// SolveState reports the lifecycle state and pop count of a solve.
func (s *Store) SolveState(solveID uuid.UUID) (search.State, int, error) {
	se, err := s.solveEntry(solveID)
	if err != nil {
		return 0, 0, err
	}
	se.mu.Lock()
	defer se.mu.Unlock()
	return se.engine.State(), se.engine.Steps(), nil
}

// Len returns the number of stored mazes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mazes)
}

func (s *Store) mazeEntry(id uuid.UUID) (*mazeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.mazes[id]
	if !ok {
		return nil, fmt.Errorf("%w: maze %s", ErrNotFound, id)
	}
	return e, nil
}

func (s *Store) solveEntry(id uuid.UUID) (*solveEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	se, ok := s.solves[id]
	if !ok {
		return nil, fmt.Errorf("%w: solve %s", ErrNotFound, id)
	}
	return se, nil
}
