package session_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/katalvlaran/lvmaze/session"
)

func newStore(t *testing.T, max int) *session.Store {
	t.Helper()
	return session.NewStore(session.Config{
		MaxMazes: max,
		MaxCells: 2500,
		Logger:   log.New(io.Discard, "", 0),
	})
}

func seed(v int64) *int64 { return &v }

func TestGenerate(t *testing.T) {
	s := newStore(t, 4)
	snap, err := s.Generate(session.GenerateParams{Rows: 11, Cols: 13, Topology: grid.Hex6, Seed: seed(5)})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, snap.ID)
	assert.Equal(t, int64(5), snap.Maze.Seed())
	assert.Equal(t, grid.Hex6, snap.Maze.Topology())

	want, err := maze.Generate(11, 13, grid.Hex6, maze.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, want.Rows(), snap.Maze.Rows())

	got, err := s.Maze(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.Maze.String(), got.Maze.String())
	assert.Equal(t, uuid.Nil, got.SolveID)
}

func TestGenerate_Errors(t *testing.T) {
	s := newStore(t, 4)
	_, err := s.Generate(session.GenerateParams{Rows: 2, Cols: 2, Topology: grid.Rect4})
	assert.ErrorIs(t, err, maze.ErrTooSmall)

	_, err = s.Generate(session.GenerateParams{Rows: 100, Cols: 100, Topology: grid.Rect4})
	assert.ErrorIs(t, err, session.ErrTooLarge)

	// rows*cols would wrap around int.
	for _, d := range [][2]int{{math.MaxInt/2 + 1, 2}, {math.MaxInt, math.MaxInt}, {math.MaxInt32, math.MaxInt32}} {
		_, err = s.Generate(session.GenerateParams{Rows: d[0], Cols: d[1], Topology: grid.Rect4})
		assert.ErrorIs(t, err, session.ErrTooLarge, "%dx%d", d[0], d[1])
	}
	_, err = s.Generate(session.GenerateParams{Rows: 50, Cols: 50, Topology: grid.Rect4, Seed: seed(1)})
	assert.NoError(t, err, "exactly MaxCells is allowed")

	bad := 2.0
	_, err = s.Generate(session.GenerateParams{Rows: 9, Cols: 9, Topology: grid.Rect4, LoopChance: &bad})
	assert.ErrorIs(t, err, session.ErrBadParams)

	_, err = s.Maze(uuid.New())
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.Equal(t, 1, s.Len())
}

// TestGenerate_DefaultSeed draws the seed from the injected clock.
func TestGenerate_DefaultSeed(t *testing.T) {
	at := time.Unix(0, 777)
	s := session.NewStore(session.Config{Logger: log.New(io.Discard, "", 0), Now: func() time.Time { return at }})
	snap, err := s.Generate(session.GenerateParams{Rows: 9, Cols: 9, Topology: grid.Rect4})
	require.NoError(t, err)
	assert.Equal(t, int64(777), snap.Maze.Seed())
}

func TestEviction(t *testing.T) {
	s := newStore(t, 2)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		snap, err := s.Generate(session.GenerateParams{Rows: 7, Cols: 7, Topology: grid.Rect4, Seed: seed(int64(i))})
		require.NoError(t, err)
		ids = append(ids, snap.ID)
	}
	assert.Equal(t, 2, s.Len())
	_, err := s.Maze(ids[0])
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = s.Maze(ids[2])
	assert.NoError(t, err)
}

// TestSolveStepMarks runs a solve to completion through Step and checks the
// route lands on the overlay, then Reset clears it.
func TestSolveStepMarks(t *testing.T) {
	s := newStore(t, 4)
	snap, err := s.Generate(session.GenerateParams{Rows: 15, Cols: 15, Topology: grid.Rect4, Seed: seed(3)})
	require.NoError(t, err)

	info, err := s.Solve(snap.ID, search.AStar, nil)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, info.MazeID)

	var last session.StepInfo
	for i := 0; ; i++ {
		require.Less(t, i, 15*15*6, "solve must terminate")
		last, err = s.Step(info.ID)
		require.NoError(t, err)
		if last.Result.Terminal() {
			break
		}
	}
	require.Equal(t, search.StepPathFound, last.Result.Kind)
	assert.Equal(t, search.PathFound, last.State)

	got, err := s.Maze(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, info.ID, got.SolveID)
	assert.Len(t, got.Maze.MarkedCells(), last.Result.Route.Len())

	require.NoError(t, s.Reset(info.ID))
	state, steps, err := s.SolveState(info.ID)
	require.NoError(t, err)
	assert.Equal(t, search.Ready, state)
	assert.Zero(t, steps)
	got, err = s.Maze(snap.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Maze.MarkedCells())
	assert.Equal(t, snap.Maze.Rows(), got.Maze.Rows(), "reset keeps terrain")
}

// TestSolve_Supersedes: a new solve invalidates the previous handle.
func TestSolve_Supersedes(t *testing.T) {
	s := newStore(t, 4)
	snap, err := s.Generate(session.GenerateParams{Rows: 9, Cols: 9, Topology: grid.Hex6, Seed: seed(1)})
	require.NoError(t, err)

	first, err := s.Solve(snap.ID, search.BFS, nil)
	require.NoError(t, err)
	_, err = s.Step(first.ID)
	require.NoError(t, err)

	second, err := s.Solve(snap.ID, search.Dijkstra, nil)
	require.NoError(t, err)
	_, err = s.Step(first.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, s.Reset(first.ID), session.ErrNotFound)

	res, err := s.Step(second.ID)
	require.NoError(t, err)
	assert.Equal(t, search.StepExpanded, res.Result.Kind)
	assert.Equal(t, 1, res.Steps)

	_, err = s.Solve(uuid.New(), search.BFS, nil)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = s.Solve(snap.ID, search.Algorithm(99), nil)
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

// TestConcurrentSolves starts several solves on one maze at once; exactly one
// handle survives and it is the maze's current solve.
func TestConcurrentSolves(t *testing.T) {
	s := newStore(t, 4)
	snap, err := s.Generate(session.GenerateParams{Rows: 15, Cols: 15, Topology: grid.Rect4, Seed: seed(3)})
	require.NoError(t, err)

	const n = 8
	ids := make([]uuid.UUID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			info, err := s.Solve(snap.ID, search.Algorithms[i%len(search.Algorithms)], nil)
			if err != nil {
				t.Errorf("Solve: %v", err)
				return
			}
			ids[i] = info.ID
		}(i)
	}
	wg.Wait()

	got, err := s.Maze(snap.ID)
	require.NoError(t, err)
	live := 0
	for _, id := range ids {
		_, _, err := s.SolveState(id)
		switch {
		case err == nil:
			live++
			assert.Equal(t, got.SolveID, id)
		case errors.Is(err, session.ErrNotFound):
		default:
			t.Errorf("SolveState(%s): %v", id, err)
		}
	}
	assert.Equal(t, 1, live)
}

// TestConcurrentSteps drives one solve from several goroutines; each pop is
// counted exactly once.
func TestConcurrentSteps(t *testing.T) {
	s := newStore(t, 4)
	snap, err := s.Generate(session.GenerateParams{Rows: 31, Cols: 31, Topology: grid.Rect4, Seed: seed(9)})
	require.NoError(t, err)
	info, err := s.Solve(snap.ID, search.Dijkstra, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				if _, err := s.Step(info.ID); err != nil {
					t.Errorf("Step: %v", err)
					return
				}
				_, _ = s.Maze(snap.ID)
			}
		}()
	}
	wg.Wait()

	state, steps, err := s.SolveState(info.ID)
	require.NoError(t, err)
	if state == search.Expanding {
		assert.Equal(t, 100, steps)
	} else {
		assert.LessOrEqual(t, steps, 100)
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	s := session.NewStore(session.Config{Logger: log.New(&buf, "", 0)})
	snap, err := s.Generate(session.GenerateParams{Rows: 5, Cols: 5, Topology: grid.Rect4, Seed: seed(1)})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[SESSION] generated rect maze "+snap.ID.String())
}
