// SPDX-License-Identifier: MIT
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: WithSeed or WithRand; the default is seed 1.
//   • Later options override earlier ones.

package maze

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/terrain"
)

// Deterministic defaults.
const (
	// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1
	// DefaultLoopChance is the probability that a qualifying wall is opened
	// during loop injection, for both topologies.
	DefaultLoopChance = 0.10
	// MinDim is the smallest accepted row or column count.
	MinDim = 3
)

// Option customizes Generate.
type Option func(*genConfig)

// genConfig aggregates all Generate knobs. Passed by value.
type genConfig struct {
	rng        *rand.Rand
	seed       int64
	seeded     bool // seed describes rng
	loopChance float64
	dist       terrain.Distribution
}

// newGenConfig applies opts over the deterministic defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		seed:       DefaultSeed,
		seeded:     true,
		loopChance: DefaultLoopChance,
		dist:       terrain.DefaultDistribution(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg
}

// WithSeed seeds a fresh *rand.Rand; the same seed reproduces the same maze.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.seed = seed
		c.seeded = true
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an external RNG. Panics on nil.
// Maze.Seed reports 0 for mazes generated this way.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
		c.seed = 0
		c.seeded = false
	}
}

// WithLoopChance sets the loop-injection probability. Panics outside [0,1].
// Zero keeps the pure spanning tree (one path between any two carved lattice cells).
func WithLoopChance(p float64) Option {
	if p < 0 || p > 1 {
		panic("maze: WithLoopChance(p outside [0,1])")
	}
	return func(c *genConfig) {
		c.loopChance = p
	}
}

// WithDistribution sets the terrain distribution of carved cells.
// Panics if d.Validate fails.
func WithDistribution(d terrain.Distribution) Option {
	if err := d.Validate(); err != nil {
		panic(err.Error())
	}
	return func(c *genConfig) {
		c.dist = d
	}
}
