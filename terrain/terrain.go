// Package terrain maps maze cells to terrain kinds and traversal costs.
//
// Kinds:
//
//   - Wall:  impassable; has no cost and querying one is an error.
//   - Grass: cost 1.
//   - Mud:   cost 5.
//   - Water: cost 10.
//
// Random draws a passable kind from a cumulative Distribution whose
// likelihoods are ordered Grass > Mud > Water. With a seeded *rand.Rand the
// draw sequence is fully reproducible.
package terrain

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Kind is the terrain type of a single cell.
type Kind uint8

const (
	// Wall is never traversable.
	Wall Kind = iota
	// Grass is the cheapest terrain.
	Grass
	// Mud is moderately expensive terrain.
	Mud
	// Water is the most expensive passable terrain.
	Water
)

// Traversal costs of every passable kind.
const (
	CostGrass = 1
	CostMud   = 5
	CostWater = 10
)

// Sentinel errors for terrain operations.
var (
	// ErrWallCost is returned when the cost of a Wall is queried.
	ErrWallCost = errors.New("terrain: wall has no traversal cost")
	// ErrUnknownKind is returned for values outside the Kind enumeration.
	ErrUnknownKind = errors.New("terrain: unknown kind")
	// ErrBadDistribution is returned by Distribution.Validate.
	ErrBadDistribution = errors.New("terrain: invalid distribution")
)

// defaultRNGSeed is the seed used when a nil *rand.Rand is supplied.
const defaultRNGSeed int64 = 1

// Cost returns the positive traversal cost of k.
// Returns ErrWallCost for Wall and ErrUnknownKind for unknown values.
// Complexity: O(1).
func Cost(k Kind) (int, error) {
	switch k {
	case Grass:
		return CostGrass, nil
	case Mud:
		return CostMud, nil
	case Water:
		return CostWater, nil
	case Wall:
		return 0, ErrWallCost
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
}

// MustCost is like Cost but panics on Wall or unknown kinds.
// Use it only where walls have already been excluded.
func MustCost(k Kind) int {
	c, err := Cost(k)
	if err != nil {
		panic(err)
	}
	return c
}

// MinCost returns the smallest traversal cost of any passable kind.
func MinCost() int {
	return CostGrass
}

// Passable reports whether k can be traversed.
func (k Kind) Passable() bool {
	return k == Grass || k == Mud || k == Water
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Grass:
		return "grass"
	case Mud:
		return "mud"
	case Water:
		return "water"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rune returns the single-character symbol of k used in text dumps:
// '#' wall, '.' grass, '~' mud, 'w' water.
func (k Kind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Grass:
		return '.'
	case Mud:
		return '~'
	case Water:
		return 'w'
	default:
		return '?'
	}
}

// ParseKind accepts a kind name ("grass") or its text-dump symbol (".").
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wall", "#":
		return Wall, nil
	case "grass", ".":
		return Grass, nil
	case "mud", "~":
		return Mud, nil
	case "water", "w":
		return Water, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Distribution holds cumulative thresholds for Random:
// a uniform draw u < Grass yields Grass, u < Mud yields Mud, otherwise Water.
type Distribution struct {
	Grass float64
	Mud   float64
}

// DefaultDistribution returns {Grass: 0.60, Mud: 0.85}:
// 60% grass, 25% mud, 15% water.
func DefaultDistribution() Distribution {
	return Distribution{Grass: 0.60, Mud: 0.85}
}

// Validate checks 0 < Grass < Mud < 1 and that the individual likelihoods
// are strictly ordered Grass > Mud > Water.
func (d Distribution) Validate() error {
	if !(d.Grass > 0 && d.Grass < d.Mud && d.Mud < 1) {
		return fmt.Errorf("%w: thresholds must satisfy 0 < grass(%g) < mud(%g) < 1",
			ErrBadDistribution, d.Grass, d.Mud)
	}
	pGrass, pMud, pWater := d.Grass, d.Mud-d.Grass, 1-d.Mud
	if !(pGrass > pMud && pMud > pWater) {
		return fmt.Errorf("%w: likelihoods grass=%g mud=%g water=%g must be strictly decreasing",
			ErrBadDistribution, pGrass, pMud, pWater)
	}

	return nil
}

// Random draws a passable kind from d using exactly one rng.Float64 call.
// If rng is nil, a fresh stream seeded with defaultRNGSeed is used, which
// makes every such call return the same kind.
// Complexity: O(1).
func Random(rng *rand.Rand, d Distribution) Kind {
	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultRNGSeed))
	}
	u := r.Float64()
	switch {
	case u < d.Grass:
		return Grass
	case u < d.Mud:
		return Mud
	default:
		return Water
	}
}
