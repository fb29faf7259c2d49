// Package worldgen holds the pure generation primitives: region
// classification, difficulty pacing, constraint-based biome selection and
// weighted content population.
package worldgen

import (
	"github.com/aquilax/go-perlin"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
)

// RegionKind distinguishes settlement coordinates from open wilderness.
type RegionKind string

const (
	RegionWilderness RegionKind = "wilderness"
	RegionSettlement RegionKind = "settlement"
)

// SizeClass is the settlement size band decided at classification time.
type SizeClass string

const (
	SizeHamlet  SizeClass = "hamlet"
	SizeVillage SizeClass = "village"
	SizeTown    SizeClass = "town"
	SizeCity    SizeClass = "city"
)

// Region is the classification result for one coordinate.
type Region struct {
	Kind RegionKind
	// Size is only meaningful when Kind is RegionSettlement.
	Size SizeClass
}

const (
	// settlementScale zooms the placement noise so settlements cluster into
	// inhabited belts instead of scattering uniformly.
	settlementScale = 12.0

	settlementThreshold = 0.42
	villageThreshold    = 0.48
	townThreshold       = 0.54
	cityThreshold       = 0.60
)

// Classifier maps coordinates to region kinds using seeded 3-D noise. It is a
// pure function of coordinates for a fixed world seed.
type Classifier struct {
	noise           *perlin.Perlin
	seed            int64
	difficultyScale float64
	maxDifficulty   int
}

// NewClassifier creates a classifier for the given world seed and difficulty
// tuning.
func NewClassifier(seed int64, difficultyScale float64, maxDifficulty int) *Classifier {
	if difficultyScale <= 0 {
		difficultyScale = 1
	}
	if maxDifficulty < 1 {
		maxDifficulty = 1
	}
	return &Classifier{
		noise:           perlin.NewPerlin(2, 2, 3, seed),
		seed:            seed,
		difficultyScale: difficultyScale,
		maxDifficulty:   maxDifficulty,
	}
}

// Classify returns the region kind for a coordinate and, for settlements, the
// size class.
func (cl *Classifier) Classify(c coord.Coordinate) Region {
	v := cl.noise.Noise3D(
		float64(c.X)/settlementScale,
		float64(c.Y)/settlementScale,
		float64(c.Z)/settlementScale,
	)

	switch {
	case v < settlementThreshold:
		return Region{Kind: RegionWilderness}
	case v < villageThreshold:
		return Region{Kind: RegionSettlement, Size: SizeHamlet}
	case v < townThreshold:
		return Region{Kind: RegionSettlement, Size: SizeVillage}
	case v < cityThreshold:
		return Region{Kind: RegionSettlement, Size: SizeTown}
	default:
		return Region{Kind: RegionSettlement, Size: SizeCity}
	}
}

// Difficulty grows monotonically with Chebyshev distance from the origin,
// divided by the configured scale and clamped to [1, max]. The slope is a
// balance tunable, not a correctness constraint.
func (cl *Classifier) Difficulty(c coord.Coordinate) int {
	dist := coord.ChebyshevDistance(c, coord.Coordinate{})
	difficulty := int(float64(dist)/cl.difficultyScale) + 1

	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > cl.maxDifficulty {
		difficulty = cl.maxDifficulty
	}
	return difficulty
}

// Seed returns the world seed the classifier was built with.
func (cl *Classifier) Seed() int64 {
	return cl.seed
}
