// Package rng provides the deterministic seed derivation and random streams
// that drive every generation decision in the engine. Two streams built from
// the same seed always produce identical sequences; that property is the
// foundation of world regeneration.
package rng

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
)

// Per-concern stream offsets. Each logical consumer of randomness at a
// coordinate derives its own stream from seed+offset so concerns never consume
// values from each other's sequences.
const (
	OffsetBiome      uint32 = 0
	OffsetNaming     uint32 = 1
	OffsetItems      uint32 = 2
	OffsetEnemies    uint32 = 3
	OffsetResources  uint32 = 4
	OffsetExits      uint32 = 5
	OffsetSettlement uint32 = 6
	OffsetNPCs       uint32 = 7
	OffsetBuildings  uint32 = 8
	OffsetQuests     uint32 = 9
)

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Seed derives the generation seed for a coordinate as a 32-bit FNV-1a hash of
// the canonical room id string. The hash is frozen: altering it regenerates
// the entire world differently.
func Seed(c coord.Coordinate) uint32 {
	return HashString(string(c.ID()))
}

// HashString returns the 32-bit FNV-1a hash of s.
func HashString(s string) uint32 {
	h := fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// Stream is a linear congruential generator over 32-bit state.
type Stream struct {
	state uint32
}

// NewStream creates a stream starting from the given seed.
func NewStream(seed uint32) *Stream {
	return &Stream{state: seed}
}

// StreamFor creates the stream for one generation concern at a seed.
func StreamFor(seed, offset uint32) *Stream {
	return NewStream(seed + offset)
}

// Next advances the stream and returns a value in [0, 1).
// state = (state*1664525 + 1013904223) mod 2^32.
func (s *Stream) Next() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / 4294967296.0
}

// Intn returns a value in [0, n) as floor(Next()*n). Panics if n <= 0.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(s.Next() * float64(n))
}

// IntBetween returns a value in [min, max] inclusive.
func (s *Stream) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Intn(max-min+1)
}

// Chance reports whether the next draw falls under p.
func (s *Stream) Chance(p float64) bool {
	return s.Next() < p
}

// Pick returns a stream-selected element of choices.
func Pick[T any](s *Stream, choices []T) T {
	return choices[s.Intn(len(choices))]
}
