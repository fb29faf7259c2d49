package worldgen

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/logging"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
)

// AdjacentRoomInfo describes one already-generated neighbor. It only
// constrains selection and is never mutated.
type AdjacentRoomInfo struct {
	Coordinate coord.Coordinate
	BiomeID    string
}

// BiomeSelector narrows the biome candidate set against every known neighbor
// and picks one entry, wave-function-collapse style.
type BiomeSelector struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewBiomeSelector creates a selector over the given catalog.
func NewBiomeSelector(cat *catalog.Catalog) *BiomeSelector {
	return &BiomeSelector{
		catalog: cat,
		logger:  logging.WithComponent("biome-selector"),
	}
}

// Select picks exactly one biome for the coordinate such that it is compatible
// with every already-generated neighbor. Missing neighbors impose no
// constraint. A genuinely conflicting constraint set falls back to the full
// biome list: local consistency is best-effort, never a generation failure.
// A neighbor referencing an unknown biome definition is fatal.
func (s *BiomeSelector) Select(ctx context.Context, c coord.Coordinate, neighbors []AdjacentRoomInfo, stream *rng.Stream) (*catalog.BiomeDefinition, error) {
	all := s.catalog.AllBiomes(ctx)
	if len(all) == 0 {
		return nil, fmt.Errorf("biome selection at %s: catalog contains no biomes", c)
	}

	candidates := all
	for _, neighbor := range neighbors {
		neighborDef, ok := s.catalog.GetBiome(ctx, neighbor.BiomeID)
		if !ok {
			return nil, fmt.Errorf("biome selection at %s: neighbor %s has unknown biome %q", c, neighbor.Coordinate, neighbor.BiomeID)
		}

		// Keep only biomes accepted in both directions. The static tables are
		// symmetric, but overrides may not be, so neither side is assumed.
		var narrowed []catalog.BiomeDefinition
		for _, candidate := range candidates {
			if neighborDef.Compatible(candidate.ID) && candidate.Compatible(neighbor.BiomeID) {
				narrowed = append(narrowed, candidate)
			}
		}
		candidates = narrowed
	}

	if len(candidates) == 0 {
		s.logger.Debug("Biome constraint conflict, widening to full set",
			"coordinate", c.String(), "neighbors", len(neighbors))
		candidates = all
	}

	picked := candidates[stream.Intn(len(candidates))]
	return &picked, nil
}
