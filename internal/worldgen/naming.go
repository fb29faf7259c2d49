package worldgen

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
)

// RoomNaming draws a room name and description from the biome's template
// pools. Both come from the same naming stream, name first, so reordering the
// draws would change the world.
func RoomNaming(biome *catalog.BiomeDefinition, stream *rng.Stream) (name, description string) {
	name = biome.Name
	if len(biome.NameTemplates) > 0 {
		name = rng.Pick(stream, biome.NameTemplates)
	}

	description = ""
	if len(biome.DescriptionTemplates) > 0 {
		description = rng.Pick(stream, biome.DescriptionTemplates)
	}
	return name, description
}
