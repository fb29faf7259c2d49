package catalog

// BiomeDefinition is the static template data for one terrain category.
// Compatibility is symmetric by data contract, but consumers must not rely on
// symmetry when evaluating constraints.
type BiomeDefinition struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	NameTemplates        []string `json:"name_templates"`
	DescriptionTemplates []string `json:"description_templates"`
	// EncounterChance is the base probability of a hostile encounter per
	// visit, consumed by the combat simulation outside this engine.
	EncounterChance float64 `json:"encounter_chance"`
	// ExitFlavor finishes the sentence "To the <dir>, ..." for exits whose
	// destination has not been generated yet.
	ExitFlavor string `json:"exit_flavor"`
	// CompatibleBiomes lists the biome ids legal as a neighbor.
	CompatibleBiomes []string `json:"compatible_biomes"`
}

// Compatible reports whether the given biome id is legal as a neighbor.
func (b *BiomeDefinition) Compatible(biomeID string) bool {
	for _, id := range b.CompatibleBiomes {
		if id == biomeID {
			return true
		}
	}
	return false
}

// EnemyDefinition is one entry in a biome's enemy spawn pool.
type EnemyDefinition struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	BiomeID       string `json:"biome_id"`
	MinDifficulty int    `json:"min_difficulty"`
	MaxDifficulty int    `json:"max_difficulty"`
	SpawnWeight   int    `json:"spawn_weight"`
}

// ItemDefinition is one entry in a biome's item spawn pool.
type ItemDefinition struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	BiomeID       string `json:"biome_id"`
	MinDifficulty int    `json:"min_difficulty"`
	MaxDifficulty int    `json:"max_difficulty"`
	SpawnWeight   int    `json:"spawn_weight"`
}

// ResourceDefinition is one entry in a biome's resource node pool.
// Resource spawning ignores room difficulty.
type ResourceDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BiomeID     string `json:"biome_id"`
	SpawnWeight int    `json:"spawn_weight"`
}
