package worldgen

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
)

// Count policy tunables. Each kind first rolls whether the room is empty, then
// a count inside its band.
const (
	itemEmptyChance     = 0.30
	enemyEmptyChance    = 0.40
	resourceEmptyChance = 0.60

	maxItemsPerRoom     = 3
	maxEnemiesPerRoom   = 2
	maxResourcesPerRoom = 2
)

// ItemSpawn is one populated item in a wilderness room.
type ItemSpawn struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// EnemySpawn is one populated enemy in a wilderness room.
type EnemySpawn struct {
	EnemyID string `json:"enemy_id"`
	Name    string `json:"name"`
}

// ResourceNodeSpawn is one populated resource node in a wilderness room.
type ResourceNodeSpawn struct {
	ResourceID string `json:"resource_id"`
	Name       string `json:"name"`
}

// Populator performs weighted selection of enemies, items and resource nodes
// for a biome and difficulty.
type Populator struct {
	catalog *catalog.Catalog
}

// NewPopulator creates a populator over the given catalog.
func NewPopulator(cat *catalog.Catalog) *Populator {
	return &Populator{catalog: cat}
}

// Items selects the item spawns for a room.
func (p *Populator) Items(biomeID string, difficulty int, stream *rng.Stream) []ItemSpawn {
	pool := p.catalog.ItemsForBiome(biomeID)

	var candidates []weightedEntry
	for i, def := range pool {
		if difficulty < def.MinDifficulty || difficulty > def.MaxDifficulty {
			continue
		}
		candidates = append(candidates, weightedEntry{index: i, weight: def.SpawnWeight})
	}

	count := 0
	if !stream.Chance(itemEmptyChance) {
		count = stream.IntBetween(1, maxItemsPerRoom)
	}

	var spawns []ItemSpawn
	for _, idx := range sampleWithoutReplacement(stream, candidates, count) {
		spawns = append(spawns, ItemSpawn{ItemID: pool[idx].ID, Name: pool[idx].Name})
	}
	return spawns
}

// Enemies selects the enemy spawns for a room.
func (p *Populator) Enemies(biomeID string, difficulty int, stream *rng.Stream) []EnemySpawn {
	pool := p.catalog.EnemiesForBiome(biomeID)

	var candidates []weightedEntry
	for i, def := range pool {
		if difficulty < def.MinDifficulty || difficulty > def.MaxDifficulty {
			continue
		}
		candidates = append(candidates, weightedEntry{index: i, weight: def.SpawnWeight})
	}

	count := 0
	if !stream.Chance(enemyEmptyChance) {
		count = stream.IntBetween(1, maxEnemiesPerRoom)
	}

	var spawns []EnemySpawn
	for _, idx := range sampleWithoutReplacement(stream, candidates, count) {
		spawns = append(spawns, EnemySpawn{EnemyID: pool[idx].ID, Name: pool[idx].Name})
	}
	return spawns
}

// ResourceNodes selects the resource node spawns for a room. Resource pools
// ignore difficulty.
func (p *Populator) ResourceNodes(biomeID string, stream *rng.Stream) []ResourceNodeSpawn {
	pool := p.catalog.ResourcesForBiome(biomeID)

	var candidates []weightedEntry
	for i, def := range pool {
		candidates = append(candidates, weightedEntry{index: i, weight: def.SpawnWeight})
	}

	count := 0
	if !stream.Chance(resourceEmptyChance) {
		count = stream.IntBetween(1, maxResourcesPerRoom)
	}

	var spawns []ResourceNodeSpawn
	for _, idx := range sampleWithoutReplacement(stream, candidates, count) {
		spawns = append(spawns, ResourceNodeSpawn{ResourceID: pool[idx].ID, Name: pool[idx].Name})
	}
	return spawns
}

type weightedEntry struct {
	index  int
	weight int
}

// sampleWithoutReplacement draws up to count distinct entries: each round
// draws a uniform cursor in [0, totalRemainingWeight) and walks the remaining
// candidates subtracting weights until the cursor goes negative. Zero-weight
// entries are never selected while any positive-weight entry remains, and an
// exhausted pool ends sampling early. O(count x pool size), fine for pools of
// at most tens of entries.
func sampleWithoutReplacement(stream *rng.Stream, candidates []weightedEntry, count int) []int {
	remaining := make([]weightedEntry, len(candidates))
	copy(remaining, candidates)

	var selected []int
	for len(selected) < count && len(remaining) > 0 {
		total := 0
		for _, entry := range remaining {
			total += entry.weight
		}
		if total <= 0 {
			break
		}

		cursor := stream.Next() * float64(total)
		pickedAt := -1
		for i, entry := range remaining {
			if entry.weight <= 0 {
				continue
			}
			cursor -= float64(entry.weight)
			if cursor < 0 {
				pickedAt = i
				break
			}
		}
		if pickedAt < 0 {
			break
		}

		selected = append(selected, remaining[pickedAt].index)
		remaining = append(remaining[:pickedAt], remaining[pickedAt+1:]...)
	}

	return selected
}
