// Package catalog provides read-only lookup of biome, enemy, item and resource
// template data. Lookups consult an optional durable override store first and
// fall back to the static bundled tables; consumers never see the difference.
package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/logging"
)

// ErrNotFound is returned by override stores for entries they do not carry.
var ErrNotFound = errors.New("catalog: definition not found")

// OverrideStore is the optional durable backing for definition data. A nil or
// erroring store degrades the catalog to static data only.
type OverrideStore interface {
	Biome(ctx context.Context, id string) (*BiomeDefinition, error)
	Enemy(ctx context.Context, id string) (*EnemyDefinition, error)
	Item(ctx context.Context, id string) (*ItemDefinition, error)
	Resource(ctx context.Context, id string) (*ResourceDefinition, error)
}

// NullOverrideStore is the no-op OverrideStore used when no durable backing is
// configured.
type NullOverrideStore struct{}

func (NullOverrideStore) Biome(ctx context.Context, id string) (*BiomeDefinition, error) {
	return nil, ErrNotFound
}

func (NullOverrideStore) Enemy(ctx context.Context, id string) (*EnemyDefinition, error) {
	return nil, ErrNotFound
}

func (NullOverrideStore) Item(ctx context.Context, id string) (*ItemDefinition, error) {
	return nil, ErrNotFound
}

func (NullOverrideStore) Resource(ctx context.Context, id string) (*ResourceDefinition, error) {
	return nil, ErrNotFound
}

// Catalog indexes the static definition tables and applies the single
// override-then-fallback policy for every entity kind.
type Catalog struct {
	overrides OverrideStore
	logger    *log.Logger

	biomes    map[string]*BiomeDefinition
	enemies   map[string]*EnemyDefinition
	items     map[string]*ItemDefinition
	resources map[string]*ResourceDefinition

	enemiesByBiome   map[string][]EnemyDefinition
	itemsByBiome     map[string][]ItemDefinition
	resourcesByBiome map[string][]ResourceDefinition

	sortedBiomes []BiomeDefinition
}

// New creates a catalog over the static tables with the given override store.
// Passing nil disables overrides.
func New(overrides OverrideStore) *Catalog {
	return NewWithTables(overrides, staticBiomes, staticEnemies, staticItems, staticResources)
}

// NewWithTables creates a catalog over explicit definition tables. Used by
// tests that need a reduced world.
func NewWithTables(overrides OverrideStore, biomes []BiomeDefinition, enemies []EnemyDefinition, items []ItemDefinition, resources []ResourceDefinition) *Catalog {
	if overrides == nil {
		overrides = NullOverrideStore{}
	}

	c := &Catalog{
		overrides:        overrides,
		logger:           logging.WithComponent("catalog"),
		biomes:           make(map[string]*BiomeDefinition),
		enemies:          make(map[string]*EnemyDefinition),
		items:            make(map[string]*ItemDefinition),
		resources:        make(map[string]*ResourceDefinition),
		enemiesByBiome:   make(map[string][]EnemyDefinition),
		itemsByBiome:     make(map[string][]ItemDefinition),
		resourcesByBiome: make(map[string][]ResourceDefinition),
	}

	for i := range biomes {
		b := biomes[i]
		c.biomes[b.ID] = &b
		c.sortedBiomes = append(c.sortedBiomes, b)
	}
	// Deterministic iteration order regardless of how the tables are edited.
	sort.Slice(c.sortedBiomes, func(i, j int) bool {
		return c.sortedBiomes[i].ID < c.sortedBiomes[j].ID
	})

	for i := range enemies {
		e := enemies[i]
		c.enemies[e.ID] = &e
		c.enemiesByBiome[e.BiomeID] = append(c.enemiesByBiome[e.BiomeID], e)
	}
	for i := range items {
		it := items[i]
		c.items[it.ID] = &it
		c.itemsByBiome[it.BiomeID] = append(c.itemsByBiome[it.BiomeID], it)
	}
	for i := range resources {
		r := resources[i]
		c.resources[r.ID] = &r
		c.resourcesByBiome[r.BiomeID] = append(c.resourcesByBiome[r.BiomeID], r)
	}

	c.logger.Debug("Catalog initialized",
		"biomes", len(c.biomes),
		"enemies", len(c.enemies),
		"items", len(c.items),
		"resources", len(c.resources))

	return c
}

// GetBiome returns the biome definition for id, or false when absent.
func (c *Catalog) GetBiome(ctx context.Context, id string) (*BiomeDefinition, bool) {
	if def, err := c.overrides.Biome(ctx, id); err == nil {
		return def, true
	} else if !errors.Is(err, ErrNotFound) {
		c.logger.Warn("Override store lookup failed, using static data", "kind", "biome", "id", id, "error", err)
	}

	def, ok := c.biomes[id]
	return def, ok
}

// GetEnemy returns the enemy definition for id, or false when absent.
func (c *Catalog) GetEnemy(ctx context.Context, id string) (*EnemyDefinition, bool) {
	if def, err := c.overrides.Enemy(ctx, id); err == nil {
		return def, true
	} else if !errors.Is(err, ErrNotFound) {
		c.logger.Warn("Override store lookup failed, using static data", "kind", "enemy", "id", id, "error", err)
	}

	def, ok := c.enemies[id]
	return def, ok
}

// GetItem returns the item definition for id, or false when absent.
func (c *Catalog) GetItem(ctx context.Context, id string) (*ItemDefinition, bool) {
	if def, err := c.overrides.Item(ctx, id); err == nil {
		return def, true
	} else if !errors.Is(err, ErrNotFound) {
		c.logger.Warn("Override store lookup failed, using static data", "kind", "item", "id", id, "error", err)
	}

	def, ok := c.items[id]
	return def, ok
}

// GetResource returns the resource definition for id, or false when absent.
func (c *Catalog) GetResource(ctx context.Context, id string) (*ResourceDefinition, bool) {
	if def, err := c.overrides.Resource(ctx, id); err == nil {
		return def, true
	} else if !errors.Is(err, ErrNotFound) {
		c.logger.Warn("Override store lookup failed, using static data", "kind", "resource", "id", id, "error", err)
	}

	def, ok := c.resources[id]
	return def, ok
}

// AllBiomes returns every biome definition ordered by id.
func (c *Catalog) AllBiomes(ctx context.Context) []BiomeDefinition {
	out := make([]BiomeDefinition, len(c.sortedBiomes))
	copy(out, c.sortedBiomes)
	return out
}

// EnemiesForBiome returns the static enemy spawn pool for one biome.
func (c *Catalog) EnemiesForBiome(biomeID string) []EnemyDefinition {
	return c.enemiesByBiome[biomeID]
}

// ItemsForBiome returns the static item spawn pool for one biome.
func (c *Catalog) ItemsForBiome(biomeID string) []ItemDefinition {
	return c.itemsByBiome[biomeID]
}

// ResourcesForBiome returns the static resource spawn pool for one biome.
func (c *Catalog) ResourcesForBiome(biomeID string) []ResourceDefinition {
	return c.resourcesByBiome[biomeID]
}
