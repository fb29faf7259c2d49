package room

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/logging"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/settlement"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// Service orchestrates the generation pipeline behind a single
// get-or-generate operation. Generation is at-most-once per coordinate: the
// singleflight group guarantees concurrent requests for the same unexplored
// coordinate share a single generation run.
type Service struct {
	cache      *Cache
	store      Store
	catalog    *catalog.Catalog
	classifier *worldgen.Classifier
	selector   *worldgen.BiomeSelector
	populator  *worldgen.Populator
	group      singleflight.Group
	logger     *log.Logger
}

// NewService wires the generation service. A nil store disables durability.
func NewService(cache *Cache, store Store, cat *catalog.Catalog, classifier *worldgen.Classifier) *Service {
	if store == nil {
		store = NullStore{}
	}
	return &Service{
		cache:      cache,
		store:      store,
		catalog:    cat,
		classifier: classifier,
		selector:   worldgen.NewBiomeSelector(cat),
		populator:  worldgen.NewPopulator(cat),
		logger:     logging.WithComponent("room-service"),
	}
}

// Cache exposes the in-process cache for observability.
func (s *Service) Cache() *Cache {
	return s.cache
}

// GetOrGenerateRoom is the adjacency-aware entry point consumed by the rest
// of the game. It pre-generates the six neighbors so this room's exits can
// name real destinations, then generates the room itself and reconciles the
// bidirectional exit invariant. Neighbor generation always goes through the
// base path, never back through this wrapper, so the recursion across the
// grid is bounded at one level.
func (s *Service) GetOrGenerateRoom(ctx context.Context, x, y, z int) (*GeneratedRoom, error) {
	c := coord.Coordinate{X: x, Y: y, Z: z}

	if r, ok := s.cache.Get(c.ID()); ok {
		return r, nil
	}

	for _, d := range coord.Directions {
		if _, err := s.lookupOrGenerate(ctx, c.Neighbor(d)); err != nil {
			return nil, fmt.Errorf("failed to generate neighbor %s of %s: %w", d, c, err)
		}
	}

	return s.lookupOrGenerate(ctx, c)
}

// GetRoom returns a room without triggering neighbor pre-generation, used
// when flavor-quality exit text is not worth a seven-room cascade.
func (s *Service) GetRoom(ctx context.Context, x, y, z int) (*GeneratedRoom, error) {
	return s.lookupOrGenerate(ctx, coord.Coordinate{X: x, Y: y, Z: z})
}

// lookupOrGenerate is the base path: cache, then durable store, then the
// generation pipeline. The whole miss path runs inside a per-room-id
// singleflight so generation and its persistence side effects happen at most
// once per coordinate.
func (s *Service) lookupOrGenerate(ctx context.Context, c coord.Coordinate) (*GeneratedRoom, error) {
	id := c.ID()

	if r, ok := s.cache.Get(id); ok {
		return r, nil
	}

	v, err, _ := s.group.Do(string(id), func() (interface{}, error) {
		// A request that queued behind the flight leader re-checks the cache.
		if r, ok := s.cache.Get(id); ok {
			return r, nil
		}

		if r, err := s.store.Get(ctx, id); err == nil {
			// Reconcile before publishing so no reader ever sees a
			// non-final exit set on this instance.
			s.reconcileExits(ctx, r)
			s.cache.Put(r)
			s.logger.Debug("Room rehydrated from durable store", "room_id", id)
			return r, nil
		} else if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Durable store read failed, generating locally", "room_id", id, "error", err)
		}

		r, err := s.generateRoom(ctx, c)
		if err != nil {
			// All-or-nothing: a failed generation leaves no partial entry in
			// the cache or store.
			return nil, err
		}

		s.reconcileExits(ctx, r)

		if putErr := s.store.Put(ctx, r); putErr != nil {
			s.logger.Error("Durable store write failed, keeping in-process copy", "room_id", id, "error", putErr)
		}

		s.cache.Put(r)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*GeneratedRoom), nil
}

// generateRoom runs the full pipeline for one coordinate.
func (s *Service) generateRoom(ctx context.Context, c coord.Coordinate) (*GeneratedRoom, error) {
	id := c.ID()
	seed := rng.Seed(c)
	region := s.classifier.Classify(c)
	difficulty := s.classifier.Difficulty(c)

	logger := logging.WithRoomID(string(id))
	logger.Debug("Starting room generation", "region", region.Kind, "difficulty", difficulty, "seed", seed)

	neighbors := s.knownNeighbors(ctx, c)

	biome, err := s.selector.Select(ctx, c, neighbors, rng.StreamFor(seed, rng.OffsetBiome))
	if err != nil {
		return nil, err
	}

	r := &GeneratedRoom{
		ID:         id,
		Coordinate: c,
		BiomeID:    biome.ID,
		Difficulty: difficulty,
		Seed:       seed,
	}

	namingStream := rng.StreamFor(seed, rng.OffsetNaming)

	if region.Kind == worldgen.RegionSettlement {
		result := settlement.Generate(seed, id, region.Size, difficulty)
		r.Name = result.Settlement.Name
		r.Description = settlement.Describe(result.Settlement, result.Buildings, namingStream)
		r.Settlement = &SettlementContent{
			Settlement: result.Settlement,
			NPCs:       result.NPCs,
			Buildings:  result.Buildings,
			Quests:     result.Quests,
		}
		r.Exits = s.settlementExits(ctx, c, biome)
	} else {
		r.Name, r.Description = worldgen.RoomNaming(biome, namingStream)
		r.Wilderness = &WildernessContent{
			Items:         s.populator.Items(biome.ID, difficulty, rng.StreamFor(seed, rng.OffsetItems)),
			Enemies:       s.populator.Enemies(biome.ID, difficulty, rng.StreamFor(seed, rng.OffsetEnemies)),
			ResourceNodes: s.populator.ResourceNodes(biome.ID, rng.StreamFor(seed, rng.OffsetResources)),
		}
		r.Exits = s.wildernessExits(ctx, c, biome, rng.StreamFor(seed, rng.OffsetExits))
	}

	logger.Debug("Room generation completed", "biome", biome.ID, "name", r.Name, "exits", len(r.Exits))
	return r, nil
}

// knownNeighbors gathers AdjacentRoomInfo for every already-generated
// neighbor. Missing neighbors impose no constraint; store read failures
// degrade to "unknown".
func (s *Service) knownNeighbors(ctx context.Context, c coord.Coordinate) []worldgen.AdjacentRoomInfo {
	var neighbors []worldgen.AdjacentRoomInfo
	for _, d := range coord.Directions {
		nc := c.Neighbor(d)
		if n, ok := s.peekRoom(ctx, nc); ok {
			neighbors = append(neighbors, worldgen.AdjacentRoomInfo{
				Coordinate: nc,
				BiomeID:    n.BiomeID,
			})
		}
	}
	return neighbors
}

// peekRoom looks a room up without ever generating it.
func (s *Service) peekRoom(ctx context.Context, c coord.Coordinate) (*GeneratedRoom, bool) {
	id := c.ID()
	if r, ok := s.cache.Get(id); ok {
		return r, true
	}

	r, err := s.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("Durable store peek failed", "room_id", id, "error", err)
		}
		return nil, false
	}
	s.cache.Put(r)
	return r, true
}

// reconcileExits enforces the bidirectional exit invariant between r and
// every already-generated neighbor: if you can walk from A to B, you can walk
// back from B to A. The patch on r happens before the room is published to
// the cache or persisted; patches on cached neighbors install a copy via
// Cache.AddExit, leaving previously returned pointers untouched, and are
// re-persisted best-effort.
func (s *Service) reconcileExits(ctx context.Context, r *GeneratedRoom) {
	for _, d := range coord.Directions {
		nc := r.Coordinate.Neighbor(d)
		neighbor, ok := s.peekRoom(ctx, nc)
		if !ok {
			continue
		}

		back := d.Opposite()

		// The neighbor can reach r, so r must offer the way back.
		if (neighbor.ExitTo(r.ID) || neighbor.ExitIn(back)) && !r.ExitIn(d) && !r.ExitTo(neighbor.ID) {
			r.Exits = append(r.Exits, Exit{
				Direction:   d,
				Destination: nc.ID(),
				Description: s.describeExit(ctx, nc, d, nil),
			})
		}

		// r can reach the neighbor, so the neighbor must offer the way back.
		if r.ExitIn(d) || r.ExitTo(neighbor.ID) {
			patched, added := s.cache.AddExit(neighbor.ID, Exit{
				Direction:   back,
				Destination: r.ID,
				Description: s.describeReturnExit(r, back),
			})
			if added {
				if err := s.store.Put(ctx, patched); err != nil {
					s.logger.Error("Failed to persist exit patch", "room_id", neighbor.ID, "error", err)
				}
			}
		}
	}
}
