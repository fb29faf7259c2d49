package room

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// mockStore is an in-memory Store with call counters, optionally failing.
type mockStore struct {
	mu       sync.Mutex
	rooms    map[coord.RoomID]*GeneratedRoom
	getCalls map[coord.RoomID]int
	putCalls map[coord.RoomID]int
	getErr   error
	putErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		rooms:    make(map[coord.RoomID]*GeneratedRoom),
		getCalls: make(map[coord.RoomID]int),
		putCalls: make(map[coord.RoomID]int),
	}
}

func (m *mockStore) Get(ctx context.Context, id coord.RoomID) (*GeneratedRoom, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls[id]++
	if m.getErr != nil {
		return nil, m.getErr
	}
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *mockStore) Put(ctx context.Context, r *GeneratedRoom) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls[r.ID]++
	if m.putErr != nil {
		return m.putErr
	}
	m.rooms[r.ID] = r
	return nil
}

func (m *mockStore) puts(id coord.RoomID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCalls[id]
}

func newTestService(store Store) *Service {
	cat := catalog.New(nil)
	classifier := worldgen.NewClassifier(1889, 3.0, 20)
	return NewService(NewCache(), store, cat, classifier)
}

func TestGetOrGenerateRoomDeterministic(t *testing.T) {
	ctx := context.Background()

	a, err := newTestService(nil).GetOrGenerateRoom(ctx, 3, -4, 0)
	require.NoError(t, err)
	b, err := newTestService(nil).GetOrGenerateRoom(ctx, 3, -4, 0)
	require.NoError(t, err)

	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aJSON, bJSON, "independent engines must produce byte-identical rooms")
}

func TestGetOrGenerateRoomIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := newTestService(store)

	first, err := svc.GetOrGenerateRoom(ctx, 0, 0, 0)
	require.NoError(t, err)

	putsAfterFirst := store.puts(first.ID)
	require.GreaterOrEqual(t, putsAfterFirst, 1)

	second, err := svc.GetOrGenerateRoom(ctx, 0, 0, 0)
	require.NoError(t, err)
	assert.Same(t, first, second, "repeat request must return the cached room")
	assert.Equal(t, putsAfterFirst, store.puts(first.ID), "repeat request must not re-persist")
}

func TestRoomShape(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	r, err := svc.GetOrGenerateRoom(ctx, 5, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, coord.RoomID("5,5,0"), r.ID)
	assert.Equal(t, coord.Coordinate{X: 5, Y: 5, Z: 0}, r.Coordinate)
	assert.NotEmpty(t, r.BiomeID)
	assert.NotEmpty(t, r.Name)
	assert.NotEmpty(t, r.Description)
	assert.GreaterOrEqual(t, r.Difficulty, 1)
	assert.LessOrEqual(t, r.Difficulty, 20)
	assert.NotZero(t, r.Seed)
}

func TestContentVariantExclusive(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	for x := -6; x <= 6; x += 2 {
		for y := -6; y <= 6; y += 2 {
			r, err := svc.GetRoom(ctx, x, y, 0)
			require.NoError(t, err)

			hasWilderness := r.Wilderness != nil
			hasSettlement := r.Settlement != nil
			assert.NotEqual(t, hasWilderness, hasSettlement,
				"room %s must carry exactly one content variant", r.ID)
			assert.Equal(t, hasSettlement, r.IsSettlement())
		}
	}
}

func TestExitsBidirectional(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	r, err := svc.GetOrGenerateRoom(ctx, 0, 0, 0)
	require.NoError(t, err)

	for _, exit := range r.Exits {
		dest, derr := coord.ParseID(exit.Destination)
		require.NoError(t, derr)

		neighbor, nerr := svc.GetRoom(ctx, dest.X, dest.Y, dest.Z)
		require.NoError(t, nerr)

		assert.True(t, neighbor.ExitTo(r.ID),
			"room %s exits %s to %s, but %s has no way back",
			r.ID, exit.Direction, neighbor.ID, neighbor.ID)
	}
}

func TestExitsBidirectionalAcrossGenerationOrder(t *testing.T) {
	// Generate a room, then its east neighbor. If the neighbor rolls an exit
	// toward the first room, the first room must gain the reciprocal exit even
	// though it was generated earlier.
	ctx := context.Background()
	svc := newTestService(nil)

	first, err := svc.GetOrGenerateRoom(ctx, 0, 0, 0)
	require.NoError(t, err)
	second, err := svc.GetOrGenerateRoom(ctx, 1, 0, 0)
	require.NoError(t, err)

	if second.ExitTo(first.ID) {
		assert.True(t, first.ExitTo(second.ID))
	}
	if first.ExitTo(second.ID) {
		assert.True(t, second.ExitTo(first.ID))
	}
}

func TestSettlementRoom(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	// Scan outward until the classifier places a settlement.
	classifier := worldgen.NewClassifier(1889, 3.0, 20)
	var target coord.Coordinate
	found := false
	for x := -80; x <= 80 && !found; x++ {
		for y := -80; y <= 80; y++ {
			c := coord.Coordinate{X: x, Y: y}
			if classifier.Classify(c).Kind == worldgen.RegionSettlement {
				target = c
				found = true
				break
			}
		}
	}
	require.True(t, found, "no settlement in scanned area")

	r, err := svc.GetRoom(ctx, target.X, target.Y, target.Z)
	require.NoError(t, err)

	require.NotNil(t, r.Settlement)
	assert.Nil(t, r.Wilderness)
	assert.Equal(t, r.Settlement.Settlement.Name, r.Name)
	assert.NotEmpty(t, r.Settlement.NPCs)
	assert.NotEmpty(t, r.Settlement.Buildings)
	assert.Contains(t, r.Description, r.Name)

	// Settlements open onto all four roads.
	require.Len(t, r.Exits, 4)
	for _, d := range coord.CardinalDirections {
		assert.True(t, r.ExitIn(d), "settlement missing %s exit", d)
	}
}

func TestConcurrentRequestsShareOneGeneration(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	svc := newTestService(store)

	const goroutines = 32
	results := make([]*GeneratedRoom, goroutines)
	errored := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errored[i] = svc.GetRoom(ctx, 7, 7, 0)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errored[i])
		assert.Same(t, results[0], results[i], "goroutine %d got a different room instance", i)
	}
	assert.Equal(t, 1, store.puts("7,7,0"), "room was persisted more than once")
}

func TestStoreFailuresDoNotBlockGeneration(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()
	store.getErr = errors.New("disk unavailable")
	store.putErr = errors.New("disk unavailable")
	svc := newTestService(store)

	r, err := svc.GetOrGenerateRoom(ctx, 2, 2, 0)
	require.NoError(t, err, "a broken store must degrade, not fail requests")
	assert.NotEmpty(t, r.Name)

	// The room is served from cache afterwards.
	again, err := svc.GetRoom(ctx, 2, 2, 0)
	require.NoError(t, err)
	assert.Same(t, r, again)
}

func TestRehydrateFromStore(t *testing.T) {
	ctx := context.Background()
	store := newMockStore()

	c := coord.Coordinate{X: 9, Y: 9, Z: 0}
	persisted := &GeneratedRoom{
		ID:         c.ID(),
		Coordinate: c,
		BiomeID:    "forest",
		Name:       "Rehydrated Grove",
		Difficulty: 4,
		Wilderness: &WildernessContent{},
	}
	store.rooms[persisted.ID] = persisted

	svc := newTestService(store)

	r, err := svc.GetRoom(ctx, 9, 9, 0)
	require.NoError(t, err)
	assert.Same(t, persisted, r, "a persisted room must be served, not regenerated")
	assert.Equal(t, 1, svc.Cache().Len())
}

func TestNeighborConstraintsRespected(t *testing.T) {
	// With exactly one known neighbor the candidate pool is that neighbor's
	// compatibility set, which is never empty, so no widening can occur and
	// the new room's biome must be compatible.
	ctx := context.Background()
	cat := catalog.New(nil)
	svc := newTestService(nil)

	first, err := svc.GetRoom(ctx, 20, 20, 0)
	require.NoError(t, err)

	firstDef, ok := cat.GetBiome(ctx, first.BiomeID)
	require.True(t, ok)

	second, err := svc.GetRoom(ctx, 21, 20, 0)
	require.NoError(t, err)

	assert.True(t, firstDef.Compatible(second.BiomeID),
		"biome %s generated next to incompatible %s", second.BiomeID, first.BiomeID)
}

func TestGetRoomsInRadius(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	rooms, err := svc.GetRoomsInRadius(ctx, coord.Coordinate{X: 0, Y: 0, Z: 0}, 2)
	require.NoError(t, err)

	// Manhattan radius 2 on one plane is 13 cells.
	require.Len(t, rooms, 13)

	seen := make(map[coord.RoomID]bool)
	for _, r := range rooms {
		assert.False(t, seen[r.ID], "duplicate room %s", r.ID)
		seen[r.ID] = true
		assert.Equal(t, 0, r.Coordinate.Z)
		dist := abs(r.Coordinate.X) + abs(r.Coordinate.Y)
		assert.LessOrEqual(t, dist, 2)
	}
}

func TestExitPatchDoesNotMutateHeldRooms(t *testing.T) {
	// Rehydrating a room whose exits point at an already-cached neighbor
	// patches that neighbor. Callers holding the neighbor's pointer must keep
	// seeing their snapshot; only the cache serves the patched copy.
	ctx := context.Background()
	store := newMockStore()
	svc := newTestService(store)

	a := coord.Coordinate{X: 0, Y: 0, Z: 0}
	held := &GeneratedRoom{
		ID:         a.ID(),
		Coordinate: a,
		BiomeID:    "plains",
		Name:       "Quiet Meadow",
		Wilderness: &WildernessContent{},
	}
	svc.Cache().Put(held)

	b := coord.Coordinate{X: 1, Y: 0, Z: 0}
	store.rooms[b.ID()] = &GeneratedRoom{
		ID:         b.ID(),
		Coordinate: b,
		BiomeID:    "plains",
		Name:       "Dusty Crossroads",
		Exits: []Exit{
			{Direction: coord.West, Destination: a.ID(), Description: "west"},
		},
		Wilderness: &WildernessContent{},
	}

	_, err := svc.GetRoom(ctx, b.X, b.Y, b.Z)
	require.NoError(t, err)

	// The held snapshot is untouched.
	assert.Empty(t, held.Exits)

	// The cache serves a patched copy with the reciprocal exit, and the patch
	// was re-persisted.
	patched, ok := svc.Cache().Get(a.ID())
	require.True(t, ok)
	assert.NotSame(t, held, patched)
	require.True(t, patched.ExitTo(b.ID()), "cached room is missing the reciprocal exit")
	assert.True(t, patched.ExitIn(coord.East))
	assert.GreaterOrEqual(t, store.puts(a.ID()), 1)
}

func TestSeedCollisionKeepsRoomsIndependent(t *testing.T) {
	// These two coordinates hash to the same 32-bit seed. The engine keys
	// rooms by id, not by seed, so both must exist side by side with their
	// own coordinates and persistence rows.
	ca := coord.Coordinate{X: -240, Y: -125, Z: 0}
	cb := coord.Coordinate{X: 69, Y: -19, Z: 0}
	require.Equal(t, rng.Seed(ca), rng.Seed(cb), "fixture coordinates no longer collide")

	ctx := context.Background()
	store := newMockStore()
	svc := newTestService(store)

	ra, err := svc.GetRoom(ctx, ca.X, ca.Y, ca.Z)
	require.NoError(t, err)
	rb, err := svc.GetRoom(ctx, cb.X, cb.Y, cb.Z)
	require.NoError(t, err)

	assert.Equal(t, ra.Seed, rb.Seed)
	assert.NotEqual(t, ra.ID, rb.ID)
	assert.Equal(t, ca, ra.Coordinate)
	assert.Equal(t, cb, rb.Coordinate)

	// Both rooms are cached and persisted under their own ids.
	cachedA, ok := svc.Cache().Get(ca.ID())
	require.True(t, ok)
	assert.Same(t, ra, cachedA)
	cachedB, ok := svc.Cache().Get(cb.ID())
	require.True(t, ok)
	assert.Same(t, rb, cachedB)
	assert.Contains(t, store.rooms, ca.ID())
	assert.Contains(t, store.rooms, cb.ID())

	// Repeat requests keep resolving each coordinate to its own room.
	againA, err := svc.GetRoom(ctx, ca.X, ca.Y, ca.Z)
	require.NoError(t, err)
	assert.Same(t, ra, againA)
	againB, err := svc.GetRoom(ctx, cb.X, cb.Y, cb.Z)
	require.NoError(t, err)
	assert.Same(t, rb, againB)
}

func TestGetRoomsInRadiusZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(nil)

	rooms, err := svc.GetRoomsInRadius(ctx, coord.Coordinate{X: 4, Y: 4, Z: 0}, 0)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, coord.RoomID("4,4,0"), rooms[0].ID)
}
