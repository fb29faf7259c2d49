package room

import (
	"sync"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
)

// Cache is the in-process room cache: shared, read-mostly and append-only.
// Rooms are never removed. Cached rooms are immutable: the bidirectional exit
// patch goes through AddExit, which installs a patched copy instead of
// mutating the stored room, so pointers handed out earlier remain stable
// snapshots safe to read without a lock. Construct one per world instance and
// inject it; it is never shared across tests implicitly.
type Cache struct {
	mu    sync.RWMutex
	rooms map[coord.RoomID]*GeneratedRoom
}

// NewCache creates an empty room cache.
func NewCache() *Cache {
	return &Cache{
		rooms: make(map[coord.RoomID]*GeneratedRoom),
	}
}

// Get returns the cached room for id, if present.
func (c *Cache) Get(id coord.RoomID) (*GeneratedRoom, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.rooms[id]
	return r, ok
}

// Put inserts a room. An existing entry for the same id is kept: the first
// fully generated room for a coordinate wins.
func (c *Cache) Put(r *GeneratedRoom) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rooms[r.ID]; exists {
		return
	}
	c.rooms[r.ID] = r
}

// AddExit adds a synthesized exit to a cached room unless the room already
// has an exit in that direction or to that destination. The patch is copy on
// write: a new room with a copied exit slice replaces the cached entry, and
// pointers obtained before the patch keep seeing their unmodified snapshot.
// Returns the patched room and whether a patch was applied.
func (c *Cache) AddExit(id coord.RoomID, exit Exit) (*GeneratedRoom, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.rooms[id]
	if !ok {
		return nil, false
	}
	for _, e := range r.Exits {
		if e.Direction == exit.Direction || e.Destination == exit.Destination {
			return r, false
		}
	}

	patched := *r
	patched.Exits = make([]Exit, len(r.Exits), len(r.Exits)+1)
	copy(patched.Exits, r.Exits)
	patched.Exits = append(patched.Exits, exit)
	c.rooms[id] = &patched
	return &patched, true
}

// Len returns the number of cached rooms.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}
