package room

import (
	"context"
	"errors"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
)

// ErrNotFound is returned by stores for coordinates that have never been
// persisted.
var ErrNotFound = errors.New("room: not found in store")

// Store is the durable room persistence contract. Durability is an
// optimization: the engine functions correctly with no store at all, and a
// failing Put never aborts a generation request already in progress.
type Store interface {
	Get(ctx context.Context, id coord.RoomID) (*GeneratedRoom, error)
	Put(ctx context.Context, r *GeneratedRoom) error
}

// NullStore is the no-op Store used when persistence is not configured.
type NullStore struct{}

func (NullStore) Get(ctx context.Context, id coord.RoomID) (*GeneratedRoom, error) {
	return nil, ErrNotFound
}

func (NullStore) Put(ctx context.Context, r *GeneratedRoom) error {
	return nil
}
