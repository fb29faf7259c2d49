// Package store provides the sqlite-backed implementations of the durable
// room store and the catalog definition override store. Both are optional:
// the engine runs purely in-process when no database is configured.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/logging"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/room"
)

// RoomStore persists generated rooms as JSON documents keyed by room id.
type RoomStore struct {
	db     *sql.DB
	logger *log.Logger
}

// NewRoomStore creates a room store over an open database. Migrations must
// have been applied.
func NewRoomStore(db *sql.DB) *RoomStore {
	return &RoomStore{
		db:     db,
		logger: logging.WithComponent("room-store"),
	}
}

// Get loads one room by id, returning room.ErrNotFound for coordinates that
// were never persisted.
func (s *RoomStore) Get(ctx context.Context, id coord.RoomID) (*room.GeneratedRoom, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM rooms WHERE room_id = ?`, string(id)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, room.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read room %s: %w", id, err)
	}

	var r room.GeneratedRoom
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode room %s: %w", id, err)
	}
	return &r, nil
}

// Put upserts one room. The exit-patch path rewrites existing rows, so the
// insert replaces on conflict.
func (s *RoomStore) Put(ctx context.Context, r *room.GeneratedRoom) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode room %s: %w", r.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rooms (room_id, x, y, z, biome_id, data)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(room_id) DO UPDATE SET data = excluded.data`,
		string(r.ID), r.Coordinate.X, r.Coordinate.Y, r.Coordinate.Z, r.BiomeID, data)
	if err != nil {
		return fmt.Errorf("failed to write room %s: %w", r.ID, err)
	}

	s.logger.Debug("Room persisted", "room_id", r.ID, "biome", r.BiomeID)
	return nil
}
