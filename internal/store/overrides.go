package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
)

// DefinitionStore is the sqlite-backed catalog override store. Rows are JSON
// documents keyed by (kind, id); absent rows surface as catalog.ErrNotFound
// so the catalog falls back to its static tables.
type DefinitionStore struct {
	db *sql.DB
}

// NewDefinitionStore creates a definition override store over an open
// database.
func NewDefinitionStore(db *sql.DB) *DefinitionStore {
	return &DefinitionStore{db: db}
}

func (s *DefinitionStore) lookup(ctx context.Context, kind, id string, out any) error {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM definition_overrides WHERE kind = ? AND id = ?`,
		kind, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s override %q: %w", kind, id, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s override %q: %w", kind, id, err)
	}
	return nil
}

func (s *DefinitionStore) Biome(ctx context.Context, id string) (*catalog.BiomeDefinition, error) {
	var def catalog.BiomeDefinition
	if err := s.lookup(ctx, "biome", id, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *DefinitionStore) Enemy(ctx context.Context, id string) (*catalog.EnemyDefinition, error) {
	var def catalog.EnemyDefinition
	if err := s.lookup(ctx, "enemy", id, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *DefinitionStore) Item(ctx context.Context, id string) (*catalog.ItemDefinition, error) {
	var def catalog.ItemDefinition
	if err := s.lookup(ctx, "item", id, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (s *DefinitionStore) Resource(ctx context.Context, id string) (*catalog.ResourceDefinition, error) {
	var def catalog.ResourceDefinition
	if err := s.lookup(ctx, "resource", id, &def); err != nil {
		return nil, err
	}
	return &def, nil
}
