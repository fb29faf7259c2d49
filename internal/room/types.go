// Package room contains the generated room model, the in-process cache, the
// durable store contract and the generation service that orchestrates the
// whole engine.
package room

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/settlement"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// Exit connects a room to one adjacent room.
type Exit struct {
	Direction   coord.Direction `json:"direction"`
	Destination coord.RoomID    `json:"destination"`
	Description string          `json:"description"`
}

// WildernessContent is the content variant for rooms outside settlements.
type WildernessContent struct {
	Items         []worldgen.ItemSpawn         `json:"items"`
	Enemies       []worldgen.EnemySpawn        `json:"enemies"`
	ResourceNodes []worldgen.ResourceNodeSpawn `json:"resource_nodes"`
}

// SettlementContent is the content variant for settlement rooms.
type SettlementContent struct {
	Settlement settlement.Settlement `json:"settlement"`
	NPCs       []settlement.NPC      `json:"npcs"`
	Buildings  []settlement.Building `json:"buildings"`
	Quests     []settlement.Quest    `json:"quests"`
}

// GeneratedRoom is one fully generated world location. A room instance is
// immutable once it leaves the generation path: exit patches applied later
// replace the cached instance with a copy rather than mutating it, so any
// held pointer is a stable snapshot. Exactly one of Wilderness and Settlement
// is populated.
type GeneratedRoom struct {
	ID          coord.RoomID     `json:"id"`
	Coordinate  coord.Coordinate `json:"coordinate"`
	BiomeID     string           `json:"biome_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Difficulty  int              `json:"difficulty"`
	Seed        uint32           `json:"seed"`
	Exits       []Exit           `json:"exits"`

	Wilderness *WildernessContent `json:"wilderness,omitempty"`
	Settlement *SettlementContent `json:"settlement,omitempty"`
}

// IsSettlement reports whether the room carries settlement content.
func (r *GeneratedRoom) IsSettlement() bool {
	return r.Settlement != nil
}

// ExitIn reports whether the room already has an exit in the direction.
func (r *GeneratedRoom) ExitIn(d coord.Direction) bool {
	for _, e := range r.Exits {
		if e.Direction == d {
			return true
		}
	}
	return false
}

// ExitTo reports whether the room has an exit whose destination is dest.
func (r *GeneratedRoom) ExitTo(dest coord.RoomID) bool {
	for _, e := range r.Exits {
		if e.Destination == dest {
			return true
		}
	}
	return false
}
