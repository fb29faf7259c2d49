// Package settlement generates the settlement sub-pipeline: settlement
// identity, NPC roster, buildings and quests. Every stage is a pure function
// of the settlement seed plus the outputs of the prior stage, so re-running
// the pipeline for a coordinate reproduces identical results.
package settlement

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// Settlement is the identity record generated once per settlement coordinate.
type Settlement struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Size       worldgen.SizeClass `json:"size"`
	Population int                `json:"population"`
	Culture    string             `json:"culture"`
	// Problem is an optional short narrative hook; empty when the settlement
	// has none.
	Problem string `json:"problem,omitempty"`
}

// NPC is one settlement inhabitant. BuildingID is empty for NPCs found
// outdoors; an NPC is assigned to at most one building.
type NPC struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Greeting   string `json:"greeting"`
	BuildingID string `json:"building_id,omitempty"`
}

// Building is one structure in a settlement.
type Building struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Quest is one hook offered in a settlement, always tied to a giver NPC.
type Quest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
	Status     string `json:"status"`
	GiverNPCID string `json:"giver_npc_id"`
}

// QuestStatusAvailable is the status every quest carries at generation time;
// progression is owned by the game simulation outside this engine.
const QuestStatusAvailable = "available"

// Result bundles the output of the full pipeline for one settlement room.
type Result struct {
	Settlement Settlement `json:"settlement"`
	NPCs       []NPC      `json:"npcs"`
	Buildings  []Building `json:"buildings"`
	Quests     []Quest    `json:"quests"`
}

// HasShop reports whether a building type trades goods, exposed to clients as
// a plain boolean instead of raw inventory.
func HasShop(buildingType string) bool {
	switch buildingType {
	case "market", "smithy", "general store", "alchemist", "tavern":
		return true
	default:
		return false
	}
}
