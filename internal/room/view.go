package room

import (
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/settlement"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// RoomView is the client-safe projection of a generated room. It carries no
// generation seed and no raw pool weights; settlement data is reduced to
// summary Info shapes.
type RoomView struct {
	ID          string     `json:"id"`
	X           int        `json:"x"`
	Y           int        `json:"y"`
	Z           int        `json:"z"`
	BiomeID     string     `json:"biome_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  int        `json:"difficulty"`
	Exits       []ExitView `json:"exits"`

	Items         []worldgen.ItemSpawn         `json:"items,omitempty"`
	Enemies       []worldgen.EnemySpawn        `json:"enemies,omitempty"`
	ResourceNodes []worldgen.ResourceNodeSpawn `json:"resource_nodes,omitempty"`

	Settlement *SettlementInfo `json:"settlement,omitempty"`
}

type ExitView struct {
	Direction   string `json:"direction"`
	Destination string `json:"destination"`
	Description string `json:"description"`
}

type SettlementInfo struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Size       string         `json:"size"`
	Population int            `json:"population"`
	Culture    string         `json:"culture"`
	Problem    string         `json:"problem,omitempty"`
	NPCs       []NPCInfo      `json:"npcs"`
	Buildings  []BuildingInfo `json:"buildings"`
	Quests     []QuestInfo    `json:"quests"`
}

type NPCInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Greeting string `json:"greeting"`
}

type BuildingInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	HasShop bool   `json:"has_shop"`
}

type QuestInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
	Status     string `json:"status"`
	GiverName  string `json:"giver_name"`
}

// NewView builds the client projection for a generated room.
func NewView(r *GeneratedRoom) RoomView {
	view := RoomView{
		ID:          string(r.ID),
		X:           r.Coordinate.X,
		Y:           r.Coordinate.Y,
		Z:           r.Coordinate.Z,
		BiomeID:     r.BiomeID,
		Name:        r.Name,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		Exits:       make([]ExitView, 0, len(r.Exits)),
	}

	for _, e := range r.Exits {
		view.Exits = append(view.Exits, ExitView{
			Direction:   string(e.Direction),
			Destination: string(e.Destination),
			Description: e.Description,
		})
	}

	if r.Wilderness != nil {
		view.Items = r.Wilderness.Items
		view.Enemies = r.Wilderness.Enemies
		view.ResourceNodes = r.Wilderness.ResourceNodes
	}

	if r.Settlement != nil {
		view.Settlement = newSettlementInfo(r.Settlement)
	}

	return view
}

func newSettlementInfo(content *SettlementContent) *SettlementInfo {
	info := &SettlementInfo{
		ID:         content.Settlement.ID,
		Name:       content.Settlement.Name,
		Size:       string(content.Settlement.Size),
		Population: content.Settlement.Population,
		Culture:    content.Settlement.Culture,
		Problem:    content.Settlement.Problem,
		NPCs:       make([]NPCInfo, 0, len(content.NPCs)),
		Buildings:  make([]BuildingInfo, 0, len(content.Buildings)),
		Quests:     make([]QuestInfo, 0, len(content.Quests)),
	}

	npcNames := make(map[string]string, len(content.NPCs))
	for _, npc := range content.NPCs {
		npcNames[npc.ID] = npc.Name
		info.NPCs = append(info.NPCs, NPCInfo{
			ID:       npc.ID,
			Name:     npc.Name,
			Role:     npc.Role,
			Greeting: npc.Greeting,
		})
	}

	for _, b := range content.Buildings {
		info.Buildings = append(info.Buildings, BuildingInfo{
			ID:      b.ID,
			Name:    b.Name,
			Type:    b.Type,
			HasShop: settlement.HasShop(b.Type),
		})
	}

	for _, q := range content.Quests {
		info.Quests = append(info.Quests, QuestInfo{
			ID:         q.ID,
			Name:       q.Name,
			Type:       q.Type,
			Difficulty: q.Difficulty,
			Status:     q.Status,
			GiverName:  npcNames[q.GiverNPCID],
		})
	}

	return info
}
