package settlement

import (
	"fmt"
	"strings"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

const problemChance = 0.5

// Generate runs the full ordered pipeline for one settlement coordinate:
// settlement identity, then NPCs, then buildings (with NPC assignment), then
// quests. Each stage reads its own offset stream of the room seed.
func Generate(seed uint32, roomID coord.RoomID, size worldgen.SizeClass, difficulty int) Result {
	s := generateSettlement(seed, roomID, size)
	npcs := generateNPCs(seed, roomID, size)
	buildings, npcs := generateBuildings(seed, roomID, size, npcs)
	quests := generateQuests(seed, roomID, difficulty, npcs)

	return Result{
		Settlement: s,
		NPCs:       npcs,
		Buildings:  buildings,
		Quests:     quests,
	}
}

// Name computes the settlement name for a seed without running the rest of
// the pipeline. Exit previews rely on this matching generation exactly, so it
// must consume the same leading draws of the settlement stream as Generate.
func Name(seed uint32) string {
	stream := rng.StreamFor(seed, rng.OffsetSettlement)
	return nameFromStream(stream)
}

func nameFromStream(stream *rng.Stream) string {
	prefix := rng.Pick(stream, namePrefixes)
	root := rng.Pick(stream, nameRoots)
	suffix := rng.Pick(stream, nameSuffixes)
	return prefix + root + suffix
}

func generateSettlement(seed uint32, roomID coord.RoomID, size worldgen.SizeClass) Settlement {
	stream := rng.StreamFor(seed, rng.OffsetSettlement)

	name := nameFromStream(stream)
	population := populationFor(size, stream)
	culture := rng.Pick(stream, cultures)

	problem := ""
	if stream.Chance(problemChance) {
		problem = rng.Pick(stream, problems)
	}

	return Settlement{
		ID:         fmt.Sprintf("stl:%s", roomID),
		Name:       name,
		Size:       size,
		Population: population,
		Culture:    culture,
		Problem:    problem,
	}
}

func populationFor(size worldgen.SizeClass, stream *rng.Stream) int {
	switch size {
	case worldgen.SizeHamlet:
		return stream.IntBetween(20, 60)
	case worldgen.SizeVillage:
		return stream.IntBetween(80, 300)
	case worldgen.SizeTown:
		return stream.IntBetween(400, 1500)
	case worldgen.SizeCity:
		return stream.IntBetween(2000, 8000)
	default:
		return stream.IntBetween(20, 60)
	}
}

func rosterSize(size worldgen.SizeClass, stream *rng.Stream) int {
	switch size {
	case worldgen.SizeHamlet:
		return stream.IntBetween(2, 3)
	case worldgen.SizeVillage:
		return stream.IntBetween(3, 5)
	case worldgen.SizeTown:
		return stream.IntBetween(5, 8)
	case worldgen.SizeCity:
		return stream.IntBetween(8, 12)
	default:
		return stream.IntBetween(2, 3)
	}
}

func generateNPCs(seed uint32, roomID coord.RoomID, size worldgen.SizeClass) []NPC {
	stream := rng.StreamFor(seed, rng.OffsetNPCs)

	count := rosterSize(size, stream)
	npcs := make([]NPC, 0, count)
	for i := 0; i < count; i++ {
		name := rng.Pick(stream, firstNames) + " " + rng.Pick(stream, lastNames)
		role := rng.Pick(stream, npcRoles)
		greeting := rng.Pick(stream, greetingTemplates)

		npcs = append(npcs, NPC{
			ID:       fmt.Sprintf("npc:%s:%d", roomID, i),
			Name:     name,
			Role:     role,
			Greeting: greeting,
		})
	}
	return npcs
}

func buildingCount(size worldgen.SizeClass, stream *rng.Stream) int {
	switch size {
	case worldgen.SizeHamlet:
		return stream.IntBetween(2, 3)
	case worldgen.SizeVillage:
		return stream.IntBetween(4, 6)
	case worldgen.SizeTown:
		return stream.IntBetween(6, 9)
	case worldgen.SizeCity:
		return stream.IntBetween(10, 12)
	default:
		return stream.IntBetween(2, 3)
	}
}

// generateBuildings creates the building set and assigns NPCs: each NPC ends
// up in at most one building, and some stay outdoors.
func generateBuildings(seed uint32, roomID coord.RoomID, size worldgen.SizeClass, npcs []NPC) ([]Building, []NPC) {
	stream := rng.StreamFor(seed, rng.OffsetBuildings)

	count := buildingCount(size, stream)
	if count > len(buildingTypes) {
		count = len(buildingTypes)
	}

	// Essential structures come first; bigger settlements reach further down
	// the type list.
	buildings := make([]Building, 0, count)
	for i := 0; i < count; i++ {
		buildingType := buildingTypes[i]
		names := buildingNamesByType[buildingType]

		name := "The " + buildingType
		if len(names) > 0 {
			name = rng.Pick(stream, names)
		}

		buildings = append(buildings, Building{
			ID:   fmt.Sprintf("bld:%s:%d", roomID, i),
			Name: name,
			Type: buildingType,
		})
	}

	assigned := make([]NPC, len(npcs))
	copy(assigned, npcs)
	for i := range assigned {
		// Index len(buildings) means the NPC stays outdoors.
		slot := stream.Intn(len(buildings) + 1)
		if slot < len(buildings) {
			assigned[i].BuildingID = buildings[slot].ID
		}
	}

	return buildings, assigned
}

func generateQuests(seed uint32, roomID coord.RoomID, difficulty int, npcs []NPC) []Quest {
	stream := rng.StreamFor(seed, rng.OffsetQuests)

	if len(npcs) == 0 {
		return nil
	}

	count := stream.IntBetween(1, 3)
	quests := make([]Quest, 0, count)
	for i := 0; i < count; i++ {
		questType := rng.Pick(stream, questTypes)
		name := rng.Pick(stream, questNameTemplates[questType])
		giver := rng.Pick(stream, npcs)

		questDifficulty := difficulty + stream.IntBetween(-1, 2)
		if questDifficulty < 1 {
			questDifficulty = 1
		}

		quests = append(quests, Quest{
			ID:         fmt.Sprintf("qst:%s:%d", roomID, i),
			Name:       name,
			Type:       questType,
			Difficulty: questDifficulty,
			Status:     QuestStatusAvailable,
			GiverNPCID: giver.ID,
		})
	}
	return quests
}

// Describe assembles the settlement room description: arrival phrase,
// size/culture sentence, the optional problem, and a grammatically joined
// list of up to four visible buildings.
func Describe(s Settlement, buildings []Building, stream *rng.Stream) string {
	var b strings.Builder

	arrival := rng.Pick(stream, arrivalPhrases)
	fmt.Fprintf(&b, "%s %s, %s of %s stock, home to some %d souls.",
		arrival, s.Name, sizeWithArticle(s.Size), s.Culture, s.Population)

	if s.Problem != "" {
		fmt.Fprintf(&b, " Word around here is that %s.", s.Problem)
	}

	if len(buildings) > 0 {
		fmt.Fprintf(&b, " You can see %s.", joinBuildingNames(buildings))
	}

	return b.String()
}

func sizeWithArticle(size worldgen.SizeClass) string {
	return "a " + string(size)
}

// joinBuildingNames renders "X", "X and Y", "X, Y, and Z", capping the list
// at four entries with a "+N more" tail.
func joinBuildingNames(buildings []Building) string {
	const visible = 4

	names := make([]string, 0, len(buildings))
	for _, b := range buildings {
		names = append(names, b.Name)
	}

	extra := 0
	if len(names) > visible {
		extra = len(names) - visible
		names = names[:visible]
	}

	var joined string
	switch len(names) {
	case 1:
		joined = names[0]
	case 2:
		joined = names[0] + " and " + names[1]
	default:
		joined = strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}

	if extra > 0 {
		joined = fmt.Sprintf("%s, and %d more", joined, extra)
	}
	return joined
}
