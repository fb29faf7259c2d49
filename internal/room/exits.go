package room

import (
	"context"
	"fmt"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/rng"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/settlement"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

// Exit rolling tunables for wilderness rooms. Settlements always open onto
// all four roads.
const (
	cardinalExitChance = 0.85
	verticalExitChance = 0.15
)

const (
	upwardFlavor   = "A narrow passage leads upward."
	downwardFlavor = "A dark opening descends into darkness."
)

// wildernessExits rolls the exit set for a wilderness room from the exits
// stream. Every direction consumes exactly one draw so the sequence stays
// stable as neighbors appear.
func (s *Service) wildernessExits(ctx context.Context, c coord.Coordinate, biome *catalog.BiomeDefinition, stream *rng.Stream) []Exit {
	var exits []Exit
	for _, d := range coord.CardinalDirections {
		if stream.Chance(cardinalExitChance) {
			exits = append(exits, s.newExit(ctx, c, d, biome))
		}
	}
	for _, d := range []coord.Direction{coord.Up, coord.Down} {
		if stream.Chance(verticalExitChance) {
			exits = append(exits, s.newExit(ctx, c, d, biome))
		}
	}
	return exits
}

// settlementExits gives a settlement room all four cardinal exits.
func (s *Service) settlementExits(ctx context.Context, c coord.Coordinate, biome *catalog.BiomeDefinition) []Exit {
	exits := make([]Exit, 0, len(coord.CardinalDirections))
	for _, d := range coord.CardinalDirections {
		exits = append(exits, s.newExit(ctx, c, d, biome))
	}
	return exits
}

func (s *Service) newExit(ctx context.Context, c coord.Coordinate, d coord.Direction, biome *catalog.BiomeDefinition) Exit {
	dest := c.Neighbor(d)
	return Exit{
		Direction:   d,
		Destination: dest.ID(),
		Description: s.describeExit(ctx, dest, d, biome),
	}
}

// describeExit implements the exit description policy: cached settlements and
// rooms are named directly; un-generated settlement locations get a preview
// name computed with the settlement naming algorithm, guaranteed to match
// what generation later produces for that seed; unknown destinations fall
// back to vertical or biome-flavored text.
func (s *Service) describeExit(ctx context.Context, dest coord.Coordinate, d coord.Direction, biome *catalog.BiomeDefinition) string {
	if destRoom, ok := s.peekRoom(ctx, dest); ok {
		return describeKnownDestination(destRoom, d)
	}

	if region := s.classifier.Classify(dest); region.Kind == worldgen.RegionSettlement {
		preview := settlement.Name(rng.Seed(dest))
		if d.Vertical() {
			return fmt.Sprintf("A worn stair leads %s toward %s.", d, preview)
		}
		return fmt.Sprintf("A road leads %s toward %s.", d, preview)
	}

	switch d {
	case coord.Up:
		return upwardFlavor
	case coord.Down:
		return downwardFlavor
	}

	if biome != nil && biome.ExitFlavor != "" {
		return fmt.Sprintf("To the %s, %s.", d, biome.ExitFlavor)
	}
	return fmt.Sprintf("The path continues %s.", d)
}

// describeReturnExit words the synthesized reciprocal exit from a neighbor
// back into r, which is always a generated room.
func (s *Service) describeReturnExit(r *GeneratedRoom, d coord.Direction) string {
	return describeKnownDestination(r, d)
}

func describeKnownDestination(dest *GeneratedRoom, d coord.Direction) string {
	if dest.Settlement != nil {
		stl := dest.Settlement.Settlement
		return fmt.Sprintf("The way %s leads to %s, a %s.", d, stl.Name, stl.Size)
	}
	if d.Vertical() {
		return fmt.Sprintf("A passage leads %s into %s.", d, dest.Name)
	}
	return fmt.Sprintf("To the %s lies %s.", d, dest.Name)
}
