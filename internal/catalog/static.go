package catalog

// Static definition data bundled with the engine. The durable override store
// may replace individual entries by id; everything else falls back to these
// tables. Biome compatibility sets are kept symmetric here.

var staticBiomes = []BiomeDefinition{
	{
		ID:   "forest",
		Name: "Forest",
		NameTemplates: []string{
			"Whispering Woods",
			"Eldergrove",
			"Tanglewood Thicket",
			"The Mossy Stand",
			"Hollowbark Forest",
		},
		DescriptionTemplates: []string{
			"Tall trees crowd close, their canopy swallowing most of the light.",
			"Ferns and fallen trunks cover the forest floor in every direction.",
			"Birdsong filters down through layers of green shadow.",
		},
		EncounterChance:  0.30,
		ExitFlavor:       "the trees thicken into green shadow",
		CompatibleBiomes: []string{"forest", "plains", "hills", "swamp"},
	},
	{
		ID:   "plains",
		Name: "Plains",
		NameTemplates: []string{
			"Windmere Flats",
			"The Long Grass",
			"Sunfield Expanse",
			"Drover's Meadow",
		},
		DescriptionTemplates: []string{
			"Knee-high grass ripples toward a wide, open horizon.",
			"The land rolls gently here, broken only by lone standing stones.",
			"A steady wind combs the grassland flat.",
		},
		EncounterChance:  0.20,
		ExitFlavor:       "open grassland stretches toward the horizon",
		CompatibleBiomes: []string{"plains", "forest", "hills", "desert"},
	},
	{
		ID:   "hills",
		Name: "Hills",
		NameTemplates: []string{
			"The Barrow Downs",
			"Greyridge Slopes",
			"Shepherd's Rise",
			"Stonebrow Hills",
		},
		DescriptionTemplates: []string{
			"Rounded hills climb away in uneven steps of turf and stone.",
			"Scree slides mark the steeper faces of the surrounding slopes.",
			"From the crest, the land folds away in every direction.",
		},
		EncounterChance:  0.25,
		ExitFlavor:       "the ground rises in grassy folds",
		CompatibleBiomes: []string{"hills", "forest", "plains", "mountains", "tundra"},
	},
	{
		ID:   "mountains",
		Name: "Mountains",
		NameTemplates: []string{
			"The Grey Teeth",
			"Stormcrown Pass",
			"Cloudreach Spires",
			"The Shattered Wall",
		},
		DescriptionTemplates: []string{
			"Bare rock climbs into cloud, streaked with old snow.",
			"The wind howls between broken pinnacles of granite.",
			"A narrow track picks its way along the cliff face.",
		},
		EncounterChance:  0.35,
		ExitFlavor:       "sheer rock faces climb toward the clouds",
		CompatibleBiomes: []string{"mountains", "hills", "tundra", "caverns"},
	},
	{
		ID:   "desert",
		Name: "Desert",
		NameTemplates: []string{
			"The Shimmering Waste",
			"Redsand Reach",
			"Bonewind Dunes",
			"The Glass Flats",
		},
		DescriptionTemplates: []string{
			"Dunes march to the horizon under a punishing sun.",
			"Heat shimmer blurs the line between sand and sky.",
			"Wind-carved rock juts from the drifting sand.",
		},
		EncounterChance:  0.25,
		ExitFlavor:       "pale dunes shimmer in the heat",
		CompatibleBiomes: []string{"desert", "plains"},
	},
	{
		ID:   "swamp",
		Name: "Swamp",
		NameTemplates: []string{
			"Blackmire Fen",
			"The Drowned Garden",
			"Croakwater Marsh",
			"Rotroot Bog",
		},
		DescriptionTemplates: []string{
			"Still black water winds between hummocks of sodden moss.",
			"The air hangs thick with the smell of rot and stagnant water.",
			"Twisted trees stand knee-deep in the mire.",
		},
		EncounterChance:  0.35,
		ExitFlavor:       "dark water glints between drowned trees",
		CompatibleBiomes: []string{"swamp", "forest"},
	},
	{
		ID:   "tundra",
		Name: "Tundra",
		NameTemplates: []string{
			"The White Silence",
			"Frostheath",
			"Palewind Steppe",
			"The Frozen Shelf",
		},
		DescriptionTemplates: []string{
			"Frozen ground crunches underfoot beneath a slate-grey sky.",
			"Low, wind-bent scrub is the only thing growing here.",
			"Snow hisses across the ice in long ribbons.",
		},
		EncounterChance:  0.25,
		ExitFlavor:       "wind-scoured ice sheets reach into the distance",
		CompatibleBiomes: []string{"tundra", "hills", "mountains"},
	},
	{
		ID:   "caverns",
		Name: "Caverns",
		NameTemplates: []string{
			"The Echoing Deep",
			"Gloamhollow",
			"The Veins of the World",
			"Dripstone Gallery",
		},
		DescriptionTemplates: []string{
			"Stalactites hang above a floor of slick, ancient stone.",
			"Somewhere in the dark, water drips with perfect patience.",
			"The tunnel opens into a vault too large for the light to fill.",
		},
		EncounterChance:  0.40,
		ExitFlavor:       "the tunnel mouth breathes cold, mineral air",
		CompatibleBiomes: []string{"caverns", "mountains"},
	},
}

var staticEnemies = []EnemyDefinition{
	{ID: "wolf", Name: "Grey Wolf", BiomeID: "forest", MinDifficulty: 1, MaxDifficulty: 5, SpawnWeight: 40},
	{ID: "bandit", Name: "Bandit Scout", BiomeID: "forest", MinDifficulty: 2, MaxDifficulty: 8, SpawnWeight: 25},
	{ID: "dire-boar", Name: "Dire Boar", BiomeID: "forest", MinDifficulty: 4, MaxDifficulty: 10, SpawnWeight: 15},
	{ID: "plains-lion", Name: "Plains Lion", BiomeID: "plains", MinDifficulty: 2, MaxDifficulty: 7, SpawnWeight: 30},
	{ID: "raider", Name: "Mounted Raider", BiomeID: "plains", MinDifficulty: 3, MaxDifficulty: 9, SpawnWeight: 20},
	{ID: "hill-giant", Name: "Hill Giant", BiomeID: "hills", MinDifficulty: 6, MaxDifficulty: 14, SpawnWeight: 10},
	{ID: "barrow-wight", Name: "Barrow Wight", BiomeID: "hills", MinDifficulty: 4, MaxDifficulty: 12, SpawnWeight: 15},
	{ID: "rock-drake", Name: "Rock Drake", BiomeID: "mountains", MinDifficulty: 8, MaxDifficulty: 18, SpawnWeight: 10},
	{ID: "harpy", Name: "Harpy", BiomeID: "mountains", MinDifficulty: 5, MaxDifficulty: 12, SpawnWeight: 25},
	{ID: "sand-wraith", Name: "Sand Wraith", BiomeID: "desert", MinDifficulty: 5, MaxDifficulty: 13, SpawnWeight: 20},
	{ID: "scorpion", Name: "Giant Scorpion", BiomeID: "desert", MinDifficulty: 2, MaxDifficulty: 8, SpawnWeight: 35},
	{ID: "bog-lurker", Name: "Bog Lurker", BiomeID: "swamp", MinDifficulty: 3, MaxDifficulty: 10, SpawnWeight: 30},
	{ID: "marsh-hag", Name: "Marsh Hag", BiomeID: "swamp", MinDifficulty: 7, MaxDifficulty: 16, SpawnWeight: 10},
	{ID: "ice-stalker", Name: "Ice Stalker", BiomeID: "tundra", MinDifficulty: 4, MaxDifficulty: 12, SpawnWeight: 25},
	{ID: "frost-revenant", Name: "Frost Revenant", BiomeID: "tundra", MinDifficulty: 9, MaxDifficulty: 20, SpawnWeight: 8},
	{ID: "cave-spider", Name: "Cave Spider", BiomeID: "caverns", MinDifficulty: 2, MaxDifficulty: 9, SpawnWeight: 35},
	{ID: "deep-horror", Name: "Deep Horror", BiomeID: "caverns", MinDifficulty: 10, MaxDifficulty: 20, SpawnWeight: 5},
}

var staticItems = []ItemDefinition{
	{ID: "healing-herb", Name: "Healing Herb", BiomeID: "forest", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 40},
	{ID: "hunter-bow", Name: "Hunter's Bow", BiomeID: "forest", MinDifficulty: 3, MaxDifficulty: 12, SpawnWeight: 10},
	{ID: "wild-grain", Name: "Wild Grain", BiomeID: "plains", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 40},
	{ID: "traveler-cloak", Name: "Traveler's Cloak", BiomeID: "plains", MinDifficulty: 1, MaxDifficulty: 10, SpawnWeight: 15},
	{ID: "barrow-coin", Name: "Tarnished Barrow Coin", BiomeID: "hills", MinDifficulty: 2, MaxDifficulty: 20, SpawnWeight: 25},
	{ID: "climbing-rope", Name: "Climbing Rope", BiomeID: "mountains", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 30},
	{ID: "eagle-feather", Name: "Eagle Feather", BiomeID: "mountains", MinDifficulty: 4, MaxDifficulty: 15, SpawnWeight: 15},
	{ID: "sunstone", Name: "Sunstone Shard", BiomeID: "desert", MinDifficulty: 5, MaxDifficulty: 20, SpawnWeight: 10},
	{ID: "waterskin", Name: "Full Waterskin", BiomeID: "desert", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 35},
	{ID: "bog-iron", Name: "Lump of Bog Iron", BiomeID: "swamp", MinDifficulty: 2, MaxDifficulty: 20, SpawnWeight: 30},
	{ID: "frost-lichen", Name: "Frost Lichen", BiomeID: "tundra", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 35},
	{ID: "glowcap", Name: "Glowcap Mushroom", BiomeID: "caverns", MinDifficulty: 1, MaxDifficulty: 20, SpawnWeight: 35},
	{ID: "deep-crystal", Name: "Deep Crystal", BiomeID: "caverns", MinDifficulty: 8, MaxDifficulty: 20, SpawnWeight: 8},
}

var staticResources = []ResourceDefinition{
	{ID: "oak-stand", Name: "Old Oak Stand", BiomeID: "forest", SpawnWeight: 40},
	{ID: "berry-thicket", Name: "Berry Thicket", BiomeID: "forest", SpawnWeight: 30},
	{ID: "flax-patch", Name: "Flax Patch", BiomeID: "plains", SpawnWeight: 35},
	{ID: "clay-bank", Name: "Clay Bank", BiomeID: "plains", SpawnWeight: 20},
	{ID: "tin-seam", Name: "Tin Seam", BiomeID: "hills", SpawnWeight: 30},
	{ID: "granite-outcrop", Name: "Granite Outcrop", BiomeID: "hills", SpawnWeight: 25},
	{ID: "iron-vein", Name: "Iron Vein", BiomeID: "mountains", SpawnWeight: 30},
	{ID: "silver-vein", Name: "Silver Vein", BiomeID: "mountains", SpawnWeight: 10},
	{ID: "glass-sand", Name: "Fine Glass Sand", BiomeID: "desert", SpawnWeight: 30},
	{ID: "peat-bed", Name: "Peat Bed", BiomeID: "swamp", SpawnWeight: 35},
	{ID: "reed-bed", Name: "Reed Bed", BiomeID: "swamp", SpawnWeight: 25},
	{ID: "pack-ice", Name: "Clear Pack Ice", BiomeID: "tundra", SpawnWeight: 30},
	{ID: "crystal-cluster", Name: "Crystal Cluster", BiomeID: "caverns", SpawnWeight: 20},
	{ID: "mushroom-grove", Name: "Mushroom Grove", BiomeID: "caverns", SpawnWeight: 35},
}
