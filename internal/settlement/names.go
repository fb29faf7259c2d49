package settlement

// Template pools for the settlement pipeline. Editing these lists changes
// every world generated after the change; append rather than reorder where
// possible.

var namePrefixes = []string{
	"Alder", "Brack", "Cold", "Dun", "Elm", "Fen", "Gold", "Harrow",
	"Iron", "Karst", "Long", "Mern", "North", "Oak", "Pell", "Raven",
	"Stone", "Thorn", "Umber", "Wyn",
}

var nameRoots = []string{
	"bury", "combe", "dale", "ford", "gate", "haven", "holm", "mere",
	"mill", "moor", "stead", "ton", "wick", "worth",
}

var nameSuffixes = []string{
	"", "", "", " Cross", " Hollow", " Reach", " Rest",
}

var cultures = []string{
	"riverfolk", "highland", "forestborn", "trader", "old-imperial", "nomad",
}

var problems = []string{
	"wolves have been taking livestock after dark",
	"the well water has turned bitter and no one knows why",
	"a tax collector vanished on the road last month",
	"strange lights have been seen over the burial mounds",
	"bandits are demanding a toll on the east road",
	"the harvest is failing and tempers are short",
}

var firstNames = []string{
	"Aldric", "Bess", "Corin", "Dagna", "Edwin", "Ffion", "Gareth", "Hilda",
	"Ivo", "Jenna", "Kell", "Lissa", "Marrow", "Nia", "Osric", "Petra",
	"Quill", "Rowan", "Senna", "Tobin",
}

var lastNames = []string{
	"Ashdown", "Blackbriar", "Coppersmith", "Dunmore", "Eaves", "Fletcher",
	"Grimsby", "Hollowell", "Ironwood", "Kettleworth", "Larkspur", "Millbrook",
	"Netherfield", "Oxhart", "Pryce", "Quenby", "Ridgewell", "Stavely",
	"Thistlewood", "Underhill",
}

var npcRoles = []string{
	"innkeeper", "blacksmith", "farmer", "guard", "merchant", "healer",
	"fisher", "carpenter", "elder", "hunter",
}

var greetingTemplates = []string{
	"Well met, stranger. Not many pass through these days.",
	"You look road-worn. Rest a while if you like.",
	"New face, eh? Mind your manners and we'll get along.",
	"Welcome, traveler. Keep your blade sheathed and your coin ready.",
	"Good day to you. The roads treated you kindly, I hope.",
}

var arrivalPhrases = []string{
	"The road widens as you arrive at",
	"Smoke from cooking fires marks your approach to",
	"Worn cart tracks lead you into",
	"You pass a weathered boundary stone entering",
}

// buildingTypes is ordered from most essential to most cosmopolitan; larger
// settlements draw deeper into the list.
var buildingTypes = []string{
	"well", "tavern", "smithy", "chapel", "market", "general store",
	"mill", "stable", "alchemist", "guardhouse", "guildhall", "manor",
}

var buildingNamesByType = map[string][]string{
	"well":          {"Old Well", "Stone Well", "Market Well"},
	"tavern":        {"The Gilded Anchor", "The Sleeping Stag", "The Crooked Flagon", "The Last Lantern"},
	"smithy":        {"Brightforge Smithy", "The Anvil House", "Cinderhall Forge"},
	"chapel":        {"Chapel of the Dawn", "The Quiet Shrine", "Wayfarer's Chapel"},
	"market":        {"The Open Market", "Cobblestone Market"},
	"general store": {"The Provisioner", "Oddments and Ends", "The Trade Post"},
	"mill":          {"The Grist Mill", "Riverside Mill"},
	"stable":        {"The Post Stable", "Swifthoof Stables"},
	"alchemist":     {"The Glass Retort", "Mistress of Vials"},
	"guardhouse":    {"The Watch House", "The Gate Barracks"},
	"guildhall":     {"The Charter Hall", "Hall of Trades"},
	"manor":         {"The Old Manor", "Hillcrest Manor"},
}

var questTypes = []string{"hunt", "delivery", "escort", "gather", "investigate"}

var questNameTemplates = map[string][]string{
	"hunt":        {"Cull the Pack", "A Beast in the Dark", "Trophies for the Wall"},
	"delivery":    {"A Parcel for the Neighbors", "Letters on the Long Road", "Fragile Cargo"},
	"escort":      {"Safe Passage", "The Merchant's Shadow", "Walk Them Home"},
	"gather":      {"What the Land Provides", "The Healer's List", "Stores for Winter"},
	"investigate": {"Something in the Water", "The Empty House", "Tracks Past the Fence"},
}
