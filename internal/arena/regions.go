package arena

// defaultRegions is the built-in 10×10 arena grid. The Citadel at (4,4)
// holds the Cornucopia.
var defaultRegions = []Region{
	// Row 0
	{Name: "Pointed Pines", Col: 0, Row: 0, Biome: "Forest", Features: []string{"tall pines", "forage spots"}},
	{Name: "Camelback Ridge", Col: 1, Row: 0, Biome: "Mountain", Features: []string{"cliffs", "thin air"}},
	{Name: "Snow Dunes", Col: 2, Row: 0, Biome: "Desert", Features: []string{"snow dunes", "mirages"}},
	{Name: "Frozen Plateau", Col: 3, Row: 0, Biome: "Tundra", Features: []string{"permafrost", "hail"}},
	{Name: "Glacial Glacier", Col: 4, Row: 0, Biome: "Glacier", Features: []string{"crevasses", "whiteout"}},
	{Name: "Deep Center", Col: 5, Row: 0, Biome: "Plains", Features: []string{"open fields", "scattered trees"}},
	{Name: "Secret Hollow", Col: 6, Row: 0, Biome: "Forest", Features: []string{"dense trees", "hidden paths"}},
	{Name: "Rocky Flats", Col: 7, Row: 0, Biome: "Flatlands", Features: []string{"rock formations", "caves"}},
	{Name: "Dusty Expanse", Col: 8, Row: 0, Biome: "Desert", Features: []string{"dust clouds", "dry riverbeds"}},
	{Name: "Whispering Woods", Col: 9, Row: 0, Biome: "Forest", Features: []string{"tall trees", "echoing sounds"}},
	// Row 1
	{Name: "Soggy Swamp", Col: 0, Row: 1, Biome: "Swamp", Features: []string{"bogs", "mosquitoes"}},
	{Name: "Wild Woods", Col: 1, Row: 1, Biome: "Forest", Features: []string{"dense underbrush"}},
	{Name: "Windswept Plains", Col: 2, Row: 1, Biome: "Plains", Features: []string{"open wind", "cover dips"}},
	{Name: "Grey Ruins", Col: 3, Row: 1, Biome: "Ruins", Features: []string{"crumbling walls", "drone beacons"}},
	{Name: "Definitely not a Sea Lake", Col: 4, Row: 1, Biome: "Lake", Features: []string{"shoreline", "islets"}},
	{Name: "Misty Hills", Col: 5, Row: 1, Biome: "Hills", Features: []string{"fog", "steep paths"}},
	{Name: "Ancient Grove", Col: 6, Row: 1, Biome: "Forest", Features: []string{"giant trees", "wildlife"}},
	{Name: "Barren Badlands", Col: 7, Row: 1, Biome: "Desert", Features: []string{"rocky outcrops", "dry gullies"}},
	{Name: "Echoing Canyon", Col: 8, Row: 1, Biome: "Mountain", Features: []string{"sheer walls", "echoes"}},
	{Name: "Thorny Thicket", Col: 9, Row: 1, Biome: "Forest", Features: []string{"thick brambles", "hidden trails"}},
	// Row 2
	{Name: "Winding Bog", Col: 0, Row: 2, Biome: "Swamp", Features: []string{"mire", "strangler vines"}},
	{Name: "Golden Plains", Col: 1, Row: 2, Biome: "Plains", Features: []string{"tall grass", "burrows"}},
	{Name: "Amber Waves", Col: 2, Row: 2, Biome: "Plains", Features: []string{"serene environment", "open fields"}},
	{Name: "Ash Fields", Col: 3, Row: 2, Biome: "Volcano", Features: []string{"ashfall", "vents"}},
	{Name: "River Delta", Col: 4, Row: 2, Biome: "Lake", Features: []string{"shallows", "reeds"}},
	{Name: "Crescent Cliffs", Col: 5, Row: 2, Biome: "Mountain", Features: []string{"cliffside", "rockslides"}},
	{Name: "Hidden Thicket", Col: 6, Row: 2, Biome: "Forest", Features: []string{"dense trees", "wildlife"}},
	{Name: "Sunbaked Flats", Col: 7, Row: 2, Biome: "Desert", Features: []string{"cracked earth", "heat mirages"}},
	{Name: "Rockslide Ridge", Col: 8, Row: 2, Biome: "Mountain", Features: []string{"unstable rocks", "narrow paths"}},
	{Name: "Shadowed Hollow", Col: 9, Row: 2, Biome: "Forest", Features: []string{"deep shade", "twisting paths"}},
	// Row 3
	{Name: "Salted Desert", Col: 0, Row: 3, Biome: "Desert", Features: []string{"salt flats", "dust devils"}},
	{Name: "Scree Ridge", Col: 1, Row: 3, Biome: "Mountain", Features: []string{"scree", "caves"}},
	{Name: "Murky Marsh", Col: 2, Row: 3, Biome: "Marsh", Features: []string{"suckholes", "gnats"}},
	{Name: "Volatile Volcano", Col: 3, Row: 3, Biome: "Volcano", Features: []string{"lava tubes", "heat shimmer"}},
	{Name: "Crystal Flats", Col: 4, Row: 3, Biome: "Flatlands", Features: []string{"glittering crust", "open sightlines"}},
	{Name: "Rolling Hills", Col: 5, Row: 3, Biome: "Hills", Features: []string{"gentle slopes", "hidden dips"}},
	{Name: "Birchwood Forest", Col: 6, Row: 3, Biome: "Forest", Features: []string{"birch trees", "leaf litter"}},
	{Name: "Dustbowl", Col: 7, Row: 3, Biome: "Desert", Features: []string{"dry soil", "dust devils"}},
	{Name: "Granite Gorge", Col: 8, Row: 3, Biome: "Mountain", Features: []string{"granite walls", "narrow paths"}},
	{Name: "Cedar Grove", Col: 9, Row: 3, Biome: "Forest", Features: []string{"cedar trees", "pine needles"}},
	// Row 4
	{Name: "Cloudy Cliffs", Col: 0, Row: 4, Biome: "Mountain", Features: []string{"sheer drops", "goat paths"}},
	{Name: "Amber Savannah", Col: 1, Row: 4, Biome: "Plains", Features: []string{"amber grass", "stray herds"}},
	{Name: "Sunken Gardens", Col: 2, Row: 4, Biome: "Swamp", Features: []string{"sunken ruins", "humid haze"}},
	{Name: "Mirror Lake", Col: 3, Row: 4, Biome: "Lake", Features: []string{"glass calm", "islands"}},
	{Name: "The Citadel", Col: 4, Row: 4, Biome: "Ruins", Features: []string{"ancient walls", "Cornucopia"}},
	{Name: "Far Reaches", Col: 5, Row: 4, Biome: "Desert", Features: []string{"sand dunes", "mirage pools"}},
	{Name: "Pine Barrens", Col: 6, Row: 4, Biome: "Forest", Features: []string{"pine trees", "wildlife"}},
	{Name: "Blasted Hearth", Col: 7, Row: 4, Biome: "Desert", Features: []string{"scorched earth", "heat haze"}},
	{Name: "Limestone Ledges", Col: 8, Row: 4, Biome: "Mountain", Features: []string{"limestone cliffs", "caves"}},
	{Name: "Maple Woods", Col: 9, Row: 4, Biome: "Forest", Features: []string{"maple trees", "leaf piles"}},
	// Row 5
	{Name: "Muddy Flats", Col: 0, Row: 5, Biome: "Swamp", Features: []string{"muddy ground", "swamp gas"}},
	{Name: "Prairie Winds", Col: 1, Row: 5, Biome: "Plains", Features: []string{"open fields", "strong winds"}},
	{Name: "Willow Marsh", Col: 2, Row: 5, Biome: "Marsh", Features: []string{"weeping willows", "soggy ground"}},
	{Name: "Blue Lagoon", Col: 3, Row: 5, Biome: "Lake", Features: []string{"clear water", "fish"}},
	{Name: "Old Fortress", Col: 4, Row: 5, Biome: "Ruins", Features: []string{"ruined walls", "watchtowers"}},
	{Name: "Scorched Expanse", Col: 5, Row: 5, Biome: "Volcano", Features: []string{"scorched earth", "lava flows"}},
	{Name: "Oakwood", Col: 6, Row: 5, Biome: "Forest", Features: []string{"oak trees", "acorns"}},
	{Name: "Redrock Canyon", Col: 7, Row: 5, Biome: "Mountain", Features: []string{"red rock", "narrow paths"}},
	{Name: "Canyon Springs", Col: 8, Row: 5, Biome: "Mountain", Features: []string{"water source", "steep walls"}},
	{Name: "Aspen Grove", Col: 9, Row: 5, Biome: "Forest", Features: []string{"aspen trees", "leaf piles"}},
	// Row 6
	{Name: "Thornbrush Thicket", Col: 0, Row: 6, Biome: "Forest", Features: []string{"thick brambles", "hidden trails"}},
	{Name: "Golden Hills", Col: 1, Row: 6, Biome: "Hills", Features: []string{"golden grass", "rolling terrain"}},
	{Name: "Reed Marsh", Col: 2, Row: 6, Biome: "Marsh", Features: []string{"tall reeds", "soggy ground"}},
	{Name: "Serene Lake", Col: 3, Row: 6, Biome: "Lake", Features: []string{"calm waters", "fish"}},
	{Name: "Ancient Outpost", Col: 4, Row: 6, Biome: "Ruins", Features: []string{"crumbling walls", "watchtowers"}},
	{Name: "Blazing Flats", Col: 5, Row: 6, Biome: "Desert", Features: []string{"scorched earth", "heat haze"}},
	{Name: "Firwood", Col: 6, Row: 6, Biome: "Forest", Features: []string{"fir trees", "pine needles"}},
	{Name: "Cinder Ridge", Col: 7, Row: 6, Biome: "Volcano", Features: []string{"cinder cones", "lava flows"}},
	{Name: "Granite Cliffs", Col: 8, Row: 6, Biome: "Mountain", Features: []string{"granite walls", "narrow paths"}},
	{Name: "Spruce Forest", Col: 9, Row: 6, Biome: "Forest", Features: []string{"spruce trees", "dense foliage"}},
	// Row 7
	{Name: "Tar Pits", Col: 0, Row: 7, Biome: "Pit", Features: []string{"tar pits", "sulfur vents"}},
	{Name: "Windy Plains", Col: 1, Row: 7, Biome: "Plains", Features: []string{"open fields", "strong winds"}},
	{Name: "Foggy Marsh", Col: 2, Row: 7, Biome: "Marsh", Features: []string{"thick fog", "soggy ground"}},
	{Name: "Crater Lake", Col: 3, Row: 7, Biome: "Craters", Features: []string{"crater walls", "rocky terrain"}},
	{Name: "Derelict Stronghold", Col: 4, Row: 7, Biome: "Ruins", Features: []string{"ruined walls", "watchtowers"}},
	{Name: "Blistering Expanse", Col: 5, Row: 7, Biome: "Desert", Features: []string{"scorched earth", "heat haze"}},
	{Name: "Hemlock Thicket", Col: 6, Row: 7, Biome: "Forest", Features: []string{"hemlock trees", "dense foliage"}},
	{Name: "Obsidian Ridge", Col: 7, Row: 7, Biome: "Volcano", Features: []string{"obsidian shards", "lava flows"}},
	{Name: "Slate Cliffs", Col: 8, Row: 7, Biome: "Mountain", Features: []string{"slate walls", "narrow paths"}},
	{Name: "Cypress Grove", Col: 9, Row: 7, Biome: "Forest", Features: []string{"cypress trees", "swampy ground"}},
	// Row 8
	{Name: "Quagmire", Col: 0, Row: 8, Biome: "Swamp", Features: []string{"quicksand", "swamp gas"}},
	{Name: "Prairie Fields", Col: 1, Row: 8, Biome: "Plains", Features: []string{"open fields", "burrows"}},
	{Name: "Mangrove Marsh", Col: 2, Row: 8, Biome: "Marsh", Features: []string{"mangroves", "soggy ground"}},
	{Name: "Meteor Crater", Col: 3, Row: 8, Biome: "Craters", Features: []string{"crater walls", "rocky terrain"}},
	{Name: "Forgotten Keep", Col: 4, Row: 8, Biome: "Ruins", Features: []string{"crumbling walls", "watchtowers"}},
	{Name: "Scorching Flats", Col: 5, Row: 8, Biome: "Desert", Features: []string{"scorched earth", "heat haze"}},
	{Name: "Juniper Wood", Col: 6, Row: 8, Biome: "Forest", Features: []string{"juniper trees", "pine needles"}},
	{Name: "Lava Ridge", Col: 7, Row: 8, Biome: "Volcano", Features: []string{"lava flows", "heat vents"}},
	{Name: "Basalt Cliffs", Col: 8, Row: 8, Biome: "Mountain", Features: []string{"basalt walls", "narrow paths"}},
	{Name: "Yew Forest", Col: 9, Row: 8, Biome: "Forest", Features: []string{"yew trees", "dense foliage"}},
	// Row 9
	{Name: "Swampy Hollow", Col: 0, Row: 9, Biome: "Swamp", Features: []string{"swamp gas", "bogs"}},
	{Name: "Endless Prairie", Col: 1, Row: 9, Biome: "Plains", Features: []string{"open fields", "burrows"}},
	{Name: "Cattail Marsh", Col: 2, Row: 9, Biome: "Marsh", Features: []string{"cattails", "soggy ground"}},
	{Name: "Ashen Crater", Col: 3, Row: 9, Biome: "Craters", Features: []string{"ash deposits", "rocky terrain"}},
	{Name: "Ruined Bastion", Col: 4, Row: 9, Biome: "Ruins", Features: []string{"crumbling walls", "watchtowers"}},
	{Name: "Blazing Desert", Col: 5, Row: 9, Biome: "Desert", Features: []string{"scorched earth", "heat haze"}},
	{Name: "Spruce Thicket", Col: 6, Row: 9, Biome: "Forest", Features: []string{"spruce trees", "dense foliage"}},
	{Name: "Magma Ridge", Col: 7, Row: 9, Biome: "Volcano", Features: []string{"magma flows", "heat vents"}},
	{Name: "Quartz Cliffs", Col: 8, Row: 9, Biome: "Mountain", Features: []string{"quartz walls", "narrow paths"}},
	{Name: "Fir Forest", Col: 9, Row: 9, Biome: "Forest", Features: []string{"fir trees", "pine needles"}},
}

// DefaultMap returns the built-in arena. The region data is static and
// validated at init time, so construction cannot fail.
func DefaultMap() *Map {
	m, err := NewMap(defaultRegions, "The Citadel")
	if err != nil {
		panic("arena: default map invalid: " + err.Error())
	}
	return m
}
