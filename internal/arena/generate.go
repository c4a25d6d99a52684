// Procedural arena generation using layered simplex noise.
// Generates elevation and moisture fields over the grid, derives a biome
// per cell, and names each region from biome-flavored word pools. Output is
// deterministic for a given config.
package arena

import (
	"fmt"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds arena generation parameters.
type GenConfig struct {
	Cols, Rows  int     // Grid dimensions
	Seed        int64   // Noise and naming seed
	MountainLvl float64 // Elevation threshold for mountains (0.0–1.0)
	WaterLvl    float64 // Elevation threshold for lakes (0.0–1.0)
}

// DefaultGenConfig returns a 10×10 arena matching the built-in map's scale.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{
		Cols:        10,
		Rows:        10,
		Seed:        seed,
		MountainLvl: 0.72,
		WaterLvl:    0.24,
	}
}

// Generate creates a complete arena map. The center cell always becomes the
// hub: a Ruins region holding the Cornucopia.
func Generate(cfg GenConfig) (*Map, error) {
	if cfg.Cols < 2 || cfg.Rows < 2 {
		return nil, fmt.Errorf("arena grid must be at least 2x2, got %dx%d", cfg.Cols, cfg.Rows)
	}

	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	wetNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	rng := rand.New(rand.NewSource(cfg.Seed + 100))

	hubCol, hubRow := cfg.Cols/2, cfg.Rows/2
	used := make(map[string]bool)
	regions := make([]Region, 0, cfg.Cols*cfg.Rows)
	var hubName string

	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			x, y := float64(col), float64(row)
			elev := octaveNoise(elevNoise, x, y, 4, 0.18, 0.5)
			wet := octaveNoise(wetNoise, x, y, 3, 0.14, 0.5)

			biome := deriveBiome(elev, wet, cfg)
			if col == hubCol && row == hubRow {
				biome = "Ruins"
			}

			name := regionName(rng, biome, used)
			r := Region{
				Name:     name,
				Col:      col,
				Row:      row,
				Biome:    biome,
				Features: featurePool[biome],
			}
			if col == hubCol && row == hubRow {
				hubName = name
				r.Features = append([]string{"Cornucopia"}, r.Features...)
			}
			regions = append(regions, r)
		}
	}

	return NewMap(regions, hubName)
}

// deriveBiome maps elevation and moisture to one of the built-in biomes.
func deriveBiome(elev, wet float64, cfg GenConfig) string {
	switch {
	case elev < cfg.WaterLvl:
		return "Lake"
	case elev > cfg.MountainLvl && wet < 0.35:
		return "Volcano"
	case elev > cfg.MountainLvl:
		return "Mountain"
	case wet > 0.72 && elev < 0.45:
		return "Swamp"
	case wet > 0.6:
		return "Marsh"
	case wet < 0.25 && elev > 0.5:
		return "Badlands"
	case wet < 0.3:
		return "Desert"
	case elev > 0.58:
		return "Hills"
	case wet > 0.45:
		return "Forest"
	default:
		return "Plains"
	}
}

var namePrefixes = map[string][]string{
	"Forest":   {"Whispering", "Cedar", "Hemlock", "Aspen", "Shadowed", "Juniper", "Yew", "Birch"},
	"Desert":   {"Sunbaked", "Blazing", "Dusty", "Salted", "Scorching", "Blistering"},
	"Swamp":    {"Soggy", "Winding", "Muddy", "Sunken", "Foggy"},
	"Marsh":    {"Reed", "Willow", "Cattail", "Mangrove", "Misty"},
	"Mountain": {"Granite", "Slate", "Basalt", "Quartz", "Echoing", "Redrock"},
	"Plains":   {"Windswept", "Golden", "Endless", "Amber", "Prairie"},
	"Ruins":    {"Forgotten", "Derelict", "Ancient", "Ruined", "Grey"},
	"Lake":     {"Mirror", "Serene", "Blue", "Crater", "Glass"},
	"Volcano":  {"Cinder", "Obsidian", "Magma", "Ash", "Lava"},
	"Hills":    {"Rolling", "Golden", "Misty", "Gentle"},
	"Badlands": {"Barren", "Cracked", "Broken", "Rusted"},
}

var nameSuffixes = map[string][]string{
	"Forest":   {"Woods", "Grove", "Thicket", "Forest", "Hollow"},
	"Desert":   {"Expanse", "Flats", "Dunes", "Wastes"},
	"Swamp":    {"Swamp", "Bog", "Mire", "Quag"},
	"Marsh":    {"Marsh", "Fen", "Shallows"},
	"Mountain": {"Ridge", "Cliffs", "Gorge", "Peaks"},
	"Plains":   {"Plains", "Fields", "Savannah", "Steppe"},
	"Ruins":    {"Keep", "Bastion", "Outpost", "Stronghold", "Citadel"},
	"Lake":     {"Lake", "Lagoon", "Delta", "Basin"},
	"Volcano":  {"Ridge", "Fields", "Vents", "Caldera"},
	"Hills":    {"Hills", "Knolls", "Downs"},
	"Badlands": {"Badlands", "Gullies", "Scarps"},
}

var featurePool = map[string][]string{
	"Forest":   {"dense trees", "hidden trails"},
	"Desert":   {"heat haze", "dust devils"},
	"Swamp":    {"bogs", "swamp gas"},
	"Marsh":    {"soggy ground", "tall reeds"},
	"Mountain": {"narrow paths", "sheer walls"},
	"Plains":   {"open fields", "burrows"},
	"Ruins":    {"crumbling walls", "watchtowers"},
	"Lake":     {"shoreline", "islets"},
	"Volcano":  {"lava flows", "heat vents"},
	"Hills":    {"rolling terrain", "hidden dips"},
	"Badlands": {"rocky outcrops", "dry gullies"},
}

// regionName synthesizes a unique prefix+suffix name for the biome,
// degrading to a numbered variant when the pools are exhausted.
func regionName(rng *rand.Rand, biome string, used map[string]bool) string {
	prefixes := namePrefixes[biome]
	suffixes := nameSuffixes[biome]
	if len(prefixes) == 0 || len(suffixes) == 0 {
		prefixes = namePrefixes["Plains"]
		suffixes = nameSuffixes["Plains"]
	}
	for attempt := 0; attempt < 20; attempt++ {
		name := prefixes[rng.Intn(len(prefixes))] + " " + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			return name
		}
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s %s %d", prefixes[0], suffixes[0], i)
		if !used[name] {
			used[name] = true
			return name
		}
	}
}

// octaveNoise layers multiple noise frequencies for natural variation.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
