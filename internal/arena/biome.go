// Package arena provides the region grid the tournament is played on:
// named regions laid out on rectangular grid coordinates, each tagged with
// a biome that biases environmental hazards. The core consumes the map
// read-only; construction happens once, before a run starts.
package arena

// Biome is a terrain category. Fill is the display color for map renderers
// and is irrelevant to simulation logic. EnvDelta shifts the lethality of
// environmental hazard events for tributes standing in the biome, and
// Hazards lists the hazard names the biome biases selection toward.
type Biome struct {
	Fill     string   `json:"fill" yaml:"fill"`
	EnvDelta float64  `json:"env_delta" yaml:"env_delta"`
	Hazards  []string `json:"hazards" yaml:"hazards"`
}

// Biomes is the built-in biome table. Read-only.
var Biomes = map[string]Biome{
	"Forest":    {Fill: "#1e3b2a", EnvDelta: -0.02, Hazards: []string{"forest fire", "toxic spores", "swarm of insects"}},
	"Desert":    {Fill: "#5a4b2c", EnvDelta: 0.02, Hazards: []string{"sandstorm", "hail barrage"}},
	"Swamp":     {Fill: "#243a2a", EnvDelta: 0.01, Hazards: []string{"toxic spores", "quicksand", "swarm of insects"}},
	"Marsh":     {Fill: "#2a3a2e", EnvDelta: 0.01, Hazards: []string{"mutant vines", "wild animal", "swarm of insects"}},
	"Mountain":  {Fill: "#3b3f4a", EnvDelta: 0.01, Hazards: []string{"falling debris", "lightning strike", "earthquake"}},
	"Plains":    {Fill: "#2e3b4f", EnvDelta: 0.00, Hazards: []string{"flash flood", "hail barrage"}},
	"Ruins":     {Fill: "#3a2e3f", EnvDelta: 0.01, Hazards: []string{"falling debris", "rogue drone"}},
	"Lake":      {Fill: "#203a4f", EnvDelta: -0.01, Hazards: []string{"flash flood", "acid rain"}},
	"Tundra":    {Fill: "#2f3b3f", EnvDelta: 0.01, Hazards: []string{"hail barrage", "hypersonic gust"}},
	"Volcano":   {Fill: "#4a2e2e", EnvDelta: 0.03, Hazards: []string{"lava vent", "falling debris"}},
	"Pit":       {Fill: "#2e2e2e", EnvDelta: 0.02, Hazards: []string{"falling debris", "wild animal"}},
	"Craters":   {Fill: "#3b2e2e", EnvDelta: 0.02, Hazards: []string{"lava vent", "wild animal"}},
	"Flatlands": {Fill: "#4a4a6e", EnvDelta: 0.00, Hazards: []string{"magnetic storm", "falling debris"}},
	"Hills":     {Fill: "#3b4f2e", EnvDelta: 0.00, Hazards: []string{"wild animal", "earthquake"}},
	"Badlands":  {Fill: "#4f3b2e", EnvDelta: 0.02, Hazards: []string{"sandstorm", "flash flood"}},
	"Canyon":    {Fill: "#4a3b2e", EnvDelta: 0.01, Hazards: []string{"falling debris", "wild animal"}},
	"Glacier":   {Fill: "#2e4f5a", EnvDelta: -0.01, Hazards: []string{"hail barrage", "hypersonic gust"}},
	"Unknown":   {Fill: "#2e3b4f", EnvDelta: 0.00, Hazards: nil},
}

// BiomeInfo looks up a biome by name, falling back to "Unknown" so callers
// never need a second return value.
func BiomeInfo(name string) Biome {
	if b, ok := Biomes[name]; ok {
		return b
	}
	return Biomes["Unknown"]
}
