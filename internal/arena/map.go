package arena

import "fmt"

// Region is one named cell of the arena grid.
type Region struct {
	Name     string   `json:"name" yaml:"name"`
	Col      int      `json:"col" yaml:"col"`
	Row      int      `json:"row" yaml:"row"`
	Biome    string   `json:"biome" yaml:"biome"`
	Features []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// Map holds the full region grid plus lookup indexes. Regions keep their
// construction order so that seeded random draws over region names are
// reproducible.
type Map struct {
	regions []Region
	names   []string
	byName  map[string]int
	byGrid  map[[2]int]int
	hub     string
}

// NewMap builds a map from a region list. The hub is the region treated as
// the Cornucopia site (survivors of a region collapse flee there). Region
// names and grid cells must be unique, biomes must be known, and the hub
// must name one of the regions.
func NewMap(regions []Region, hub string) (*Map, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("arena map needs at least one region")
	}
	m := &Map{
		regions: make([]Region, len(regions)),
		names:   make([]string, len(regions)),
		byName:  make(map[string]int, len(regions)),
		byGrid:  make(map[[2]int]int, len(regions)),
		hub:     hub,
	}
	copy(m.regions, regions)
	for i, r := range m.regions {
		if r.Name == "" {
			return nil, fmt.Errorf("region %d has an empty name", i)
		}
		if _, dup := m.byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate region name %q", r.Name)
		}
		cell := [2]int{r.Col, r.Row}
		if _, dup := m.byGrid[cell]; dup {
			return nil, fmt.Errorf("regions %q and %q share grid cell (%d,%d)", m.regions[m.byGrid[cell]].Name, r.Name, r.Col, r.Row)
		}
		if _, ok := Biomes[r.Biome]; !ok {
			return nil, fmt.Errorf("region %q has unknown biome %q", r.Name, r.Biome)
		}
		m.byName[r.Name] = i
		m.byGrid[cell] = i
		m.names[i] = r.Name
	}
	if _, ok := m.byName[hub]; !ok {
		return nil, fmt.Errorf("hub region %q is not on the map", hub)
	}
	return m, nil
}

// Names returns all region names in construction order. Callers must not
// mutate the returned slice.
func (m *Map) Names() []string {
	return m.names
}

// Len returns the number of regions.
func (m *Map) Len() int {
	return len(m.regions)
}

// Contains reports whether the named region exists.
func (m *Map) Contains(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Region returns the named region.
func (m *Map) Region(name string) (Region, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Region{}, false
	}
	return m.regions[i], true
}

// BiomeName returns the biome of the named region, or "Unknown".
func (m *Map) BiomeName(name string) string {
	if r, ok := m.Region(name); ok {
		return r.Biome
	}
	return "Unknown"
}

// BiomeOf returns the biome info for the named region's biome.
func (m *Map) BiomeOf(name string) Biome {
	return BiomeInfo(m.BiomeName(name))
}

// Adjacent returns the regions at Manhattan distance 1 from the named
// region (4-directional), in a fixed N/S/W/E order.
func (m *Map) Adjacent(name string) []string {
	i, ok := m.byName[name]
	if !ok {
		return nil
	}
	r := m.regions[i]
	var out []string
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		if j, ok := m.byGrid[[2]int{r.Col + d[0], r.Row + d[1]}]; ok {
			out = append(out, m.regions[j].Name)
		}
	}
	return out
}

// Near reports whether two regions are the same or grid-adjacent. This is
// the co-location gate interaction events use.
func (m *Map) Near(a, b string) bool {
	if a == b {
		return true
	}
	for _, n := range m.Adjacent(a) {
		if n == b {
			return true
		}
	}
	return false
}

// Hub returns the Cornucopia region name.
func (m *Map) Hub() string {
	return m.hub
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(regions=%d, hub=%s)", len(m.regions), m.hub)
}
