// Package content holds the item, weapon, and hazard tables the simulator
// draws narrative material from. Each simulator instance owns its own
// Registry, so extension packs merged into one run never leak into another.
package content

import (
	"math/rand"
	"sort"

	"github.com/talgya/arenasim/internal/tribute"
)

// Unarmed are the fallback "weapons" every tribute always has on hand.
var Unarmed = []string{"fists", "rock", "stick"}

// FoodItem restores hunger when consumed during the nightly tick.
type FoodItem struct {
	Name   string
	Hunger float64
}

// DrinkItem restores stamina (and a little hunger) when consumed.
type DrinkItem struct {
	Name    string
	Stamina int
	Hunger  float64
}

// Registry is the mutable content state for one simulator instance.
type Registry struct {
	WeaponVerbs     map[string]string
	CornucopiaItems []string
	SupplyItems     []string
	Hazards         []string
	HazardEffects   map[string]string
	StatusVariants  map[string][]string
	LethalWeapons   map[string]bool
	HealItems       []string
	Foods           []FoodItem  // consumption priority order
	Drinks          []DrinkItem // consumption priority order
	ComfortItem     string
	Edibles         map[string]bool
	WeightOverrides map[string]float64

	weapons []string // cached sorted weapon list, rebuilt on merge
}

// DefaultRegistry returns the built-in content tables.
func DefaultRegistry() *Registry {
	r := &Registry{
		WeaponVerbs: map[string]string{
			"fists": "pummels", "rock": "bludgeons", "stick": "strikes", "knife": "slashes",
			"gun": "shoots", "bow": "shoots", "bow tie": "dazzles", "spear": "impales",
			"machete": "cleaves", "trident": "skewers", "slingshot": "snipes", "net": "ensnares",
			"pan": "clonks", "frying pan": "clonks", "taser": "zaps", "rubber chicken": "humiliates",
			"baguette": "wallops", "glitter bomb": "bedazzles", "garden gnome": "wallops",
			"foam sword": "bonks", "chainsaw": "rips", "umbrella": "jab-pokes", "yo-yo": "whips",
			"fish": "slaps", "harpoon": "skewers", "boomerang": "returns and whacks",
			"lute": "serenades then whacks", "meteor shard": "slices",
		},
		CornucopiaItems: []string{
			"knife", "gun", "bow", "medical kit", "rope", "canteen", "map", "compass",
			"flashlight", "shield", "spear", "helmet", "machete", "trident", "slingshot",
			"net", "taser", "pan", "frying pan", "chainsaw", "harpoon", "boomerang",
			"rubber chicken", "baguette", "glitter bomb", "garden gnome",
			"foam sword", "umbrella", "yo-yo", "fish", "egg", "lute",
		},
		SupplyItems: []string{
			"berries", "egg", "bandages", "water pouch", "protein bar", "energy drink",
			"antidote", "cloak", "snare wire", "fire starter", "sleeping bag", "binoculars",
			"adrenaline shot", "moral support note", "patch kit", "duct tape",
		},
		Hazards: []string{
			"acid rain", "falling debris", "poison mist", "lava vent", "wild animal",
			"flash flood", "earthquake", "forest fire", "quicksand", "sandstorm",
			"swarm of insects", "toxic spores", "lightning strike", "hail barrage",
			"rogue drone", "mutant vines", "radioactive plume", "hypersonic gust",
			"magnetic storm", "memory fog",
		},
		HazardEffects: map[string]string{
			"acid rain": "burned", "falling debris": "crushed", "poison mist": "poisoned", "lava vent": "scorched",
			"wild animal": "mauled", "flash flood": "swept away", "earthquake": "trampled", "forest fire": "burned",
			"quicksand": "engulfed", "sandstorm": "buried", "swarm of insects": "overwhelmed", "toxic spores": "choked",
			"lightning strike": "electrocuted", "hail barrage": "bludgeoned", "rogue drone": "laser-tagged fatally",
			"mutant vines": "constricted", "radioactive plume": "irradiated", "hypersonic gust": "rag-dolled",
			"magnetic storm": "crushed by flying metal", "memory fog": "forgot themselves and wandered off",
		},
		StatusVariants: map[string][]string{
			"frustrated":  {"frustrated", "exasperated", "annoyed", "irritated"},
			"shaken":      {"shaken", "rattled", "unnerved", "disturbed"},
			"singed":      {"singed", "scorched", "charred"},
			"disoriented": {"disoriented", "confused", "dazed", "lost"},
		},
		LethalWeapons: map[string]bool{
			"gun": true, "bow": true, "spear": true, "machete": true,
			"trident": true, "harpoon": true, "chainsaw": true, "knife": true,
		},
		HealItems: []string{"medical kit", "bandages", "antidote", "patch kit", "adrenaline shot"},
		Foods: []FoodItem{
			{Name: "protein bar", Hunger: 25},
			{Name: "berries", Hunger: 18},
			{Name: "egg", Hunger: 18},
		},
		Drinks: []DrinkItem{
			{Name: "energy drink", Stamina: 20, Hunger: 5},
			{Name: "water pouch", Stamina: 12, Hunger: 2},
		},
		ComfortItem: "sleeping bag",
		Edibles: map[string]bool{
			"berries": true, "protein bar": true, "egg": true,
			"water pouch": true, "energy drink": true,
		},
		WeightOverrides: map[string]float64{},
	}
	r.rebuildWeapons()
	return r
}

// Weapons returns the sorted list of real weapons (everything with a verb
// except the unarmed fallbacks). Sorted so random draws over it are stable.
func (r *Registry) Weapons() []string {
	return r.weapons
}

// IsWeapon reports whether the item counts as a real weapon.
func (r *Registry) IsWeapon(item string) bool {
	if _, ok := r.WeaponVerbs[item]; !ok {
		return false
	}
	for _, u := range Unarmed {
		if item == u {
			return false
		}
	}
	return true
}

// Verb returns the attack verb for a weapon, with a generic fallback.
func (r *Registry) Verb(weapon string) string {
	if v, ok := r.WeaponVerbs[weapon]; ok {
		return v
	}
	return "attacks"
}

// LootPool returns supply items plus weapons, the pool most loot draws use.
func (r *Registry) LootPool() []string {
	pool := make([]string, 0, len(r.SupplyItems)+len(r.weapons))
	pool = append(pool, r.SupplyItems...)
	pool = append(pool, r.weapons...)
	return pool
}

// ApplyStatusVariant adds one synonym from the base tag's variant group.
// If the tribute already carries any variant from the group, nothing is
// added; if the tag has no variant group, the plain tag is applied.
func (r *Registry) ApplyStatusVariant(t *tribute.Tribute, base string, rng *rand.Rand) {
	variants, ok := r.StatusVariants[base]
	if !ok || len(variants) == 0 {
		t.AddStatus(base)
		return
	}
	for _, v := range variants {
		if t.HasStatus(v) {
			return
		}
	}
	t.AddStatus(variants[rng.Intn(len(variants))])
}

// BiasedHazard draws a hazard, preferring the biome's hazard list 45% of
// the time when it is non-empty.
func (r *Registry) BiasedHazard(rng *rand.Rand, biomeHazards []string) string {
	if len(biomeHazards) > 0 && rng.Float64() < 0.45 {
		return biomeHazards[rng.Intn(len(biomeHazards))]
	}
	return r.Hazards[rng.Intn(len(r.Hazards))]
}

// HazardEffect returns the cause-of-death keyword for a hazard.
func (r *Registry) HazardEffect(hazard string) string {
	if e, ok := r.HazardEffects[hazard]; ok {
		return e
	}
	return "struck down"
}

func (r *Registry) rebuildWeapons() {
	r.weapons = r.weapons[:0]
	for w := range r.WeaponVerbs {
		if r.IsWeaponName(w) {
			r.weapons = append(r.weapons, w)
		}
	}
	sort.Strings(r.weapons)
}

// IsWeaponName reports whether the name is not an unarmed fallback. Unlike
// IsWeapon it does not require the verb table entry to already exist.
func (r *Registry) IsWeaponName(name string) bool {
	for _, u := range Unarmed {
		if name == u {
			return false
		}
	}
	return true
}
