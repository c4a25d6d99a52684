package sim

import (
	"fmt"
	"math/rand"

	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

var weatherKinds = []string{
	"frigid hail", "sweltering humidity", "dense fog", "glitter drizzle", "electrostatic haze",
}

func globalWeatherShift(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	weather := entropy.Choice(rng, weatherKinds)
	lines := []string{fmt.Sprintf("A sudden arena-wide weather shift blankets the zone in %s.", weather)}
	for _, t := range alive {
		if !t.Alive {
			continue
		}
		if (weather == "dense fog" || weather == "glitter drizzle") && entropy.Chance(rng, 0.25) {
			s.Content.ApplyStatusVariant(t, "disoriented", rng)
			lines = append(lines, fmt.Sprintf("%s becomes disoriented.", t.Name))
		}
		if weather == "frigid hail" && entropy.Chance(rng, 0.15) {
			t.AddStatus(tribute.StatusWounded)
			t.AdjustMorale(-1)
		}
	}
	return lines
}

func globalSafeZoneShrink(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	lines := []string{"Loud klaxons blare: the safe zone contracts sharply toward the Cornucopia."}
	var threatened []*tribute.Tribute
	for _, t := range alive {
		if t.Alive && entropy.Chance(rng, 0.25) {
			threatened = append(threatened, t)
		}
	}
	for _, t := range threatened {
		deathChance := 0.40 - float64(t.Morale-5)*0.02
		if t.HasTrait(tribute.TraitLucky) {
			deathChance -= 0.03
		}
		if entropy.Chance(rng, deathChance) {
			t.Kill("caught outside perimeter")
			lines = append(lines, fmt.Sprintf("%s is caught outside the new perimeter and collapses.", t.Name))
		} else {
			t.AdjustMorale(-1)
			lines = append(lines, fmt.Sprintf("%s barely sprints inside the perimeter, shaken.", t.Name))
		}
	}
	return lines
}

func globalRegionCollapse(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	hub := s.Map.Hub()
	var candidates []string
	for _, name := range s.Map.Names() {
		if name != hub {
			candidates = append(candidates, name)
		}
	}
	collapsing := entropy.Choice(rng, candidates)
	lines := []string{fmt.Sprintf("A siren howls: the %s region becomes a kill zone!", collapsing)}
	for _, t := range alive {
		if !t.Alive || t.Region != collapsing {
			continue
		}
		chance := 0.45 - float64(t.Morale-5)*0.02
		if t.HasTrait(tribute.TraitAgile) {
			chance -= 0.04
		}
		if t.HasTrait(tribute.TraitLucky) {
			chance -= 0.03
		}
		if entropy.Chance(rng, chance) {
			t.Kill(fmt.Sprintf("region collapse in %s", collapsing))
			lines = append(lines, fmt.Sprintf("%s is overwhelmed by the collapsing %s sector.", t.Name, collapsing))
		} else {
			t.Region = hub
			t.AdjustMorale(-1)
			lines = append(lines, fmt.Sprintf("%s escapes %s just in time and flees to %s.", t.Name, collapsing, hub))
		}
	}
	return lines
}

func globalSupplyShortage(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	lines := []string{"A scarcity protocol triggers: many food caches evaporate in a flash of light."}
	for _, t := range alive {
		if !t.Alive {
			continue
		}
		var edible []string
		for _, it := range t.Inventory {
			if s.Content.Edibles[it] {
				edible = append(edible, it)
			}
		}
		if len(edible) > 0 && entropy.Chance(rng, 0.5) {
			lost := entropy.Choice(rng, edible)
			t.RemoveItem(lost)
			t.AdjustMorale(-1)
			lines = append(lines, fmt.Sprintf("%s loses %s.", t.Name, lost))
		}
	}
	return lines
}
