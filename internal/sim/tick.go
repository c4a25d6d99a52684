package sim

import (
	"strings"

	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// resourceTick applies the nightly survival pass: hunger decay, stamina
// recovery, supply consumption, starvation risk, and movement under cover
// of darkness.
func (s *Simulator) resourceTick() {
	for _, t := range s.AliveTributes() {
		t.AdjustHunger(-0.1)
		t.AdjustStamina(+10)
		if t.Holds(s.Content.ComfortItem) {
			t.AdjustStamina(+10)
		}

		var ate, drank string
		if t.Hunger < 60 {
			for _, food := range s.Content.Foods {
				if t.RemoveItem(food.Name) {
					t.AdjustHunger(food.Hunger)
					t.AdjustMorale(+1)
					ate = food.Name
					break
				}
			}
		}
		if t.Stamina < 70 {
			for _, drink := range s.Content.Drinks {
				if t.RemoveItem(drink.Name) {
					t.AdjustStamina(drink.Stamina)
					t.AdjustHunger(drink.Hunger)
					drank = drink.Name
					break
				}
			}
		}

		if t.Hunger < 30 {
			t.AddStatus(tribute.StatusHungry)
		} else {
			t.RemoveStatus(tribute.StatusHungry)
		}
		if t.Hunger <= 0 {
			t.AddStatus(tribute.StatusStarving)
		} else {
			t.RemoveStatus(tribute.StatusStarving)
		}

		if t.Hunger <= 0 {
			risk := 0.15
			if t.HasTrait(tribute.TraitLucky) {
				risk -= 0.04
			}
			if entropy.Chance(s.rng, risk) {
				t.Kill("starvation")
				s.Rec.Linef("%s succumbs to starvation during the long night.", t.Name)
				s.Rec.RecordDeath(t.Name, t.CauseOfDeath, s.dayCount, blockNight)
				t.DeathLogged = true
				continue
			}
		}

		if entropy.Chance(s.rng, 0.30) {
			old := t.Region
			t.Region = entropy.Choice(s.rng, s.Map.Names())
			if t.Region != old {
				s.Rec.Linef("%s relocates from %s to %s (%s) under cover of darkness.",
					t.Name, old, t.Region, s.Map.BiomeName(t.Region))
			}
		}

		if ate != "" || drank != "" {
			var parts []string
			if ate != "" {
				parts = append(parts, "eats "+ate)
			}
			if drank != "" {
				parts = append(parts, "drinks "+drank)
			}
			s.Rec.Linef("%s %s and feels a bit better.", t.Name, strings.Join(parts, " and "))
		}
	}
}
