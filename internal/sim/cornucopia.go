package sim

import (
	"fmt"
	"strings"

	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// cornucopiaPhase runs the opening bloodbath. Each tribute, in shuffled
// order, either fights over the hoard, grabs what they can, or flees.
// A tribute dragged into someone else's fight takes no turn of their own.
func (s *Simulator) cornucopiaPhase() {
	if s.cornDone {
		return
	}
	s.cornDone = true
	s.Rec.Line("--- Cornucopia (Bloodbath) ---")

	order := append([]*tribute.Tribute{}, s.AliveTributes()...)
	s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	engaged := map[string]bool{}
	var summary []string

	for _, t := range order {
		if !t.Alive || engaged[t.Key] {
			continue
		}
		roll := s.rng.Float64()
		switch {
		case roll < 0.30 && s.aliveCount() > 1:
			var opponents []*tribute.Tribute
			for _, o := range s.AliveTributes() {
				if o.Key != t.Key && !engaged[o.Key] {
					opponents = append(opponents, o)
				}
			}
			if len(opponents) == 0 {
				item := entropy.Choice(s.rng, s.Content.CornucopiaItems)
				t.Inventory = append(t.Inventory, item)
				summary = append(summary, fmt.Sprintf("%s hastily grabs %s.", t.Name, article(item)))
				continue
			}
			opp := entropy.Choice(s.rng, opponents)
			engaged[t.Key] = true
			engaged[opp.Key] = true
			probT := 0.5 + float64(t.Morale-opp.Morale)*0.05
			winner, loser := opp, t
			if entropy.Chance(s.rng, probT) {
				winner, loser = t, opp
			}
			loot := entropy.Choice(s.rng, s.Content.CornucopiaItems)
			winner.Inventory = append(winner.Inventory, loot)
			loser.Kill(fmt.Sprintf("bloodbath elimination by %s", winner.Name))
			winner.Kills++
			winner.Notoriety++
			winner.AdjustMorale(+1)
			summary = append(summary, fmt.Sprintf("%s overpowers %s at the Cornucopia and claims %s.", winner.Name, loser.Name, article(loot)))
		case roll < 0.70:
			grabs := entropy.IntBetween(s.rng, 1, 3)
			items := entropy.Sample(s.rng, s.Content.CornucopiaItems, grabs)
			t.Inventory = append(t.Inventory, items...)
			summary = append(summary, fmt.Sprintf("%s secures %s before retreating.", t.Name, strings.Join(items, ", ")))
		default:
			summary = append(summary, fmt.Sprintf("%s flees the Cornucopia empty-handed.", t.Name))
		}
	}
	for _, line := range summary {
		s.Rec.Line(line)
	}
	s.harvestFallen("bloodbath", "Fallen in the Bloodbath:")
}
