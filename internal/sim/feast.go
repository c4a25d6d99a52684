package sim

import (
	"fmt"

	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// feastPhase is the day-3 mid-game lure: opt-in participants pair off and
// either clash over the restocked hoard or split it and disengage.
func (s *Simulator) feastPhase() {
	s.feastDone = true
	s.Rec.Line("")
	s.Rec.Line("=== The Feast is announced! ===")

	var participants []*tribute.Tribute
	for _, t := range s.AliveTributes() {
		if entropy.Chance(s.rng, 0.65) {
			participants = append(participants, t)
		}
	}
	if len(participants) < 2 {
		s.Rec.Line("No one risks attending the Feast.")
		return
	}
	s.rng.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})
	pool := s.Content.LootPool()
	for i := 0; i < len(participants); i += 2 {
		if i+1 >= len(participants) {
			p := participants[i]
			item := entropy.Choice(s.rng, pool)
			p.Inventory = append(p.Inventory, item)
			s.Rec.Linef("%s sneaks in late and grabs %s uncontested.", p.Name, article(item))
			continue
		}
		a, b := participants[i], participants[i+1]
		if !a.Alive || !b.Alive {
			continue
		}
		probA := 0.5 + float64(a.Morale-b.Morale)*0.04
		if entropy.Chance(s.rng, 0.55) {
			winner, loser := b, a
			if entropy.Chance(s.rng, probA) {
				winner, loser = a, b
			}
			loser.Kill(fmt.Sprintf("Feast clash vs %s", winner.Name))
			winner.Kills++
			loot := entropy.Choice(s.rng, pool)
			winner.Inventory = append(winner.Inventory, loot)
			s.Rec.Linef("%s defeats %s at the Feast and seizes %s.", winner.Name, loser.Name, article(loot))
		} else {
			lootA := entropy.Choice(s.rng, pool)
			lootB := entropy.Choice(s.rng, pool)
			a.Inventory = append(a.Inventory, lootA)
			b.Inventory = append(b.Inventory, lootB)
			s.Rec.Linef("%s and %s snatch %s and %s then disengage.", a.Name, b.Name, article(lootA), article(lootB))
		}
	}
}
