package sim

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/arenasim/internal/tribute"
)

// announceWinner reports the outcome and the final standings.
func (s *Simulator) announceWinner() {
	winners := s.AliveTributes()
	switch {
	case len(winners) > 1 && s.dayCount >= s.Cfg.MaxDays:
		s.Rec.Line("")
		s.Rec.Line("ARENA FORCED SHUTDOWN: Multiple survivors remain!")
		for _, w := range winners {
			s.Rec.Linef("Survivor: %s (District %d, Kills: %d, Notoriety:%d)", w.Name, w.District, w.Kills, w.Notoriety)
		}
	case len(winners) > 1 && s.Cfg.StrictShutdown > 0 && s.dayCount >= s.Cfg.StrictShutdown:
		s.Rec.Line("")
		s.Rec.Line("EARLY SHUTDOWN: Multiple survivors extracted!")
		for _, w := range winners {
			s.Rec.Linef("Extracted: %s (District %d, Kills: %d, Notoriety:%d)", w.Name, w.District, w.Kills, w.Notoriety)
		}
	case len(winners) == 1:
		w := winners[0]
		s.Rec.Line("")
		s.Rec.Linef("VICTOR: %s (District %d, Kills: %d, Notoriety:%d)", w.Name, w.District, w.Kills, w.Notoriety)
	default:
		s.Rec.Line("")
		s.Rec.Line("No victor emerged. The arena claims all.")
	}

	s.Rec.Line("")
	s.Rec.Line("Final standings:")
	for i, t := range s.Standings() {
		s.Rec.Linef(" %s - %s", humanize.Ordinal(i+1), t)
	}
}

// Standings returns all tributes ordered best-first: survivors before the
// fallen, then by kills, notoriety, and name.
func (s *Simulator) Standings() []*tribute.Tribute {
	ranked := append([]*tribute.Tribute{}, s.Tributes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Alive != b.Alive {
			return a.Alive
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		if a.Notoriety != b.Notoriety {
			return a.Notoriety > b.Notoriety
		}
		return a.Name < b.Name
	})
	return ranked
}

// outputStats writes the end-of-run statistics summary.
func (s *Simulator) outputStats() {
	s.Rec.Line("")
	s.Rec.Line("=== Statistics Summary ===")

	killers := append([]*tribute.Tribute{}, s.Tributes...)
	sort.SliceStable(killers, func(i, j int) bool { return killers[i].Kills > killers[j].Kills })
	var top []*tribute.Tribute
	for _, t := range killers {
		if t.Kills > 0 {
			top = append(top, t)
		}
		if len(top) == 5 {
			break
		}
	}
	if len(top) > 0 {
		s.Rec.Line("Top Killers:")
		for _, t := range top {
			s.Rec.Linef("  %s: %s (Notoriety %d)", t.Name, pluralKills(t.Kills), t.Notoriety)
		}
	}

	if trend := s.Rec.Stats.DayMoraleAvg; len(trend) > 0 {
		parts := make([]string, len(trend))
		for i, m := range trend {
			parts[i] = fmt.Sprintf("%.1f", m)
		}
		s.Rec.Linef("Average Morale Trend: %s", strings.Join(parts, ", "))
	}

	causes := map[string]int{}
	var order []string
	for _, d := range s.Rec.DeathLog {
		if causes[d.Cause] == 0 {
			order = append(order, d.Cause)
		}
		causes[d.Cause]++
	}
	if len(order) > 0 {
		// Most frequent first; first-seen order breaks ties deterministically.
		sort.SliceStable(order, func(i, j int) bool { return causes[order[i]] > causes[order[j]] })
		s.Rec.Line("Death Causes:")
		for _, cause := range order {
			s.Rec.Linef("  %s: %d", cause, causes[cause])
		}
	}

	s.Rec.Linef("Total Events Run: %d", s.Rec.Stats.EventsRun)
	s.Rec.Linef("Reproducible with seed %d", s.Cfg.Seed)
}

func pluralKills(n int) string {
	if n == 1 {
		return "1 kill"
	}
	return fmt.Sprintf("%d kills", n)
}
