package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/talgya/arenasim/internal/alliance"
	"github.com/talgya/arenasim/internal/arena"
	"github.com/talgya/arenasim/internal/content"
	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// Simulator owns one tournament run: the tribute population, the alliance
// graph, the content registry, the event catalog, and the single seeded
// random stream everything draws from. Execution is single-threaded and
// fully deterministic for a given (seed, roster, config, extensions).
type Simulator struct {
	Cfg       Config
	Map       *arena.Map
	Content   *content.Registry
	Catalog   *Catalog
	Tributes  []*tribute.Tribute
	Alliances *alliance.Manager
	Rec       *Recorder

	rng      *rand.Rand
	dayCount int

	// Phase state machine.
	phase      phase
	eventsLeft int
	block      string // "day" or "night"
	cornDone   bool
	feastDone  bool
}

// New builds a simulator from a validated config and roster. A nil arena
// map or content registry selects the built-in defaults. Extensions must be
// merged into the registry before New so that tribute placement and every
// later draw see the final content.
func New(cfg Config, roster tribute.Roster, m *arena.Map, reg *content.Registry) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	if m == nil {
		m = arena.DefaultMap()
	}
	if reg == nil {
		reg = content.DefaultRegistry()
	}

	s := &Simulator{
		Cfg:       cfg,
		Map:       m,
		Content:   reg,
		Alliances: alliance.NewManager(),
		Rec:       newRecorder(cfg.LogSink),
		rng:       entropy.NewStream(cfg.Seed),
		phase:     phaseIntro,
	}
	s.Catalog = newCatalog(reg)

	// Tribute construction consumes seeded draws in roster order: region
	// first, then the trait band roll, then the trait sample.
	for _, e := range roster {
		t := tribute.New(e.Key, e.Name, e.Gender, e.Age, e.District)
		t.Region = entropy.Choice(s.rng, m.Names())
		r := s.rng.Float64()
		num := 0
		if r < 0.55 {
			num = 1
		}
		if r < 0.20 {
			num = 2
		}
		if num > 0 {
			t.Traits = entropy.Sample(s.rng, tribute.TraitPool, num)
		}
		s.Tributes = append(s.Tributes, t)
	}
	return s, nil
}

// Day returns the current day count.
func (s *Simulator) Day() int {
	return s.dayCount
}

// AliveTributes returns the living population in roster order.
func (s *Simulator) AliveTributes() []*tribute.Tribute {
	var alive []*tribute.Tribute
	for _, t := range s.Tributes {
		if t.Alive {
			alive = append(alive, t)
		}
	}
	return alive
}

// aliveCount avoids the slice allocation when only the number matters.
func (s *Simulator) aliveCount() int {
	n := 0
	for _, t := range s.Tributes {
		if t.Alive {
			n++
		}
	}
	return n
}

// near reports whether two tributes can interact: same or adjacent region.
func (s *Simulator) near(a, b *tribute.Tribute) bool {
	return s.Map.Near(a.Region, b.Region)
}

// postEventCleanup runs after every event slot. Duplicate clutter items are
// trimmed (a tribute needs at most one moral support note).
func (s *Simulator) postEventCleanup() {
	for _, t := range s.Tributes {
		if !t.Alive {
			continue
		}
		seenNote := false
		filtered := t.Inventory[:0]
		for _, it := range t.Inventory {
			if it == "moral support note" {
				if seenNote {
					continue
				}
				seenNote = true
			}
			filtered = append(filtered, it)
		}
		t.Inventory = filtered
	}
}

// harvestFallen reports deaths accumulated since the last harvest under the
// given heading, writes their death log entries, and prunes alliances.
// Deaths are batched per block rather than logged at the instant they occur.
func (s *Simulator) harvestFallen(phaseName, heading string) {
	var fallen []*tribute.Tribute
	for _, t := range s.Tributes {
		if !t.Alive && !t.DeathLogged {
			fallen = append(fallen, t)
		}
	}
	if len(fallen) > 0 {
		s.Rec.Line("")
		s.Rec.Line(heading)
		for _, f := range fallen {
			s.Rec.Linef(" - %s", f.Name)
			f.DeathLogged = true
			s.Rec.RecordDeath(f.Name, f.CauseOfDeath, s.dayCount, phaseName)
		}
	}
	s.Alliances.RemoveDead(s.Tributes)
}

// logIntro announces the field.
func (s *Simulator) logIntro() {
	s.Rec.Line("The tournament begins!")
	entries := make([]string, 0, len(s.Tributes))
	for _, t := range s.Tributes {
		entries = append(entries, fmt.Sprintf("%s (D%d)", t.Name, t.District))
	}
	s.Rec.Linef("Total Tributes: %d", len(s.Tributes))
	s.Rec.Linef("Tributes entering the arena: %s", strings.Join(entries, ", "))
	s.Rec.Line("")
}
