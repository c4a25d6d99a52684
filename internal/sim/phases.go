package sim

import "github.com/talgya/arenasim/internal/entropy"

// phase is the state of the tournament machine. Every transition is driven
// by StepOnce so that single-stepping and running to completion consume the
// random stream identically.
type phase int

const (
	phaseIntro phase = iota
	phaseCorn
	phaseSetupDay
	phaseDay
	phaseSetupNight
	phaseNight
	phaseFeast
	phaseFinalize
	phaseDone
)

// blocks
const (
	blockDay   = "day"
	blockNight = "night"
)

// Done reports whether the run has finished.
func (s *Simulator) Done() bool {
	return s.phase == phaseDone
}

// Run executes the tournament to completion. It is exactly a StepOnce loop,
// so a run advanced partway by stepping can be finished with Run and produce
// the same transcript a pure Run would.
func (s *Simulator) Run() {
	for !s.StepOnce() {
	}
}

// StepOnce advances the machine by exactly one transition: the intro, the
// cornucopia, a single event slot, a block boundary, the feast, or the
// finalization. It returns true once the run is complete; calling it again
// after that is a harmless no-op.
func (s *Simulator) StepOnce() bool {
	switch s.phase {
	case phaseDone:
		return true

	case phaseIntro:
		s.logIntro()
		s.phase = phaseCorn
		return false

	case phaseCorn:
		s.cornucopiaPhase()
		s.phase = phaseSetupDay
		return false

	case phaseSetupDay:
		alive := s.aliveCount()
		strict := s.Cfg.StrictShutdown > 0 && s.dayCount >= s.Cfg.StrictShutdown && alive > 2
		if alive <= 1 || s.dayCount >= s.Cfg.MaxDays || strict {
			if strict {
				s.Rec.Line("")
				s.Rec.Line("EARLY ARENA TERMINATION PROTOCOL TRIGGERED.")
			}
			s.phase = phaseFinalize
			return false
		}
		s.dayCount++
		s.Rec.Line("")
		s.Rec.Linef("--- Day %d ---", s.dayCount)
		s.recordMoraleAverage()
		s.prepareBlock(blockDay)
		s.phase = phaseDay
		return false

	case phaseDay:
		if s.runEventSlot(s.Catalog.Day) {
			return false
		}
		s.maybeGlobalEvent()
		s.harvestFallen(blockDay, "Fallen this phase:")
		s.phase = phaseSetupNight
		return false

	case phaseSetupNight:
		s.Rec.Line("")
		s.Rec.Linef("*** Night %d ***", s.dayCount)
		s.prepareBlock(blockNight)
		s.phase = phaseNight
		return false

	case phaseNight:
		if s.runEventSlot(s.Catalog.Night) {
			return false
		}
		s.maybeGlobalEvent()
		s.harvestFallen(blockNight, "Fallen this phase:")
		s.resourceTick()
		if s.dayCount == 3 && s.aliveCount() > 4 && !s.feastDone {
			s.phase = phaseFeast
		} else {
			s.phase = phaseSetupDay
		}
		return false

	case phaseFeast:
		s.feastPhase()
		s.harvestFallen(blockNight, "Fallen at the Feast:")
		s.phase = phaseSetupDay
		return false

	case phaseFinalize:
		s.announceWinner()
		s.outputStats()
		if s.Cfg.ExportPath != "" {
			s.exportRun()
		}
		s.phase = phaseDone
		return true
	}
	return false
}

// prepareBlock draws the event budget for the next day or night block.
func (s *Simulator) prepareBlock(block string) {
	alive := s.aliveCount()
	n := 0
	if alive > 0 {
		n = entropy.IntBetween(s.rng, 3, 6)
		if n > alive {
			n = alive
		}
	}
	s.eventsLeft = n
	s.block = block
}

// runEventSlot consumes one event slot from the block if any remain. It
// reports whether a slot was consumed (or the block was cut short); false
// means the block is over and the caller should close it out.
func (s *Simulator) runEventSlot(pool []Unit) bool {
	if s.eventsLeft <= 0 {
		return false
	}
	alive := s.AliveTributes()
	if len(alive) <= 1 {
		s.eventsLeft = 0
		return false
	}
	unit := s.Catalog.pick(s.rng, pool, len(alive))
	lines := s.safeRun(unit, alive)
	s.Rec.Stats.EventsRun++
	for _, l := range lines {
		if l != "" {
			s.Rec.Line(l)
		}
	}
	s.postEventCleanup()
	s.eventsLeft--
	return true
}

// maybeGlobalEvent rolls once per block for an arena-wide event.
func (s *Simulator) maybeGlobalEvent() {
	if !entropy.Chance(s.rng, globalChance(s.dayCount)) {
		return
	}
	unit := entropy.Choice(s.rng, s.Catalog.Global)
	for _, l := range s.safeRun(unit, s.AliveTributes()) {
		if l != "" {
			s.Rec.Line(l)
		}
	}
}

// recordMoraleAverage appends the mean morale of the living field to the
// per-day trend.
func (s *Simulator) recordMoraleAverage() {
	alive := s.AliveTributes()
	if len(alive) == 0 {
		return
	}
	sum := 0
	for _, t := range alive {
		sum += t.Morale
	}
	s.Rec.Stats.DayMoraleAvg = append(s.Rec.Stats.DayMoraleAvg, float64(sum)/float64(len(alive)))
}
