package sim

import (
	"log/slog"
	"math/rand"

	"github.com/talgya/arenasim/internal/content"
	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// UnitFunc is the event unit contract: given the living tributes, the
// shared random stream, and the simulator context it returns narrative
// lines, with side effects confined to the tributes and simulator state.
// An empty result is a no-op; the event slot is still consumed.
type UnitFunc func(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string

// Unit is an event strategy with a stable identifier. Weight lookups and
// population scaling key off the ID, never off function identity.
type Unit struct {
	ID  string
	Run UnitFunc
}

// Stable unit identifiers.
const (
	unitFindSupplies      = "find_supplies"
	unitSmallSkirmish     = "small_skirmish"
	unitTrapFailure       = "trap_failure"
	unitAlliance          = "alliance"
	unitSupplyDrop        = "supply_drop"
	unitArgument          = "argument"
	unitFunnyBusiness     = "funny_business"
	unitScavengerFind     = "scavenger_find"
	unitWeaponMalfunction = "weapon_malfunction"
	unitStealthFail       = "stealth_fail"
	unitSneakAttack       = "sneak_attack"
	unitDanceOff          = "dance_off"
	unitSponsorMessage    = "sponsor_message"
	unitTrapSuccess       = "trap_success"
	unitCamouflage        = "camouflage"
	unitRecklessExp       = "reckless_experiment"
	unitChainHunt         = "chain_hunt"
	unitSpookedFlock      = "spooked_flock"
	unitAllianceAid       = "alliance_aid"
	unitAllianceBetrayal  = "alliance_betrayal"
	unitEnvironment       = "environment"
	unitHeal              = "heal"
	unitMeteorShower      = "meteor_shower"

	unitWeatherShift   = "weather_shift"
	unitSafeZoneShrink = "safe_zone_shrink"
	unitSupplyShortage = "supply_shortage"
	unitRegionCollapse = "region_collapse"
)

// defaultWeight applies to units with no base table entry, such as
// externally supplied ones.
const defaultWeight = 0.7

// baseWeights is the built-in relative frequency table.
var baseWeights = map[string]float64{
	unitFindSupplies:      1.2,
	unitSmallSkirmish:     1.3,
	unitTrapFailure:       0.9,
	unitAlliance:          0.8,
	unitSupplyDrop:        0.7,
	unitArgument:          0.9,
	unitFunnyBusiness:     0.7,
	unitScavengerFind:     1.0,
	unitWeaponMalfunction: 0.5,
	unitStealthFail:       0.6,
	unitSneakAttack:       1.1,
	unitDanceOff:          0.4,
	unitSponsorMessage:    0.6,
	unitTrapSuccess:       0.8,
	unitCamouflage:        0.8,
	unitRecklessExp:       0.5,
	unitChainHunt:         0.5,
	unitSpookedFlock:      0.6,
	unitAllianceAid:       0.5,
	unitAllianceBetrayal:  0.3,
	unitEnvironment:       1.0,
	unitHeal:              0.9,
	unitMeteorShower:      0.4,
}

// Population-scaled weight classes.
var (
	aggressiveUnits = map[string]bool{unitSmallSkirmish: true, unitSneakAttack: true, unitTrapSuccess: true}
	comedicUnits    = map[string]bool{unitFunnyBusiness: true, unitDanceOff: true}
)

// Catalog holds the day, night, and global event pools plus the weight
// tables driving selection.
type Catalog struct {
	Day    []Unit
	Night  []Unit
	Global []Unit

	overrides map[string]float64
}

// newCatalog builds the default pools. Weight overrides merged into the
// registry by extension packs apply on top of the base table.
func newCatalog(reg *content.Registry) *Catalog {
	day := []Unit{
		{unitFindSupplies, eventFindSupplies},
		{unitSmallSkirmish, eventSmallSkirmish},
		{unitTrapFailure, eventTrapFailure},
		{unitAlliance, eventAlliance},
		{unitSupplyDrop, eventSupplyDrop},
		{unitArgument, eventArgument},
		{unitFunnyBusiness, eventFunnyBusiness},
		{unitScavengerFind, eventScavengerFind},
		{unitWeaponMalfunction, eventWeaponMalfunction},
		{unitStealthFail, eventStealthFail},
		{unitSneakAttack, eventSneakAttack},
		{unitDanceOff, eventDanceOff},
		{unitSponsorMessage, eventSponsorMessage},
		{unitTrapSuccess, eventTrapSuccess},
		{unitCamouflage, eventCamouflage},
		{unitRecklessExp, eventRecklessExperiment},
		{unitChainHunt, eventChainHunt},
		{unitSpookedFlock, eventSpookedFlock},
		{unitAllianceAid, eventAllianceAid},
		{unitAllianceBetrayal, eventAllianceBetrayal},
	}
	night := []Unit{
		{unitTrapFailure, eventTrapFailure},
		{unitEnvironment, eventEnvironment},
		{unitSmallSkirmish, eventSmallSkirmish},
		{unitHeal, eventHeal},
		{unitFunnyBusiness, eventFunnyBusiness},
		{unitWeaponMalfunction, eventWeaponMalfunction},
		{unitStealthFail, eventStealthFail},
		{unitSneakAttack, eventSneakAttack},
		{unitMeteorShower, eventMeteorShower},
		{unitSponsorMessage, eventSponsorMessage},
		{unitTrapSuccess, eventTrapSuccess},
		{unitCamouflage, eventCamouflage},
		{unitRecklessExp, eventRecklessExperiment},
		{unitSpookedFlock, eventSpookedFlock},
		{unitAllianceAid, eventAllianceAid},
		{unitAllianceBetrayal, eventAllianceBetrayal},
	}
	global := []Unit{
		{unitWeatherShift, globalWeatherShift},
		{unitSafeZoneShrink, globalSafeZoneShrink},
		{unitSupplyShortage, globalSupplyShortage},
		{unitRegionCollapse, globalRegionCollapse},
	}
	return &Catalog{Day: day, Night: night, Global: global, overrides: reg.WeightOverrides}
}

// AddDay registers an extra day-pool unit. Units with an empty ID or nil
// func are dropped with a diagnostic. Registration must happen before the
// run starts.
func (c *Catalog) AddDay(u Unit) { c.Day = c.add(c.Day, u) }

// AddNight registers an extra night-pool unit.
func (c *Catalog) AddNight(u Unit) { c.Night = c.add(c.Night, u) }

// AddGlobal registers an extra global-pool unit.
func (c *Catalog) AddGlobal(u Unit) { c.Global = c.add(c.Global, u) }

func (c *Catalog) add(pool []Unit, u Unit) []Unit {
	if u.ID == "" || u.Run == nil {
		slog.Warn("dropping malformed event unit", "id", u.ID)
		return pool
	}
	return append(pool, u)
}

// weightFor computes the selection weight of a unit for the current
// population: base (or override) scaled by the population bands.
func (c *Catalog) weightFor(id string, aliveCount int) float64 {
	w, ok := c.overrides[id]
	if !ok {
		w, ok = baseWeights[id]
		if !ok {
			w = defaultWeight
		}
	}
	if aliveCount < 10 && aggressiveUnits[id] {
		w *= 1.3
	}
	if aliveCount < 6 && comedicUnits[id] {
		w *= 0.5
	}
	if id == unitAllianceBetrayal && aliveCount > 6 && aliveCount < 20 {
		w *= 1.4
	}
	return w
}

// pick draws one unit from the pool by weighted random choice.
func (c *Catalog) pick(rng *rand.Rand, pool []Unit, aliveCount int) Unit {
	weights := make([]float64, len(pool))
	for i, u := range pool {
		weights[i] = c.weightFor(u.ID, aliveCount)
	}
	return pool[entropy.WeightedIndex(rng, weights)]
}

// globalChance is the per-block probability of a global event: hazards
// become more likely as the tournament drags on, capped at 0.55.
func globalChance(dayCount int) float64 {
	p := 0.30 + float64(dayCount)*0.01
	if p > 0.55 {
		p = 0.55
	}
	return p
}

// safeRun executes a unit, isolating panics: a failing unit is a
// programming defect, but narrative generation is best-effort, so the run
// logs the defect and treats the slot as a no-op.
func (s *Simulator) safeRun(u Unit, alive []*tribute.Tribute) (lines []string) {
	defer func() {
		if p := recover(); p != nil {
			slog.Error("event unit panicked, skipping", "unit", u.ID, "panic", p)
			lines = nil
		}
	}()
	return u.Run(alive, s.rng, s)
}
