package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/talgya/arenasim/internal/content"
	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

// weaponsHeld lists the real weapons in a tribute's inventory.
func (s *Simulator) weaponsHeld(t *tribute.Tribute) []string {
	var held []string
	for _, it := range t.Inventory {
		if s.Content.IsWeapon(it) {
			held = append(held, it)
		}
	}
	return held
}

func eventFindSupplies(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	item := entropy.Choice(rng, s.Content.LootPool())
	t.Inventory = append(t.Inventory, item)
	t.AdjustMorale(+1)
	if t.Notoriety > 5 && entropy.Chance(rng, 0.15) {
		t.AdjustMorale(+1)
		return []string{fmt.Sprintf("%s finds %s; sponsors applaud their infamous flair.", t.Name, article(item))}
	}
	return []string{fmt.Sprintf("%s finds %s and looks pleased.", t.Name, article(item))}
}

func eventSmallSkirmish(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 2 {
		return nil
	}
	// Notorious tributes attract attackers.
	weights := make([]float64, len(alive))
	for i, t := range alive {
		weights[i] = 1 + float64(t.Notoriety)*0.4
	}
	a := alive[entropy.WeightedIndex(rng, weights)]
	var others []*tribute.Tribute
	for _, t := range alive {
		if t != a {
			others = append(others, t)
		}
	}
	b := entropy.Choice(rng, others)
	if !s.near(a, b) {
		return nil
	}
	if s.Alliances.IsAllied(a, b) && entropy.Chance(rng, 0.75) {
		return []string{fmt.Sprintf("%s and %s square up but recall their alliance and back off.", a.Name, b.Name)}
	}
	probA := 0.5 + float64(a.Morale-b.Morale)*0.04
	if a.HasTrait(tribute.TraitStrong) {
		probA += 0.05
	}
	if b.HasTrait(tribute.TraitStrong) {
		probA -= 0.05
	}
	if a.Stamina < 30 {
		probA -= 0.05
	}
	if b.Stamina < 30 {
		probA += 0.05
	}
	probA = entropy.Clamp(probA, 0.1, 0.9)
	winner, loser := b, a
	if entropy.Chance(rng, probA) {
		winner, loser = a, b
	}
	usable := s.weaponsHeld(winner)
	var weapon string
	if len(usable) > 0 {
		weapon = entropy.Choice(rng, usable)
	} else {
		weapon = entropy.Choice(rng, content.Unarmed)
	}
	verb := s.Content.Verb(weapon)
	killChance := 0.3
	if s.Content.LethalWeapons[weapon] {
		killChance += 0.1
	}
	killChance += float64(winner.Morale-5) * 0.02
	killChance = entropy.Clamp(killChance, 0.1, 0.8)
	if entropy.Chance(rng, killChance) {
		loser.Kill(fmt.Sprintf("defeated by %s (%s)", winner.Name, weapon))
		winner.Kills++
		winner.Notoriety++
		if s.Content.IsWeapon(weapon) {
			winner.Notoriety++
		}
		winner.AdjustMorale(+1)
		withPart := ""
		if weapon != "fists" {
			withPart = " with " + article(weapon)
		}
		winner.AdjustStamina(-10)
		loser.AdjustStamina(-20)
		return []string{fmt.Sprintf("%s %s %s%s. %s is eliminated.", winner.Name, verb, loser.Name, withPart, loser.Name)}
	}
	winner.AdjustStamina(-15)
	loser.AdjustStamina(-10)
	winner.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s %s %s, but fails to finish them off. Both look shaken.", winner.Name, verb, loser.Name)}
}

func eventTrapFailure(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	base := 0.18 - float64(t.Morale-5)*0.01
	if t.HasTrait(tribute.TraitClumsy) {
		base += 0.05
	}
	if t.HasTrait(tribute.TraitAgile) {
		base -= 0.03
	}
	if entropy.Chance(rng, base) {
		t.Kill("botched trap")
		return []string{fmt.Sprintf("%s tinkers with an over-complicated trap; a spring snaps and ends their run.", t.Name)}
	}
	s.Content.ApplyStatusVariant(t, "frustrated", rng)
	t.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s's elaborate trap collapses harmlessly.", t.Name)}
}

func eventAlliance(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 2 {
		return nil
	}
	pair := entropy.Sample(rng, alive, 2)
	a, b := pair[0], pair[1]
	if !s.near(a, b) {
		return nil
	}
	if s.Alliances.IsAllied(a, b) {
		return []string{fmt.Sprintf("%s and %s reaffirm their alliance over shared rations.", a.Name, b.Name)}
	}
	s.Alliances.Form(a, b)
	a.AdjustMorale(+1)
	b.AdjustMorale(+1)
	return []string{fmt.Sprintf("%s and %s form a wary alliance, exchanging nods and snacks.", a.Name, b.Name)}
}

func eventEnvironment(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	biome := s.Map.BiomeOf(t.Region)
	hazard := s.Content.BiasedHazard(rng, biome.Hazards)
	effect := s.Content.HazardEffect(hazard)
	chance := 0.28 - float64(t.Morale-5)*0.015 + biome.EnvDelta
	if t.HasTrait(tribute.TraitAgile) {
		chance -= 0.03
	}
	if t.HasTrait(tribute.TraitLucky) {
		chance -= 0.02
	}
	if entropy.Chance(rng, chance) {
		t.Kill(fmt.Sprintf("%s by %s", effect, hazard))
		return []string{fmt.Sprintf("%s is %s by %s.", t.Name, effect, hazard)}
	}
	s.Content.ApplyStatusVariant(t, "shaken", rng)
	t.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s narrowly avoids %s.", t.Name, hazard)}
}

func eventHeal(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	var present []string
	for _, it := range t.Inventory {
		for _, h := range s.Content.HealItems {
			if it == h {
				present = append(present, it)
				break
			}
		}
	}
	if len(present) > 0 {
		use := entropy.Choice(rng, present)
		t.RemoveStatus(tribute.StatusWounded)
		t.AdjustMorale(+2)
		return []string{fmt.Sprintf("%s uses %s to patch up and looks revitalized.", t.Name, use)}
	}
	if t.HasTrait(tribute.TraitMedic) && t.HasStatus(tribute.StatusWounded) && entropy.Chance(rng, 0.5) {
		t.RemoveStatus(tribute.StatusWounded)
		t.AdjustMorale(+1)
		return []string{fmt.Sprintf("%s improvises medical care and stabilizes their wounds.", t.Name)}
	}
	return []string{fmt.Sprintf("%s improvises medical care with leaves. It doesn't help.", t.Name)}
}

func eventSupplyDrop(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	pool := s.Content.LootPool()
	crate := entropy.Sample(rng, pool, entropy.IntBetween(rng, 1, 3))
	t.Inventory = append(t.Inventory, crate...)
	t.AdjustMorale(+1)
	if t.Notoriety > 6 {
		bonus := entropy.Choice(rng, pool)
		t.Inventory = append(t.Inventory, bonus)
		return []string{fmt.Sprintf("A sponsor drone delivers a premium crate to %s: %s.", t.Name, strings.Join(append(crate, bonus), ", "))}
	}
	return []string{fmt.Sprintf("A sponsor drone delivers a crate to %s: %s.", t.Name, strings.Join(crate, ", "))}
}

var argumentTopics = []string{
	"who invented fire first", "proper egg-boiling duration", "ethical glitter deployment",
	"ideal camouflage color", "if morale is real or a construct",
}

func eventArgument(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 2 {
		return nil
	}
	pair := entropy.Sample(rng, alive, 2)
	a, b := pair[0], pair[1]
	if !s.near(a, b) {
		return nil
	}
	topic := entropy.Choice(rng, argumentTopics)
	a.AdjustMorale(-1)
	b.AdjustMorale(-1)
	line := fmt.Sprintf("%s and %s argue about %s. Productivity plummets.", a.Name, b.Name, topic)
	if s.Alliances.IsAllied(a, b) && entropy.Chance(rng, 0.25) {
		s.Alliances.Breakup([]string{a.Key, b.Key})
		line += " Their alliance fractures."
	}
	return []string{line}
}

var funnyGags = []string{
	"holds a motivational seminar for moss", "crowns a log 'Assistant Manager'",
	"practices autograph signatures", "poses heroically to no audience",
	"attempts to train a butterfly", "delivers a monologue about destiny",
	"gives their weapon a pep talk", "trades secrets with a tree",
	"starts a one-tribute parade", "drafts arena bylaws in dirt",
}

func eventFunnyBusiness(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	gag := entropy.Choice(rng, funnyGags)
	if t.Morale < 4 && entropy.Chance(rng, 0.4) {
		t.AdjustMorale(+2)
		return []string{fmt.Sprintf("%s %s. It oddly lifts their spirits.", t.Name, gag)}
	}
	return []string{fmt.Sprintf("%s %s.", t.Name, gag)}
}

func eventWeaponMalfunction(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	var armed []*tribute.Tribute
	for _, t := range alive {
		if len(s.weaponsHeld(t)) > 0 {
			armed = append(armed, t)
		}
	}
	if len(armed) == 0 {
		return nil
	}
	t := entropy.Choice(rng, armed)
	w := entropy.Choice(rng, s.weaponsHeld(t))
	base := 0.12 + float64(t.Notoriety)*0.01 // flashy gear risk
	if entropy.Chance(rng, base) {
		t.Kill(fmt.Sprintf("%s malfunction", w))
		return []string{fmt.Sprintf("%s's %s misfires catastrophically. %s is eliminated.", t.Name, w, t.Name)}
	}
	s.Content.ApplyStatusVariant(t, "singed", rng)
	t.AdjustMorale(-2)
	return []string{fmt.Sprintf("%s's %s fizzles embarrassingly, leaving scorch marks.", t.Name, w)}
}

var scavengerFinds = []string{
	"abandoned bivouac", "cryptic rune", "half-eaten ration", "rusted locker", "mysterious hatch",
}

func eventScavengerFind(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	find := entropy.Choice(rng, scavengerFinds)
	item := entropy.Choice(rng, s.Content.LootPool())
	t.Inventory = append(t.Inventory, item)
	return []string{fmt.Sprintf("%s investigates %s and acquires %s.", t.Name, find, article(item))}
}

var stealthMishaps = []string{
	"steps on ten twigs at once", "sneezes thunderously", "drops all gear noisily",
	"laughs at own joke", "waves at a hidden camera",
}

func eventStealthFail(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	mishap := entropy.Choice(rng, stealthMishaps)
	t.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s attempts stealth but %s.", t.Name, mishap)}
}

func eventSneakAttack(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 2 {
		return nil
	}
	pair := entropy.Sample(rng, alive, 2)
	attacker, victim := pair[0], pair[1]
	if !s.near(attacker, victim) {
		return nil
	}
	if s.Alliances.IsAllied(attacker, victim) && entropy.Chance(rng, 0.8) {
		return []string{fmt.Sprintf("%s considers ambushing ally %s but hesitates.", attacker.Name, victim.Name)}
	}
	usable := s.weaponsHeld(attacker)
	weapon := ""
	if len(usable) > 0 {
		weapon = entropy.Choice(rng, usable)
	}
	base := 0.48 + float64(attacker.Morale-5)*0.04
	if attacker.HasTrait(tribute.TraitStealthy) {
		base += 0.05
	}
	if attacker.HasTrait(tribute.TraitAgile) {
		base += 0.02
	}
	if victim.Stamina < 30 {
		base += 0.03
	}
	if attacker.Stamina < 30 {
		base -= 0.04
	}
	base = entropy.Clamp(base, 0.2, 0.85)
	if entropy.Chance(rng, base) {
		victim.Kill(fmt.Sprintf("ambushed by %s", attacker.Name))
		attacker.Kills++
		attacker.Notoriety += 2
		attacker.AdjustMorale(+2)
		attacker.AdjustStamina(-15)
		if weapon != "" {
			verb := s.Content.Verb(weapon)
			return []string{fmt.Sprintf("%s ambushes %s with %s and %s them. %s falls.", attacker.Name, victim.Name, article(weapon), verb, victim.Name)}
		}
		return []string{fmt.Sprintf("%s executes a bare-handed ambush on %s. %s is eliminated.", attacker.Name, victim.Name, victim.Name)}
	}
	attacker.AdjustMorale(-1)
	attacker.AdjustStamina(-8)
	return []string{fmt.Sprintf("%s's ambush on %s fails; %s retreats.", attacker.Name, victim.Name, attacker.Name)}
}

func eventDanceOff(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 2 {
		return nil
	}
	pair := entropy.Sample(rng, alive, 2)
	a, b := pair[0], pair[1]
	if !s.near(a, b) {
		return nil
	}
	winner := a
	if entropy.Chance(rng, 0.5) {
		winner = b
	}
	loot := entropy.Choice(rng, s.Content.LootPool())
	winner.Inventory = append(winner.Inventory, loot)
	winner.AdjustMorale(+2)
	return []string{fmt.Sprintf("%s and %s stage a sudden dance-off. %s wins flair rights and pockets %s.", a.Name, b.Name, winner.Name, article(loot))}
}

func eventMeteorShower(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	chance := 0.22 - float64(t.Morale-5)*0.01
	if entropy.Chance(rng, chance) {
		t.Kill("micro-meteor strike")
		var survivors []*tribute.Tribute
		for _, x := range alive {
			if x.Alive {
				survivors = append(survivors, x)
			}
		}
		if len(survivors) > 0 && entropy.Chance(rng, 0.5) {
			lucky := entropy.Choice(rng, survivors)
			lucky.Inventory = append(lucky.Inventory, "meteor shard")
		}
		return []string{fmt.Sprintf("A micro-meteor strikes near %s. %s is vaporized.", t.Name, t.Name)}
	}
	return []string{fmt.Sprintf("%s weaves through incandescent falling debris.", t.Name)}
}

var sponsorMessages = []string{
	"TRY HARDER", "STYLE MATTERS", "LOOK WEST", "WE BELIEVE (?)", "STOP WAVING", "EGGS?",
}

var infamousSponsorMessages = []string{
	"INFAMY SELLS", "KEEP THE DRAMA COMING",
}

func eventSponsorMessage(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	msgs := sponsorMessages
	if t.Notoriety > 5 {
		msgs = append(append([]string{}, sponsorMessages...), infamousSponsorMessages...)
	}
	msg := entropy.Choice(rng, msgs)
	t.AdjustMorale(+1)
	return []string{fmt.Sprintf("A drone beams a hologram at %s: '%s'", t.Name, msg)}
}

func eventTrapSuccess(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	var setters []*tribute.Tribute
	for _, t := range alive {
		if t.Holds("snare wire") || t.Holds("net") {
			setters = append(setters, t)
		}
	}
	if len(setters) == 0 || len(alive) < 2 {
		return nil
	}
	trapper := entropy.Choice(rng, setters)
	var targets []*tribute.Tribute
	for _, t := range alive {
		if t != trapper {
			targets = append(targets, t)
		}
	}
	victim := entropy.Choice(rng, targets)
	if s.Alliances.IsAllied(trapper, victim) && entropy.Chance(rng, 0.6) {
		return []string{fmt.Sprintf("%s's trap nearly snares ally %s; they reset it carefully.", trapper.Name, victim.Name)}
	}
	chance := 0.55 + float64(trapper.Morale-5)*0.02
	if entropy.Chance(rng, chance) {
		victim.Kill(fmt.Sprintf("trap set by %s", trapper.Name))
		trapper.Kills++
		trapper.Notoriety++
		return []string{fmt.Sprintf("%s's concealed trap snaps and claims %s.", trapper.Name, victim.Name)}
	}
	trapper.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s's trap is triggered prematurely by %s, who escapes.", trapper.Name, victim.Name)}
}

var camouflageLoot = []string{"berries", "protein bar", "cloak", "bandages"}

func eventCamouflage(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	t.AdjustMorale(+1)
	loot := entropy.Choice(rng, camouflageLoot)
	t.Inventory = append(t.Inventory, loot)
	return []string{fmt.Sprintf("%s spends time camouflaging and quietly acquires %s.", t.Name, loot)}
}

func eventRecklessExperiment(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	chance := 0.15 - float64(t.Morale-5)*0.01
	if entropy.Chance(rng, chance) {
		t.Kill("chemical experiment explosion")
		return []string{fmt.Sprintf("%s tests an improvised chemical mixture. It detonates violently.", t.Name)}
	}
	t.AddStatus(tribute.StatusWounded)
	t.AdjustMorale(-2)
	return []string{fmt.Sprintf("%s experiments with arena flora and suffers minor burns.", t.Name)}
}

func eventChainHunt(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	if len(alive) < 3 {
		return nil
	}
	trio := entropy.Sample(rng, alive, 3)
	a, b, c := trio[0], trio[1], trio[2]
	lines := []string{fmt.Sprintf("%s chases %s; %s runs into %s. Chaos ensues.", a.Name, b.Name, b.Name, c.Name)}
	r := rng.Float64()
	switch {
	case r < 0.33:
		b.Kill(fmt.Sprintf("eliminated in chain hunt by %s", a.Name))
		a.Kills++
		lines = append(lines, fmt.Sprintf("%s eliminates %s while %s vanishes.", a.Name, b.Name, c.Name))
	case r < 0.66:
		a.Kill(fmt.Sprintf("countered by %s", c.Name))
		c.Kills++
		lines = append(lines, fmt.Sprintf("%s counters brilliantly and takes down %s; %s escapes.", c.Name, a.Name, b.Name))
	default:
		c.Kill(fmt.Sprintf("used as distraction by %s", b.Name))
		b.Kills++
		lines = append(lines, fmt.Sprintf("%s uses %s as a distraction and eliminates them.", b.Name, c.Name))
	}
	return lines
}

func eventSpookedFlock(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	t := entropy.Choice(rng, alive)
	t.AdjustMorale(-1)
	return []string{fmt.Sprintf("%s startles a flock of metallic birds; the clatter rattles their nerves.", t.Name)}
}

func eventAllianceAid(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	groups := s.Alliances.Groups()
	if len(groups) == 0 {
		return nil
	}
	group := entropy.Choice(rng, groups)
	var members []*tribute.Tribute
	for _, t := range alive {
		for _, k := range group {
			if t.Key == k {
				members = append(members, t)
				break
			}
		}
	}
	if len(members) < 2 {
		return nil
	}
	helper := entropy.Choice(rng, members)
	var receivers []*tribute.Tribute
	for _, m := range members {
		if m != helper {
			receivers = append(receivers, m)
		}
	}
	receiver := entropy.Choice(rng, receivers)
	item := entropy.Choice(rng, s.Content.SupplyItems)
	receiver.Inventory = append(receiver.Inventory, item)
	helper.AdjustMorale(+1)
	receiver.AdjustMorale(+1)
	return []string{fmt.Sprintf("%s shares %s with ally %s; their cohesion strengthens.", helper.Name, item, receiver.Name)}
}

func eventAllianceBetrayal(alive []*tribute.Tribute, rng *rand.Rand, s *Simulator) []string {
	groups := s.Alliances.Groups()
	if len(groups) == 0 {
		return nil
	}
	if !entropy.Chance(rng, 0.25) {
		return nil
	}
	group := entropy.Choice(rng, groups)
	if len(group) < 2 {
		return nil
	}
	pair := entropy.Sample(rng, group, 2)
	attacker := s.byKey(alive, pair[0])
	victim := s.byKey(alive, pair[1])
	if attacker == nil || victim == nil {
		return nil
	}
	prob := 0.5 + float64(attacker.Morale-victim.Morale)*0.05
	prob = entropy.Clamp(prob, 0.2, 0.85)
	if entropy.Chance(rng, prob) {
		victim.Kill(fmt.Sprintf("betrayed by %s", attacker.Name))
		attacker.Kills++
		attacker.Notoriety += 3
		s.Alliances.Breakup([]string{attacker.Key, victim.Key})
		return []string{fmt.Sprintf("Betrayal! %s turns on ally %s, eliminating them.", attacker.Name, victim.Name)}
	}
	attacker.AdjustMorale(-2)
	s.Alliances.Breakup([]string{attacker.Key, victim.Key})
	return []string{fmt.Sprintf("%s attempts to betray %s but fails; the alliance dissolves in distrust.", attacker.Name, victim.Name)}
}

func (s *Simulator) byKey(pool []*tribute.Tribute, key string) *tribute.Tribute {
	for _, t := range pool {
		if t.Key == key {
			return t
		}
	}
	return nil
}
