package sim

import (
	"strings"
	"testing"

	"github.com/talgya/arenasim/internal/content"
	"github.com/talgya/arenasim/internal/tribute"
)

func newTestSim(t *testing.T, cfg Config, roster tribute.Roster) *Simulator {
	t.Helper()
	s, err := New(cfg, roster, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func smallRoster(n int) tribute.Roster {
	return tribute.DefaultRoster()[:n]
}

func TestRunDeterminism(t *testing.T) {
	cfg := DefaultConfig(42)
	s1 := newTestSim(t, cfg, tribute.DefaultRoster())
	s2 := newTestSim(t, cfg, tribute.DefaultRoster())
	s1.Run()
	s2.Run()

	if len(s1.Rec.Log) != len(s2.Rec.Log) {
		t.Fatalf("log lengths differ: %d vs %d", len(s1.Rec.Log), len(s2.Rec.Log))
	}
	for i := range s1.Rec.Log {
		if s1.Rec.Log[i] != s2.Rec.Log[i] {
			t.Fatalf("logs diverge at line %d:\n%q\n%q", i, s1.Rec.Log[i], s2.Rec.Log[i])
		}
	}
	if len(s1.Rec.DeathLog) != len(s2.Rec.DeathLog) {
		t.Fatalf("death logs differ: %d vs %d", len(s1.Rec.DeathLog), len(s2.Rec.DeathLog))
	}
	for i := range s1.Rec.DeathLog {
		if s1.Rec.DeathLog[i] != s2.Rec.DeathLog[i] {
			t.Fatalf("death logs diverge at %d: %+v vs %+v", i, s1.Rec.DeathLog[i], s2.Rec.DeathLog[i])
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	s1 := newTestSim(t, DefaultConfig(1), tribute.DefaultRoster())
	s2 := newTestSim(t, DefaultConfig(2), tribute.DefaultRoster())
	s1.Run()
	s2.Run()

	same := len(s1.Rec.Log) == len(s2.Rec.Log)
	if same {
		for i := range s1.Rec.Log {
			if s1.Rec.Log[i] != s2.Rec.Log[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical transcripts")
	}
}

func TestStepThenRunMatchesRun(t *testing.T) {
	cfg := DefaultConfig(7)
	pure := newTestSim(t, cfg, tribute.DefaultRoster())
	pure.Run()

	stepped := newTestSim(t, cfg, tribute.DefaultRoster())
	for i := 0; i < 9; i++ {
		if stepped.StepOnce() {
			break
		}
	}
	stepped.Run()

	if len(pure.Rec.Log) != len(stepped.Rec.Log) {
		t.Fatalf("log lengths differ: %d vs %d", len(pure.Rec.Log), len(stepped.Rec.Log))
	}
	for i := range pure.Rec.Log {
		if pure.Rec.Log[i] != stepped.Rec.Log[i] {
			t.Fatalf("transcripts diverge at line %d:\n%q\n%q", i, pure.Rec.Log[i], stepped.Rec.Log[i])
		}
	}
}

func TestStepOnceAfterDoneIsNoOp(t *testing.T) {
	s := newTestSim(t, DefaultConfig(3), smallRoster(4))
	s.Run()
	if !s.Done() {
		t.Fatal("run should be done")
	}
	lines := len(s.Rec.Log)
	for i := 0; i < 5; i++ {
		if !s.StepOnce() {
			t.Fatal("StepOnce after completion should return true")
		}
	}
	if len(s.Rec.Log) != lines {
		t.Error("StepOnce after completion should not write to the log")
	}
}

func TestRunTerminatesAndReportsOutcome(t *testing.T) {
	s := newTestSim(t, DefaultConfig(42), tribute.DefaultRoster())
	s.Run()

	if !s.Done() {
		t.Fatal("run did not complete")
	}
	if s.Day() > s.Cfg.MaxDays {
		t.Errorf("ran %d days, cap is %d", s.Day(), s.Cfg.MaxDays)
	}
	joined := strings.Join(s.Rec.Log, "\n")
	outcomes := []string{"VICTOR:", "ARENA FORCED SHUTDOWN", "No victor emerged"}
	found := false
	for _, o := range outcomes {
		if strings.Contains(joined, o) {
			found = true
		}
	}
	if !found {
		t.Error("transcript has no terminal outcome announcement")
	}
	if !strings.Contains(joined, "Final standings:") {
		t.Error("transcript missing final standings")
	}
	if !strings.Contains(joined, "Reproducible with seed 42") {
		t.Error("transcript missing seed note")
	}
}

func TestTwoTributeDuel(t *testing.T) {
	cfg := DefaultConfig(42)
	cfg.MaxDays = 5
	s := newTestSim(t, cfg, smallRoster(2))
	s.Run()

	if !s.Done() {
		t.Fatal("run did not complete")
	}
	if s.Day() > 5 {
		t.Errorf("ran %d days, cap is 5", s.Day())
	}
	alive := s.AliveTributes()
	joined := strings.Join(s.Rec.Log, "\n")
	switch len(alive) {
	case 0:
		if !strings.Contains(joined, "No victor emerged") {
			t.Error("empty field without a no-victor announcement")
		}
	case 1:
		if !strings.Contains(joined, "VICTOR: "+alive[0].Name) {
			t.Errorf("sole survivor %s not announced as victor", alive[0].Name)
		}
	case 2:
		if !strings.Contains(joined, "ARENA FORCED SHUTDOWN") {
			t.Error("two survivors without a forced shutdown announcement")
		}
		if s.Day() != 5 {
			t.Errorf("forced shutdown at day %d, want 5", s.Day())
		}
	default:
		t.Fatalf("%d tributes alive out of a field of 2", len(alive))
	}
}

func TestDeathLogConsistency(t *testing.T) {
	s := newTestSim(t, DefaultConfig(11), tribute.DefaultRoster())
	s.Run()

	byName := map[string]int{}
	for _, d := range s.Rec.DeathLog {
		byName[d.Name]++
	}
	for _, tr := range s.Tributes {
		if tr.Alive {
			if byName[tr.Name] != 0 {
				t.Errorf("living tribute %s has a death log entry", tr.Name)
			}
			continue
		}
		if byName[tr.Name] != 1 {
			t.Errorf("dead tribute %s has %d death log entries, want 1", tr.Name, byName[tr.Name])
		}
		if !tr.DeathLogged {
			t.Errorf("dead tribute %s not marked as logged", tr.Name)
		}
		if tr.CauseOfDeath == "" {
			t.Errorf("dead tribute %s has no cause of death", tr.Name)
		}
	}
}

func TestStrictShutdown(t *testing.T) {
	cfg := DefaultConfig(5)
	cfg.StrictShutdown = 1
	s := newTestSim(t, cfg, tribute.DefaultRoster())
	s.Run()

	if s.aliveCount() > 2 {
		joined := strings.Join(s.Rec.Log, "\n")
		if !strings.Contains(joined, "EARLY ARENA TERMINATION PROTOCOL TRIGGERED.") {
			t.Error("strict shutdown with >2 alive should log the termination protocol")
		}
		if s.Day() != 1 {
			t.Errorf("strict shutdown after day 1, but ran %d days", s.Day())
		}
		if !strings.Contains(joined, "EARLY SHUTDOWN: Multiple survivors extracted!") {
			t.Error("strict shutdown should announce extraction")
		}
	}
}

func TestLogSinkPanicIsolated(t *testing.T) {
	cfg := DefaultConfig(6)
	cfg.LogSink = func(string) { panic("broken sink") }
	s := newTestSim(t, cfg, smallRoster(6))
	s.Run()
	if !s.Done() {
		t.Error("run should complete despite a panicking sink")
	}
}

func TestNewRejectsBadInputs(t *testing.T) {
	if _, err := New(Config{}, tribute.DefaultRoster(), nil, nil); err == nil {
		t.Error("zero config should be invalid (max days)")
	}
	if _, err := New(DefaultConfig(1), tribute.Roster{}, nil, nil); err == nil {
		t.Error("empty roster should be invalid")
	}
	bad := DefaultConfig(1)
	bad.StrictShutdown = 99
	if _, err := New(bad, tribute.DefaultRoster(), nil, nil); err == nil {
		t.Error("strict shutdown beyond max days should be invalid")
	}
}

func TestResourceTickConsumption(t *testing.T) {
	s := newTestSim(t, DefaultConfig(8), smallRoster(2))
	tr := s.Tributes[0]
	tr.Hunger = 50
	tr.Stamina = 100
	tr.Inventory = []string{"protein bar"}

	s.resourceTick()

	if tr.Holds("protein bar") {
		t.Error("protein bar should be consumed")
	}
	if tr.Hunger < 70 {
		t.Errorf("hunger = %v after eating, want ≥ 70", tr.Hunger)
	}
	if tr.Morale != 6 {
		t.Errorf("morale = %d after eating, want 6", tr.Morale)
	}
	found := false
	for _, l := range s.Rec.Log {
		if strings.Contains(l, "eats protein bar") {
			found = true
		}
	}
	if !found {
		t.Error("consumption should be narrated")
	}
}

func TestResourceTickStatusTags(t *testing.T) {
	s := newTestSim(t, DefaultConfig(9), smallRoster(2))
	tr := s.Tributes[0]
	tr.Hunger = 20
	tr.Inventory = nil
	tr.Traits = nil

	s.resourceTick()
	if !tr.HasStatus(tribute.StatusHungry) {
		t.Error("hunger below 30 should tag hungry")
	}
	if tr.HasStatus(tribute.StatusStarving) {
		t.Error("hunger above 0 should not tag starving")
	}

	tr.Hunger = 40
	s.resourceTick()
	if tr.HasStatus(tribute.StatusHungry) {
		t.Error("recovered hunger should clear the hungry tag")
	}
}

func TestStarvationEventuallyKills(t *testing.T) {
	s := newTestSim(t, DefaultConfig(10), smallRoster(1))
	tr := s.Tributes[0]
	tr.Traits = nil
	tr.Inventory = nil

	for i := 0; i < 500 && tr.Alive; i++ {
		tr.Hunger = 0
		s.resourceTick()
	}
	if tr.Alive {
		t.Fatal("tribute survived 500 starving ticks at 15% risk per tick")
	}
	if tr.CauseOfDeath != "starvation" {
		t.Errorf("cause = %q, want starvation", tr.CauseOfDeath)
	}
	count := 0
	for _, d := range s.Rec.DeathLog {
		if d.Name == tr.Name {
			count++
			if d.Phase != blockNight {
				t.Errorf("starvation death phase = %q, want night", d.Phase)
			}
		}
	}
	if count != 1 {
		t.Errorf("starvation logged %d times, want 1", count)
	}
	if !tr.DeathLogged {
		t.Error("starvation death should be marked logged immediately")
	}
}

func TestSneakAttackAllyHesitation(t *testing.T) {
	s := newTestSim(t, DefaultConfig(12), smallRoster(2))
	a, b := s.Tributes[0], s.Tributes[1]
	a.Traits, b.Traits = nil, nil
	b.Region = a.Region
	s.Alliances.Form(a, b)

	const trials = 500
	hesitations, kills := 0, 0
	for i := 0; i < trials; i++ {
		a.Alive, b.Alive = true, true
		a.Morale, b.Morale = 5, 5
		a.Stamina, b.Stamina = 100, 100

		lines := eventSneakAttack([]*tribute.Tribute{a, b}, s.rng, s)
		if len(lines) == 1 && strings.Contains(lines[0], "hesitates") {
			hesitations++
		}
		if !a.Alive || !b.Alive {
			kills++
		}
	}
	if hesitations < trials*7/10 {
		t.Errorf("allied ambush hesitated %d/%d times, want ≥ 70%%", hesitations, trials)
	}
	if kills > trials*3/10 {
		t.Errorf("allied ambush killed %d/%d times, too many", kills, trials)
	}
}

func TestWeightScaling(t *testing.T) {
	c := newCatalog(content.DefaultRegistry())

	skirmishBase := baseWeights[unitSmallSkirmish]
	if got := c.weightFor(unitSmallSkirmish, 20); got != skirmishBase {
		t.Errorf("skirmish weight at 20 alive = %v, want %v", got, skirmishBase)
	}
	if got := c.weightFor(unitSmallSkirmish, 8); got != skirmishBase*1.3 {
		t.Errorf("skirmish weight at 8 alive = %v, want %v", got, skirmishBase*1.3)
	}
	if got := c.weightFor(unitFunnyBusiness, 5); got != baseWeights[unitFunnyBusiness]*0.5 {
		t.Errorf("comedy weight at 5 alive = %v, want %v", got, baseWeights[unitFunnyBusiness]*0.5)
	}
	if got := c.weightFor(unitAllianceBetrayal, 10); got != baseWeights[unitAllianceBetrayal]*1.4 {
		t.Errorf("betrayal weight at 10 alive = %v, want %v", got, baseWeights[unitAllianceBetrayal]*1.4)
	}
	if got := c.weightFor(unitAllianceBetrayal, 20); got != 0.3 {
		t.Errorf("betrayal weight at 20 alive = %v, want 0.3", got)
	}
	if got := c.weightFor("never heard of it", 20); got != defaultWeight {
		t.Errorf("unknown unit weight = %v, want %v", got, defaultWeight)
	}

	reg := content.DefaultRegistry()
	reg.WeightOverrides["dance_off"] = 2.0
	c2 := newCatalog(reg)
	if got := c2.weightFor(unitDanceOff, 20); got != 2.0 {
		t.Errorf("override weight = %v, want 2.0", got)
	}
}

func TestCatalogAddValidation(t *testing.T) {
	c := newCatalog(content.DefaultRegistry())
	dayLen := len(c.Day)

	c.AddDay(Unit{ID: "", Run: eventFindSupplies})
	c.AddDay(Unit{ID: "no_func", Run: nil})
	if len(c.Day) != dayLen {
		t.Error("malformed units should be dropped")
	}

	c.AddDay(Unit{ID: "custom_event", Run: eventFindSupplies})
	if len(c.Day) != dayLen+1 {
		t.Error("valid unit should be appended")
	}
}

func TestGlobalChanceCapped(t *testing.T) {
	if got := globalChance(0); got != 0.30 {
		t.Errorf("globalChance(0) = %v, want 0.30", got)
	}
	if got := globalChance(10); got < 0.399 || got > 0.401 {
		t.Errorf("globalChance(10) = %v, want ~0.40", got)
	}
	if got := globalChance(100); got != 0.55 {
		t.Errorf("globalChance(100) = %v, want 0.55 cap", got)
	}
}

func TestStandingsOrder(t *testing.T) {
	alive := tribute.New("a", "Alive Low", "unknown", 18, 1)
	alive2 := tribute.New("b", "Alive High", "unknown", 18, 1)
	alive2.Kills = 3
	dead := tribute.New("c", "Dead Killer", "unknown", 18, 1)
	dead.Kills = 5
	dead.Kill("test")
	dead2 := tribute.New("d", "Dead Noted", "unknown", 18, 1)
	dead2.Kills = 5
	dead2.Notoriety = 9
	dead2.Kill("test")

	s := &Simulator{Tributes: []*tribute.Tribute{dead, alive, dead2, alive2}}
	ranked := s.Standings()

	wantOrder := []string{"Alive High", "Alive Low", "Dead Noted", "Dead Killer"}
	for i, want := range wantOrder {
		if ranked[i].Name != want {
			t.Fatalf("standings[%d] = %s, want %s", i, ranked[i].Name, want)
		}
	}
}

func TestPostEventCleanupDedupesNotes(t *testing.T) {
	s := newTestSim(t, DefaultConfig(13), smallRoster(2))
	tr := s.Tributes[0]
	tr.Inventory = []string{"moral support note", "knife", "moral support note", "moral support note"}

	s.postEventCleanup()

	notes := 0
	for _, it := range tr.Inventory {
		if it == "moral support note" {
			notes++
		}
	}
	if notes != 1 {
		t.Errorf("cleanup left %d notes, want 1", notes)
	}
	if !tr.Holds("knife") {
		t.Error("cleanup should not touch other items")
	}
}

func TestExportDocument(t *testing.T) {
	s := newTestSim(t, DefaultConfig(14), smallRoster(6))
	s.Run()

	doc := s.Export()
	if doc.Seed != 14 {
		t.Errorf("doc seed = %d, want 14", doc.Seed)
	}
	if doc.FinalDay != s.Day() {
		t.Errorf("doc final day = %d, want %d", doc.FinalDay, s.Day())
	}
	if len(doc.Tributes) != 6 {
		t.Errorf("doc has %d tributes, want 6", len(doc.Tributes))
	}
	if len(doc.Log) == 0 {
		t.Error("doc log empty")
	}
	if doc.Timestamp == "" {
		t.Error("doc timestamp empty")
	}
}

func TestArticle(t *testing.T) {
	tests := []struct{ in, want string }{
		{"knife", "a knife"},
		{"egg", "an egg"},
		{"umbrella", "an umbrella"},
		{"a cloak", "a cloak"},
		{"an antidote", "an antidote"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := article(tt.in); got != tt.want {
			t.Errorf("article(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
