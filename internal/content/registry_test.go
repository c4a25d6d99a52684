package content

import (
	"testing"

	"github.com/talgya/arenasim/internal/entropy"
	"github.com/talgya/arenasim/internal/tribute"
)

func TestIsWeapon(t *testing.T) {
	r := DefaultRegistry()
	if !r.IsWeapon("knife") {
		t.Error("knife should be a weapon")
	}
	for _, u := range Unarmed {
		if r.IsWeapon(u) {
			t.Errorf("%q should not count as a weapon", u)
		}
	}
	if r.IsWeapon("berries") {
		t.Error("berries should not be a weapon")
	}
}

func TestVerbFallback(t *testing.T) {
	r := DefaultRegistry()
	if got := r.Verb("knife"); got != "slashes" {
		t.Errorf("Verb(knife) = %q, want slashes", got)
	}
	if got := r.Verb("no such weapon"); got != "attacks" {
		t.Errorf("Verb fallback = %q, want attacks", got)
	}
}

func TestWeaponsSortedAndStable(t *testing.T) {
	r := DefaultRegistry()
	ws := r.Weapons()
	if len(ws) == 0 {
		t.Fatal("no weapons in default registry")
	}
	for i := 1; i < len(ws); i++ {
		if ws[i-1] >= ws[i] {
			t.Fatalf("weapons not strictly sorted: %q before %q", ws[i-1], ws[i])
		}
	}
	for _, u := range Unarmed {
		for _, w := range ws {
			if w == u {
				t.Errorf("unarmed fallback %q leaked into weapon list", u)
			}
		}
	}
}

func TestLootPool(t *testing.T) {
	r := DefaultRegistry()
	pool := r.LootPool()
	if len(pool) != len(r.SupplyItems)+len(r.Weapons()) {
		t.Errorf("loot pool size %d, want %d", len(pool), len(r.SupplyItems)+len(r.Weapons()))
	}
}

func TestApplyStatusVariantOnePerGroup(t *testing.T) {
	r := DefaultRegistry()
	rng := entropy.NewStream(5)
	tr := tribute.New("t1", "Test", "unknown", 18, 1)

	r.ApplyStatusVariant(tr, "frustrated", rng)
	if len(tr.Status) != 1 {
		t.Fatalf("expected 1 status, got %v", tr.Status)
	}
	first := tr.Status[0]

	// A second application within the same group adds nothing.
	for i := 0; i < 10; i++ {
		r.ApplyStatusVariant(tr, "frustrated", rng)
	}
	if len(tr.Status) != 1 || tr.Status[0] != first {
		t.Errorf("variant group should cap at one tag, got %v", tr.Status)
	}

	// A tag with no variant group is applied verbatim.
	r.ApplyStatusVariant(tr, "soggy", rng)
	if !tr.HasStatus("soggy") {
		t.Error("ungrouped tag should apply as-is")
	}
}

func TestHazardEffectFallback(t *testing.T) {
	r := DefaultRegistry()
	if got := r.HazardEffect("acid rain"); got != "burned" {
		t.Errorf("HazardEffect(acid rain) = %q, want burned", got)
	}
	if got := r.HazardEffect("mystery doom"); got != "struck down" {
		t.Errorf("HazardEffect fallback = %q, want struck down", got)
	}
}

func TestBiasedHazardWithoutBiomeList(t *testing.T) {
	r := DefaultRegistry()
	rng := entropy.NewStream(11)
	for i := 0; i < 50; i++ {
		hz := r.BiasedHazard(rng, nil)
		if _, ok := r.HazardEffects[hz]; !ok {
			t.Fatalf("BiasedHazard returned unknown hazard %q", hz)
		}
	}
}

func TestMergeExtension(t *testing.T) {
	r := DefaultRegistry()
	ext := &Extension{
		Name:    "test-pack",
		Weapons: map[string]string{"laser spoon": "zaps", "": "bad"},
		Items:   []string{"decoy duck", "", "berries"},
		Hazards: map[string]string{"gravity well": "crushed", "noeffect": ""},
		Weights: map[string]float64{"small_skirmish": 2.0, "bogus": -1},
	}
	r.Merge(ext)

	if !r.IsWeapon("laser spoon") {
		t.Error("merged weapon missing")
	}
	if r.Verb("laser spoon") != "zaps" {
		t.Error("merged weapon verb missing")
	}

	count := 0
	for _, it := range r.SupplyItems {
		if it == "decoy duck" {
			count++
		}
		if it == "" {
			t.Error("empty item merged")
		}
	}
	if count != 1 {
		t.Errorf("decoy duck merged %d times, want 1", count)
	}
	// berries already present; must not duplicate
	berries := 0
	for _, it := range r.SupplyItems {
		if it == "berries" {
			berries++
		}
	}
	if berries != 1 {
		t.Errorf("berries duplicated on merge: %d", berries)
	}

	if r.HazardEffect("gravity well") != "crushed" {
		t.Error("merged hazard effect missing")
	}
	for _, hz := range r.Hazards {
		if hz == "noeffect" {
			t.Error("hazard with empty effect should be dropped")
		}
	}

	if r.WeightOverrides["small_skirmish"] != 2.0 {
		t.Error("weight override missing")
	}
	if _, ok := r.WeightOverrides["bogus"]; ok {
		t.Error("non-positive weight override should be dropped")
	}

	r.Merge(nil) // no-op
}
