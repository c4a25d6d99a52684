package tribute

import "testing"

func TestNewDefaults(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 3)
	if !tr.Alive {
		t.Error("new tribute should be alive")
	}
	if tr.Morale != 5 {
		t.Errorf("Morale = %d, want 5", tr.Morale)
	}
	if tr.Hunger != 70 {
		t.Errorf("Hunger = %v, want 70", tr.Hunger)
	}
	if tr.Stamina != 100 {
		t.Errorf("Stamina = %d, want 100", tr.Stamina)
	}
}

func TestAdjustMoraleClamps(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 1)
	tr.AdjustMorale(+100)
	if tr.Morale != MoraleMax {
		t.Errorf("Morale = %d, want clamped to %d", tr.Morale, MoraleMax)
	}
	tr.AdjustMorale(-100)
	if tr.Morale != MoraleMin {
		t.Errorf("Morale = %d, want clamped to %d", tr.Morale, MoraleMin)
	}
}

func TestAdjustHungerAndStaminaClamp(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 1)
	tr.AdjustHunger(+1000)
	if tr.Hunger != HungerMax {
		t.Errorf("Hunger = %v, want %v", tr.Hunger, HungerMax)
	}
	tr.AdjustHunger(-1000)
	if tr.Hunger != HungerMin {
		t.Errorf("Hunger = %v, want %v", tr.Hunger, HungerMin)
	}
	tr.AdjustStamina(-1000)
	if tr.Stamina != StaminaMin {
		t.Errorf("Stamina = %d, want %d", tr.Stamina, StaminaMin)
	}
	tr.AdjustStamina(+1000)
	if tr.Stamina != StaminaMax {
		t.Errorf("Stamina = %d, want %d", tr.Stamina, StaminaMax)
	}
}

func TestKillInvariant(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 1)
	tr.Kill("test cause")
	if tr.Alive {
		t.Error("killed tribute should not be alive")
	}
	if tr.CauseOfDeath != "test cause" {
		t.Errorf("CauseOfDeath = %q, want %q", tr.CauseOfDeath, "test cause")
	}
	if !tr.HasStatus(StatusFallen) {
		t.Error("killed tribute should carry the fallen status")
	}
}

func TestStatusAddRemoveNoDuplicates(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 1)
	tr.AddStatus("hungry")
	tr.AddStatus("hungry")
	if len(tr.Status) != 1 {
		t.Errorf("duplicate AddStatus produced %d entries, want 1", len(tr.Status))
	}
	tr.RemoveStatus("hungry")
	if tr.HasStatus("hungry") {
		t.Error("status should be removed")
	}
	tr.RemoveStatus("hungry") // no-op
}

func TestRemoveItemFirstMatch(t *testing.T) {
	tr := New("t1", "Test", "unknown", 18, 1)
	tr.Inventory = []string{"berries", "knife", "berries"}
	if !tr.RemoveItem("berries") {
		t.Fatal("RemoveItem should report success")
	}
	if len(tr.Inventory) != 2 {
		t.Errorf("inventory has %d items, want 2", len(tr.Inventory))
	}
	if !tr.Holds("berries") {
		t.Error("second berries should remain")
	}
	if tr.RemoveItem("trident") {
		t.Error("RemoveItem of absent item should report false")
	}
}

func TestParseRosterArray(t *testing.T) {
	data := []byte(`[{"name":"Alice","district":4},{"key":"bob","name":"Bob"}]`)
	roster, err := ParseRoster(data)
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("got %d entries, want 2", len(roster))
	}
	if roster[0].Key != "cust1" {
		t.Errorf("default key = %q, want cust1", roster[0].Key)
	}
	if roster[0].District != 4 {
		t.Errorf("district = %d, want 4", roster[0].District)
	}
	if roster[1].Key != "bob" {
		t.Errorf("explicit key = %q, want bob", roster[1].Key)
	}
	if roster[1].Age != 18 {
		t.Errorf("default age = %d, want 18", roster[1].Age)
	}
	if roster[1].Gender != "unknown" {
		t.Errorf("default gender = %q, want unknown", roster[1].Gender)
	}
}

func TestParseRosterObjectSortedByKey(t *testing.T) {
	data := []byte(`{"zeta":{"name":"Z"},"alpha":{"name":"A"}}`)
	roster, err := ParseRoster(data)
	if err != nil {
		t.Fatalf("ParseRoster: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("got %d entries, want 2", len(roster))
	}
	if roster[0].Key != "alpha" || roster[1].Key != "zeta" {
		t.Errorf("object roster not sorted by key: %q, %q", roster[0].Key, roster[1].Key)
	}
}

func TestParseRosterRejectsGarbage(t *testing.T) {
	if _, err := ParseRoster([]byte(`"just a string"`)); err == nil {
		t.Error("expected error for non-roster JSON")
	}
}

func TestRosterValidate(t *testing.T) {
	if err := (Roster{}).Validate(); err == nil {
		t.Error("empty roster should be invalid")
	}
	dup := Roster{{Key: "a", Name: "A"}, {Key: "a", Name: "B"}}
	if err := dup.Validate(); err == nil {
		t.Error("duplicate keys should be invalid")
	}
	if err := DefaultRoster().Validate(); err != nil {
		t.Errorf("default roster should validate: %v", err)
	}
}
