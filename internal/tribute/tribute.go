// Package tribute provides the competitor data model: vitals, inventory,
// status tags, and the invariant-preserving mutators event code goes
// through. Death is a state transition, never a removal, so the fallen stay
// available for standings and logs.
package tribute

import (
	"fmt"
	"strings"
)

// Morale, hunger, and stamina bounds. Mutators clamp to these.
const (
	MoraleMin  = 0
	MoraleMax  = 10
	HungerMin  = 0.0
	HungerMax  = 100.0
	StaminaMin = 0
	StaminaMax = 100
)

// Trait names. Traits are drawn once at creation and never change.
const (
	TraitAgile    = "agile"    // better at avoiding hazards and traps
	TraitStrong   = "strong"   // edge in direct skirmishes
	TraitStealthy = "stealthy" // edge in sneak attacks
	TraitMedic    = "medic"    // improvised self-care
	TraitLucky    = "lucky"    // better odds against hazards and starvation
	TraitClumsy   = "clumsy"   // worse at traps and stealth
)

// TraitPool is the fixed pool traits are drawn from.
var TraitPool = []string{TraitAgile, TraitStrong, TraitStealthy, TraitMedic, TraitLucky, TraitClumsy}

// Well-known status tags. Other tags (status variants) are flavor.
const (
	StatusFallen   = "fallen"
	StatusWounded  = "wounded"
	StatusHungry   = "hungry"
	StatusStarving = "starving"
)

// Tribute is one competitor. Mutation happens only through event units and
// the resource tick; both go through the clamping mutators below.
type Tribute struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Age      int    `json:"age"`
	District int    `json:"district"`

	Alive        bool     `json:"alive"`
	Kills        int      `json:"kills"`
	Inventory    []string `json:"inventory"`          // order-preserving multiset
	Status       []string `json:"status"`             // insertion-ordered tag set
	Morale       int      `json:"morale"`             // 0–10
	Notoriety    int      `json:"notoriety"`          // unbounded upward
	CauseOfDeath string   `json:"cause_of_death,omitempty"` // set iff !Alive
	Hunger       float64  `json:"hunger"`             // 0–100, lower is worse
	Stamina      int      `json:"stamina"`            // 0–100
	Traits       []string `json:"traits"`
	Region       string   `json:"region"`

	// DeathLogged marks that the death log entry for this tribute has been
	// written; harvesting happens once per block, not at the instant of death.
	DeathLogged bool `json:"death_logged"`
}

// New creates a live tribute with default vitals.
func New(key, name, gender string, age, district int) *Tribute {
	return &Tribute{
		Key:      key,
		Name:     name,
		Gender:   gender,
		Age:      age,
		District: district,
		Alive:    true,
		Morale:   5,
		Hunger:   70,
		Stamina:  100,
	}
}

// AdjustMorale shifts morale, clamped to [0,10].
func (t *Tribute) AdjustMorale(delta int) {
	t.Morale += delta
	if t.Morale < MoraleMin {
		t.Morale = MoraleMin
	}
	if t.Morale > MoraleMax {
		t.Morale = MoraleMax
	}
}

// AdjustHunger shifts hunger, clamped to [0,100].
func (t *Tribute) AdjustHunger(delta float64) {
	t.Hunger += delta
	if t.Hunger < HungerMin {
		t.Hunger = HungerMin
	}
	if t.Hunger > HungerMax {
		t.Hunger = HungerMax
	}
}

// AdjustStamina shifts stamina, clamped to [0,100].
func (t *Tribute) AdjustStamina(delta int) {
	t.Stamina += delta
	if t.Stamina < StaminaMin {
		t.Stamina = StaminaMin
	}
	if t.Stamina > StaminaMax {
		t.Stamina = StaminaMax
	}
}

// AddStatus appends a tag unless already present.
func (t *Tribute) AddStatus(tag string) {
	if !t.HasStatus(tag) {
		t.Status = append(t.Status, tag)
	}
}

// RemoveStatus drops a tag if present, preserving order of the rest.
func (t *Tribute) RemoveStatus(tag string) {
	for i, s := range t.Status {
		if s == tag {
			t.Status = append(t.Status[:i], t.Status[i+1:]...)
			return
		}
	}
}

// HasStatus reports whether the tag is present.
func (t *Tribute) HasStatus(tag string) bool {
	for _, s := range t.Status {
		if s == tag {
			return true
		}
	}
	return false
}

// HasTrait reports whether the tribute carries the trait.
func (t *Tribute) HasTrait(trait string) bool {
	for _, tr := range t.Traits {
		if tr == trait {
			return true
		}
	}
	return false
}

// Holds reports whether the inventory contains the item.
func (t *Tribute) Holds(item string) bool {
	for _, it := range t.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// RemoveItem drops the first matching inventory item and reports whether
// anything was removed.
func (t *Tribute) RemoveItem(item string) bool {
	for i, it := range t.Inventory {
		if it == item {
			t.Inventory = append(t.Inventory[:i], t.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Kill marks the tribute dead with the given cause. The alive/cause
// invariant holds: cause is set exactly when Alive is false.
func (t *Tribute) Kill(cause string) {
	t.Alive = false
	t.AddStatus(StatusFallen)
	t.CauseOfDeath = cause
}

// String renders the compact standings line for the tribute.
func (t *Tribute) String() string {
	state := "Alive"
	if !t.Alive {
		cause := t.CauseOfDeath
		if cause == "" {
			cause = "unknown"
		}
		state = fmt.Sprintf("Fallen (%s)", cause)
	}
	statusBits := ""
	if len(t.Status) > 0 {
		statusBits = fmt.Sprintf(" [%s]", strings.Join(t.Status, ","))
	}
	return fmt.Sprintf("%s (D%d, %s, Kills:%d, Morale:%d, Notoriety:%d, H:%.0f, S:%d, Reg:%s%s)",
		t.Name, t.District, state, t.Kills, t.Morale, t.Notoriety, t.Hunger, t.Stamina, t.Region, statusBits)
}
