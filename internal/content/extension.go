package content

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Extension is the plugin data boundary: pure data supplied by an external
// loader and merged into a simulator's registry before a run starts.
// Malformed entries are dropped with a diagnostic, never fatal.
type Extension struct {
	Name    string             `yaml:"name" json:"name"`
	Weapons map[string]string  `yaml:"weapons" json:"weapons"` // weapon name → verb
	Items   []string           `yaml:"items" json:"items"`     // extra supply items
	Hazards map[string]string  `yaml:"hazards" json:"hazards"` // hazard → effect keyword
	Weights map[string]float64 `yaml:"weights" json:"weights"` // event unit ID → weight override
}

// LoadExtension reads a YAML extension pack from disk.
func LoadExtension(path string) (*Extension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extension: %w", err)
	}
	var ext Extension
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("parse extension %s: %w", path, err)
	}
	if ext.Name == "" {
		ext.Name = path
	}
	return &ext, nil
}

// Merge folds an extension into the registry. Weight overrides are kept on
// the registry for the event catalog to pick up at selection time.
func (r *Registry) Merge(ext *Extension) {
	if ext == nil {
		return
	}
	for w, verb := range ext.Weapons {
		if w == "" || verb == "" {
			slog.Warn("dropping malformed extension weapon", "pack", ext.Name, "weapon", w)
			continue
		}
		r.WeaponVerbs[w] = verb
	}
	r.rebuildWeapons()

	for _, it := range ext.Items {
		if it == "" {
			slog.Warn("dropping empty extension item", "pack", ext.Name)
			continue
		}
		if !containsString(r.SupplyItems, it) && !containsString(r.CornucopiaItems, it) {
			r.SupplyItems = append(r.SupplyItems, it)
		}
	}

	for hz, effect := range ext.Hazards {
		if hz == "" || effect == "" {
			slog.Warn("dropping malformed extension hazard", "pack", ext.Name, "hazard", hz)
			continue
		}
		if !containsString(r.Hazards, hz) {
			r.Hazards = append(r.Hazards, hz)
		}
		r.HazardEffects[hz] = effect
	}

	for id, w := range ext.Weights {
		if id == "" || w <= 0 {
			slog.Warn("dropping malformed weight override", "pack", ext.Name, "id", id, "weight", w)
			continue
		}
		r.WeightOverrides[id] = w
	}
}

func containsString(items []string, s string) bool {
	for _, it := range items {
		if it == s {
			return true
		}
	}
	return false
}
