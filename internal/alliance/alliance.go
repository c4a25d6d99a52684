// Package alliance tracks the disjoint alliance groups among living
// tributes. Groups are ordered deterministically (formation order, keys
// sorted within a group) so that seeded random draws over groups reproduce
// across runs.
package alliance

import (
	"sort"

	"github.com/talgya/arenasim/internal/tribute"
)

// Manager holds a collection of pairwise-disjoint alliances of size ≥2.
type Manager struct {
	groups [][]string
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Form allies a and b. No-op if either is dead or they are the same
// tribute. Any existing groups touching either member are absorbed, giving
// transitive merge semantics: allying B–C when A–B exists yields {A,B,C}.
func (m *Manager) Form(a, b *tribute.Tribute) {
	if a == nil || b == nil || !a.Alive || !b.Alive || a.Key == b.Key {
		return
	}
	merged := map[string]bool{a.Key: true, b.Key: true}
	var kept [][]string
	for _, g := range m.groups {
		if intersects(g, merged) {
			for _, k := range g {
				merged[k] = true
			}
		} else {
			kept = append(kept, g)
		}
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m.groups = append(kept, keys)
}

// Breakup dissolves every alliance containing any of the given keys. A
// betrayal or fracture ends the whole group, not just the pair involved.
func (m *Manager) Breakup(keys []string) {
	hit := make(map[string]bool, len(keys))
	for _, k := range keys {
		hit[k] = true
	}
	var kept [][]string
	for _, g := range m.groups {
		if !intersects(g, hit) {
			kept = append(kept, g)
		}
	}
	m.groups = kept
}

// IsAllied reports whether a and b share an alliance. A tribute is always
// allied with itself.
func (m *Manager) IsAllied(a, b *tribute.Tribute) bool {
	if a.Key == b.Key {
		return true
	}
	for _, g := range m.groups {
		if contains(g, a.Key) && contains(g, b.Key) {
			return true
		}
	}
	return false
}

// MembersOf returns the keys of the alliance containing t, or nil.
func (m *Manager) MembersOf(t *tribute.Tribute) []string {
	for _, g := range m.groups {
		if contains(g, t.Key) {
			out := make([]string, len(g))
			copy(out, g)
			return out
		}
	}
	return nil
}

// RemoveDead trims every group to its intersection with the living and
// drops groups that fall below two members. Call after all deaths in a
// block are resolved, never mid-resolution.
func (m *Manager) RemoveDead(tributes []*tribute.Tribute) {
	alive := make(map[string]bool, len(tributes))
	for _, t := range tributes {
		if t.Alive {
			alive[t.Key] = true
		}
	}
	var kept [][]string
	for _, g := range m.groups {
		var trimmed []string
		for _, k := range g {
			if alive[k] {
				trimmed = append(trimmed, k)
			}
		}
		if len(trimmed) >= 2 {
			kept = append(kept, trimmed)
		}
	}
	m.groups = kept
}

// Groups returns the current alliances in deterministic order. Callers
// must not mutate the returned groups.
func (m *Manager) Groups() [][]string {
	return m.groups
}

// Count returns the number of alliances.
func (m *Manager) Count() int {
	return len(m.groups)
}

func intersects(group []string, set map[string]bool) bool {
	for _, k := range group {
		if set[k] {
			return true
		}
	}
	return false
}

func contains(group []string, key string) bool {
	for _, k := range group {
		if k == key {
			return true
		}
	}
	return false
}
