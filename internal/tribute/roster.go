package tribute

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Entry is one roster record before simulation state is attached.
type Entry struct {
	Key      string `json:"key,omitempty"`
	Name     string `json:"name"`
	Gender   string `json:"gender,omitempty"`
	Age      int    `json:"age,omitempty"`
	District int    `json:"district,omitempty"`
}

// Roster is an ordered list of entries. Order matters: tribute construction
// consumes seeded random draws per entry, so a stable order is part of the
// determinism contract.
type Roster []Entry

// ParseRoster accepts either a JSON array of entries or a JSON object
// mapping key → entry, applying the documented defaults for missing fields.
// Map input is sorted by key for a stable order.
func ParseRoster(data []byte) (Roster, error) {
	var asList []Entry
	if err := json.Unmarshal(data, &asList); err == nil {
		roster := make(Roster, 0, len(asList))
		for i, e := range asList {
			if e.Key == "" {
				e.Key = fmt.Sprintf("cust%d", i+1)
			}
			if e.Name == "" {
				e.Name = fmt.Sprintf("Custom %d", i+1)
			}
			applyDefaults(&e, (i%12)+1)
			roster = append(roster, e)
		}
		return roster, nil
	}

	var asMap map[string]Entry
	if err := json.Unmarshal(data, &asMap); err != nil {
		return nil, fmt.Errorf("roster must be a JSON array or object: %w", err)
	}
	keys := make([]string, 0, len(asMap))
	for k := range asMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	roster := make(Roster, 0, len(keys))
	for _, k := range keys {
		e := asMap[k]
		e.Key = k
		if e.Name == "" {
			e.Name = k
		}
		applyDefaults(&e, 1)
		roster = append(roster, e)
	}
	return roster, nil
}

// LoadRoster reads and parses a roster file.
func LoadRoster(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	roster, err := ParseRoster(data)
	if err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return roster, nil
}

func applyDefaults(e *Entry, district int) {
	if e.Gender == "" {
		e.Gender = "unknown"
	}
	if e.Age == 0 {
		e.Age = 18
	}
	if e.District == 0 {
		e.District = district
	}
}

// Validate rejects empty rosters and duplicate keys.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("roster is empty")
	}
	seen := make(map[string]bool, len(r))
	for _, e := range r {
		if e.Key == "" {
			return fmt.Errorf("roster entry %q has no key", e.Name)
		}
		if seen[e.Key] {
			return fmt.Errorf("duplicate roster key %q", e.Key)
		}
		seen[e.Key] = true
	}
	return nil
}
